package postgres

import "github.com/nonibytes/filetag/filetag/storage"

var SQLTemplates = storage.SQL{
	GetMeta: "SELECT value FROM meta WHERE key = $1",
	SetMeta: "INSERT INTO meta(key,value) VALUES($1,$2) ON CONFLICT(key) DO UPDATE SET value=EXCLUDED.value",

	ListWorkspaces:  "SELECT name, dir, added_at FROM workspaces ORDER BY added_at ASC, seq ASC",
	UpsertWorkspace: "INSERT INTO workspaces(dir, name, added_at) VALUES($1, $2, $3) ON CONFLICT(dir) DO UPDATE SET name=EXCLUDED.name",
	DeleteWorkspace: "DELETE FROM workspaces WHERE dir = $1",

	GetState: "SELECT value FROM app_state WHERE key = $1",
	SetState: "INSERT INTO app_state(key, value) VALUES($1, $2) ON CONFLICT(key) DO UPDATE SET value=EXCLUDED.value",

	ListOpenTabs: "SELECT path FROM open_tabs ORDER BY opened_at ASC, seq ASC",
	// re-opening moves the tab to the end
	UpsertOpenTab: `INSERT INTO open_tabs(path, opened_at) VALUES($1, $2)
	                ON CONFLICT(path) DO UPDATE
	                  SET opened_at=EXCLUDED.opened_at,
	                      seq=nextval(pg_get_serial_sequence('open_tabs', 'seq'))`,
	DeleteOpenTab: "DELETE FROM open_tabs WHERE path = $1",
	ClearOpenTabs: "DELETE FROM open_tabs",

	GetTagsByPath: "SELECT tags_json::text FROM tags_by_path WHERE path = $1",
	GetTagsByHash: "SELECT tags_json::text FROM tags_by_hash WHERE hash = $1",
	UpsertTagsByPath: `INSERT INTO tags_by_path(path, tags_json, updated_at) VALUES($1, $2::jsonb, $3)
	                   ON CONFLICT(path) DO UPDATE
	                     SET tags_json=EXCLUDED.tags_json,
	                         updated_at=EXCLUDED.updated_at`,
	UpsertTagsByHash: `INSERT INTO tags_by_hash(hash, tags_json, updated_at) VALUES($1, $2::jsonb, $3)
	                   ON CONFLICT(hash) DO UPDATE
	                     SET tags_json=EXCLUDED.tags_json,
	                         updated_at=EXCLUDED.updated_at`,
	SelectTagsByPaths: "SELECT path, tags_json::text FROM tags_by_path WHERE path IN ",

	GetHashCache: "SELECT hash, size, mtime FROM file_hash_cache WHERE path = $1",
	UpsertHashCache: `INSERT INTO file_hash_cache(path, size, mtime, hash, updated_at) VALUES($1, $2, $3, $4, $5)
	                  ON CONFLICT(path) DO UPDATE
	                    SET size=EXCLUDED.size,
	                        mtime=EXCLUDED.mtime,
	                        hash=EXCLUDED.hash,
	                        updated_at=EXCLUDED.updated_at`,
}
