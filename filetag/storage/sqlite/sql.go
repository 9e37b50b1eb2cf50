package sqlite

import "github.com/nonibytes/filetag/filetag/storage"

const ddlBase = `
CREATE TABLE IF NOT EXISTS meta (
  key   TEXT PRIMARY KEY,
  value TEXT
);

CREATE TABLE IF NOT EXISTS workspaces (
  dir      TEXT PRIMARY KEY,
  name     TEXT NOT NULL,
  added_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS app_state (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS open_tabs (
  path      TEXT PRIMARY KEY,
  opened_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tags_by_path (
  path       TEXT PRIMARY KEY,
  tags_json  TEXT NOT NULL,
  updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tags_by_hash (
  hash       TEXT PRIMARY KEY,
  tags_json  TEXT NOT NULL,
  updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS file_hash_cache (
  path       TEXT PRIMARY KEY,
  size       INTEGER NOT NULL,
  mtime      INTEGER NOT NULL,
  hash       TEXT NOT NULL,
  updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_hash_cache_hash ON file_hash_cache(hash);
`

var SQLTemplates = storage.SQL{
	GetMeta: "SELECT value FROM meta WHERE key = ?1",
	SetMeta: "INSERT INTO meta(key,value) VALUES(?1,?2) ON CONFLICT(key) DO UPDATE SET value=excluded.value",

	// rowid breaks ties between rows written in the same second
	ListWorkspaces:  "SELECT name, dir, added_at FROM workspaces ORDER BY added_at ASC, rowid ASC",
	UpsertWorkspace: "INSERT INTO workspaces(dir, name, added_at) VALUES(?1, ?2, ?3) ON CONFLICT(dir) DO UPDATE SET name=excluded.name",
	DeleteWorkspace: "DELETE FROM workspaces WHERE dir = ?1",

	GetState: "SELECT value FROM app_state WHERE key = ?1",
	SetState: "INSERT INTO app_state(key, value) VALUES(?1, ?2) ON CONFLICT(key) DO UPDATE SET value=excluded.value",

	ListOpenTabs:  "SELECT path FROM open_tabs ORDER BY opened_at ASC, rowid ASC",
	UpsertOpenTab: "INSERT INTO open_tabs(path, opened_at) VALUES(?1, ?2) ON CONFLICT(path) DO UPDATE SET opened_at=excluded.opened_at",
	DeleteOpenTab: "DELETE FROM open_tabs WHERE path = ?1",
	ClearOpenTabs: "DELETE FROM open_tabs",

	GetTagsByPath:     "SELECT tags_json FROM tags_by_path WHERE path = ?1",
	GetTagsByHash:     "SELECT tags_json FROM tags_by_hash WHERE hash = ?1",
	UpsertTagsByPath:  "INSERT INTO tags_by_path(path, tags_json, updated_at) VALUES(?1, ?2, ?3) ON CONFLICT(path) DO UPDATE SET tags_json=excluded.tags_json, updated_at=excluded.updated_at",
	UpsertTagsByHash:  "INSERT INTO tags_by_hash(hash, tags_json, updated_at) VALUES(?1, ?2, ?3) ON CONFLICT(hash) DO UPDATE SET tags_json=excluded.tags_json, updated_at=excluded.updated_at",
	SelectTagsByPaths: "SELECT path, tags_json FROM tags_by_path WHERE path IN ",

	GetHashCache:    "SELECT hash, size, mtime FROM file_hash_cache WHERE path = ?1",
	UpsertHashCache: "INSERT INTO file_hash_cache(path, size, mtime, hash, updated_at) VALUES(?1, ?2, ?3, ?4, ?5) ON CONFLICT(path) DO UPDATE SET size=excluded.size, mtime=excluded.mtime, hash=excluded.hash, updated_at=excluded.updated_at",
}
