package postgres

const ddlBase = `
CREATE TABLE IF NOT EXISTS meta (
  key   TEXT PRIMARY KEY,
  value TEXT
);

CREATE TABLE IF NOT EXISTS workspaces (
  dir      TEXT PRIMARY KEY,
  name     TEXT NOT NULL,
  added_at BIGINT NOT NULL,
  seq      BIGSERIAL
);

CREATE TABLE IF NOT EXISTS app_state (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS open_tabs (
  path      TEXT PRIMARY KEY,
  opened_at BIGINT NOT NULL,
  seq       BIGSERIAL
);

CREATE TABLE IF NOT EXISTS tags_by_path (
  path       TEXT PRIMARY KEY,
  tags_json  JSONB NOT NULL,
  updated_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS tags_by_hash (
  hash       TEXT PRIMARY KEY,
  tags_json  JSONB NOT NULL,
  updated_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS file_hash_cache (
  path       TEXT PRIMARY KEY,
  size       BIGINT NOT NULL,
  mtime      BIGINT NOT NULL,
  hash       TEXT NOT NULL,
  updated_at BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_hash_cache_hash ON file_hash_cache(hash);
`

// maintainedTables are vacuumed by Optimize
var maintainedTables = []string{
	"meta", "workspaces", "app_state", "open_tabs",
	"tags_by_path", "tags_by_hash", "file_hash_cache",
}
