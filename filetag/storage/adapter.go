package storage

import (
	"context"
	"database/sql"

	"github.com/nonibytes/filetag/filetag/storage/sqlbuilder"
)

type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

const (
	// MetaMagic identifies a filetag database in the meta table
	MetaMagic   = "filetag"
	MetaVersion = "1"

	KeyMagic   = "filetag_magic"
	KeyVersion = "filetag_version"
)

// Adapter abstracts database-specific operations
type Adapter interface {
	Backend() Backend
	PlaceholderStyle() sqlbuilder.PlaceholderStyle
	StoreID() string

	Connect(ctx context.Context) (*sql.DB, error)
	Close() error

	// EnsureSchema creates any missing tables and indexes. It must be idempotent.
	EnsureSchema(ctx context.Context, db *sql.DB) error
	Optimize(ctx context.Context, db *sql.DB) error

	SQL() SQL
}

// SQL holds prepared SQL templates for common operations
type SQL struct {
	GetMeta string
	SetMeta string

	ListWorkspaces  string
	UpsertWorkspace string
	DeleteWorkspace string

	GetState string
	SetState string

	ListOpenTabs  string
	UpsertOpenTab string
	DeleteOpenTab string
	ClearOpenTabs string

	GetTagsByPath    string
	GetTagsByHash    string
	UpsertTagsByPath string
	UpsertTagsByHash string
	// SelectTagsByPaths is completed with an IN list built by sqlbuilder
	SelectTagsByPaths string

	GetHashCache    string
	UpsertHashCache string
}
