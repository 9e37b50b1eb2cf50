package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/nonibytes/filetag/filetag/storage"
	"github.com/nonibytes/filetag/filetag/storage/sqlbuilder"
)

type Adapter struct {
	Path       string
	DriverName string
}

func New(path string) *Adapter {
	return &Adapter{Path: path, DriverName: DriverModernc}
}

func NewWithDriver(path, driver string) *Adapter {
	if driver == "" {
		driver = DriverModernc
	}
	return &Adapter{Path: path, DriverName: driver}
}

func (a *Adapter) Backend() storage.Backend {
	return storage.BackendSQLite
}

func (a *Adapter) PlaceholderStyle() sqlbuilder.PlaceholderStyle {
	return sqlbuilder.PlaceholderQuestion
}

func (a *Adapter) StoreID() string {
	return a.Path
}

// Connect opens the database file with busy timeout, foreign keys and WAL
// enabled. A single writer connection avoids SQLITE_BUSY under concurrent use.
func (a *Adapter) Connect(ctx context.Context) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(a.Path, "?") {
		sep = "&"
	}
	db, err := sql.Open(a.DriverName, a.Path+sep+dsnParams(a.DriverName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (a *Adapter) Close() error { return nil }

func (a *Adapter) SQL() storage.SQL { return SQLTemplates }

func (a *Adapter) EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, ddlBase)
	return err
}

func (a *Adapter) Optimize(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{"PRAGMA optimize", "VACUUM"} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
