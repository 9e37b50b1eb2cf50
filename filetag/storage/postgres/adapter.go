package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/nonibytes/filetag/filetag/storage"
	"github.com/nonibytes/filetag/filetag/storage/sqlbuilder"
)

const DefaultSchema = "filetag"

var schemaNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Adapter keeps all filetag tables in one Postgres schema
type Adapter struct {
	ConnString string
	Schema     string
}

func New(connString, schema string) *Adapter {
	if schema == "" {
		schema = DefaultSchema
	}
	return &Adapter{ConnString: connString, Schema: schema}
}

func (a *Adapter) Backend() storage.Backend { return storage.BackendPostgres }

func (a *Adapter) PlaceholderStyle() sqlbuilder.PlaceholderStyle { return sqlbuilder.PlaceholderDollar }

func (a *Adapter) StoreID() string { return "postgres:" + a.Schema }

func (a *Adapter) Close() error { return nil }

func (a *Adapter) SQL() storage.SQL { return SQLTemplates }

func (a *Adapter) quotedSchema() (string, error) {
	if !schemaNameRe.MatchString(a.Schema) {
		return "", fmt.Errorf("invalid postgres schema name %q", a.Schema)
	}
	return pgx.Identifier{a.Schema}.Sanitize(), nil
}

// Connect opens a pool whose sessions resolve unqualified names in the
// store's schema first. search_path may name a schema that does not exist
// yet, so the schema is created over the same pool.
func (a *Adapter) Connect(ctx context.Context) (*sql.DB, error) {
	schema, err := a.quotedSchema()
	if err != nil {
		return nil, err
	}
	cfg, err := pgx.ParseConfig(a.ConnString)
	if err != nil {
		return nil, fmt.Errorf("parse postgres connection string: %w", err)
	}
	if cfg.RuntimeParams == nil {
		cfg.RuntimeParams = map[string]string{}
	}
	cfg.RuntimeParams["search_path"] = schema + ",public"

	db := stdlib.OpenDB(*cfg)
	if _, err := db.ExecContext(ctx, "CREATE SCHEMA IF NOT EXISTS "+schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (a *Adapter) EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, ddlBase)
	return err
}

func (a *Adapter) Optimize(ctx context.Context, db *sql.DB) error {
	for _, table := range maintainedTables {
		if _, err := db.ExecContext(ctx, "VACUUM ANALYZE "+table); err != nil {
			return fmt.Errorf("vacuum %s: %w", table, err)
		}
	}
	return nil
}
