package cliutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/nonibytes/filetag/filetag"
	"github.com/nonibytes/filetag/filetag/storage"
	"github.com/nonibytes/filetag/filetag/storage/postgres"
	"github.com/nonibytes/filetag/filetag/storage/sqlite"
	"github.com/nonibytes/filetag/internal/cliopt"
)

type OutputFormat string

const (
	FormatPretty OutputFormat = "pretty"
	FormatPaths  OutputFormat = "paths"
	FormatJSON   OutputFormat = "json"
)

func ParseOutputFormat(s string) OutputFormat {
	switch OutputFormat(s) {
	case FormatPretty, FormatPaths, FormatJSON:
		return OutputFormat(s)
	default:
		return FormatPretty
	}
}

func PrintJSON(w io.Writer, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

// NewAdapter builds the storage adapter selected by the global options
func NewAdapter(g cliopt.GlobalOptions) storage.Adapter {
	switch g.Backend {
	case "postgres":
		return postgres.New(g.PostgresDSN, g.PostgresSchema)
	default:
		return sqlite.NewWithDriver(g.DBPath, g.SQLiteDriver)
	}
}

// OpenStore opens the configured store, creating it on first use
func OpenStore(ctx context.Context, g cliopt.GlobalOptions) (*filetag.Store, error) {
	if g.Backend == "sqlite" {
		if dir := filepath.Dir(g.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, filetag.PathError(dir, "create database directory", err)
			}
		}
	}
	opts := filetag.DefaultStoreOptions()
	opts.Log = Logger(g)
	return filetag.Create(ctx, NewAdapter(g), opts)
}

// Logger returns the configured logger, or a discarding one
func Logger(g cliopt.GlobalOptions) logrus.FieldLogger {
	if g.Log == nil {
		return filetag.NopLogger()
	}
	return g.Log
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case filetag.IsKind(err, filetag.ErrInvalid):
		return 2
	default:
		return 1
	}
}

// Fail prints err on stderr and returns its exit code
func Fail(err error) int {
	fmt.Fprintln(os.Stderr, "error:", err)
	return ExitCode(err)
}
