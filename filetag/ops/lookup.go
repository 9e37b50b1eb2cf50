package ops

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nonibytes/filetag/filetag/storage"
	"github.com/nonibytes/filetag/filetag/storage/sqlbuilder"
)

// maxInArgs keeps IN lists under SQLite's historic 999 variable limit
const maxInArgs = 500

// Querier is satisfied by *sql.DB and *sql.Tx
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// TagsByPaths loads stored tags for many paths at once. Paths without a row
// are absent from the result.
func TagsByPaths(ctx context.Context, q Querier, style sqlbuilder.PlaceholderStyle, sqlt storage.SQL, paths []string) (map[string][]string, error) {
	out := make(map[string][]string, len(paths))
	for _, chunk := range sqlbuilder.Chunk(paths, maxInArgs) {
		if err := tagsByPathsChunk(ctx, q, style, sqlt, chunk, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func tagsByPathsChunk(ctx context.Context, q Querier, style sqlbuilder.PlaceholderStyle, sqlt storage.SQL, paths []string, out map[string][]string) error {
	b := sqlbuilder.New(style)
	query := sqlt.SelectTagsByPaths + b.InList(paths)

	rows, err := q.QueryContext(ctx, query, b.Args()...)
	if err != nil {
		return fmt.Errorf("select tags by paths: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var path, tagsJSON string
		if err := rows.Scan(&path, &tagsJSON); err != nil {
			return err
		}
		out[path] = DecodeTags(tagsJSON)
	}
	return rows.Err()
}
