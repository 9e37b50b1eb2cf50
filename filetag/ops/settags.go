package ops

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nonibytes/filetag/filetag/storage"
)

// SetTagsPrepared holds a validated tag write
type SetTagsPrepared struct {
	Path     string
	Hash     string // optional; when set the tags also follow the content
	Tags     []string
	TagsJSON string
}

// PrepareSetTags validates and normalizes a tag write
func PrepareSetTags(path, hash string, tags []string) (*SetTagsPrepared, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}
	clean := CleanTags(tags)
	return &SetTagsPrepared{
		Path:     path,
		Hash:     hash,
		Tags:     clean,
		TagsJSON: EncodeTags(clean),
	}, nil
}

// ExecuteSetTags writes the by-path row and, if a hash is known, the by-hash
// row. Empty tag lists are not stored by hash so that clearing one copy of a
// file does not wipe the tags of its other copies.
func ExecuteSetTags(ctx context.Context, tx *sql.Tx, sqlt storage.SQL, prep *SetTagsPrepared, nowSecs int64) error {
	if _, err := tx.ExecContext(ctx, sqlt.UpsertTagsByPath, prep.Path, prep.TagsJSON, nowSecs); err != nil {
		return fmt.Errorf("upsert tags by path: %w", err)
	}
	if prep.Hash == "" || len(prep.Tags) == 0 {
		return nil
	}
	if _, err := tx.ExecContext(ctx, sqlt.UpsertTagsByHash, prep.Hash, prep.TagsJSON, nowSecs); err != nil {
		return fmt.Errorf("upsert tags by hash: %w", err)
	}
	return nil
}
