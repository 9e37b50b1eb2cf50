package filetag

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nonibytes/filetag/filetag/ops"
	"github.com/nonibytes/filetag/filetag/storage"
)

// Store holds workspaces, app state, open tabs, tags and the content hash
// cache. It is safe for concurrent use.
type Store struct {
	adapter storage.Adapter
	db      *sql.DB
	opts    StoreOptions
	log     logrus.FieldLogger
}

// Create initializes a new store, or upgrades an empty database
func Create(ctx context.Context, adapter storage.Adapter, opts StoreOptions) (*Store, error) {
	return open(ctx, adapter, opts, true)
}

// Open opens an existing store. It fails if the database was not created by Create.
func Open(ctx context.Context, adapter storage.Adapter, opts StoreOptions) (*Store, error) {
	return open(ctx, adapter, opts, false)
}

func open(ctx context.Context, adapter storage.Adapter, opts StoreOptions, create bool) (*Store, error) {
	opts = opts.withDefaults()
	log := opts.Log.WithField("store", adapter.StoreID())

	db, err := adapter.Connect(ctx)
	if err != nil {
		return nil, Wrap(ErrIO, "connect to database", err)
	}

	if create {
		if err := adapter.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, Wrap(ErrSQL, "create schema", err)
		}
	}

	sqlt := adapter.SQL()
	var magic string
	err = db.QueryRowContext(ctx, sqlt.GetMeta, storage.KeyMagic).Scan(&magic)
	switch {
	case errors.Is(err, sql.ErrNoRows) && create:
		if err := writeMagic(ctx, db, sqlt); err != nil {
			db.Close()
			return nil, Wrap(ErrSQL, "write store metadata", err)
		}
		log.Info("created store")
	case err != nil:
		db.Close()
		return nil, Wrap(ErrStore, "not a filetag store", err)
	case magic != storage.MetaMagic:
		db.Close()
		return nil, StoreError("not a filetag store: magic " + magic)
	}

	return &Store{adapter: adapter, db: db, opts: opts, log: log}, nil
}

func writeMagic(ctx context.Context, db *sql.DB, sqlt storage.SQL) error {
	if _, err := db.ExecContext(ctx, sqlt.SetMeta, storage.KeyMagic, storage.MetaMagic); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, sqlt.SetMeta, storage.KeyVersion, storage.MetaVersion)
	return err
}

// Close closes the store
func (s *Store) Close() error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return Wrap(ErrIO, "close database", err)
		}
	}
	return s.adapter.Close()
}

// Optimize runs backend maintenance
func (s *Store) Optimize(ctx context.Context) error {
	if err := s.adapter.Optimize(ctx, s.db); err != nil {
		return Wrap(ErrSQL, "optimize", err)
	}
	return nil
}

func (s *Store) nowSecs() int64 {
	return s.opts.Now().Unix()
}

// Workspaces lists workspaces in the order they were added
func (s *Store) Workspaces(ctx context.Context) ([]Workspace, error) {
	rows, err := s.db.QueryContext(ctx, s.adapter.SQL().ListWorkspaces)
	if err != nil {
		return nil, Wrap(ErrSQL, "list workspaces", err)
	}
	defer rows.Close()

	var out []Workspace
	for rows.Next() {
		var w Workspace
		var added int64
		if err := rows.Scan(&w.Name, &w.Dir, &added); err != nil {
			return nil, Wrap(ErrSQL, "scan workspace", err)
		}
		w.AddedAt = time.Unix(added, 0)
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, Wrap(ErrSQL, "list workspaces", err)
	}
	return out, nil
}

// UpsertWorkspace adds dir, or renames it if already present. Renaming keeps
// its position.
func (s *Store) UpsertWorkspace(ctx context.Context, dir, name string) error {
	if dir == "" {
		return InvalidError("workspace dir cannot be empty")
	}
	if _, err := s.db.ExecContext(ctx, s.adapter.SQL().UpsertWorkspace, dir, name, s.nowSecs()); err != nil {
		return Wrap(ErrSQL, "upsert workspace", err)
	}
	return nil
}

// RemoveWorkspace deletes dir; removing an unknown dir is not an error
func (s *Store) RemoveWorkspace(ctx context.Context, dir string) error {
	if _, err := s.db.ExecContext(ctx, s.adapter.SQL().DeleteWorkspace, dir); err != nil {
		return Wrap(ErrSQL, "remove workspace", err)
	}
	return nil
}

// SetState stores a key/value pair of application state
func (s *Store) SetState(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, s.adapter.SQL().SetState, key, value); err != nil {
		return Wrap(ErrSQL, "set state", err)
	}
	return nil
}

// State reads a key; ok is false when it was never set
func (s *Store) State(ctx context.Context, key string) (value string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, s.adapter.SQL().GetState, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, Wrap(ErrSQL, "get state", err)
	}
	return value, true, nil
}

// OpenTabs lists open tab paths, oldest first
func (s *Store) OpenTabs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, s.adapter.SQL().ListOpenTabs)
	if err != nil {
		return nil, Wrap(ErrSQL, "list open tabs", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, Wrap(ErrSQL, "scan open tab", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, Wrap(ErrSQL, "list open tabs", err)
	}
	return out, nil
}

// AddOpenTab records path as open; re-adding refreshes its opened time
func (s *Store) AddOpenTab(ctx context.Context, path string) error {
	if _, err := s.db.ExecContext(ctx, s.adapter.SQL().UpsertOpenTab, path, s.nowSecs()); err != nil {
		return Wrap(ErrSQL, "add open tab", err)
	}
	return nil
}

func (s *Store) RemoveOpenTab(ctx context.Context, path string) error {
	if _, err := s.db.ExecContext(ctx, s.adapter.SQL().DeleteOpenTab, path); err != nil {
		return Wrap(ErrSQL, "remove open tab", err)
	}
	return nil
}

func (s *Store) ClearOpenTabs(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.adapter.SQL().ClearOpenTabs); err != nil {
		return Wrap(ErrSQL, "clear open tabs", err)
	}
	return nil
}

// TagsByPath returns the tags stored for path; ok is false when none were ever stored
func (s *Store) TagsByPath(ctx context.Context, path string) ([]string, bool, error) {
	return s.getTags(ctx, s.adapter.SQL().GetTagsByPath, path)
}

// TagsByHash returns the tags stored for a content hash
func (s *Store) TagsByHash(ctx context.Context, hash string) ([]string, bool, error) {
	return s.getTags(ctx, s.adapter.SQL().GetTagsByHash, hash)
}

func (s *Store) getTags(ctx context.Context, query, key string) ([]string, bool, error) {
	var tagsJSON string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&tagsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, Wrap(ErrSQL, "get tags", err)
	}
	return ops.DecodeTags(tagsJSON), true, nil
}

// TagsByPaths bulk-loads stored tags; paths with no row are absent from the map
func (s *Store) TagsByPaths(ctx context.Context, paths []string) (map[string][]string, error) {
	if len(paths) == 0 {
		return map[string][]string{}, nil
	}
	out, err := ops.TagsByPaths(ctx, s.db, s.adapter.PlaceholderStyle(), s.adapter.SQL(), paths)
	if err != nil {
		return nil, Wrap(ErrSQL, "get tags by paths", err)
	}
	return out, nil
}

// SetTags normalizes and stores tags for path, and for hash when non-empty,
// in one transaction. It returns the tags as stored.
func (s *Store) SetTags(ctx context.Context, path, hash string, tags []string) ([]string, error) {
	prep, err := ops.PrepareSetTags(path, hash, tags)
	if err != nil {
		return nil, Wrap(ErrInvalid, "prepare tags", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, Wrap(ErrSQL, "begin transaction", err)
	}
	defer tx.Rollback()

	if err := ops.ExecuteSetTags(ctx, tx, s.adapter.SQL(), prep, s.nowSecs()); err != nil {
		return nil, Wrap(ErrSQL, "execute set tags", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, Wrap(ErrSQL, "commit", err)
	}

	s.log.WithFields(logrus.Fields{"path": path, "hash": hash, "tags": len(prep.Tags)}).Debug("tags stored")
	return prep.Tags, nil
}

// CachedHash returns the cached content hash for path if the file still has
// the recorded size and modification time.
func (s *Store) CachedHash(ctx context.Context, path string, size, mtimeSecs int64) (string, bool, error) {
	var hash string
	var sz, mt int64
	err := s.db.QueryRowContext(ctx, s.adapter.SQL().GetHashCache, path).Scan(&hash, &sz, &mt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, Wrap(ErrSQL, "get cached hash", err)
	}
	if sz != size || mt != mtimeSecs {
		return "", false, nil
	}
	return hash, true, nil
}

// PutHashCache records the content hash of path at the given size and mtime
func (s *Store) PutHashCache(ctx context.Context, path string, size, mtimeSecs int64, hash string) error {
	if _, err := s.db.ExecContext(ctx, s.adapter.SQL().UpsertHashCache, path, size, mtimeSecs, hash, s.nowSecs()); err != nil {
		return Wrap(ErrSQL, "put hash cache", err)
	}
	return nil
}
