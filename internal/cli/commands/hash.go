package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nonibytes/filetag/filetag"
	"github.com/nonibytes/filetag/filetag/hasher"
	"github.com/nonibytes/filetag/internal/cliopt"
	"github.com/nonibytes/filetag/internal/cliutil"
)

// RunHash prints content hashes, reusing cached values when the file is unchanged
func RunHash(g cliopt.GlobalOptions, argv []string) int {
	if len(argv) == 0 {
		return usage("hash <path>...")
	}
	paths := make([]string, 0, len(argv))
	for _, a := range argv {
		p, err := filepath.Abs(a)
		if err != nil {
			return cliutil.Fail(filetag.PathError(a, "resolve path", err))
		}
		paths = append(paths, p)
	}

	return withStore(g, func(ctx context.Context, st *filetag.Store) error {
		h := hasher.New(st, hasher.Options{Log: cliutil.Logger(g)})
		sums, err := h.HashAll(ctx, paths)
		if err != nil {
			return err
		}
		if cliutil.ParseOutputFormat(g.Format) == cliutil.FormatJSON {
			cliutil.PrintJSON(stdout, sums)
			return nil
		}
		for _, p := range paths {
			fmt.Fprintf(stdout, "%s  %s\n", sums[p], p)
		}
		return nil
	})
}
