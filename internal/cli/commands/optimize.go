package commands

import (
	"context"

	"github.com/nonibytes/filetag/filetag"
	"github.com/nonibytes/filetag/internal/cliopt"
)

func RunOptimize(g cliopt.GlobalOptions, argv []string) int {
	if len(argv) != 0 {
		return usage("optimize")
	}
	return withStore(g, func(ctx context.Context, st *filetag.Store) error {
		return st.Optimize(ctx)
	})
}
