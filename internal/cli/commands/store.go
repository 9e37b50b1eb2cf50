package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/nonibytes/filetag/filetag"
	"github.com/nonibytes/filetag/internal/cliopt"
	"github.com/nonibytes/filetag/internal/cliutil"
)

// withStore opens the store, runs fn and maps its error to an exit code
func withStore(g cliopt.GlobalOptions, fn func(ctx context.Context, st *filetag.Store) error) int {
	ctx := context.Background()
	st, err := cliutil.OpenStore(ctx, g)
	if err != nil {
		return cliutil.Fail(err)
	}
	defer st.Close()

	if err := fn(ctx, st); err != nil {
		return cliutil.Fail(err)
	}
	return 0
}

func usage(line string) int {
	fmt.Fprintln(os.Stderr, "usage: filetag "+line)
	return 2
}
