package commands

import (
	"context"
	"fmt"

	"github.com/nonibytes/filetag/filetag"
	"github.com/nonibytes/filetag/internal/cliopt"
	"github.com/nonibytes/filetag/internal/cliutil"
)

const stateUsage = "state get <key> | state set <key> <value>"

func RunState(g cliopt.GlobalOptions, argv []string) int {
	switch {
	case len(argv) == 2 && argv[0] == "get":
		key := argv[1]
		return withStore(g, func(ctx context.Context, st *filetag.Store) error {
			v, ok, err := st.State(ctx, key)
			if err != nil {
				return err
			}
			if !ok {
				return &filetag.Error{Kind: filetag.ErrNotFound, Message: "state key not set: " + key}
			}
			if cliutil.ParseOutputFormat(g.Format) == cliutil.FormatJSON {
				cliutil.PrintJSON(stdout, map[string]string{"key": key, "value": v})
				return nil
			}
			fmt.Fprintln(stdout, v)
			return nil
		})
	case len(argv) == 3 && argv[0] == "set":
		return withStore(g, func(ctx context.Context, st *filetag.Store) error {
			return st.SetState(ctx, argv[1], argv[2])
		})
	default:
		return usage(stateUsage)
	}
}
