package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nonibytes/filetag/filetag"
	"github.com/nonibytes/filetag/internal/cliopt"
	"github.com/nonibytes/filetag/internal/cliutil"
)

const tabsUsage = "tabs list | tabs add <path> | tabs rm <path> | tabs clear"

func RunTabs(g cliopt.GlobalOptions, argv []string) int {
	if len(argv) == 0 {
		return usage(tabsUsage)
	}
	args := argv[1:]
	switch argv[0] {
	case "list", "ls":
		return withStore(g, func(ctx context.Context, st *filetag.Store) error {
			tabs, err := st.OpenTabs(ctx)
			if err != nil {
				return err
			}
			if cliutil.ParseOutputFormat(g.Format) == cliutil.FormatJSON {
				if tabs == nil {
					tabs = []string{}
				}
				cliutil.PrintJSON(stdout, tabs)
				return nil
			}
			for _, t := range tabs {
				fmt.Fprintln(stdout, t)
			}
			return nil
		})
	case "add", "rm", "remove":
		if len(args) != 1 {
			return usage(tabsUsage)
		}
		path, err := filepath.Abs(args[0])
		if err != nil {
			return cliutil.Fail(filetag.PathError(args[0], "resolve path", err))
		}
		add := argv[0] == "add"
		return withStore(g, func(ctx context.Context, st *filetag.Store) error {
			if add {
				return st.AddOpenTab(ctx, path)
			}
			return st.RemoveOpenTab(ctx, path)
		})
	case "clear":
		return withStore(g, func(ctx context.Context, st *filetag.Store) error {
			return st.ClearOpenTabs(ctx)
		})
	default:
		return usage(tabsUsage)
	}
}
