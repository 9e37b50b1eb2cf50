package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nonibytes/filetag/filetag"
	"github.com/nonibytes/filetag/internal/cliopt"
	"github.com/nonibytes/filetag/internal/cliutil"
)

const workspaceUsage = "workspace list | workspace add <dir> [name] | workspace rm <dir>"

func RunWorkspace(g cliopt.GlobalOptions, argv []string) int {
	if len(argv) == 0 {
		return usage(workspaceUsage)
	}
	args := argv[1:]
	switch argv[0] {
	case "list", "ls":
		return withStore(g, func(ctx context.Context, st *filetag.Store) error {
			ws, err := st.Workspaces(ctx)
			if err != nil {
				return err
			}
			switch cliutil.ParseOutputFormat(g.Format) {
			case cliutil.FormatJSON:
				if ws == nil {
					ws = []filetag.Workspace{}
				}
				cliutil.PrintJSON(stdout, ws)
			case cliutil.FormatPaths:
				for _, w := range ws {
					fmt.Fprintln(stdout, w.Dir)
				}
			default:
				for _, w := range ws {
					fmt.Fprintf(stdout, "%-20s %s\n", w.Name, w.Dir)
				}
			}
			return nil
		})
	case "add":
		if len(args) < 1 || len(args) > 2 {
			return usage(workspaceUsage)
		}
		dir, err := filepath.Abs(args[0])
		if err != nil {
			return cliutil.Fail(filetag.PathError(args[0], "resolve directory", err))
		}
		name := filepath.Base(dir)
		if len(args) == 2 {
			name = args[1]
		}
		return withStore(g, func(ctx context.Context, st *filetag.Store) error {
			return st.UpsertWorkspace(ctx, dir, name)
		})
	case "rm", "remove":
		if len(args) != 1 {
			return usage(workspaceUsage)
		}
		dir, err := filepath.Abs(args[0])
		if err != nil {
			return cliutil.Fail(filetag.PathError(args[0], "resolve directory", err))
		}
		return withStore(g, func(ctx context.Context, st *filetag.Store) error {
			return st.RemoveWorkspace(ctx, dir)
		})
	default:
		return usage(workspaceUsage)
	}
}
