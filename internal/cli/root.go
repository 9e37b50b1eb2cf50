package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/nonibytes/filetag/internal/cli/commands"
	"github.com/nonibytes/filetag/internal/cliopt"
)

// Execute runs the CLI and returns an exit code.
func Execute(argv []string) int {
	g, args, err := cliopt.Parse(argv)
	if errors.Is(err, pflag.ErrHelp) {
		PrintRootHelp(os.Stdout)
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 2
	}

	log, err := NewLogger(g.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 2
	}
	g.Log = log

	if len(args) == 0 {
		PrintRootHelp(os.Stdout)
		return 0
	}

	verb := args[0]
	rest := args[1:]
	log.WithField("command", verb).Debug("dispatch")

	switch verb {
	case "--help", "-h", "help":
		PrintRootHelp(os.Stdout)
		return 0
	case "ls":
		return commands.RunLs(g, rest)
	case "match":
		return commands.RunMatch(g, rest)
	case "tag":
		return commands.RunTag(g, rest)
	case "workspace", "ws":
		return commands.RunWorkspace(g, rest)
	case "tabs":
		return commands.RunTabs(g, rest)
	case "state":
		return commands.RunState(g, rest)
	case "hash":
		return commands.RunHash(g, rest)
	case "optimize":
		return commands.RunOptimize(g, rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", verb)
		PrintRootHelp(os.Stderr)
		return 2
	}
}
