package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/nonibytes/filetag/filetag"
	"github.com/nonibytes/filetag/filetag/hasher"
	"github.com/nonibytes/filetag/internal/cliopt"
	"github.com/nonibytes/filetag/internal/cliutil"
)

const tagUsage = "tag get <path> | tag set <path> <tag,...> [--by-hash]"

func RunTag(g cliopt.GlobalOptions, argv []string) int {
	if len(argv) == 0 {
		return usage(tagUsage)
	}
	switch argv[0] {
	case "get":
		return runTagGet(g, argv[1:])
	case "set":
		return runTagSet(g, argv[1:])
	default:
		return usage(tagUsage)
	}
}

type tagView struct {
	Path   string   `json:"path"`
	Source string   `json:"source"`
	Hash   string   `json:"hash,omitempty"`
	Tags   []string `json:"tags"`
}

// runTagGet prefers tags stored for the path and falls back to tags stored
// for the file's content.
func runTagGet(g cliopt.GlobalOptions, argv []string) int {
	if len(argv) != 1 {
		return usage(tagUsage)
	}
	path, err := filepath.Abs(argv[0])
	if err != nil {
		return cliutil.Fail(filetag.PathError(argv[0], "resolve path", err))
	}

	return withStore(g, func(ctx context.Context, st *filetag.Store) error {
		view := tagView{Path: path, Source: "none", Tags: []string{}}

		tags, ok, err := st.TagsByPath(ctx, path)
		if err != nil {
			return err
		}
		if ok {
			view.Source, view.Tags = "path", tags
		} else if fi, statErr := os.Stat(path); statErr == nil && fi.Mode().IsRegular() {
			h := hasher.New(st, hasher.Options{Log: cliutil.Logger(g)})
			sum, err := h.Hash(ctx, path)
			if err != nil {
				return err
			}
			view.Hash = sum
			tags, ok, err := st.TagsByHash(ctx, sum)
			if err != nil {
				return err
			}
			if ok {
				view.Source, view.Tags = "hash", tags
			}
		}

		printTags(g, view)
		return nil
	})
}

func runTagSet(g cliopt.GlobalOptions, argv []string) int {
	fs := pflag.NewFlagSet("tag set", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var byHash bool
	fs.BoolVar(&byHash, "by-hash", false, "also store the tags for the file's content hash")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		return usage(tagUsage)
	}
	path, err := filepath.Abs(fs.Arg(0))
	if err != nil {
		return cliutil.Fail(filetag.PathError(fs.Arg(0), "resolve path", err))
	}
	raw := strings.Join(fs.Args()[1:], ",")

	return withStore(g, func(ctx context.Context, st *filetag.Store) error {
		var sum string
		if byHash {
			h := hasher.New(st, hasher.Options{Log: cliutil.Logger(g)})
			if sum, err = h.Hash(ctx, path); err != nil {
				return err
			}
		}
		stored, err := st.SetTags(ctx, path, sum, strings.Split(raw, ","))
		if err != nil {
			return err
		}
		printTags(g, tagView{Path: path, Source: "path", Hash: sum, Tags: stored})
		return nil
	})
}

func printTags(g cliopt.GlobalOptions, v tagView) {
	switch cliutil.ParseOutputFormat(g.Format) {
	case cliutil.FormatJSON:
		cliutil.PrintJSON(stdout, v)
	case cliutil.FormatPaths:
		for _, t := range v.Tags {
			fmt.Fprintln(stdout, t)
		}
	default:
		fmt.Fprintf(stdout, "%s: %s\n", v.Path, strings.Join(v.Tags, ", "))
	}
}
