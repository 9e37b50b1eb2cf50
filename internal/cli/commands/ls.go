package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/nonibytes/filetag/filetag"
	"github.com/nonibytes/filetag/filetag/listing"
	"github.com/nonibytes/filetag/filetag/match"
	"github.com/nonibytes/filetag/filetag/scan"
	"github.com/nonibytes/filetag/internal/cliopt"
	"github.com/nonibytes/filetag/internal/cliutil"
)

func RunLs(g cliopt.GlobalOptions, argv []string) int {
	fs := pflag.NewFlagSet("ls", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var where string
	var page, pageSize int
	var watch bool
	fs.StringVarP(&where, "where", "w", "", "filter query")
	fs.IntVar(&page, "page", 1, "page number, from 1")
	fs.IntVar(&pageSize, "page-size", g.PageSize, "entries per page")
	fs.BoolVar(&watch, "watch", false, "print again whenever the directory changes")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "usage: filetag ls [dir] [-w query] [--page N] [--page-size N] [--watch]")
		return 2
	}
	dir := "."
	if fs.NArg() == 1 {
		dir = fs.Arg(0)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return cliutil.Fail(filetag.PathError(dir, "resolve directory", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := cliutil.OpenStore(ctx, g)
	if err != nil {
		return cliutil.Fail(err)
	}
	defer st.Close()

	opts := scan.Options{SidecarDir: g.SidecarDir, Tags: st, Log: cliutil.Logger(g)}
	records, err := scan.Load(ctx, abs, opts)
	if err != nil {
		return cliutil.Fail(err)
	}

	if err := st.SetState(ctx, filetag.StateLastDir, abs); err != nil {
		return cliutil.Fail(err)
	}
	if err := st.SetState(ctx, filetag.StateLastQuery, where); err != nil {
		return cliutil.Fail(err)
	}

	format := cliutil.ParseOutputFormat(g.Format)
	pager := listing.NewPager[match.FileRecord](pageSize)
	show := func(records []match.FileRecord) {
		pager.SetItems(listing.Filter(records, where))
		pager.SetPage(page)
		printPage(format, abs, where, pager)
	}
	show(records)

	if !watch {
		return 0
	}
	err = scan.Watch(ctx, abs, opts, 0, func(records []match.FileRecord) {
		fmt.Fprintln(stdout)
		show(records)
	})
	if err != nil {
		return cliutil.Fail(err)
	}
	return 0
}
