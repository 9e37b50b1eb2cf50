package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/nonibytes/filetag/filetag"
	"github.com/nonibytes/filetag/filetag/match"
	"github.com/nonibytes/filetag/filetag/ops"
	"github.com/nonibytes/filetag/internal/cliopt"
	"github.com/nonibytes/filetag/internal/cliutil"
)

// RunMatch compiles a query, shows its program and evaluates it against a
// record described on the command line.
func RunMatch(g cliopt.GlobalOptions, argv []string) int {
	fs := pflag.NewFlagSet("match", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var where, name, modified, tags, kind string
	var size int64
	fs.StringVarP(&where, "where", "w", "", "query")
	fs.StringVar(&name, "name", "", "file name")
	fs.Int64Var(&size, "size", 0, "size in bytes")
	fs.StringVar(&modified, "modified", "", "modification time, YYYY-MM-DD or RFC 3339")
	fs.StringVar(&tags, "tags", "", "comma separated tags")
	fs.StringVar(&kind, "kind", "file", "kind: directory|picture|video|file")
	if err := fs.Parse(argv); err != nil {
		return 2
	}

	rec := match.FileRecord{
		FileName:  name,
		SizeBytes: size,
		Tags:      ops.NormalizeTags(tags),
		Kind:      match.ParseKind(kind),
	}
	if modified != "" {
		t, err := parseTime(modified)
		if err != nil {
			return cliutil.Fail(filetag.InvalidError(err.Error()))
		}
		rec.Modified = t
	}

	q := match.Compile(where)
	_, outcome := match.Evaluate(q, rec)
	matched := q.Match(rec)

	switch cliutil.ParseOutputFormat(g.Format) {
	case cliutil.FormatJSON:
		cliutil.PrintJSON(stdout, map[string]any{
			"query":   q.Source,
			"valid":   q.Valid,
			"program": q.Explain(),
			"outcome": outcome.String(),
			"matched": matched,
			"record":  viewOf(rec),
		})
	case cliutil.FormatPaths:
		if matched {
			fmt.Fprintln(stdout, rec.FileName)
		}
	default:
		fmt.Fprintln(stdout, "program:")
		for _, line := range q.Explain() {
			fmt.Fprintf(stdout, "  %s\n", line)
		}
		fmt.Fprintf(stdout, "outcome: %s\nmatched: %t\n", outcome, matched)
	}
	return 0
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad time %q: want YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}
