package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/nonibytes/filetag/filetag/listing"
	"github.com/nonibytes/filetag/filetag/match"
	"github.com/nonibytes/filetag/internal/cliutil"
)

// stdout is swapped by tests
var stdout io.Writer = os.Stdout

type recordView struct {
	Path     string    `json:"path"`
	Name     string    `json:"name"`
	Kind     string    `json:"kind"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
	Created  time.Time `json:"created"`
	Tags     []string  `json:"tags"`
}

func viewOf(r match.FileRecord) recordView {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return recordView{
		Path:     r.Path,
		Name:     r.FileName,
		Kind:     r.Kind.String(),
		Size:     r.SizeBytes,
		Modified: r.Modified,
		Created:  r.Created,
		Tags:     tags,
	}
}

type pageView struct {
	Dir        string       `json:"dir"`
	Query      string       `json:"query,omitempty"`
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
	Total      int          `json:"total"`
	Items      []recordView `json:"items"`
}

func printPage(format cliutil.OutputFormat, dir, query string, p *listing.Pager[match.FileRecord]) {
	items := p.Items()
	switch format {
	case cliutil.FormatJSON:
		out := pageView{
			Dir:        dir,
			Query:      query,
			Page:       p.CurrentPage(),
			TotalPages: p.TotalPages(),
			Total:      p.TotalItems(),
			Items:      make([]recordView, 0, len(items)),
		}
		for _, r := range items {
			out.Items = append(out.Items, viewOf(r))
		}
		cliutil.PrintJSON(stdout, out)
	case cliutil.FormatPaths:
		for _, r := range items {
			fmt.Fprintln(stdout, r.Path)
		}
	default:
		for _, r := range items {
			printRecordLine(r)
		}
		fmt.Fprintf(stdout, "\npage %d/%d, %d entries\n", p.CurrentPage(), p.TotalPages(), p.TotalItems())
	}
}

func printRecordLine(r match.FileRecord) {
	size := "-"
	if r.Kind != match.KindDirectory {
		size = humanize.Bytes(uint64(r.SizeBytes))
	}
	modified := "-"
	if !r.Modified.IsZero() {
		modified = humanize.Time(r.Modified)
	}
	name := r.FileName
	if r.Kind == match.KindDirectory {
		name += "/"
	}
	fmt.Fprintf(stdout, "%-9s %9s  %-16s %s", r.Kind, size, modified, name)
	if len(r.Tags) > 0 {
		fmt.Fprintf(stdout, "  [%s]", strings.Join(r.Tags, ", "))
	}
	fmt.Fprintln(stdout)
}
