// Package listing filters and pages directory records for display.
package listing

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/nonibytes/filetag/filetag/match"
)

// ParallelThreshold is the record count above which Filter splits work
// across goroutines.
const ParallelThreshold = 2048

// Filter returns the records matching query, in input order. The query is
// compiled once and shared by all workers.
func Filter(records []match.FileRecord, query string) []match.FileRecord {
	q := match.Compile(query)
	if len(q.Program) == 0 && q.Valid {
		out := make([]match.FileRecord, len(records))
		copy(out, records)
		return out
	}
	if len(records) <= ParallelThreshold {
		return filterRange(q, records)
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(records) + workers - 1) / workers
	parts := make([][]match.FileRecord, workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(records) {
			break
		}
		hi := min(lo+chunk, len(records))
		g.Go(func() error {
			parts[w] = filterRange(q, records[lo:hi])
			return nil
		})
	}
	_ = g.Wait()

	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]match.FileRecord, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func filterRange(q match.CompiledQuery, records []match.FileRecord) []match.FileRecord {
	var out []match.FileRecord
	for _, r := range records {
		if q.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
