package scan

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/nonibytes/filetag/filetag/match"
)

// SortRecords orders records for display: directories first, then newest
// modified, newest created, largest, and finally by name.
func SortRecords(records []match.FileRecord) {
	fold := cases.Fold()
	keys := make([]string, len(records))
	for i, r := range records {
		keys[i] = fold.String(r.FileName)
	}
	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return less(&records[idx[a]], &records[idx[b]], keys[idx[a]], keys[idx[b]])
	})

	sorted := make([]match.FileRecord, len(records))
	for i, j := range idx {
		sorted[i] = records[j]
	}
	copy(records, sorted)
}

func less(a, b *match.FileRecord, ka, kb string) bool {
	ad, bd := a.Kind == match.KindDirectory, b.Kind == match.KindDirectory
	if ad != bd {
		return ad
	}
	if !a.Modified.Equal(b.Modified) {
		return a.Modified.After(b.Modified)
	}
	if !a.Created.Equal(b.Created) {
		return a.Created.After(b.Created)
	}
	if a.SizeBytes != b.SizeBytes {
		return a.SizeBytes > b.SizeBytes
	}
	if c := strings.Compare(ka, kb); c != 0 {
		return c < 0
	}
	return a.FileName < b.FileName
}

type Direction int

const (
	Next     Direction = 1
	Previous Direction = -1
)

// Neighbor returns the closest non-directory record after (or before) path.
// ok is false when path is absent or no such record exists.
func Neighbor(records []match.FileRecord, path string, dir Direction) (match.FileRecord, bool) {
	at := -1
	for i, r := range records {
		if r.Path == path {
			at = i
			break
		}
	}
	if at < 0 {
		return match.FileRecord{}, false
	}
	step := 1
	if dir == Previous {
		step = -1
	}
	for i := at + step; i >= 0 && i < len(records); i += step {
		if records[i].Kind != match.KindDirectory {
			return records[i], true
		}
	}
	return match.FileRecord{}, false
}
