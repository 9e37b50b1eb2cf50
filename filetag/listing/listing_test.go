package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nonibytes/filetag/filetag/match"
)

func records(n int) []match.FileRecord {
	out := make([]match.FileRecord, n)
	for i := range out {
		out[i] = match.FileRecord{
			FileName:  fmt.Sprintf("file-%05d.txt", i),
			SizeBytes: int64(i),
			Kind:      match.KindGenericFile,
		}
	}
	return out
}

func TestFilterSequentialKeepsOrder(t *testing.T) {
	recs := records(20)
	got := Filter(recs, "size>=15 | file-00003")
	var names []string
	for _, r := range got {
		names = append(names, r.FileName)
	}
	assert.Equal(t, []string{
		"file-00003.txt", "file-00015.txt", "file-00016.txt",
		"file-00017.txt", "file-00018.txt", "file-00019.txt",
	}, names)
}

func TestFilterParallelKeepsOrder(t *testing.T) {
	recs := records(ParallelThreshold*3 + 7)
	got := Filter(recs, "size>=100 size<6000")
	require.Len(t, got, 5900)
	for i, r := range got {
		assert.Equal(t, int64(100+i), r.SizeBytes)
	}
}

func TestFilterEmptyQueryCopies(t *testing.T) {
	recs := records(3)
	got := Filter(recs, "   ")
	assert.Equal(t, recs, got)
	got[0].FileName = "changed"
	assert.Equal(t, "file-00000.txt", recs[0].FileName)
}

func TestFilterInvalidFallsBackToText(t *testing.T) {
	recs := append(records(2), match.FileRecord{FileName: "a & b", Kind: match.KindGenericFile})
	got := Filter(recs, "a &")
	require.Len(t, got, 1)
	assert.Equal(t, "a & b", got[0].FileName)
}

func TestPagerClamping(t *testing.T) {
	p := NewPager[int](0)
	assert.Equal(t, 60, p.PageSize())
	assert.Equal(t, 1, p.TotalPages(), "empty list still has one page")
	assert.Empty(t, p.Items())

	p.SetPageSize(-4)
	assert.Equal(t, 1, p.PageSize())

	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}
	p.SetPageSize(10)
	p.SetItems(items)
	assert.Equal(t, 3, p.TotalPages())

	p.SetPage(99)
	assert.Equal(t, 3, p.CurrentPage())
	assert.Equal(t, []int{20, 21, 22, 23, 24}, p.Items())

	p.SetPage(-1)
	assert.Equal(t, 1, p.CurrentPage())

	p.SetPage(3)
	p.SetItems(items[:12])
	assert.Equal(t, 2, p.CurrentPage(), "shrinking clamps the page")
	assert.Equal(t, []int{10, 11}, p.Items())

	p.SetPageSize(5)
	assert.Equal(t, 1, p.CurrentPage(), "resize returns to page one")
}
