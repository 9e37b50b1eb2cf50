package scan

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nonibytes/filetag/filetag"
	"github.com/nonibytes/filetag/filetag/match"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func writeFile(t *testing.T, path, content string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

type fakeTags map[string][]string

func (f fakeTags) TagsByPaths(_ context.Context, paths []string) (map[string][]string, error) {
	out := map[string][]string{}
	for _, p := range paths {
		if t, ok := f[p]; ok {
			out[p] = t
		}
	}
	return out, nil
}

func TestClassifyKind(t *testing.T) {
	dir := t.TempDir()

	pic := filepath.Join(dir, "photo.dat") // detected by content, not extension
	writePNG(t, pic)
	fake := filepath.Join(dir, "fake.png")
	writeFile(t, fake, "not an image", time.Now())
	vid := filepath.Join(dir, "clip.MKV")
	writeFile(t, vid, "x", time.Now())
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	for path, want := range map[string]match.Kind{
		pic:  match.KindPicture,
		fake: match.KindGenericFile,
		vid:  match.KindVideo,
		sub:  match.KindDirectory,
	} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, want, ClassifyKind(path, info), path)
	}
}

func TestIsVideoExt(t *testing.T) {
	assert.True(t, IsVideoExt("a.mp4"))
	assert.True(t, IsVideoExt("A.MPEG"))
	assert.True(t, IsVideoExt("/x/y.3gp"))
	assert.False(t, IsVideoExt("a.mp3"))
	assert.False(t, IsVideoExt("mp4"))
}

func TestLoadTagsAndOrder(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "zdir"), 0o755))
	writeFile(t, filepath.Join(dir, "old.txt"), "1", base)
	writeFile(t, filepath.Join(dir, "new.txt"), "1", base.Add(time.Hour))
	writeFile(t, filepath.Join(dir, "b.txt"), "big content", base)
	writeFile(t, filepath.Join(dir, "a.txt"), "small", base)
	writeFile(t, filepath.Join(dir, "A.txt"), "small", base)

	side := filepath.Join(dir, filetag.DefaultSidecarDir)
	require.NoError(t, os.Mkdir(side, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(side, "old.txt.json"),
		[]byte(`{"tags":[{"title":" beach "},{"title":""},{"title":"sun"}]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(side, "new.txt.json"),
		[]byte(`{"tags":[{"title":"sidecar"}]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(side, "b.txt.json"), []byte(`not json`), 0o644))

	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	stored := fakeTags{filepath.Join(abs, "new.txt"): {"stored"}}

	recs, err := Load(context.Background(), dir, Options{Tags: stored})
	require.NoError(t, err)

	var names []string
	for _, r := range recs {
		names = append(names, r.FileName)
	}
	// hidden entries, the sidecar folder included, are not listed
	require.Len(t, names, 6)
	assert.Equal(t, "zdir", names[0])
	assert.Equal(t, "new.txt", names[1])
	assert.ElementsMatch(t, []string{"A.txt", "a.txt", "b.txt", "old.txt"}, names[2:])

	byName := map[string]match.FileRecord{}
	for _, r := range recs {
		byName[r.FileName] = r
	}
	assert.Equal(t, []string{"stored"}, byName["new.txt"].Tags, "stored tags win over sidecar")
	assert.Equal(t, []string{"beach", "sun"}, byName["old.txt"].Tags)
	assert.Empty(t, byName["b.txt"].Tags)
	assert.Empty(t, byName["zdir"].Tags)
	assert.Zero(t, byName["zdir"].SizeBytes)
	assert.Equal(t, int64(11), byName["b.txt"].SizeBytes)
	assert.Equal(t, filepath.Join(abs, "a.txt"), byName["a.txt"].Path)
}

func TestLoadReadsSidecarsWithoutStore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "1", time.Now())
	side := filepath.Join(dir, filetag.DefaultSidecarDir)
	require.NoError(t, os.Mkdir(side, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(side, "a.txt.json"),
		[]byte(`{"tags":[{"title":"sidecar"}]}`), 0o644))

	recs, err := Load(context.Background(), dir, Options{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"sidecar"}, recs[0].Tags)
}

func TestSortRecords(t *testing.T) {
	t0 := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)
	recs := []match.FileRecord{
		{Kind: match.KindGenericFile, FileName: "small", Modified: t0, Created: t0, SizeBytes: 1},
		{Kind: match.KindGenericFile, FileName: "b", Modified: t0, Created: t0, SizeBytes: 5},
		{Kind: match.KindGenericFile, FileName: "a", Modified: t0, Created: t0, SizeBytes: 5},
		{Kind: match.KindGenericFile, FileName: "A", Modified: t0, Created: t0, SizeBytes: 5},
		{Kind: match.KindGenericFile, FileName: "newer-created", Modified: t0, Created: t1},
		{Kind: match.KindGenericFile, FileName: "newest", Modified: t1, Created: t0},
		{FileName: "dir", Modified: t0, Kind: match.KindDirectory},
	}
	SortRecords(recs)

	var names []string
	for _, r := range recs {
		names = append(names, r.FileName)
	}
	assert.Equal(t, []string{"dir", "newest", "newer-created", "A", "a", "b", "small"}, names)
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope"), Options{})
	require.Error(t, err)
	assert.True(t, filetag.IsKind(err, filetag.ErrNotFound), "got %v", err)
}

func TestLoadFeedsMatcher(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "beach.png"))
	writeFile(t, filepath.Join(dir, "notes.txt"), "hello", time.Now())

	recs, err := Load(context.Background(), dir, Options{})
	require.NoError(t, err)

	var hits []string
	for _, r := range recs {
		if match.Matches(r, "picture beach") {
			hits = append(hits, r.FileName)
		}
	}
	assert.Equal(t, []string{"beach.png"}, hits)
}

func TestNeighbor(t *testing.T) {
	recs := []match.FileRecord{
		{Path: "/d", Kind: match.KindDirectory},
		{Path: "/a", Kind: match.KindPicture},
		{Path: "/sub", Kind: match.KindDirectory},
		{Path: "/b", Kind: match.KindVideo},
	}

	n, ok := Neighbor(recs, "/a", Next)
	require.True(t, ok)
	assert.Equal(t, "/b", n.Path)

	n, ok = Neighbor(recs, "/b", Previous)
	require.True(t, ok)
	assert.Equal(t, "/a", n.Path)

	_, ok = Neighbor(recs, "/a", Previous)
	assert.False(t, ok)
	_, ok = Neighbor(recs, "/b", Next)
	assert.False(t, ok)
	_, ok = Neighbor(recs, "/missing", Next)
	assert.False(t, ok)
}

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "a", time.Now())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	got := make(chan []match.FileRecord, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dir, Options{}, 50*time.Millisecond, func(r []match.FileRecord) {
			select {
			case got <- r:
			default:
			}
		})
	}()

	// give the watcher time to register
	time.Sleep(200 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "b.txt"), "b", time.Now())

	select {
	case recs := <-got:
		assert.Len(t, recs, 2)
	case <-ctx.Done():
		t.Fatal("no reload observed")
	}
	cancel()
	assert.NoError(t, <-done)
}
