package scan

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/nonibytes/filetag/filetag/match"
)

var videoExts = map[string]struct{}{
	"mp4": {}, "webm": {}, "mov": {}, "m4v": {}, "mkv": {}, "avi": {},
	"flv": {}, "wmv": {}, "mpg": {}, "mpeg": {}, "3gp": {},
}

// IsVideoExt reports whether path has a known video extension
func IsVideoExt(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	_, ok := videoExts[ext]
	return ok
}

// ClassifyKind decides the kind of the entry at path. Pictures are detected
// by content, videos by extension.
func ClassifyKind(path string, info fs.FileInfo) match.Kind {
	if info.IsDir() {
		return match.KindDirectory
	}
	if info.Mode().IsRegular() && isImage(path) {
		return match.KindPicture
	}
	if IsVideoExt(path) {
		return match.KindVideo
	}
	return match.KindGenericFile
}

func isImage(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	_, _, err = image.DecodeConfig(f)
	return err == nil
}
