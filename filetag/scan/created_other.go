//go:build !linux && !darwin

package scan

import (
	"io/fs"
	"time"
)

func createdTime(info fs.FileInfo) time.Time {
	return info.ModTime()
}
