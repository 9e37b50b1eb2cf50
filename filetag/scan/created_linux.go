package scan

import (
	"io/fs"
	"syscall"
	"time"
)

// createdTime falls back to the inode change time; Linux stat has no birth time.
func createdTime(info fs.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	}
	return info.ModTime()
}
