package match

import "time"

// Kind classifies a listed entry
type Kind uint8

const (
	KindDirectory Kind = iota
	KindPicture
	KindVideo
	KindGenericFile
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindPicture:
		return "picture"
	case KindVideo:
		return "video"
	case KindGenericFile:
		return "file"
	default:
		return "unknown"
	}
}

// ParseKind maps a kind name back to its Kind. Unknown names yield KindGenericFile.
func ParseKind(s string) Kind {
	switch s {
	case "directory", "dir":
		return KindDirectory
	case "picture":
		return KindPicture
	case "video":
		return KindVideo
	default:
		return KindGenericFile
	}
}

// FileRecord is the read-only view of one listed entry that predicates test.
// Path and Created are carried for the listing layers; predicates never read them.
type FileRecord struct {
	Path      string
	FileName  string
	Modified  time.Time // zero means no valid timestamp
	Created   time.Time
	SizeBytes int64
	Tags      []string
	Kind      Kind
}

// Year returns the calendar year of Modified, or 0 when it is unset.
func (r FileRecord) Year() int64 {
	if r.Modified.IsZero() {
		return 0
	}
	return int64(r.Modified.Year())
}
