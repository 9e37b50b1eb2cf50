package filetag

const (
	// DefaultSidecarDir holds per-file tag sidecars and thumbnails next to the files
	DefaultSidecarDir = ".ts"
	DefaultPageSize   = 60

	// state keys used by the CLI
	StateLastDir   = "last_dir"
	StateLastQuery = "last_query"
)
