package cli

import (
	"fmt"
	"io"
)

func PrintRootHelp(w io.Writer) {
	fmt.Fprintln(w, `filetag - tag files and filter directory listings with free-text queries

USAGE
  filetag [global flags] <command> [args]

GLOBAL FLAGS
  --backend sqlite|postgres
  --db <file.db>
  --sqlite-driver sqlite|sqlite3
  --pg-dsn <dsn>
  --pg-schema <name>
  --sidecar-dir <name>
  --page-size <n>
  --format pretty|paths|json
  --log-level trace|debug|info|warn|error
  --config <file>

  Every flag can also come from FILETAG_<FLAG> (dashes become underscores)
  or from filetag.yaml in . or ~/.config/filetag.

COMMANDS
  ls [dir] [-w query] [--page N] [--page-size N] [--watch]
  match -w query [--name n] [--size n] [--modified t] [--tags a,b] [--kind k]
  tag get <path>
  tag set <path> <tag,...> [--by-hash]
  workspace list | add <dir> [name] | rm <dir>
  tabs list | add <path> | rm <path> | clear
  state get <key> | set <key> <value>
  hash <path>...
  optimize

QUERIES
  Words match file names and tags, case-insensitively. Adjacent terms are
  ANDed; use & and | explicitly. AND binds tighter than OR.
  size<=1000 and year>=2020 compare numbers; picture and video select by kind.
  A query that does not form a valid expression matches its raw text.`)
}
