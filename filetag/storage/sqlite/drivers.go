package sqlite

import (
	// "sqlite3": cgo build of the reference library
	_ "github.com/mattn/go-sqlite3"
	// "sqlite": pure Go, the default
	_ "modernc.org/sqlite"
)

const (
	DriverModernc = "sqlite"
	DriverMattn   = "sqlite3"
)

// dsnParams returns the connection parameters in the dialect each driver understands.
func dsnParams(driver string) string {
	if driver == DriverMattn {
		return "_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL"
	}
	return "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
}
