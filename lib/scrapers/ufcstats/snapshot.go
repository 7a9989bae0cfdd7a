package ufcstats

import (
	"path/filepath"
	"regexp"
	"time"
)

var snapshotDateRegex = regexp.MustCompile(`20\d{2}-\d{2}-\d{2}`)

// DefaultSnapshotUTC returns the current UTC date as YYYY-MM-DD.
func DefaultSnapshotUTC() string {
	return time.Now().UTC().Format("2006-01-02")
}

// InferSnapshotFromPath extracts a YYYY-MM-DD snapshot date embedded
// in a file name, or "" when none is present.
func InferSnapshotFromPath(path string) string {
	return snapshotDateRegex.FindString(filepath.Base(path))
}

// ResolveSnapshot picks a snapshot date by priority: an explicit
// override, then the first input path carrying a date in its name,
// then the current UTC date.
func ResolveSnapshot(explicit string, paths ...string) string {
	if explicit != "" {
		return explicit
	}
	for _, p := range paths {
		if s := InferSnapshotFromPath(p); s != "" {
			return s
		}
	}
	return DefaultSnapshotUTC()
}

// SnapshotFilename renders the "{table}__ufcstats__{snapshot}.csv"
// naming convention shared by every layer.
func SnapshotFilename(table, snapshot string) string {
	return table + "__ufcstats__" + snapshot + ".csv"
}
