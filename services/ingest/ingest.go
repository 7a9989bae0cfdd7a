// Package ingest drives one-entity-per-page scraping runs: read a
// seed list, fetch and parse each page sequentially, attach snapshot
// context, deduplicate by identity key, and write a raw snapshot CSV.
//
// Scraping is deliberately sequential and single-threaded: one request
// at a time with a politeness delay between entities.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"ufcpipe/lib/csvtable"
	"ufcpipe/lib/scrapers/ufcstats"
)

// Fetcher is the page-fetch collaborator. ufcstats.Client implements
// it; tests substitute canned markup.
type Fetcher interface {
	BaseURL() string
	FetchHTML(ctx context.Context, url string) (string, error)
}

const defaultRawDir = "data" + string(filepath.Separator) + "raw"

func rawOutPath(outPath, table, snapshot string) string {
	if outPath != "" {
		return outPath
	}
	return filepath.Join(defaultRawDir, ufcstats.SnapshotFilename(table, snapshot))
}

func progress(i, n int, format string, args ...any) {
	fmt.Printf("[%d/%d] %s\n", i, n, fmt.Sprintf(format, args...))
}

func progressFail(i, n int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", i, n, fmt.Sprintf(format, args...))
}

// readSeeds loads a seed CSV and keeps rows where at least one of the
// key columns is non-blank.
func readSeeds(path string, keyColumns ...string) ([]csvtable.Record, error) {
	t, err := csvtable.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []csvtable.Record
	for _, row := range t.Rows {
		for _, key := range keyColumns {
			if row[key] != "" {
				rows = append(rows, row)
				break
			}
		}
	}
	return rows, nil
}
