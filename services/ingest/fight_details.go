package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ufcpipe/lib/csvtable"
	"ufcpipe/lib/scrapers/ufcstats"
)

type FightDetailsOptions struct {
	// InputPath is an event_details snapshot. The key column is
	// fight_url; bout_url is accepted as the same key under the
	// event-details page's naming.
	InputPath string
	OutDir    string
	Snapshot  string
	Sleep     time.Duration
	Limit     int
	// Resume appends to an existing output file, skipping any
	// fight_url already present in it.
	Resume bool
}

// FightDetails scrapes fight-details pages one row per fight. Output
// is append-only and flushed after every row, so a killed run resumes
// from whatever made it to disk.
func FightDetails(ctx context.Context, client Fetcher, opts FightDetailsOptions) (string, int, error) {
	snapshot := ufcstats.ResolveSnapshot(opts.Snapshot, opts.InputPath)

	outDir := opts.OutDir
	if outDir == "" {
		outDir = defaultRawDir
	}
	outPath := filepath.Join(outDir, ufcstats.SnapshotFilename("fight_details", snapshot))

	urls, err := readFightURLs(opts.InputPath)
	if err != nil {
		return "", 0, err
	}
	if opts.Limit > 0 && len(urls) > opts.Limit {
		urls = urls[:opts.Limit]
		fmt.Printf("[TEST MODE] Processing only %d fights\n", len(urls))
	}
	if len(urls) == 0 {
		return "", 0, fmt.Errorf("no fight URLs found in %s", opts.InputPath)
	}

	done := make(map[string]struct{})
	if opts.Resume {
		done = csvtable.ResumeKeys(outPath, "fight_url")
	}

	pending := 0
	for _, u := range urls {
		_, rawDone := done[u]
		_, normDone := done[ufcstats.NormalizeURL(u, client.BaseURL())]
		if !rawDone && !normDone {
			pending++
		}
	}

	writer, err := csvtable.OpenAppend(outPath, ufcstats.FightDetailsColumns)
	if err != nil {
		return "", 0, err
	}
	defer writer.Close()

	processed := 0
	for _, rawURL := range urls {
		url := ufcstats.NormalizeURL(rawURL, client.BaseURL())
		if _, ok := done[rawURL]; ok {
			continue
		}
		if _, ok := done[url]; ok {
			continue
		}

		html, err := client.FetchHTML(ctx, url)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL fetch %s: %v\n", url, err)
			// Extended backoff after an exhausted fetch before
			// moving on to the next fight.
			sleep := opts.Sleep
			if sleep < 2*time.Second {
				sleep = 2 * time.Second
			}
			time.Sleep(3 * sleep)
			continue
		}

		row, err := ufcstats.ParseFightDetails(html, snapshot, url)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL parse %s: %v\n", url, err)
			continue
		}

		if err := writer.Write(row.Record()); err != nil {
			return "", processed, err
		}

		processed++
		if processed%25 == 0 {
			fmt.Printf("Processed %d fights... last=%s\n", processed, url)
		}

		if opts.Sleep > 0 {
			time.Sleep(opts.Sleep)
		}
	}

	if processed == 0 && pending > 0 {
		return "", 0, fmt.Errorf("no fight details parsed despite %d pending fights", pending)
	}
	return outPath, processed, nil
}

// readFightURLs extracts the deduplicated, order-preserving fight URL
// list from an event_details snapshot. A missing key column is a
// schema error.
func readFightURLs(path string) ([]string, error) {
	t, err := csvtable.ReadFile(path)
	if err != nil {
		return nil, err
	}

	key := ""
	switch {
	case t.Has("fight_url"):
		key = "fight_url"
	case t.Has("bout_url"):
		key = "bout_url"
	default:
		return nil, fmt.Errorf("expected column fight_url (or bout_url) in %s, got: %v", path, t.Columns)
	}

	var urls []string
	seen := make(map[string]struct{})
	for _, row := range t.Rows {
		u := row[key]
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}
	return urls, nil
}
