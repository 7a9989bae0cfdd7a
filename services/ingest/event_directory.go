package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"ufcpipe/lib/csvtable"
	"ufcpipe/lib/scrapers/ufcstats"
)

const eventsDirectoryPath = "/statistics/events/completed?page=all"

var eventDirectoryColumns = []string{
	"event_url",
	"event_name",
	"event_date_raw",
	"event_location_raw",
}

type EventDirectoryOptions struct {
	Snapshot string
	// OutPath overrides data/raw/event_directory__ufcstats__{snapshot}.csv.
	OutPath string
}

// EventDirectory scrapes the completed-events listing into a raw
// snapshot. There is no per-row granularity to skip at: a fetch
// failure or an empty parse aborts the run.
func EventDirectory(ctx context.Context, client Fetcher, opts EventDirectoryOptions) (string, int, error) {
	snapshot := ufcstats.ResolveSnapshot(opts.Snapshot)
	outPath := rawOutPath(opts.OutPath, "event_directory", snapshot)

	url := client.BaseURL() + eventsDirectoryPath
	slog.Info("fetching event directory", "url", url)

	html, err := client.FetchHTML(ctx, url)
	if err != nil {
		return "", 0, err
	}

	rows, err := ufcstats.ParseEventDirectory(html, client.BaseURL())
	if err != nil {
		return "", 0, err
	}
	if len(rows) == 0 {
		return "", 0, fmt.Errorf("parsed 0 events: layout may have changed, or the request returned unexpected markup")
	}

	t := csvtable.New(eventDirectoryColumns)
	for _, r := range rows {
		t.Rows = append(t.Rows, csvtable.Record{
			"event_url":          r.EventURL,
			"event_name":         r.EventName,
			"event_date_raw":     r.EventDateRaw,
			"event_location_raw": r.EventLocationRaw,
		})
	}
	t = t.DedupeBy("event_url")

	if err := csvtable.WriteFile(outPath, t); err != nil {
		return "", 0, err
	}
	return outPath, len(t.Rows), nil
}
