package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"ufcpipe/lib/csvtable"
	"ufcpipe/lib/scrapers/ufcstats"
)

// Raw event_details schema: one row per bout, mirroring the
// event-details page table plus the injected event context.
var eventDetailsColumns = []string{
	"snapshot",
	"event_url", "event_name", "event_date_raw", "event_location_raw",
	"bout_url", "bout_order",
	"fighter_1_name", "fighter_1_url", "fighter_1_result",
	"fighter_2_name", "fighter_2_url", "fighter_2_result",
	"kd_1", "str_1", "td_1", "sub_1",
	"kd_2", "str_2", "td_2", "sub_2",
	"weight_class_raw", "method_raw", "round_raw", "time_raw",
}

type EventDetailsOptions struct {
	// InputPath is an event_directory snapshot (needs event_url).
	InputPath string
	OutDir    string
	Snapshot  string
	Sleep     time.Duration
	// Limit truncates the seed list before fetching; 0 means all.
	Limit int
}

// EventDetails scrapes each seed event's details page into a raw
// bout-per-row snapshot. Per-event failures are logged and skipped;
// producing zero bouts overall is fatal.
func EventDetails(ctx context.Context, client Fetcher, opts EventDetailsOptions) (string, int, error) {
	snapshot := ufcstats.ResolveSnapshot(opts.Snapshot, opts.InputPath)

	outDir := opts.OutDir
	if outDir == "" {
		outDir = defaultRawDir
	}
	outPath := filepath.Join(outDir, ufcstats.SnapshotFilename("event_details", snapshot))

	seeds, err := readSeeds(opts.InputPath, "event_url")
	if err != nil {
		return "", 0, err
	}
	if opts.Limit > 0 && len(seeds) > opts.Limit {
		seeds = seeds[:opts.Limit]
	}
	if len(seeds) == 0 {
		return "", 0, fmt.Errorf("no event rows found in %s (missing event_url?)", opts.InputPath)
	}

	out := csvtable.New(eventDetailsColumns)
	seen := make(map[string]struct{})

	n := len(seeds)
	for i, seed := range seeds {
		eventURL := ufcstats.NormalizeURL(seed["event_url"], client.BaseURL())

		html, err := client.FetchHTML(ctx, eventURL)
		if err != nil {
			progressFail(i+1, n, "FAIL fetch %s: %v", eventURL, err)
			continue
		}

		meta, bouts, err := ufcstats.ParseEventDetails(html, client.BaseURL())
		if err != nil {
			progressFail(i+1, n, "FAIL parse %s: %v", eventURL, err)
			continue
		}

		// Page meta wins over the seed row; the seed fills gaps.
		eventName := firstNonEmpty(meta.EventName, seed["event_name"])
		eventDate := firstNonEmpty(meta.EventDateRaw, seed["event_date_raw"])
		eventLocation := firstNonEmpty(meta.EventLocationRaw, seed["event_location_raw"])

		for _, b := range bouts {
			key := b.BoutURL
			if key == "" {
				key = eventURL + "__" + b.BoutOrder
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			out.Rows = append(out.Rows, csvtable.Record{
				"snapshot":           snapshot,
				"event_url":          eventURL,
				"event_name":         eventName,
				"event_date_raw":     eventDate,
				"event_location_raw": eventLocation,
				"bout_url":           b.BoutURL,
				"bout_order":         b.BoutOrder,
				"fighter_1_name":     b.Fighter1Name,
				"fighter_1_url":      b.Fighter1URL,
				"fighter_1_result":   b.Fighter1Result,
				"fighter_2_name":     b.Fighter2Name,
				"fighter_2_url":      b.Fighter2URL,
				"fighter_2_result":   b.Fighter2Result,
				"kd_1": b.KD1, "str_1": b.Str1, "td_1": b.TD1, "sub_1": b.Sub1,
				"kd_2": b.KD2, "str_2": b.Str2, "td_2": b.TD2, "sub_2": b.Sub2,
				"weight_class_raw": b.WeightClassRaw,
				"method_raw":       b.MethodRaw,
				"round_raw":        b.RoundRaw,
				"time_raw":         b.TimeRaw,
			})
		}

		progress(i+1, n, "%s -> bouts: %d", firstNonEmpty(eventName, "event"), len(bouts))

		if opts.Sleep > 0 {
			time.Sleep(opts.Sleep)
		}
	}

	if len(out.Rows) == 0 {
		return "", 0, fmt.Errorf("no bouts parsed: check site reachability and parser selectors")
	}

	if err := csvtable.WriteFile(outPath, out); err != nil {
		return "", 0, err
	}
	return outPath, len(out.Rows), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
