package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"ufcpipe/lib/csvtable"
	"ufcpipe/lib/scrapers/ufcstats"
)

// The fighters directory is partitioned by last-name initial.
var DefaultChars = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

var fighterDirectoryColumns = []string{
	"snapshot", "char",
	"fighter_url", "fighter_name", "first_name", "last_name",
	"nickname_raw", "height_raw", "weight_raw", "reach_raw",
	"stance_raw", "w_raw", "l_raw", "d_raw", "belt_raw",
}

type FighterDirectoryOptions struct {
	Snapshot string
	OutPath  string
	// Chars overrides the A-Z partition list.
	Chars []string
}

// FighterDirectory scrapes every char partition of the fighters
// directory into one raw snapshot. An empty partition is not an error;
// zero fighters across all partitions is.
func FighterDirectory(ctx context.Context, client Fetcher, opts FighterDirectoryOptions) (string, int, error) {
	snapshot := ufcstats.ResolveSnapshot(opts.Snapshot)
	outPath := rawOutPath(opts.OutPath, "fighter_directory", snapshot)

	chars := opts.Chars
	if len(chars) == 0 {
		chars = DefaultChars
	}

	t := csvtable.New(fighterDirectoryColumns)
	for _, c := range chars {
		url := fmt.Sprintf("%s/statistics/fighters?char=%s&page=all", client.BaseURL(), c)

		html, err := client.FetchHTML(ctx, url)
		if err != nil {
			// Directory-level fetch failure has no per-row skip.
			return "", 0, err
		}

		rows, err := ufcstats.ParseFighterDirectory(html, client.BaseURL())
		if err != nil {
			return "", 0, err
		}
		if len(rows) == 0 {
			slog.Warn("no fighters parsed for char", "char", c)
			continue
		}

		for _, r := range rows {
			t.Rows = append(t.Rows, csvtable.Record{
				"snapshot":     snapshot,
				"char":         c,
				"fighter_url":  r.FighterURL,
				"fighter_name": r.FighterName,
				"first_name":   r.FirstName,
				"last_name":    r.LastName,
				"nickname_raw": r.NicknameRaw,
				"height_raw":   r.HeightRaw,
				"weight_raw":   r.WeightRaw,
				"reach_raw":    r.ReachRaw,
				"stance_raw":   r.StanceRaw,
				"w_raw":        r.WRaw,
				"l_raw":        r.LRaw,
				"d_raw":        r.DRaw,
				"belt_raw":     r.BeltRaw,
			})
		}
	}

	if len(t.Rows) == 0 {
		return "", 0, fmt.Errorf("parsed 0 fighters across all chars: layout may have changed")
	}
	t = t.DedupeBy("fighter_url")

	if err := csvtable.WriteFile(outPath, t); err != nil {
		return "", 0, err
	}
	return outPath, len(t.Rows), nil
}
