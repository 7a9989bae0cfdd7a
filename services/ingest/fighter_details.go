package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"ufcpipe/lib/csvtable"
	"ufcpipe/lib/scrapers/ufcstats"
)

var fighterDetailsColumns = []string{
	"snapshot", "fighter_url",
	"first_name", "last_name",
	"dob_raw",
	"slpm", "str_acc", "sapm", "str_def",
	"td_avg", "td_acc", "td_def", "sub_avg",
}

type FighterDetailsOptions struct {
	// InputPath is a fighter_directory snapshot. The legacy
	// profile_url key column is accepted alongside fighter_url.
	InputPath string
	OutDir    string
	Snapshot  string
	Sleep     time.Duration
	Limit     int
}

// FighterDetails scrapes each seed fighter's profile page into a raw
// snapshot of DOB plus the eight career-rate stats.
func FighterDetails(ctx context.Context, client Fetcher, opts FighterDetailsOptions) (string, int, error) {
	snapshot := ufcstats.ResolveSnapshot(opts.Snapshot, opts.InputPath)

	outDir := opts.OutDir
	if outDir == "" {
		outDir = defaultRawDir
	}
	outPath := filepath.Join(outDir, ufcstats.SnapshotFilename("fighter_details", snapshot))

	seeds, err := readSeeds(opts.InputPath, "fighter_url", "profile_url")
	if err != nil {
		return "", 0, err
	}
	if opts.Limit > 0 && len(seeds) > opts.Limit {
		seeds = seeds[:opts.Limit]
	}
	if len(seeds) == 0 {
		return "", 0, fmt.Errorf("no fighters found in %s (missing fighter_url/profile_url?)", opts.InputPath)
	}

	out := csvtable.New(fighterDetailsColumns)
	seen := make(map[string]struct{})

	n := len(seeds)
	for i, seed := range seeds {
		fighterURL := ufcstats.NormalizeURL(firstNonEmpty(seed["fighter_url"], seed["profile_url"]), client.BaseURL())
		if fighterURL == "" {
			continue
		}
		if _, ok := seen[fighterURL]; ok {
			continue
		}
		seen[fighterURL] = struct{}{}

		html, err := client.FetchHTML(ctx, fighterURL)
		if err != nil {
			progressFail(i+1, n, "FAIL fetch %s: %v", fighterURL, err)
			continue
		}

		parsed, err := ufcstats.ParseFighterDetails(html)
		if err != nil {
			progressFail(i+1, n, "FAIL parse %s: %v", fighterURL, err)
			continue
		}

		out.Rows = append(out.Rows, csvtable.Record{
			"snapshot":    snapshot,
			"fighter_url": fighterURL,
			"first_name":  firstNonEmpty(seed["first_name"]),
			"last_name":   firstNonEmpty(seed["last_name"]),
			"dob_raw":     parsed.DOBRaw,
			"slpm":        parsed.SLpM,
			"str_acc":     parsed.StrAcc,
			"sapm":        parsed.SApM,
			"str_def":     parsed.StrDef,
			"td_avg":      parsed.TDAvg,
			"td_acc":      parsed.TDAcc,
			"td_def":      parsed.TDDef,
			"sub_avg":     parsed.SubAvg,
		})
		progress(i+1, n, "fighter_details: %s", fighterURL)

		if opts.Sleep > 0 {
			time.Sleep(opts.Sleep)
		}
	}

	if len(out.Rows) == 0 {
		return "", 0, fmt.Errorf("no fighter details parsed: check reachability / selectors")
	}

	if err := csvtable.WriteFile(outPath, out); err != nil {
		return "", 0, err
	}
	return outPath, len(out.Rows), nil
}
