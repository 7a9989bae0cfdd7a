package build

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ufcpipe/lib/csvtable"
	"ufcpipe/lib/scrapers/ufcstats"
	"ufcpipe/lib/textutil"
)

var factBoutRequiredColumns = []string{
	"snapshot",
	"event_url",
	"bout_url",
	"bout_order",
	"fighter_1_url",
	"fighter_2_url",
	"fighter_1_result",
	"fighter_2_result",
	"kd_1", "str_1", "td_1", "sub_1",
	"kd_2", "str_2", "td_2", "sub_2",
	"weight_class_raw",
	"method_raw",
	"round_raw",
	"time_raw",
}

var factBoutNumericColumns = []string{
	"bout_order",
	"kd_1", "str_1", "td_1", "sub_1",
	"kd_2", "str_2", "td_2", "sub_2",
}

var factBoutColumns = []string{
	"snapshot",
	"bout_url",
	"event_url",
	"bout_order",
	"fighter_1_url",
	"fighter_2_url",
	"fighter_1_result",
	"fighter_2_result",
	"kd_1", "str_1", "td_1", "sub_1",
	"kd_2", "str_2", "td_2", "sub_2",
	"weight_class_raw",
	"method_raw",
	"round_raw",
	"time_raw",
	"has_winner",
	"is_ufc",
}

// FactBout builds the bout fact table from a raw event_details
// snapshot. dimEvent is optional; passing a zero-value table uses the
// name heuristic alone.
func FactBout(in csvtable.Table, dimEvent csvtable.Table) (csvtable.Table, error) {
	if missing := in.Missing(factBoutRequiredColumns); missing != nil {
		return csvtable.Table{}, fmt.Errorf("raw event_details missing columns: %v", missing)
	}

	t := canonicalizeColumns(in, "bout_url", "event_url", "fighter_1_url", "fighter_2_url")
	t = cleanColumns(t, "round_raw", "time_raw")

	t = t.Filter(func(r csvtable.Record) bool {
		return r["bout_url"] != ""
	})
	t = t.DedupeBy("bout_url")

	// Typed numeric stats: null-on-blank, null-on-garbage.
	t = t.Map(func(r csvtable.Record) csvtable.Record {
		out := r.Clone()
		for _, c := range factBoutNumericColumns {
			out[c] = ParseNullInt(r[c]).String()
		}
		return out
	})

	t = t.Map(func(r csvtable.Record) csvtable.Record {
		out := r.Clone()
		r1 := strings.ToLower(textutil.Clean(r["fighter_1_result"]))
		r2 := strings.ToLower(textutil.Clean(r["fighter_2_result"]))
		out["has_winner"] = boolString(r1 == "win" || r2 == "win")
		return out
	})

	hasEventName := t.Has("event_name")

	isUFCByURL := map[string]string{}
	useDim := len(dimEvent.Columns) > 0
	if useDim {
		if !dimEvent.Has("event_url") {
			return csvtable.Table{}, fmt.Errorf("dim_event missing event_url")
		}
		if !dimEvent.Has("is_ufc") {
			return csvtable.Table{}, fmt.Errorf("dim_event missing is_ufc")
		}
		for _, r := range dimEvent.Rows {
			url := ufcstats.CanonicalURL(textutil.Clean(r["event_url"]))
			if _, ok := isUFCByURL[url]; !ok {
				isUFCByURL[url] = r["is_ufc"]
			}
		}
	}

	t = t.Map(func(r csvtable.Record) csvtable.Record {
		out := r.Clone()
		isUFC := ""
		if useDim {
			isUFC = isUFCByURL[r["event_url"]]
		}
		if isUFC == "" || isUFC == "None" {
			if hasEventName {
				isUFC = boolString(textutil.IsUFCEventName(r["event_name"]))
			} else if !useDim {
				isUFC = ""
			}
		}
		out["is_ufc"] = isUFC
		return out
	})

	out := csvtable.New(nil)
	for _, c := range factBoutColumns {
		if in.Has(c) || c == "has_winner" || c == "is_ufc" {
			out.Columns = append(out.Columns, c)
		}
	}
	out.Rows = t.Rows
	return out, nil
}

type FactBoutOptions struct {
	EventDetailsPath string
	// DimEventPath is optional; when absent the is_ufc heuristic
	// relies on event_name alone.
	DimEventPath string
	OutDir       string
	Snapshot     string
}

func FactBoutFile(opts FactBoutOptions) (string, error) {
	in, err := csvtable.ReadFile(opts.EventDetailsPath)
	if err != nil {
		return "", err
	}

	var dimEvent csvtable.Table
	if opts.DimEventPath != "" {
		if _, statErr := os.Stat(opts.DimEventPath); statErr == nil {
			dimEvent, err = csvtable.ReadFile(opts.DimEventPath)
			if err != nil {
				return "", err
			}
		}
	}

	out, err := FactBout(in, dimEvent)
	if err != nil {
		return "", err
	}

	snapshot := ufcstats.ResolveSnapshot(opts.Snapshot, opts.EventDetailsPath, opts.DimEventPath)
	outDir := opts.OutDir
	if outDir == "" {
		outDir = defaultProcessedDir
	}
	outPath := filepath.Join(outDir, ufcstats.SnapshotFilename("fact_bout", snapshot))

	if err := csvtable.WriteFile(outPath, out); err != nil {
		return "", err
	}
	return outPath, nil
}
