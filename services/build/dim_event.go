package build

import (
	"path/filepath"

	"ufcpipe/lib/csvtable"
	"ufcpipe/lib/scrapers/ufcstats"
	"ufcpipe/lib/textutil"
)

var dimEventColumns = []string{
	"event_url",
	"event_name",
	"event_date_raw",
	"event_location_raw",
	"is_ufc",
}

// DimEvent normalizes a raw event_directory table into the event
// dimension: canonical URL key, promotion flag, first-wins dedupe.
func DimEvent(in csvtable.Table) csvtable.Table {
	t := cleanColumns(in, "event_name", "event_date_raw", "event_location_raw")
	t = canonicalizeColumns(t, "event_url")

	t = t.Filter(func(r csvtable.Record) bool {
		return r["event_name"] != "" && r["event_url"] != ""
	})

	t = t.Map(func(r csvtable.Record) csvtable.Record {
		out := r.Clone()
		out["is_ufc"] = boolString(textutil.IsUFCEventName(r["event_name"]))
		return out
	})

	t = t.DedupeBy("event_url")

	out := csvtable.New(dimEventColumns)
	out.Rows = t.Rows
	return out
}

type DimEventOptions struct {
	// EventDirectoryPath is the raw event_directory snapshot.
	EventDirectoryPath string
	OutDir             string
	Snapshot           string
}

func DimEventFile(opts DimEventOptions) (string, error) {
	in, err := csvtable.ReadFile(opts.EventDirectoryPath)
	if err != nil {
		return "", err
	}

	out := DimEvent(in)

	snapshot := ufcstats.ResolveSnapshot(opts.Snapshot, opts.EventDirectoryPath)
	outDir := opts.OutDir
	if outDir == "" {
		outDir = defaultProcessedDir
	}
	outPath := filepath.Join(outDir, ufcstats.SnapshotFilename("dim_event", snapshot))

	if err := csvtable.WriteFile(outPath, out); err != nil {
		return "", err
	}
	return outPath, nil
}
