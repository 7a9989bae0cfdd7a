package build

import (
	"fmt"
	"path/filepath"
	"strings"

	"ufcpipe/lib/csvtable"
	"ufcpipe/lib/scrapers/ufcstats"
	"ufcpipe/lib/textutil"
)

var dimFighterPreferredColumns = []string{
	"fighter_url",
	"fighter_name",
	"first_name",
	"last_name",
	"nickname_raw",
	"height_raw",
	"weight_raw",
	"reach_raw",
	"stance_raw",
	"dob_raw",
	"w_raw", "l_raw", "d_raw", "belt_raw",
	"slpm", "str_acc", "sapm", "str_def",
	"td_avg", "td_acc", "td_def", "sub_avg",
	"is_ufc_fighter",
	"is_female",
}

var fighterFlagsRequiredColumns = []string{
	"is_ufc",
	"weight_class_raw",
	"fighter_1_url",
	"fighter_2_url",
}

type fighterFlags struct {
	anyUFC      bool
	femaleBouts int
	totalBouts  int
}

// isFemale is the majority vote over the fighter's bouts. Ties break
// to false, deterministically.
func (f fighterFlags) isFemale() bool {
	return f.femaleBouts*2 > f.totalBouts
}

// fighterFlagsFromFactBout reshapes each bout into two per-fighter
// participation rows and aggregates them by canonical fighter URL.
func fighterFlagsFromFactBout(factBout csvtable.Table) (map[string]fighterFlags, error) {
	if missing := factBout.Missing(fighterFlagsRequiredColumns); missing != nil {
		return nil, fmt.Errorf("fact_bout missing required columns: %v", missing)
	}

	flags := make(map[string]fighterFlags)
	for _, r := range factBout.Rows {
		isUFC := textutil.ParseBool(r["is_ufc"])
		isFemaleBout := strings.Contains(strings.ToLower(r["weight_class_raw"]), "women")

		for _, side := range []string{"fighter_1_url", "fighter_2_url"} {
			url := ufcstats.CanonicalURL(textutil.Clean(r[side]))
			if url == "" {
				continue
			}
			f := flags[url]
			f.totalBouts++
			if isUFC {
				f.anyUFC = true
			}
			if isFemaleBout {
				f.femaleBouts++
			}
			flags[url] = f
		}
	}
	return flags, nil
}

// DimFighter merges the fighter directory with per-fighter details and
// derives participation flags from the bout fact table. Fighters with
// no recorded bouts get both flags defaulted to 0.
func DimFighter(directory, details, factBout csvtable.Table) (csvtable.Table, error) {
	if !directory.Has("fighter_url") {
		return csvtable.Table{}, fmt.Errorf("fighter_directory missing required column: fighter_url")
	}
	if !details.Has("fighter_url") {
		return csvtable.Table{}, fmt.Errorf("fighter_details missing required column: fighter_url")
	}

	// snapshot/char are tracking columns; the snapshot lives in the
	// output file name.
	dir := dropColumns(directory, "snapshot", "char")
	det := dropColumns(details, "snapshot", "char")

	dir = canonicalizeColumns(dir, "fighter_url")
	det = canonicalizeColumns(det, "fighter_url")

	dir = dir.Filter(func(r csvtable.Record) bool { return r["fighter_url"] != "" })
	det = det.Filter(func(r csvtable.Record) bool { return r["fighter_url"] != "" })

	// Defensive: inputs are expected unique already.
	dir = dir.DedupeBy("fighter_url")
	det = det.DedupeBy("fighter_url")

	merged := leftJoin(dir, det, "fighter_url", "_details")

	// Backfill directory-side names from the details side, then drop
	// the redundant duplicates.
	merged = merged.Map(func(r csvtable.Record) csvtable.Record {
		out := r.Clone()
		for _, col := range []string{"first_name", "last_name"} {
			v := textutil.Clean(out[col])
			if v == "" {
				v = textutil.Clean(out[col+"_details"])
			}
			out[col] = v
		}
		return out
	})
	merged = dropColumns(merged, "first_name_details", "last_name_details")

	flags, err := fighterFlagsFromFactBout(factBout)
	if err != nil {
		return csvtable.Table{}, err
	}

	merged = merged.Map(func(r csvtable.Record) csvtable.Record {
		out := r.Clone()
		f, ok := flags[r["fighter_url"]]
		if !ok {
			out["is_ufc_fighter"] = "0"
			out["is_female"] = "0"
			return out
		}
		out["is_ufc_fighter"] = boolInt(f.anyUFC)
		out["is_female"] = boolInt(f.isFemale())
		return out
	})
	merged.Columns = append(merged.Columns, "is_ufc_fighter", "is_female")

	// Preferred order first, then whatever else survived, then the
	// newline strip that keeps one CSV line per record.
	merged = reorderColumns(merged, dimFighterPreferredColumns)
	merged = merged.Map(func(r csvtable.Record) csvtable.Record {
		out := r.Clone()
		for k, v := range out {
			out[k] = textutil.StripNewlines(v)
		}
		return out
	})

	return merged, nil
}

// leftJoin joins right onto left by key. Right-side columns colliding
// with left-side names get the suffix; the key column never repeats.
func leftJoin(left, right csvtable.Table, key, suffix string) csvtable.Table {
	rightByKey := make(map[string]csvtable.Record, len(right.Rows))
	for _, r := range right.Rows {
		rightByKey[r[key]] = r
	}

	columns := append([]string(nil), left.Columns...)
	rename := make(map[string]string)
	for _, c := range right.Columns {
		if c == key {
			continue
		}
		name := c
		if left.Has(c) {
			name = c + suffix
		}
		rename[c] = name
		columns = append(columns, name)
	}

	out := csvtable.New(columns)
	for _, l := range left.Rows {
		row := l.Clone()
		r := rightByKey[l[key]]
		for c, name := range rename {
			if r != nil {
				row[name] = r[c]
			} else {
				row[name] = ""
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// reorderColumns puts preferred columns first (when present) and
// appends any unlisted columns in their existing order.
func reorderColumns(t csvtable.Table, preferred []string) csvtable.Table {
	var columns []string
	listed := make(map[string]struct{}, len(preferred))
	for _, c := range preferred {
		if t.Has(c) {
			columns = append(columns, c)
			listed[c] = struct{}{}
		}
	}
	for _, c := range t.Columns {
		if _, ok := listed[c]; !ok {
			columns = append(columns, c)
		}
	}
	out := csvtable.New(columns)
	out.Rows = t.Rows
	return out
}

type DimFighterOptions struct {
	FighterDirectoryPath string
	FighterDetailsPath   string
	FactBoutPath         string
	OutDir               string
	Snapshot             string
}

func DimFighterFile(opts DimFighterOptions) (string, error) {
	dir, err := csvtable.ReadFile(opts.FighterDirectoryPath)
	if err != nil {
		return "", err
	}
	det, err := csvtable.ReadFile(opts.FighterDetailsPath)
	if err != nil {
		return "", err
	}
	factBout, err := csvtable.ReadFile(opts.FactBoutPath)
	if err != nil {
		return "", err
	}

	out, err := DimFighter(dir, det, factBout)
	if err != nil {
		return "", err
	}

	snapshot := ufcstats.ResolveSnapshot(
		opts.Snapshot,
		opts.FighterDirectoryPath, opts.FighterDetailsPath, opts.FactBoutPath,
	)
	outDir := opts.OutDir
	if outDir == "" {
		outDir = defaultProcessedDir
	}
	outPath := filepath.Join(outDir, ufcstats.SnapshotFilename("dim_fighter", snapshot))

	if err := csvtable.WriteFile(outPath, out); err != nil {
		return "", err
	}
	return outPath, nil
}
