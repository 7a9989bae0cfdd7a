// Package build turns raw snapshots into normalized, deduplicated,
// typed dimension/fact tables. Each normalization step takes a table
// and returns a new one; ordering between steps is plain function
// composition, never in-place mutation.
package build

import (
	"strconv"

	"ufcpipe/lib/csvtable"
	"ufcpipe/lib/scrapers/ufcstats"
	"ufcpipe/lib/textutil"
)

const defaultProcessedDir = "data/processed"

// NullInt is a nullable integer column value. Absence is a first-class
// state, not a missing map key.
type NullInt struct {
	Valid bool
	Value int
}

// ParseNullInt coerces a raw stat string: blank and the site's "--"
// placeholder are null, unparseable text is null, never an error.
func ParseNullInt(s string) NullInt {
	s = textutil.Clean(s)
	if s == "" || s == "--" {
		return NullInt{}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return NullInt{}
	}
	return NullInt{Valid: true, Value: v}
}

func (n NullInt) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.Itoa(n.Value)
}

// cleanColumns returns a new table with Clean applied to the listed
// columns of every row.
func cleanColumns(t csvtable.Table, columns ...string) csvtable.Table {
	return t.Map(func(r csvtable.Record) csvtable.Record {
		out := r.Clone()
		for _, c := range columns {
			out[c] = textutil.Clean(out[c])
		}
		return out
	})
}

// canonicalizeColumns rewrites URL key columns onto the canonical
// scheme+host so joins cannot fail on scheme/www variants.
func canonicalizeColumns(t csvtable.Table, columns ...string) csvtable.Table {
	return t.Map(func(r csvtable.Record) csvtable.Record {
		out := r.Clone()
		for _, c := range columns {
			out[c] = ufcstats.CanonicalURL(textutil.Clean(out[c]))
		}
		return out
	})
}

// dropColumns removes tracking columns that must not survive into the
// processed layer (snapshot lives in the file name, not a column).
func dropColumns(t csvtable.Table, drop ...string) csvtable.Table {
	dropped := make(map[string]struct{}, len(drop))
	for _, c := range drop {
		dropped[c] = struct{}{}
	}

	out := csvtable.Table{}
	for _, c := range t.Columns {
		if _, ok := dropped[c]; !ok {
			out.Columns = append(out.Columns, c)
		}
	}
	out.Rows = make([]csvtable.Record, len(t.Rows))
	for i, r := range t.Rows {
		row := make(csvtable.Record, len(out.Columns))
		for _, c := range out.Columns {
			row[c] = r[c]
		}
		out.Rows[i] = row
	}
	return out
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func boolInt(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
