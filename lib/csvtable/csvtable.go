// Package csvtable models snapshot CSVs as tables of string-typed
// records. Everything stays a raw string until a builder coerces it.
package csvtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type Record map[string]string

type Table struct {
	Columns []string
	Rows    []Record
}

func New(columns []string) Table {
	return Table{Columns: append([]string(nil), columns...)}
}

func (t Table) Has(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Missing returns the subset of columns absent from the table, in the
// order given. Builders use it for fail-fast schema validation.
func (t Table) Missing(columns []string) []string {
	var missing []string
	for _, c := range columns {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// Filter returns a new table keeping only rows where keep is true.
func (t Table) Filter(keep func(Record) bool) Table {
	out := New(t.Columns)
	for _, r := range t.Rows {
		if keep(r) {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// DedupeBy returns a new table with one row per distinct value of
// column, keeping the first occurrence.
func (t Table) DedupeBy(column string) Table {
	out := New(t.Columns)
	seen := make(map[string]struct{}, len(t.Rows))
	for _, r := range t.Rows {
		key := r[column]
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out.Rows = append(out.Rows, r)
	}
	return out
}

// Select projects the table onto the listed columns, silently skipping
// columns the table does not have.
func (t Table) Select(columns []string) Table {
	var present []string
	for _, c := range columns {
		if t.Has(c) {
			present = append(present, c)
		}
	}
	out := New(present)
	out.Rows = t.Rows
	return out
}

// Map returns a new table whose rows are transformed by fn. fn must
// return a fresh record; input rows are never mutated.
func (t Table) Map(fn func(Record) Record) Table {
	out := New(t.Columns)
	out.Rows = make([]Record, len(t.Rows))
	for i, r := range t.Rows {
		out.Rows[i] = fn(r)
	}
	return out
}

func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ReadFile reads a UTF-8, comma-delimited CSV with a required header
// row. Every value comes back as a string.
func ReadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return Table{}, fmt.Errorf("csv: read header of %q: %w", path, err)
	}

	t := New(header)
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("csv: read %q: %w", path, err)
		}
		row := make(Record, len(header))
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			} else {
				row[col] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// WriteFile writes the table with its fixed column order. Keys absent
// from a record serialize as empty values. Parent directories are
// created automatically.
func WriteFile(path string, t Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("csv: create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(fields(t.Columns, row)); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func fields(columns []string, row Record) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i] = row[col]
	}
	return out
}
