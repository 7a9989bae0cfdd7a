package csvtable

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// AppendWriter appends records to a snapshot file one row at a time,
// flushing after every write. A run killed between two writes leaves a
// readable file whose rows are exactly the completed entities.
type AppendWriter struct {
	file    *os.File
	writer  *csv.Writer
	columns []string
}

// OpenAppend opens path for appending, writing the header row only
// when the file is created by this call.
func OpenAppend(path string, columns []string) (*AppendWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	_, statErr := os.Stat(path)
	isNew := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q for append: %w", path, err)
	}

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write(columns); err != nil {
			f.Close()
			return nil, fmt.Errorf("csv: write header: %w", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, err
		}
	}

	return &AppendWriter{file: f, writer: w, columns: columns}, nil
}

func (a *AppendWriter) Write(row Record) error {
	if err := a.writer.Write(fields(a.columns, row)); err != nil {
		return fmt.Errorf("csv: write row: %w", err)
	}
	a.writer.Flush()
	return a.writer.Error()
}

func (a *AppendWriter) Close() error {
	a.writer.Flush()
	return a.file.Close()
}

// ResumeKeys collects the values of column already present in a
// partial output file. A missing, unreadable or corrupt file yields an
// empty set rather than an error: the resume contract is "whatever
// keys made it to disk".
func ResumeKeys(path, column string) map[string]struct{} {
	done := make(map[string]struct{})

	t, err := ReadFile(path)
	if err != nil {
		return done
	}
	if !t.Has(column) {
		return done
	}
	for _, row := range t.Rows {
		if v := row[column]; v != "" {
			done[v] = struct{}{}
		}
	}
	return done
}
