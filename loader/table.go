package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Table is a parsed delimited file: a trimmed header row plus raw string
// cell rows. Column lookup is by exact header name only — there is no
// positional fallback for a missing header.
type Table struct {
	Headers []string
	Rows    [][]string

	index map[string]int
}

// ParseTable reads delimited tabular text (first row = header) into a
// Table. The header must parse and contain at least one non-empty column
// name; malformed body rows are skipped individually.
func ParseTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	headers, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}

	t := &Table{index: make(map[string]int, len(headers))}
	named := 0
	for i, h := range headers {
		h = strings.TrimSpace(h)
		t.Headers = append(t.Headers, h)
		if h == "" {
			continue
		}
		named++
		if _, dup := t.index[h]; !dup {
			t.index[h] = i
		}
	}
	if named == 0 {
		return nil, fmt.Errorf("header row has no named columns")
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Cell returns the trimmed value of the named column in the given row.
// The second return is false when the column does not exist or the row
// is too short to contain it.
func (t *Table) Cell(row []string, name string) (string, bool) {
	i, ok := t.index[name]
	if !ok || i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
