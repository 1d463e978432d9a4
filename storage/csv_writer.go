package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"recipe-charts/models"
)

// CSVPreviewWriter writes the top-ingredients preview rows to a CSV file.
// The file carries the same rows, in the same order, as the rendered
// top-ingredients chart.
type CSVPreviewWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVPreviewWriter creates (or truncates) the CSV file at the given
// path and writes the header row. Intermediate directories are created
// automatically.
func NewCSVPreviewWriter(path string) (*CSVPreviewWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"ingredient", "count"}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVPreviewWriter{file: f, writer: w}, nil
}

// WritePreview appends the given rows to the CSV file.
func (c *CSVPreviewWriter) WritePreview(rows []models.IngredientCount) error {
	for _, row := range rows {
		if err := c.writer.Write([]string{row.Name, strconv.Itoa(row.Count)}); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVPreviewWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
