package storage

import (
	"fmt"
	"os"
	"strings"

	"recipe-charts/models"
)

// ReadmeWriter persists the plain-text run summary enumerating which
// charts were produced and whether synthetic data was used. Output is
// deterministic for a given report so that identical runs produce
// byte-identical files.
type ReadmeWriter struct {
	path string
}

// NewReadmeWriter creates a ReadmeWriter targeting the given path.
func NewReadmeWriter(path string) *ReadmeWriter {
	return &ReadmeWriter{path: path}
}

// WriteReport renders and writes the summary text.
func (w *ReadmeWriter) WriteReport(r *models.RunReport) error {
	var lines []string

	if r.Synthetic {
		lines = append(lines, "NOTE: Missing CSVs — synthetic fallback data used for demo charts.")
	} else {
		lines = append(lines, "Charts generated from ETL CSV files in output/")
	}

	lines = append(lines, "", "Recipe charts:")
	lines = append(lines, chartLines(r.RecipeCharts)...)

	lines = append(lines, "", "User charts:")
	lines = append(lines, chartLines(r.UserCharts)...)

	text := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(w.path, []byte(text), 0644); err != nil {
		return fmt.Errorf("readme: write %q: %w", w.path, err)
	}
	return nil
}

func chartLines(charts []string) []string {
	if len(charts) == 0 {
		return []string{"- none produced"}
	}
	out := make([]string, 0, len(charts))
	for _, c := range charts {
		out = append(out, "- "+c)
	}
	return out
}
