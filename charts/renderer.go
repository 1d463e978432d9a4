package charts

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"recipe-charts/utils"
)

// Renderer draws aggregate views into PNG artifacts. Every chart is
// rendered into a memory buffer scoped to its own call; the buffer is
// written to disk only when rendering succeeded, so a failed chart never
// leaves a partial file behind.
type Renderer struct {
	logger *utils.Logger
}

// NewRenderer creates a chart Renderer.
func NewRenderer(logger *utils.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// WriteError marks a filesystem failure while persisting a finished
// chart. Callers treat it as fatal, unlike render failures which only
// skip the one chart.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write chart %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// renderToFile runs render into a buffer and persists the result.
func (r *Renderer) renderToFile(path string, render func(buf *bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	r.logger.Info("[charts] Wrote %s (%d bytes)", path, buf.Len())
	return nil
}
