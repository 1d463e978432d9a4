package loader

import (
	"os"

	"recipe-charts/utils"
)

// Resolver locates and parses logical datasets from priority-ordered
// candidate paths.
type Resolver struct {
	logger *utils.Logger
}

// NewResolver creates a Resolver with the given logger.
func NewResolver(logger *utils.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve probes each candidate path in order and returns the first one
// that exists and parses as tabular text. A missing candidate is skipped
// silently; a candidate that exists but fails to parse is logged and
// resolution continues with the next candidate. Returns false when every
// candidate is missing or unparseable.
func (r *Resolver) Resolve(name string, candidates []string) (*Table, bool) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		f, err := os.Open(path)
		if err != nil {
			r.logger.Warn("[resolver] Found %s but failed to open: %v", path, err)
			continue
		}

		t, err := ParseTable(f)
		f.Close()
		if err != nil {
			r.logger.Warn("[resolver] Found %s but failed to parse: %v", path, err)
			continue
		}

		r.logger.Info("[resolver] Loaded %s from %s (%d rows)", name, path, t.Len())
		return t, true
	}

	r.logger.Debug("[resolver] Dataset %s not resolved from any candidate", name)
	return nil, false
}
