package loader

import (
	"os"
	"path/filepath"
	"testing"

	"recipe-charts/utils"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestResolveFirstCandidateWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")
	writeFile(t, first, "recipe_id\nr1\n")
	writeFile(t, second, "recipe_id\nr2\n")

	r := NewResolver(utils.NewLogger())
	tab, ok := r.Resolve("recipe", []string{first, second})
	if !ok {
		t.Fatal("Resolve: ok = false, want true")
	}
	v, _ := tab.Cell(tab.Rows[0], "recipe_id")
	if v != "r1" {
		t.Errorf("resolved wrong candidate: got row %q, want r1", v)
	}
}

func TestResolveSkipsMissingCandidate(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "second.csv")
	writeFile(t, second, "recipe_id\nr2\n")

	r := NewResolver(utils.NewLogger())
	tab, ok := r.Resolve("recipe", []string{filepath.Join(dir, "absent.csv"), second})
	if !ok {
		t.Fatal("Resolve: ok = false, want true")
	}
	if tab.Len() != 1 {
		t.Errorf("Len: got %d, want 1", tab.Len())
	}
}

func TestResolveSkipsUnparseableCandidate(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.csv")
	good := filepath.Join(dir, "good.csv")
	writeFile(t, broken, "\"bad header\n")
	writeFile(t, good, "recipe_id\nr1\n")

	r := NewResolver(utils.NewLogger())
	tab, ok := r.Resolve("recipe", []string{broken, good})
	if !ok {
		t.Fatal("Resolve: ok = false, want true (should continue past broken file)")
	}
	v, _ := tab.Cell(tab.Rows[0], "recipe_id")
	if v != "r1" {
		t.Errorf("got row %q, want r1", v)
	}
}

func TestResolveAllCandidatesFail(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.csv")
	writeFile(t, broken, "")

	r := NewResolver(utils.NewLogger())
	if _, ok := r.Resolve("recipe", []string{filepath.Join(dir, "absent.csv"), broken}); ok {
		t.Error("Resolve: ok = true, want false when every candidate is missing or unparseable")
	}
}
