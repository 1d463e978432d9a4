package services

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"recipe-charts/charts"
	"recipe-charts/config"
	"recipe-charts/loader"
	"recipe-charts/storage"
	"recipe-charts/utils"
)

const (
	recipeCSV = "recipe_id,name,prep_time_min,cook_time_min,difficulty\n" +
		"r1,Dal,15,20,easy\n" +
		"r2,Pasta,abc,10,medium\n" +
		"r3,Rice,,25,easy\n" +
		"r4,Curry,30,40,hard\n" +
		"r5,Soup,5,10,easy\n"

	ingredientsCSV = "recipe_id,ingredient_id,name\n" +
		"r1,i1,  onion  \n" +
		"r1,i2,salt\n" +
		"r2,i3,onion\n" +
		"r2,i4,garlic\n" +
		"r3,i5,oil\n"

	interactionsCSV = "interaction_id,user_id,recipe_id,type,rating,created_at\n" +
		"n1,u1,r1,like,,2024-05-01 10:00:00\n" +
		"n2,u1,r2,like,,2024-05-01 11:00:00\n" +
		"n3,,r1,view,,2024-05-02 09:00:00\n" +
		"n4,u2,r1,like,,bogus\n" +
		"n5,u1,r9,like,,2024-05-03 09:00:00\n"

	usersCSV = "user_id,country\n" +
		"u1,India\n" +
		"u2,\n" +
		"u3,USA\n"
)

func writeDataset(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	dataDir := filepath.Join(root, "in")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatal(err)
	}
	return &config.Config{
		DataDir:               dataDir,
		FallbackDataDir:       filepath.Join(root, "nowhere"),
		ChartDir:              filepath.Join(root, "charts"),
		HistogramBins:         10,
		TopLimit:              20,
		SyntheticInteractions: 50,
		UserAnalytics:         true,
	}
}

func writeAllDatasets(t *testing.T, cfg *config.Config) {
	writeDataset(t, cfg.DataDir, "recipe.csv", recipeCSV)
	writeDataset(t, cfg.DataDir, "ingredients.csv", ingredientsCSV)
	writeDataset(t, cfg.DataDir, "interactions.csv", interactionsCSV)
	writeDataset(t, cfg.DataDir, "users.csv", usersCSV)
}

func runPipeline(t *testing.T, cfg *config.Config) {
	t.Helper()
	logger := utils.NewLogger()

	preview, err := storage.NewCSVPreviewWriter(filepath.Join(cfg.ChartDir, "top_ingredients_preview.csv"))
	if err != nil {
		t.Fatalf("preview writer: %v", err)
	}
	defer preview.Close()

	pipe := NewPipeline(
		cfg,
		logger,
		loader.NewResolver(logger),
		NewSynthesizer(cfg, logger, 7),
		NewInsights(cfg, logger),
		charts.NewRenderer(logger),
		preview,
		storage.NewReadmeWriter(filepath.Join(cfg.ChartDir, "README_charts.txt")),
	)
	if err := pipe.Run(); err != nil {
		t.Fatalf("pipeline run: %v", err)
	}
}

func readArtifact(t *testing.T, cfg *config.Config, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(cfg.ChartDir, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return data
}

func artifactExists(cfg *config.Config, name string) bool {
	_, err := os.Stat(filepath.Join(cfg.ChartDir, name))
	return err == nil
}

func TestPipelineProducesAllArtifacts(t *testing.T) {
	cfg := testConfig(t)
	writeAllDatasets(t, cfg)
	runPipeline(t, cfg)

	for _, name := range []string{
		"top_ingredients.png",
		"prep_time_histogram.png",
		"prep_vs_likes_scatter.png",
		"top_ingredients_preview.csv",
		"README_charts.txt",
		filepath.Join("users", "users_by_country.png"),
		filepath.Join("users", "top_users_by_interactions.png"),
		filepath.Join("users", "interactions_per_day.png"),
	} {
		if !artifactExists(cfg, name) {
			t.Errorf("artifact %s not produced", name)
		}
	}

	readme := string(readArtifact(t, cfg, "README_charts.txt"))
	if !strings.Contains(readme, "Charts generated from ETL CSV files") {
		t.Errorf("README should state real data was used; got:\n%s", readme)
	}
	if strings.Contains(readme, "synthetic") {
		t.Errorf("README mentions synthetic data on a resolved run:\n%s", readme)
	}
}

func TestPipelinePreviewContents(t *testing.T) {
	cfg := testConfig(t)
	writeAllDatasets(t, cfg)
	runPipeline(t, cfg)

	records, err := csv.NewReader(bytes.NewReader(readArtifact(t, cfg, "top_ingredients_preview.csv"))).ReadAll()
	if err != nil {
		t.Fatalf("parse preview: %v", err)
	}

	if got := records[0]; got[0] != "ingredient" || got[1] != "count" {
		t.Errorf("header = %v, want [ingredient count]", got)
	}

	rows := records[1:]
	// 4 distinct trimmed names in the fixture, well under the cap of 20.
	if len(rows) != 4 {
		t.Fatalf("preview rows = %d, want 4", len(rows))
	}
	if rows[0][0] != "onion" || rows[0][1] != "2" {
		t.Errorf("row 0 = %v, want [onion 2]", rows[0])
	}
	prev := 1 << 30
	for _, r := range rows {
		n, err := strconv.Atoi(r[1])
		if err != nil {
			t.Fatalf("count %q not numeric", r[1])
		}
		if n > prev {
			t.Error("preview rows not sorted by count descending")
		}
		prev = n
	}
}

func TestPipelineIdempotentTextArtifacts(t *testing.T) {
	cfg := testConfig(t)
	writeAllDatasets(t, cfg)

	runPipeline(t, cfg)
	preview1 := readArtifact(t, cfg, "top_ingredients_preview.csv")
	readme1 := readArtifact(t, cfg, "README_charts.txt")

	runPipeline(t, cfg)
	preview2 := readArtifact(t, cfg, "top_ingredients_preview.csv")
	readme2 := readArtifact(t, cfg, "README_charts.txt")

	if !bytes.Equal(preview1, preview2) {
		t.Error("preview CSV differs between identical runs")
	}
	if !bytes.Equal(readme1, readme2) {
		t.Error("README differs between identical runs")
	}
}

func TestPipelineSyntheticFallback(t *testing.T) {
	cfg := testConfig(t)
	// ingredients and interactions resolve, recipe does not: the whole
	// batch must be synthesized anyway.
	writeDataset(t, cfg.DataDir, "ingredients.csv", ingredientsCSV)
	writeDataset(t, cfg.DataDir, "interactions.csv", interactionsCSV)
	runPipeline(t, cfg)

	readme := string(readArtifact(t, cfg, "README_charts.txt"))
	if !strings.Contains(readme, "synthetic fallback data") {
		t.Errorf("README should note synthetic data; got:\n%s", readme)
	}

	for _, name := range []string{
		"top_ingredients.png",
		"prep_time_histogram.png",
		"prep_vs_likes_scatter.png",
	} {
		if !artifactExists(cfg, name) {
			t.Errorf("artifact %s not produced on synthetic run", name)
		}
	}
	// Users are never synthesized, so user charts must be absent.
	if artifactExists(cfg, filepath.Join("users", "users_by_country.png")) {
		t.Error("users_by_country.png produced without a users dataset")
	}
}

func TestPipelineUsersWithoutCountryColumn(t *testing.T) {
	cfg := testConfig(t)
	writeAllDatasets(t, cfg)
	writeDataset(t, cfg.DataDir, "users.csv", "user_id\nu1\nu2\n")
	runPipeline(t, cfg)

	if artifactExists(cfg, filepath.Join("users", "users_by_country.png")) {
		t.Error("users_by_country.png produced for a table without a country column")
	}
	if !artifactExists(cfg, filepath.Join("users", "top_users_by_interactions.png")) {
		t.Error("top_users_by_interactions.png should still be produced")
	}
}

func TestPipelineUserAnalyticsDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.UserAnalytics = false
	writeAllDatasets(t, cfg)
	runPipeline(t, cfg)

	if artifactExists(cfg, filepath.Join("users", "users_by_country.png")) {
		t.Error("user chart produced with user analytics disabled")
	}
	readme := string(readArtifact(t, cfg, "README_charts.txt"))
	if !strings.Contains(readme, "- none produced") {
		t.Errorf("README should list no user charts; got:\n%s", readme)
	}
}
