package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. Every value has a fixed
// default so the pipeline runs with no configuration at all; a .env file
// or environment variables can override individual settings.
type Config struct {
	DataDir         string // primary location for input CSVs
	FallbackDataDir string // secondary fixed location probed after DataDir
	ChartDir        string // root of the emitted artifact tree

	HistogramBins         int
	TopLimit              int
	SyntheticInteractions int

	UserAnalytics bool // run the user/time aggregates when users.csv resolves
}

// Load reads the .env file (if any) and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		DataDir:         getEnv("DATA_DIR", "output"),
		FallbackDataDir: getEnv("FALLBACK_DATA_DIR", "/mnt/data/output"),
		ChartDir:        getEnv("CHART_DIR", filepath.Join("output", "charts")),

		HistogramBins:         getEnvInt("HISTOGRAM_BINS", 10),
		TopLimit:              getEnvInt("TOP_LIMIT", 20),
		SyntheticInteractions: getEnvInt("SYNTHETIC_INTERACTIONS", 100),

		UserAnalytics: getEnvBool("USER_ANALYTICS", true),
	}
}

// Candidates returns the priority-ordered probe locations for one input file.
func (c *Config) Candidates(filename string) []string {
	return []string{
		filepath.Join(c.DataDir, filename),
		filepath.Join(c.FallbackDataDir, filename),
	}
}

// UserChartDir returns the subdirectory holding the user-analytics charts.
func (c *Config) UserChartDir() string {
	return filepath.Join(c.ChartDir, "users")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
