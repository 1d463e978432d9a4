package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"recipe-charts/charts"
	"recipe-charts/config"
	"recipe-charts/loader"
	"recipe-charts/services"
	"recipe-charts/storage"
	"recipe-charts/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Recipe Chart Pipeline starting ===")
	logger.Info("Config — data dir: %s | chart dir: %s | bins: %d | top limit: %d",
		cfg.DataDir, cfg.ChartDir, cfg.HistogramBins, cfg.TopLimit)

	preview, err := storage.NewCSVPreviewWriter(filepath.Join(cfg.ChartDir, "top_ingredients_preview.csv"))
	if err != nil {
		logger.Error("Failed to create preview writer: %v", err)
		os.Exit(1)
	}
	defer preview.Close()

	readme := storage.NewReadmeWriter(filepath.Join(cfg.ChartDir, "README_charts.txt"))

	pipe := services.NewPipeline(
		cfg,
		logger,
		loader.NewResolver(logger),
		services.NewSynthesizer(cfg, logger, time.Now().UnixNano()),
		services.NewInsights(cfg, logger),
		charts.NewRenderer(logger),
		preview,
		readme,
	)

	if err := pipe.Run(); err != nil {
		logger.Error("Pipeline aborted: %v", err)
		os.Exit(1)
	}

	fmt.Printf("  Done. Charts → %s | User charts → %s\n\n",
		cfg.ChartDir, cfg.UserChartDir())
}
