package storage

import "recipe-charts/models"

// PreviewWriter is the interface any top-ingredients preview sink must satisfy.
type PreviewWriter interface {
	WritePreview(rows []models.IngredientCount) error
	Close() error
}

// ReportWriter is the interface for persisting the run summary.
type ReportWriter interface {
	WriteReport(r *models.RunReport) error
}
