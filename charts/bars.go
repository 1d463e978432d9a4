package charts

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"recipe-charts/models"
)

// TopIngredients renders the ingredient-frequency bar chart.
func (r *Renderer) TopIngredients(path string, rows []models.IngredientCount) error {
	bars := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, chart.Value{Label: row.Name, Value: float64(row.Count)})
	}
	return r.barChart(path, "Top Ingredients (by occurrence)", "Count", bars)
}

// PrepTimeHistogram renders the prep-time distribution as a bar chart
// with one bar per bin, labelled with the bin bounds.
func (r *Renderer) PrepTimeHistogram(path string, h models.Histogram) error {
	bars := make([]chart.Value, 0, len(h.Bins))
	for _, b := range h.Bins {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%g-%g", b.Low, b.High),
			Value: float64(b.Count),
		})
	}
	return r.barChart(path, "Preparation Time Distribution", "Number of Recipes", bars)
}

// UsersByCountry renders the user-count-per-country bar chart.
func (r *Renderer) UsersByCountry(path string, rows []models.LabelCount) error {
	bars := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, chart.Value{Label: row.Label, Value: float64(row.Count)})
	}
	return r.barChart(path, "Users by Country", "User Count", bars)
}

func (r *Renderer) barChart(path, title, yName string, bars []chart.Value) error {
	if len(bars) == 0 {
		return fmt.Errorf("no bars to render for %q", title)
	}

	return r.renderToFile(path, func(buf *bytes.Buffer) error {
		ch := chart.BarChart{
			Title:      title,
			Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 40}},
			Width:      1024,
			Height:     576,
			BarWidth:   30,
			XAxis:      chart.Style{TextRotationDegrees: 45},
			YAxis:      chart.YAxis{Name: yName},
			Bars:       bars,
		}
		return ch.Render(chart.PNG, buf)
	})
}
