package charts

import (
	"bytes"
	"fmt"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"recipe-charts/models"
)

// InteractionsPerDay renders the per-day interaction counts as a line
// chart ordered by date ascending.
func (r *Renderer) InteractionsPerDay(path string, days []models.DayCount) error {
	if len(days) == 0 {
		return fmt.Errorf("no days to render for interactions-per-day")
	}

	xs := make([]time.Time, 0, len(days))
	ys := make([]float64, 0, len(days))
	for _, d := range days {
		xs = append(xs, d.Date)
		ys = append(ys, float64(d.Count))
	}

	// Pad to at least two X values for go-chart.
	if len(xs) == 1 {
		xs = append(xs, xs[0].Add(24*time.Hour))
		ys = append(ys, ys[0])
	}

	return r.renderToFile(path, func(buf *bytes.Buffer) error {
		ch := chart.Chart{
			Title:      "Interactions Per Day",
			Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 48}},
			Width:      1024,
			Height:     512,
			XAxis:      chart.XAxis{Name: "Date"},
			YAxis:      chart.YAxis{Name: "Interactions"},
			Series: []chart.Series{
				chart.TimeSeries{
					Name:    "Interactions",
					XValues: xs,
					YValues: ys,
					Style:   chart.Style{StrokeWidth: 2, StrokeColor: chart.ColorBlue},
				},
			},
		}
		return ch.Render(chart.PNG, buf)
	})
}
