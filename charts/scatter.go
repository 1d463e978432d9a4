package charts

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"recipe-charts/models"
)

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

// PrepVsLikes renders one scatter point per recipe.
func (r *Renderer) PrepVsLikes(path string, points []models.ScatterPoint) error {
	if len(points) == 0 {
		return fmt.Errorf("no points to render for prep-vs-likes scatter")
	}

	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, p.PrepTimeMin)
		ys = append(ys, float64(p.LikeCount))
	}

	// go-chart needs a non-degenerate X range; pad with a duplicate point
	// one unit over when every X is identical.
	degenerate := true
	for _, x := range xs[1:] {
		if x != xs[0] {
			degenerate = false
			break
		}
	}
	if degenerate {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[len(ys)-1])
	}

	return r.renderToFile(path, func(buf *bytes.Buffer) error {
		ch := chart.Chart{
			Title:      "Prep Time vs Like Count",
			Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 28}},
			Width:      1024,
			Height:     576,
			XAxis:      chart.XAxis{Name: "Prep Time (min)"},
			YAxis:      chart.YAxis{Name: "Likes"},
			Series: []chart.Series{
				chart.ContinuousSeries{
					Name:    "Recipes",
					XValues: xs,
					YValues: ys,
					Style:   pointStyle(chart.ColorBlue),
				},
			},
		}
		return ch.Render(chart.PNG, buf)
	})
}
