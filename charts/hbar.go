package charts

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"recipe-charts/models"
)

// go-chart has no horizontal bar type, so the top-users chart is drawn
// directly on a raster canvas.

var (
	hbarFill  = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	hbarLabel = color.RGBA{R: 30, G: 30, B: 30, A: 255}
)

// TopUsers renders a horizontal bar chart of interaction counts per user,
// longest bar on top.
func (r *Renderer) TopUsers(path string, rows []models.LabelCount) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows to render for top-users chart")
	}

	const (
		width      = 1024
		height     = 576
		marginTop  = 48.0
		marginLeft = 140.0
		marginEnd  = 72.0
	)

	maxCount := rows[0].Count
	for _, row := range rows {
		if row.Count > maxCount {
			maxCount = row.Count
		}
	}
	if maxCount == 0 {
		return fmt.Errorf("all user counts are zero")
	}

	return r.renderToFile(path, func(buf *bytes.Buffer) error {
		dc := gg.NewContext(width, height)
		dc.SetColor(color.White)
		dc.Clear()
		dc.SetFontFace(basicfont.Face7x13)

		dc.SetColor(hbarLabel)
		title := "Top Users by Interaction Count"
		tw, _ := dc.MeasureString(title)
		dc.DrawString(title, (width-tw)/2, 24)

		plotW := float64(width) - marginLeft - marginEnd
		rowH := (float64(height) - marginTop - 16) / float64(len(rows))
		barH := rowH - 6
		if barH > 28 {
			barH = 28
		}

		for i, row := range rows {
			y := marginTop + float64(i)*rowH
			barW := plotW * float64(row.Count) / float64(maxCount)

			dc.SetColor(hbarFill)
			dc.DrawRectangle(marginLeft, y+(rowH-barH)/2, barW, barH)
			dc.Fill()

			dc.SetColor(hbarLabel)
			label := truncateLabel(row.Label, 18)
			lw, _ := dc.MeasureString(label)
			dc.DrawString(label, marginLeft-lw-8, y+rowH/2+4)
			dc.DrawString(fmt.Sprintf("%d", row.Count), marginLeft+barW+8, y+rowH/2+4)
		}

		return dc.EncodePNG(buf)
	})
}

func truncateLabel(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
