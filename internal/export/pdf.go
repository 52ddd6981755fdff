// Package export provides functionality for exporting cut optimization
// results to various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/cutplanner/internal/model"
)

// pieceColor represents an RGB color for a placed piece.
type pieceColor struct {
	R, G, B int
}

var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document containing the cut optimization
// results. Each panel is rendered on its own page with a visual layout
// diagram, followed by a summary page with overall statistics.
func ExportPDF(path string, result model.OptimizationResult) error {
	if len(result.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, panel := range result.Panels {
		pdf.AddPage()
		renderPanelPage(pdf, panel)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// renderPanelPage draws a single panel layout on the current PDF page.
func renderPanelPage(pdf *fpdf.Fpdf, panel *model.PanelSolution) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	material := panel.Material.Label
	if material == "" {
		material = panel.Material.Finish
	}
	title := fmt.Sprintf("Panel %d: %s %.0fmm (%.0f x %.0f mm)",
		panel.Number, material, panel.Material.Thickness, panel.Width, panel.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pieces: %d | Used area: %.0f mm\xb2 | Waste: %.0f mm\xb2 | Utilization: %.1f%%",
		len(panel.Placements), panel.UsedArea(), panel.Waste(), panel.Utilization())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom

	scale := math.Min(drawWidth/panel.Width, drawHeight/panel.Height)
	canvasW := panel.Width * scale
	canvasH := panel.Height * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Panel background (wood color)
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Retained offcuts as hatched light areas
	pdf.SetFillColor(235, 228, 215)
	pdf.SetDrawColor(170, 170, 170)
	pdf.SetLineWidth(0.2)
	for _, o := range panel.Offcuts {
		pdf.Rect(offsetX+o.X*scale, offsetY+o.Y*scale, o.W*scale, o.H*scale, "FD")
	}

	for i, p := range panel.Placements {
		col := pieceColors[i%len(pieceColors)]
		pw := p.W * scale
		ph := p.H * scale
		px := offsetX + p.X*scale
		py := offsetY + p.Y*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		// Piece label (only if rectangle is large enough)
		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := p.Piece.Label
			dims := fmt.Sprintf("%.0fx%.0f", p.Piece.Length, p.Piece.Width)

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}
}

// labelFontSize picks a readable font size for a piece rectangle.
func labelFontSize(w, h float64) float64 {
	size := math.Min(w, h) / 4
	if size < 5 {
		return 5
	}
	if size > 9 {
		return 9
	}
	return size
}

// renderSummaryPage draws the overall run statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.OptimizationResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Optimization Summary", "", 0, "L", false, 0, "")

	totalPlaced := 0
	var wasteArea float64
	for _, panel := range result.Panels {
		totalPlaced += len(panel.Placements)
		wasteArea += panel.Waste()
	}

	offcuts := model.CollectOffcuts(result)

	lines := []string{
		fmt.Sprintf("Panels used: %d", result.Stats.TotalPanels),
		fmt.Sprintf("Pieces placed: %d", totalPlaced),
		fmt.Sprintf("Mean utilization: %.1f%%", result.Stats.GlobalUtilization),
		fmt.Sprintf("Estimated cuts: %d", result.Stats.TotalCuts),
		fmt.Sprintf("Total waste: %.2f m\xb2", wasteArea/1e6),
		fmt.Sprintf("Reusable offcuts: %d (%.2f m\xb2)", len(offcuts), model.TotalOffcutArea(offcuts)/1e6),
		fmt.Sprintf("Completed: %s", result.Stats.Timestamp.Format("2006-01-02 15:04:05 UTC")),
	}
	if len(result.Oversize) > 0 {
		lines = append(lines, fmt.Sprintf("Oversize pieces (not placed): %d", len(result.Oversize)))
		for _, p := range result.Oversize {
			lines = append(lines, fmt.Sprintf("  - %s (%.0f x %.0f mm)", p.Label, p.Length, p.Width))
		}
	}

	pdf.SetFont("Helvetica", "", 11)
	y := marginTop + headerHeight + 8
	for _, line := range lines {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, line, "", 0, "L", false, 0, "")
		y += 7
	}
}
