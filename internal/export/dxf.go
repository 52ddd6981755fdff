package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	dxfdrawing "github.com/yofu/dxf/drawing"

	"github.com/piwi3910/cutplanner/internal/model"
)

// Horizontal gap between panels in the DXF drawing (mm).
const dxfPanelGap = 200.0

// ExportDXF writes the panel layouts as a DXF drawing. Panels are placed
// side by side along the X axis, each with its outline on the PANELS
// layer, piece rectangles on the PIECES layer, and retained offcuts on
// the OFFCUTS layer. Coordinates are in millimetres, matching the
// placement coordinates of the optimization result.
func ExportDXF(path string, result model.OptimizationResult) error {
	if len(result.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	drawing := dxf.NewDrawing()

	if _, err := drawing.AddLayer("PANELS", color.White, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to create PANELS layer: %w", err)
	}
	if _, err := drawing.AddLayer("PIECES", color.Cyan, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to create PIECES layer: %w", err)
	}
	if _, err := drawing.AddLayer("OFFCUTS", color.Green, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to create OFFCUTS layer: %w", err)
	}

	offsetX := 0.0
	for _, panel := range result.Panels {
		if err := drawing.ChangeLayer("PANELS"); err != nil {
			return err
		}
		drawRect(drawing, offsetX, 0, panel.Width, panel.Height)

		if err := drawing.ChangeLayer("PIECES"); err != nil {
			return err
		}
		for _, p := range panel.Placements {
			drawRect(drawing, offsetX+p.X, p.Y, p.W, p.H)
		}

		if err := drawing.ChangeLayer("OFFCUTS"); err != nil {
			return err
		}
		for _, o := range panel.Offcuts {
			drawRect(drawing, offsetX+o.X, o.Y, o.W, o.H)
		}

		offsetX += panel.Width + dxfPanelGap
	}

	if err := drawing.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF file: %w", err)
	}
	return nil
}

// drawRect adds the four edges of an axis-aligned rectangle as LINE
// entities on the drawing's current layer.
func drawRect(drawing *dxfdrawing.Drawing, x, y, w, h float64) {
	drawing.Line(x, y, 0, x+w, y, 0)
	drawing.Line(x+w, y, 0, x+w, y+h, 0)
	drawing.Line(x+w, y+h, 0, x, y+h, 0)
	drawing.Line(x, y+h, 0, x, y, 0)
}
