package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/cutplanner/internal/model"
)

// ExportExcel writes the optimization result as an Excel workbook with a
// cutting list sheet, an offcut inventory sheet, and a summary sheet.
func ExportExcel(path string, result model.OptimizationResult) error {
	if len(result.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeCuttingList(f, headerStyle, result); err != nil {
		return err
	}
	if err := writeOffcutSheet(f, headerStyle, result); err != nil {
		return err
	}
	if err := writeSummarySheet(f, headerStyle, result); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeCuttingList(f *excelize.File, headerStyle int, result model.OptimizationResult) error {
	const sheet = "Cutting List"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"Panel", "Material", "Piece", "Length (mm)", "Width (mm)", "X (mm)", "Y (mm)", "Rotated", "Reference"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "I1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "I", 14); err != nil {
		return err
	}

	row := 2
	for _, panel := range result.Panels {
		material := fmt.Sprintf("%s %.0fmm", panel.Material.Finish, panel.Material.Thickness)
		for _, p := range panel.Placements {
			values := []interface{}{
				panel.Number, material, p.Piece.Label,
				p.Piece.Length, p.Piece.Width, p.X, p.Y, p.Rotated, p.Piece.Reference,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
			}
			row++
		}
	}

	if len(result.Oversize) > 0 {
		row++
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(sheet, cell, "Oversize pieces (not placed):"); err != nil {
			return err
		}
		for _, p := range result.Oversize {
			row++
			for col, v := range []interface{}{"", "", p.Label, p.Length, p.Width} {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func writeOffcutSheet(f *excelize.File, headerStyle int, result model.OptimizationResult) error {
	const sheet = "Offcuts"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Panel", "Material", "Width (mm)", "Height (mm)", "Area (m²)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "E", 14); err != nil {
		return err
	}

	for i, o := range model.CollectOffcuts(result) {
		material := fmt.Sprintf("%s %.0fmm", o.Finish, o.Thickness)
		values := []interface{}{o.PanelNumber, material, o.Width, o.Height, o.Area() / 1e6}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeSummarySheet(f *excelize.File, headerStyle int, result model.OptimizationResult) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", "Optimization Summary"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 24); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Panels used", result.Stats.TotalPanels},
		{"Mean utilization (%)", result.Stats.GlobalUtilization},
		{"Estimated cuts", result.Stats.TotalCuts},
		{"Oversize pieces", len(result.Oversize)},
		{"Completed", result.Stats.Timestamp.Format("2006-01-02 15:04:05 UTC")},
	}
	for i, r := range rows {
		for col, v := range r {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+3)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return nil
}
