// Package export writes per-pad volume reports and pad geometry to
// external file formats.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/paste-calculator/internal/model"
	"github.com/piwi3910/paste-calculator/internal/volume"
)

// reportHeader is the column layout shared by the Excel and CSV reports.
var reportHeader = []string{"Pad ID", "Shape", "X", "Y", "Area", "Thickness", "Volume", "Stepped"}

// ExportExcel writes the volume report to an .xlsx workbook: one row per
// pad plus a total-volume footer.
func ExportExcel(path string, pads []model.Pad, calc *volume.Calculator) error {
	summaries, err := calc.Summaries(pads)
	if err != nil {
		return err
	}
	total, err := calc.TotalVolume(pads)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for col, title := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	for i, s := range summaries {
		row := i + 2
		values := []interface{}{s.ID, s.Shape, s.X, s.Y, s.Area, s.Thickness, s.Volume, s.Stepped}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	footer := len(summaries) + 2
	totalLabel, err := excelize.CoordinatesToCellName(1, footer)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, totalLabel, "Total volume"); err != nil {
		return err
	}
	totalCell, err := excelize.CoordinatesToCellName(7, footer)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, totalCell, total); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot write Excel report: %w", err)
	}
	return nil
}
