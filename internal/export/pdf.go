package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/paste-calculator/internal/model"
	"github.com/piwi3910/paste-calculator/internal/volume"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	rowHeight    = 6.0
)

// columnWidths spans the printable width: ID, Shape, X, Y, Area, Thickness, Volume, Stepped.
var columnWidths = []float64{15, 28, 22, 22, 28, 25, 28, 12}

// ExportPDF generates a PDF volume report: a statistics header followed by
// the per-pad table, continued across pages as needed.
func ExportPDF(path string, pads []model.Pad, calc *volume.Calculator) error {
	summaries, err := calc.Summaries(pads)
	if err != nil {
		return err
	}
	total, err := calc.TotalVolume(pads)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Solder Paste Volume Report", "", 0, "L", false, 0, "")

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	// Stats line
	stepped := 0
	for _, s := range summaries {
		if s.Stepped {
			stepped++
		}
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+14)
	stats := fmt.Sprintf("Pads: %d | Stepped: %d | Total volume: %.6f", len(summaries), stepped, total)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, stats, "", 0, "L", false, 0, "")

	y := marginTop + 24
	y = renderTableHeader(pdf, y)

	pdf.SetFont("Helvetica", "", 9)
	for _, s := range summaries {
		if y > pageHeight-marginBottom-rowHeight {
			pdf.AddPage()
			y = marginTop
			y = renderTableHeader(pdf, y)
			pdf.SetFont("Helvetica", "", 9)
		}
		cells := []string{
			fmt.Sprintf("%d", s.ID),
			s.Shape,
			fmt.Sprintf("%.4f", s.X),
			fmt.Sprintf("%.4f", s.Y),
			fmt.Sprintf("%.6f", s.Area),
			fmt.Sprintf("%.4f", s.Thickness),
			fmt.Sprintf("%.6f", s.Volume),
			yesNo(s.Stepped),
		}
		renderTableRow(pdf, y, cells)
		y += rowHeight
	}

	return pdf.OutputFileAndClose(path)
}

// renderTableHeader draws the column titles and returns the next row's Y.
func renderTableHeader(pdf *fpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	x := marginLeft
	for i, title := range reportHeader {
		pdf.SetXY(x, y)
		pdf.CellFormat(columnWidths[i], rowHeight, title, "1", 0, "C", true, 0, "")
		x += columnWidths[i]
	}
	return y + rowHeight
}

// renderTableRow draws one pad row at the given Y.
func renderTableRow(pdf *fpdf.Fpdf, y float64, cells []string) {
	x := marginLeft
	for i, cell := range cells {
		pdf.SetXY(x, y)
		align := "R"
		if i == 1 || i == 7 {
			align = "C"
		}
		pdf.CellFormat(columnWidths[i], rowHeight, cell, "1", 0, align, false, 0, "")
		x += columnWidths[i]
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
