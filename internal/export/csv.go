package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/piwi3910/paste-calculator/internal/model"
	"github.com/piwi3910/paste-calculator/internal/volume"
)

// ExportCSV writes the volume report as comma-separated values with the
// same columns as the Excel report.
func ExportCSV(path string, pads []model.Pad, calc *volume.Calculator) error {
	summaries, err := calc.Summaries(pads)
	if err != nil {
		return err
	}
	total, err := calc.TotalVolume(pads)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(reportHeader); err != nil {
		return err
	}
	for _, s := range summaries {
		record := []string{
			strconv.Itoa(s.ID),
			s.Shape,
			formatFloat(s.X),
			formatFloat(s.Y),
			formatFloat(s.Area),
			formatFloat(s.Thickness),
			formatFloat(s.Volume),
			strconv.FormatBool(s.Stepped),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	if err := w.Write([]string{"Total volume", "", "", "", "", "", formatFloat(total), ""}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
