package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"github.com/piwi3910/paste-calculator/internal/model"
)

// ExportDXF writes the pad geometry to a DXF file on a dedicated "PADS"
// layer: circles for circular pads, closed polylines for rectangular ones.
// Downstream CAM and inspection tools consume this layout.
func ExportDXF(path string, pads []model.Pad) error {
	d := dxf.NewDrawing()
	if _, err := d.AddLayer("PADS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}

	for _, pad := range pads {
		switch pad.Shape {
		case model.ShapeCircle:
			if _, err := d.Circle(pad.Center.X, pad.Center.Y, 0.0, pad.Radius()); err != nil {
				return fmt.Errorf("pad %d: %w", pad.ID, err)
			}
		case model.ShapeRectangle:
			min, max := pad.Bounds()
			_, err := d.LwPolyline(true,
				[]float64{min.X, min.Y, 0.0},
				[]float64{max.X, min.Y, 0.0},
				[]float64{max.X, max.Y, 0.0},
				[]float64{min.X, max.Y, 0.0},
			)
			if err != nil {
				return fmt.Errorf("pad %d: %w", pad.ID, err)
			}
		default:
			return fmt.Errorf("pad %d: unsupported shape %s", pad.ID, pad.Shape)
		}
	}

	return d.SaveAs(path)
}
