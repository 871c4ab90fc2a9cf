// Package volume derives per-pad and aggregate solder-paste volumes from
// pad areas and effective deposit thicknesses.
package volume

import (
	"fmt"

	"github.com/piwi3910/paste-calculator/internal/model"
	"github.com/piwi3910/paste-calculator/internal/thickness"
)

// PadVolume computes area x thickness for one pad. Zero area contributes
// zero volume; negative area or thickness cannot arise from the parser or
// the thickness manager and is rejected as a logic error.
func PadVolume(pad model.Pad, t float64) (float64, error) {
	if pad.Area < 0 {
		return 0, fmt.Errorf("pad %d has negative area %g", pad.ID, pad.Area)
	}
	if t < 0 {
		return 0, fmt.Errorf("pad %d has negative thickness %g", pad.ID, t)
	}
	return pad.Area * t, nil
}

// PadSummary is the tabular view of one pad for display and export.
type PadSummary struct {
	ID        int     `json:"id"`
	Shape     string  `json:"shape"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Area      float64 `json:"area"`
	Thickness float64 `json:"thickness"`
	Volume    float64 `json:"volume"`
	Stepped   bool    `json:"stepped"` // true when an override is in effect
}

// Calculator resolves effective thicknesses through a thickness manager.
// A nil manager means every pad is at its default thickness.
type Calculator struct {
	Overrides *thickness.Manager
}

// NewCalculator creates a Calculator backed by the given manager.
func NewCalculator(m *thickness.Manager) *Calculator {
	return &Calculator{Overrides: m}
}

// EffectiveThickness returns the pad's override if grouped, else its default.
func (c *Calculator) EffectiveThickness(pad model.Pad) float64 {
	if c.Overrides == nil {
		return pad.Thickness
	}
	return c.Overrides.Thickness(pad.ID, pad.Thickness)
}

// PadVolume computes the pad's volume at its effective thickness.
func (c *Calculator) PadVolume(pad model.Pad) (float64, error) {
	return PadVolume(pad, c.EffectiveThickness(pad))
}

// TotalVolume sums the volumes of all pads.
func (c *Calculator) TotalVolume(pads []model.Pad) (float64, error) {
	var total float64
	for _, pad := range pads {
		v, err := c.PadVolume(pad)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// Summary builds the tabular view of one pad.
func (c *Calculator) Summary(pad model.Pad) (PadSummary, error) {
	t := c.EffectiveThickness(pad)
	v, err := PadVolume(pad, t)
	if err != nil {
		return PadSummary{}, err
	}
	stepped := c.Overrides != nil && c.Overrides.HasOverride(pad.ID)
	return PadSummary{
		ID:        pad.ID,
		Shape:     pad.Shape.String(),
		X:         pad.Center.X,
		Y:         pad.Center.Y,
		Area:      pad.Area,
		Thickness: t,
		Volume:    v,
		Stepped:   stepped,
	}, nil
}

// Summaries builds the tabular view for a pad collection.
func (c *Calculator) Summaries(pads []model.Pad) ([]PadSummary, error) {
	out := make([]PadSummary, 0, len(pads))
	for _, pad := range pads {
		s, err := c.Summary(pad)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
