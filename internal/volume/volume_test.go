package volume

import (
	"math"
	"testing"

	"github.com/piwi3910/paste-calculator/internal/model"
	"github.com/piwi3910/paste-calculator/internal/thickness"
)

func TestPadVolumeBasic(t *testing.T) {
	pad := model.NewRectPad(1, model.Point2D{}, 2.0, 3.0)
	v, err := PadVolume(pad, 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(v-1.2) > 1e-12 {
		t.Errorf("expected volume 1.2, got %g", v)
	}
}

func TestPadVolumeZeroAreaIsZero(t *testing.T) {
	pad := model.Pad{ID: 1, Area: 0, Thickness: 0.15}
	v, err := PadVolume(pad, 0.15)
	if err != nil {
		t.Fatalf("zero area must not be an error: %v", err)
	}
	if v != 0 {
		t.Errorf("expected 0 volume, got %g", v)
	}
}

func TestPadVolumeRejectsNegativeInputs(t *testing.T) {
	if _, err := PadVolume(model.Pad{ID: 1, Area: -1}, 0.15); err == nil {
		t.Error("negative area must be rejected")
	}
	if _, err := PadVolume(model.Pad{ID: 1, Area: 1}, -0.1); err == nil {
		t.Error("negative thickness must be rejected")
	}
}

func TestCalculatorUsesOverrides(t *testing.T) {
	pads := []model.Pad{
		model.NewRectPad(1, model.Point2D{}, 1.0, 1.0), // area 1
		model.NewRectPad(2, model.Point2D{}, 2.0, 1.0), // area 2
	}
	m := thickness.NewManager()
	m.SetThickness([]int{2}, 0.5)
	calc := NewCalculator(m)

	v1, err := calc.PadVolume(pads[0])
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v1-model.DefaultThickness) > 1e-12 {
		t.Errorf("ungrouped pad must use default thickness: got %g", v1)
	}

	v2, err := calc.PadVolume(pads[1])
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v2-1.0) > 1e-12 {
		t.Errorf("grouped pad must use override: expected 1.0, got %g", v2)
	}

	total, err := calc.TotalVolume(pads)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(total-(v1+v2)) > 1e-12 {
		t.Errorf("total %g != %g + %g", total, v1, v2)
	}
}

func TestCalculatorNilManager(t *testing.T) {
	pad := model.NewCirclePad(1, model.Point2D{}, 1.0)
	calc := &Calculator{}
	v, err := calc.PadVolume(pad)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v-pad.Volume()) > 1e-12 {
		t.Errorf("nil manager must mean default thickness: got %g, want %g", v, pad.Volume())
	}
}

func TestSummaryFlagsSteppedPads(t *testing.T) {
	pads := []model.Pad{
		model.NewCirclePad(1, model.Point2D{X: 1, Y: 2}, 0.1),
		model.NewRectPad(2, model.Point2D{}, 0.5, 0.5),
	}
	m := thickness.NewManager()
	m.SetThickness([]int{1}, 0.22)
	calc := NewCalculator(m)

	summaries, err := calc.Summaries(pads)
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	s := summaries[0]
	if !s.Stepped || s.Thickness != 0.22 || s.Shape != "circle" {
		t.Errorf("unexpected summary for stepped pad: %+v", s)
	}
	if s.X != 1 || s.Y != 2 {
		t.Errorf("summary must carry the pad position, got (%g,%g)", s.X, s.Y)
	}
	if summaries[1].Stepped {
		t.Error("ungrouped pad must not be flagged as stepped")
	}
	if summaries[1].Thickness != model.DefaultThickness {
		t.Errorf("expected default thickness, got %g", summaries[1].Thickness)
	}
}
