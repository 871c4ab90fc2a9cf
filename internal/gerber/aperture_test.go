package gerber

import (
	"math"
	"testing"
)

func TestFormatSpecScale(t *testing.T) {
	cases := []struct {
		dec  int
		want float64
	}{
		{3, 0.001},
		{4, 0.0001},
		{6, 0.000001},
		{0, 1.0},
	}
	for _, c := range cases {
		fs := FormatSpec{IntDigits: 2, DecDigits: c.dec}
		if math.Abs(fs.Scale()-c.want) > 1e-15 {
			t.Errorf("Scale() with %d decimals = %g, want %g", c.dec, fs.Scale(), c.want)
		}
	}
}

func TestApertureTableDefineAndLookup(t *testing.T) {
	table := make(ApertureTable)
	table.Define(Aperture{Code: 10, Shape: ApertureCircle, Size: 0.1, SecondSize: 0.1})

	a, ok := table.Lookup(10)
	if !ok {
		t.Fatal("expected aperture 10 to be defined")
	}
	if a.Shape != ApertureCircle || a.Size != 0.1 {
		t.Errorf("unexpected aperture: %+v", a)
	}
	if _, ok := table.Lookup(11); ok {
		t.Error("lookup of undefined aperture should fail")
	}
}

func TestApertureRedefinitionOverwrites(t *testing.T) {
	table := make(ApertureTable)
	table.Define(Aperture{Code: 10, Shape: ApertureCircle, Size: 0.1, SecondSize: 0.1})
	table.Define(Aperture{Code: 10, Shape: ApertureRectangle, Size: 0.5, SecondSize: 0.25})

	a, _ := table.Lookup(10)
	if a.Shape != ApertureRectangle || a.Size != 0.5 || a.SecondSize != 0.25 {
		t.Errorf("redefinition should overwrite silently, got %+v", a)
	}
}
