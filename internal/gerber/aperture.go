package gerber

import "math"

// ApertureShape identifies the template shape of an aperture definition.
type ApertureShape int

const (
	ApertureCircle ApertureShape = iota
	ApertureRectangle
)

func (s ApertureShape) String() string {
	switch s {
	case ApertureCircle:
		return "circle"
	case ApertureRectangle:
		return "rectangle"
	default:
		return "unknown"
	}
}

// Aperture is a tool definition used to stamp pads at flash operations.
type Aperture struct {
	Code       int           // D-code identifier, e.g. 10 for D10
	Shape      ApertureShape
	Size       float64 // diameter for circles, width for rectangles
	SecondSize float64 // rectangle height; equals Size for squares
}

// ApertureTable maps D-code identifiers to aperture definitions.
// Redefining an existing code overwrites the previous definition silently;
// some non-conformant files rely on this.
type ApertureTable map[int]Aperture

// Define inserts or overwrites an aperture definition.
func (t ApertureTable) Define(a Aperture) {
	t[a.Code] = a
}

// Lookup returns the aperture for the given code.
func (t ApertureTable) Lookup(code int) (Aperture, bool) {
	a, ok := t[code]
	return a, ok
}

// FormatSpec holds the coordinate format declared by an %FSLA command:
// the number of integer and decimal digits in raw coordinate values.
type FormatSpec struct {
	IntDigits int
	DecDigits int
}

// Scale returns the factor converting raw integer coordinates to board
// length units: 10^-DecDigits.
func (f FormatSpec) Scale() float64 {
	return math.Pow(10, -float64(f.DecDigits))
}
