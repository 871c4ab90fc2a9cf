// Package model defines the geometric pad records produced by the Gerber
// interpreter and consumed by the volume calculator and exporters.
package model

import "math"

// DefaultThickness is the paste deposit thickness assigned to every pad at
// creation time: 0.15 length units (150 microns when coordinates are in mm).
const DefaultThickness = 0.15

// ShapeKind identifies the geometric shape of a pad.
type ShapeKind int

const (
	ShapeCircle    ShapeKind = iota // Disc centred on the flash position
	ShapeRectangle                  // Axis-aligned rectangle centred on the flash position
	ShapePolygon                    // Reserved for future aperture shapes
)

func (s ShapeKind) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRectangle:
		return "rectangle"
	case ShapePolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Point2D represents a 2D coordinate in board length units.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pad represents a single solderable contact recovered from a flash
// operation. Pads are immutable once created; thickness overrides live in
// the thickness manager, keyed by pad ID.
type Pad struct {
	ID        int       `json:"id"` // 1-based, assigned in creation order
	Shape     ShapeKind `json:"shape"`
	Center    Point2D   `json:"center"`
	SizeX     float64   `json:"size_x"` // bounding extent along X; diameter for circles
	SizeY     float64   `json:"size_y"` // bounding extent along Y; diameter for circles
	Area      float64   `json:"area"`
	Thickness float64   `json:"thickness"` // default deposit thickness
}

// NewCirclePad creates a circular pad centred at the given point.
func NewCirclePad(id int, center Point2D, diameter float64) Pad {
	r := diameter / 2
	return Pad{
		ID:        id,
		Shape:     ShapeCircle,
		Center:    center,
		SizeX:     diameter,
		SizeY:     diameter,
		Area:      math.Pi * r * r,
		Thickness: DefaultThickness,
	}
}

// NewRectPad creates an axis-aligned rectangular pad centred at the given point.
func NewRectPad(id int, center Point2D, width, height float64) Pad {
	return Pad{
		ID:        id,
		Shape:     ShapeRectangle,
		Center:    center,
		SizeX:     width,
		SizeY:     height,
		Area:      width * height,
		Thickness: DefaultThickness,
	}
}

// Radius returns the pad radius. Only meaningful for circular pads.
func (p Pad) Radius() float64 {
	return p.SizeX / 2
}

// Bounds returns the min and max corners of the pad's bounding rectangle.
// For rectangular pads this is the pad geometry itself.
func (p Pad) Bounds() (min, max Point2D) {
	min = Point2D{X: p.Center.X - p.SizeX/2, Y: p.Center.Y - p.SizeY/2}
	max = Point2D{X: p.Center.X + p.SizeX/2, Y: p.Center.Y + p.SizeY/2}
	return min, max
}

// Length returns the longest bounding extent of the pad.
// For a circle this equals the diameter.
func (p Pad) Length() float64 {
	return math.Max(p.SizeX, p.SizeY)
}

// Width returns the shortest bounding extent of the pad.
// For a circle this equals the diameter.
func (p Pad) Width() float64 {
	return math.Min(p.SizeX, p.SizeY)
}

// Volume returns the paste volume at the pad's default thickness.
func (p Pad) Volume() float64 {
	return p.Area * p.Thickness
}
