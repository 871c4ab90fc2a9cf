// Package gerber implements a line-oriented interpreter for the subset of
// the Gerber photoplotter language needed to recover flash-created pads:
// format specification, circular and rectangular aperture definitions,
// aperture selection, move/draw operations and flashes with absolute
// coordinates. Polygon apertures, arcs, step-and-repeat blocks and layer
// polarity are outside this subset.
package gerber

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/piwi3910/paste-calculator/internal/model"
)

var (
	formatRe = regexp.MustCompile(`^%FSLAX(\d)(\d)Y(\d)(\d)`)
	defineRe = regexp.MustCompile(`^%ADD(\d+)([A-Z]),([\d.X]+)`)
	coordRe  = regexp.MustCompile(`([XY])(-?\d+)`)
	inertRe  = regexp.MustCompile(`^G\d+\*?$`)
)

// Result holds the outcome of interpreting one command stream.
// Warnings collects every line that was skipped or rejected; a clean file
// produces an empty slice.
type Result struct {
	Pads      []model.Pad
	Warnings  []string
	LinesRead int
}

// Problems returns the number of lines that could not be interpreted.
func (r Result) Problems() int {
	return len(r.Warnings)
}

// Parser is the interpreter state machine. Cursor position and the selected
// aperture are modal: they persist across lines until overwritten.
type Parser struct {
	format    *FormatSpec
	scale     float64
	apertures ApertureTable

	curX, curY  float64
	selected    int
	hasSelected bool

	pads        []model.Pad
	warnings    []string
	warnedScale bool
}

// NewParser creates a Parser with scale 1.0 and an empty aperture table.
func NewParser() *Parser {
	return &Parser{
		scale:     1.0,
		apertures: make(ApertureTable),
	}
}

// ParseFile reads and interprets a Gerber file. An unreadable file is the
// only fatal condition; it is reported before any parsing happens.
func ParseFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("cannot read gerber file: %w", err)
	}
	return ParseString(string(data)), nil
}

// Parse interprets a Gerber command stream from a reader.
func Parse(r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("cannot read gerber stream: %w", err)
	}
	return ParseString(string(data)), nil
}

// ParseString interprets a Gerber command stream held in memory. Malformed
// lines never abort the parse: they are skipped, counted and reported in the
// result's Warnings.
func ParseString(content string) Result {
	p := NewParser()
	lines := strings.Split(content, "\n")
	read := 0
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		read++
		p.processLine(line, i+1)
	}
	return Result{
		Pads:      p.pads,
		Warnings:  p.warnings,
		LinesRead: read,
	}
}

// processLine classifies and applies a single non-empty command line.
func (p *Parser) processLine(line string, num int) {
	switch {
	case strings.HasPrefix(line, "%FSLAX"):
		p.parseFormat(line, num)
	case strings.HasPrefix(line, "%ADD"):
		p.parseAperture(line, num)
	case p.isInert(line):
		// Comments, end-of-file, unit mode and bare G-codes carry no
		// pad-relevant information in this subset.
	case strings.HasPrefix(line, "D"):
		p.parseOperation(line, num)
	case strings.HasPrefix(line, "X") || strings.HasPrefix(line, "Y"):
		p.parseCoordinate(line, num)
	default:
		p.warnf("line %d: unrecognized command %q", num, line)
	}
}

// isInert reports whether the line is recognized but irrelevant here.
func (p *Parser) isInert(line string) bool {
	if strings.HasPrefix(line, "G04") || strings.HasPrefix(line, "%MO") {
		return true
	}
	if line == "M02*" || line == "M00*" || line == "M02" || line == "M00" {
		return true
	}
	return inertRe.MatchString(line)
}

// parseFormat applies a format specification line, e.g. %FSLAX36Y36*%.
// The X decimal digit count sets the coordinate scale.
func (p *Parser) parseFormat(line string, num int) {
	m := formatRe.FindStringSubmatch(line)
	if m == nil {
		p.warnf("line %d: malformed format specification %q", num, line)
		return
	}
	xInt, _ := strconv.Atoi(m[1])
	xDec, _ := strconv.Atoi(m[2])
	p.format = &FormatSpec{IntDigits: xInt, DecDigits: xDec}
	p.scale = p.format.Scale()
}

// parseAperture applies an aperture definition line, e.g. %ADD10C,0.0100*%.
// Rectangles may carry an X-separated second size; without one they default
// to squares. Redefinition of an existing code overwrites silently.
func (p *Parser) parseAperture(line string, num int) {
	m := defineRe.FindStringSubmatch(line)
	if m == nil {
		p.warnf("line %d: malformed aperture definition %q", num, line)
		return
	}
	code, err := strconv.Atoi(m[1])
	if err != nil || code <= 0 {
		p.warnf("line %d: bad aperture code in %q", num, line)
		return
	}

	params := strings.Split(m[3], "X")
	sizes := make([]float64, 0, len(params))
	for _, s := range params {
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			p.warnf("line %d: bad aperture parameter %q", num, s)
			return
		}
		sizes = append(sizes, v)
	}
	if len(sizes) == 0 {
		p.warnf("line %d: aperture definition %q has no size", num, line)
		return
	}

	switch m[2] {
	case "C":
		p.apertures.Define(Aperture{Code: code, Shape: ApertureCircle, Size: sizes[0], SecondSize: sizes[0]})
	case "R":
		second := sizes[0]
		if len(sizes) > 1 {
			second = sizes[1]
		}
		p.apertures.Define(Aperture{Code: code, Shape: ApertureRectangle, Size: sizes[0], SecondSize: second})
	default:
		p.warnf("line %d: unsupported aperture type %q", num, m[2])
	}
}

// parseOperation applies a bare D-code line: D01/D02 update nothing on their
// own (the cursor only moves with coordinates), D03 flashes at the current
// cursor, and any other numeric code selects an aperture. Selecting a code
// that was never defined is accepted; the failure surfaces at flash time.
func (p *Parser) parseOperation(line string, num int) {
	code := strings.TrimSuffix(strings.TrimPrefix(line, "D"), "*")
	n, err := strconv.Atoi(code)
	if err != nil {
		p.warnf("line %d: unrecognized operation %q", num, line)
		return
	}
	switch n {
	case 1, 2:
		// Draw and move operations; no coordinates on this line, so the
		// cursor stays where it is.
	case 3:
		p.flash(num)
	default:
		p.selected = n
		p.hasSelected = true
	}
}

// parseCoordinate applies a coordinate line such as X7550Y3850D03*. Axes are
// modal: only the axes present on the line are updated. A trailing D03
// triggers a flash at the updated position.
func (p *Parser) parseCoordinate(line string, num int) {
	if p.format == nil && !p.warnedScale {
		p.warnf("line %d: coordinates before any format specification; assuming scale 1.0", num)
		p.warnedScale = true
	}

	matches := coordRe.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		p.warnf("line %d: coordinate line %q has no parseable axis values", num, line)
		return
	}
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		switch m[1] {
		case "X":
			p.curX = v * p.scale
		case "Y":
			p.curY = v * p.scale
		}
	}

	if strings.Contains(line, "D03") || strings.Contains(line, "D3*") {
		p.flash(num)
	}
}

// flash stamps a pad at the current cursor with the selected aperture.
// Missing or unknown apertures and degenerate sizes reject the flash
// without consuming a pad ID.
func (p *Parser) flash(num int) {
	if !p.hasSelected {
		p.warnf("line %d: flash with no aperture selected", num)
		return
	}
	ap, ok := p.apertures.Lookup(p.selected)
	if !ok {
		p.warnf("line %d: flash with undefined aperture D%d", num, p.selected)
		return
	}

	center := model.Point2D{X: p.curX, Y: p.curY}
	id := len(p.pads) + 1

	var pad model.Pad
	switch ap.Shape {
	case ApertureCircle:
		pad = model.NewCirclePad(id, center, ap.Size)
	case ApertureRectangle:
		pad = model.NewRectPad(id, center, ap.Size, ap.SecondSize)
	default:
		p.warnf("line %d: aperture D%d has unsupported shape", num, ap.Code)
		return
	}

	if pad.Area <= 0 {
		p.warnf("line %d: aperture D%d yields non-positive pad area", num, ap.Code)
		return
	}
	p.pads = append(p.pads, pad)
}

func (p *Parser) warnf(format string, args ...interface{}) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}
