// Package globe draws the decorative rotating earth shown beside the hero
// title. It is a renderer only: callers own the rotation angle and the
// viewport size.
package globe

import (
	"math"
	"strings"
)

// Renderer turns a rotation angle (radians about the vertical axis) and a
// width in terminal cells into lines of text.
type Renderer interface {
	Render(angle float64, size int) []string
}

// atmosphere is the rim radius relative to the planet.
const atmosphere = 1.05

// ASCII shades a sphere with character ramps: one for land, one for ocean,
// and a single rim character for the atmosphere.
type ASCII struct {
	Land  string
	Ocean string
	Rim   byte
}

// NewASCII returns the default renderer.
func NewASCII() ASCII {
	return ASCII{Land: "+*#%@", Ocean: ".:-=", Rim: '\''}
}

// Render implements Renderer. Cells are roughly twice as tall as wide, so a
// sphere size cells wide is size/2 rows tall.
func (a ASCII) Render(angle float64, size int) []string {
	if size <= 0 {
		return nil
	}
	rows := size / 2
	if rows < 1 {
		rows = 1
	}
	lines := make([]string, rows)
	var b strings.Builder
	for r := 0; r < rows; r++ {
		b.Reset()
		y := (1 - 2*(float64(r)+0.5)/float64(rows)) * atmosphere
		for c := 0; c < size; c++ {
			x := (2*(float64(c)+0.5)/float64(size) - 1) * atmosphere
			b.WriteByte(a.shade(x, y, angle))
		}
		lines[r] = b.String()
	}
	return lines
}

func (a ASCII) shade(x, y, angle float64) byte {
	d2 := x*x + y*y
	switch {
	case d2 > atmosphere*atmosphere:
		return ' '
	case d2 > 1:
		return a.Rim
	}
	z := math.Sqrt(1 - d2)
	lat := math.Asin(y)
	lon := math.Atan2(x, z) + angle

	ramp := a.Ocean
	if isLand(lon, lat) {
		ramp = a.Land
	}
	if ramp == "" {
		return ' '
	}
	// Light comes from the viewer, slightly from the upper left.
	light := clamp(0.75*z+0.25*(y-x)/2+0.1, 0, 0.999)
	return ramp[int(light*float64(len(ramp)))]
}

// isLand is a fixed pseudo-continent mask over longitude/latitude.
func isLand(lon, lat float64) bool {
	v := math.Sin(2*lon)*math.Cos(3*lat) +
		0.6*math.Sin(3*lon+1.3)*math.Sin(2*lat+0.4) +
		0.3*math.Cos(5*lon-2*lat)
	return v > 0.35
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Size returns the globe width for a viewport width: 80% of the viewport,
// capped at max.
func Size(width, max int) int {
	size := int(float64(width) * 0.8)
	if size > max {
		size = max
	}
	if size < 0 {
		return 0
	}
	return size
}

// Spinner advances the rotation by a fixed amount per frame.
type Spinner struct {
	Angle float64
	Rate  float64 // radians per frame
}

// Step advances one frame, keeping Angle in [0, 2π).
func (s *Spinner) Step() {
	s.Angle = math.Mod(s.Angle+s.Rate, 2*math.Pi)
	if s.Angle < 0 {
		s.Angle += 2 * math.Pi
	}
}
