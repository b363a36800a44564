package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// spring animates a single value toward a target, one frame per step.
type spring struct {
	s      harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// newSpring converts stiffness and damping for a unit mass into harmonica's
// angular frequency and damping ratio.
func newSpring(fps int, stiffness, damping float64) spring {
	if fps <= 0 {
		fps = 30
	}
	freq := math.Sqrt(stiffness)
	ratio := damping / (2 * freq)
	return spring{s: harmonica.NewSpring(harmonica.FPS(fps), freq, ratio)}
}

func (s *spring) step() {
	if s.settled() {
		s.pos, s.vel = s.target, 0
		return
	}
	s.pos, s.vel = s.s.Update(s.pos, s.vel, s.target)
}

// snap jumps to v and rests there.
func (s *spring) snap(v float64) {
	s.pos, s.vel, s.target = v, 0, v
}

func (s spring) settled() bool {
	return math.Abs(s.pos-s.target) < 0.01 && math.Abs(s.vel) < 0.01
}

// cells rounds the position to whole terminal cells, clamped to ±limit.
func (s spring) cells(limit int) int {
	v := int(math.Round(s.pos))
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
