package globe

import (
	"math"
	"strings"
	"testing"
)

func TestRender_Dimensions(t *testing.T) {
	g := NewASCII()
	for _, size := range []int{1, 2, 9, 24} {
		lines := g.Render(0, size)
		wantRows := size / 2
		if wantRows < 1 {
			wantRows = 1
		}
		if len(lines) != wantRows {
			t.Fatalf("Render(0, %d) rows = %d, want %d", size, len(lines), wantRows)
		}
		for i, line := range lines {
			if len(line) != size {
				t.Fatalf("Render(0, %d) line %d width = %d, want %d", size, i, len(line), size)
			}
		}
	}
}

func TestRender_ZeroSize(t *testing.T) {
	if lines := NewASCII().Render(0, 0); lines != nil {
		t.Fatalf("Render(0, 0) = %v, want nil", lines)
	}
}

func TestRender_CornersBlankCentreFilled(t *testing.T) {
	lines := NewASCII().Render(0, 24)
	first, last := lines[0], lines[len(lines)-1]
	if first[0] != ' ' || first[len(first)-1] != ' ' || last[0] != ' ' {
		t.Fatalf("corners should be blank, got %q / %q", first, last)
	}
	mid := lines[len(lines)/2]
	if mid[len(mid)/2] == ' ' {
		t.Fatalf("centre should be shaded, got %q", mid)
	}
}

func TestRender_RotationChangesSurface(t *testing.T) {
	g := NewASCII()
	a := strings.Join(g.Render(0, 24), "\n")
	b := strings.Join(g.Render(math.Pi/2, 24), "\n")
	if a == b {
		t.Fatalf("rotating a quarter turn produced an identical frame")
	}
	c := strings.Join(g.Render(2*math.Pi, 24), "\n")
	if a != c {
		t.Fatalf("a full turn should produce the original frame")
	}
}

func TestSize(t *testing.T) {
	cases := []struct {
		width, max, want int
	}{
		{100, 24, 24},
		{20, 24, 16},
		{0, 24, 0},
		{-5, 24, 0},
	}
	for _, tc := range cases {
		if got := Size(tc.width, tc.max); got != tc.want {
			t.Fatalf("Size(%d, %d) = %d, want %d", tc.width, tc.max, got, tc.want)
		}
	}
}

func TestSpinner_StepWraps(t *testing.T) {
	s := Spinner{Angle: 2*math.Pi - 0.05, Rate: 0.1}
	s.Step()
	if s.Angle < 0 || s.Angle >= 2*math.Pi {
		t.Fatalf("Angle = %v, want within [0, 2π)", s.Angle)
	}
	if math.Abs(s.Angle-0.05) > 1e-9 {
		t.Fatalf("Angle = %v, want 0.05", s.Angle)
	}

	neg := Spinner{Angle: 0.02, Rate: -0.05}
	neg.Step()
	if neg.Angle < 0 {
		t.Fatalf("negative rate Angle = %v, want non-negative", neg.Angle)
	}
}
