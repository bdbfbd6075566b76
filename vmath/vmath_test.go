package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		size float64
		want float64
	}{
		{"inside", 12.5, 100, 12.5},
		{"zero", 0, 100, 0},
		{"at upper bound", 100, 100, 0},
		{"just past", 100.25, 100, 0.25},
		{"negative", -0.5, 100, 99.5},
		{"far negative", -250, 100, 50},
		{"far positive", 730, 100, 30},
		{"zero size", 42, 0, 0},
		{"negative size", 42, -10, 0},
		{"nan", math.NaN(), 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Wrap(tt.v, tt.size), 1e-9)
		})
	}
}

func TestWrap_TinyNegativeStaysInRange(t *testing.T) {
	got := Wrap(-1e-18, 800)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.Less(t, got, 800.0)
}

func TestClamp_NonFinite(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(math.NaN()))
	assert.Equal(t, 1.0, Clamp01(math.Inf(1)))
	assert.Equal(t, 0.0, Clamp01(math.Inf(-1)))
	assert.Equal(t, 2.0, Clamp(math.NaN(), 2, 5))
}

func TestFinite(t *testing.T) {
	assert.Equal(t, 0.5, Finite(0.5, 1))
	assert.Equal(t, 1.0, Finite(math.NaN(), 1))
	assert.Equal(t, 1.0, Finite(math.Inf(1), 1))
	assert.Equal(t, 1.0, Finite(math.Inf(-1), 1))
}

func TestApproach_NoOvershoot(t *testing.T) {
	v := 0.0
	prev := v
	for i := 0; i < 200; i++ {
		v = Approach(v, 100, 0.12)
		assert.GreaterOrEqual(t, v, prev, "step %d regressed", i)
		assert.LessOrEqual(t, v, 100.0, "step %d overshot", i)
		prev = v
	}
	assert.InDelta(t, 100, v, 1e-6)
}

func TestDist(t *testing.T) {
	assert.Equal(t, 25.0, DistSq(0, 0, 3, 4))
	assert.Equal(t, 5.0, Dist(0, 0, 3, 4))
	assert.Equal(t, 5.0, Vec2{1, 1}.DistTo(Vec2{4, 5}))
}

func TestCubicBezier_Endpoints(t *testing.T) {
	for _, e := range []Easing{Ease, EaseOutExpo, EaseStandard, EaseInOut, EaseLinear, EaseInQuad} {
		assert.Equal(t, 0.0, e(0))
		assert.Equal(t, 1.0, e(1))
		assert.Equal(t, 0.0, e(-3))
		assert.Equal(t, 1.0, e(7))
	}
}

func TestCubicBezier_Monotonic(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseOutExpo(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev-1e-9)
		prev = v
	}
}

func TestCubicBezier_LinearCurve(t *testing.T) {
	c := CubicBezier{0.3, 0.3, 0.7, 0.7}
	assert.InDelta(t, 0.42, c.Ease(0.42), 1e-9)
}

func TestCubicBezier_OutExpoIsFront(t *testing.T) {
	// Strong ease-out: most progress happens early
	assert.Greater(t, EaseOutExpo(0.25), 0.5)
}

func TestGridTraverser_Diagonal(t *testing.T) {
	tr := NewGridTraverser(0.5, 0.5, 3.5, 0.5)
	var cells [][2]int
	for tr.Next() {
		x, y := tr.Pos()
		cells = append(cells, [2]int{x, y})
	}
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, cells)
}

func TestGridTraverser_SinglePoint(t *testing.T) {
	tr := NewGridTraverser(2.2, 3.3, 2.7, 3.9)
	n := 0
	for tr.Next() {
		n++
	}
	assert.Equal(t, 1, n)
}

func TestGridTraverser_ReachesTarget(t *testing.T) {
	tr := NewGridTraverser(10.2, 1.7, 0.4, 7.9)
	var last [2]int
	steps := 0
	for tr.Next() {
		x, y := tr.Pos()
		last = [2]int{x, y}
		steps++
		if steps > 100 {
			t.Fatal("traverser did not terminate")
		}
	}
	assert.Equal(t, [2]int{0, 7}, last)
}
