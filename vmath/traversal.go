package vmath

import "math"

// GridTraverser is a zero-allocation iterator over every grid cell a segment crosses (supercover DDA)
// Cells are unit squares; (x, y) lies in cell (floor(x), floor(y))
type GridTraverser struct {
	currX, currY     int
	targetX, targetY int
	stepX, stepY     int

	tMaxX, tMaxY     float64
	tDeltaX, tDeltaY float64

	started bool
	done    bool
}

// NewGridTraverser creates an iterator from (x1, y1) to (x2, y2)
func NewGridTraverser(x1, y1, x2, y2 float64) GridTraverser {
	t := GridTraverser{
		currX: int(math.Floor(x1)), currY: int(math.Floor(y1)),
		targetX: int(math.Floor(x2)), targetY: int(math.Floor(y2)),
		stepX: 1, stepY: 1,
	}

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		t.stepX = -1
		dx = -dx
	}
	if dy < 0 {
		t.stepY = -1
		dy = -dy
	}

	fracX := x1 - math.Floor(x1)
	fracY := y1 - math.Floor(y1)

	if dx == 0 {
		t.tMaxX = math.Inf(1)
	} else {
		t.tDeltaX = 1 / dx
		if t.stepX > 0 {
			t.tMaxX = (1 - fracX) * t.tDeltaX
		} else {
			t.tMaxX = fracX * t.tDeltaX
		}
	}

	if dy == 0 {
		t.tMaxY = math.Inf(1)
	} else {
		t.tDeltaY = 1 / dy
		if t.stepY > 0 {
			t.tMaxY = (1 - fracY) * t.tDeltaY
		} else {
			t.tMaxY = fracY * t.tDeltaY
		}
	}

	return t
}

// Next advances to the next cell, returns false once the target cell has been visited
func (t *GridTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}

	if t.currX == t.targetX && t.currY == t.targetY {
		t.done = true
		return false
	}

	switch {
	case t.tMaxX < t.tMaxY:
		if t.currX != t.targetX {
			t.currX += t.stepX
			t.tMaxX += t.tDeltaX
		} else {
			t.currY += t.stepY
			t.tMaxY += t.tDeltaY
		}
	case t.tMaxX > t.tMaxY:
		if t.currY != t.targetY {
			t.currY += t.stepY
			t.tMaxY += t.tDeltaY
		} else {
			t.currX += t.stepX
			t.tMaxX += t.tDeltaX
		}
	default:
		if t.currX != t.targetX {
			t.currX += t.stepX
			t.tMaxX += t.tDeltaX
		}
		if t.currY != t.targetY {
			t.currY += t.stepY
			t.tMaxY += t.tDeltaY
		}
	}

	return true
}

// Pos returns the current cell
func (t *GridTraverser) Pos() (int, int) {
	return t.currX, t.currY
}
