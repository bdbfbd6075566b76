package render

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/lumen/parameter"
	"github.com/lixenwraith/lumen/vmath"
)

// Cell is one terminal character cell with opaque colors
// Rune 0 is an empty cell, or the trailing half of a wide rune
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// CellBuffer rasterizes surface primitives onto a character grid
// Surface units map onto cells of parameter.CellWidth x parameter.CellHeight
type CellBuffer struct {
	cells      []Cell // Persistent buffer reused across frames and resizes
	cols       int
	rows       int
	background Color
}

// NewCellBuffer creates a cleared buffer with the given grid dimensions
func NewCellBuffer(cols, rows int, background Color) *CellBuffer {
	b := &CellBuffer{background: background}
	b.Resize(cols, rows)
	return b
}

// Resize adjusts grid dimensions, reallocates only if capacity insufficient
func (b *CellBuffer) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	size := cols * rows
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.cols = cols
	b.rows = rows
	b.Clear()
}

// Grid returns the dimensions in cells
func (b *CellBuffer) Grid() (cols, rows int) {
	return b.cols, b.rows
}

// Cell returns the cell at (col, row), the zero Cell when out of bounds
func (b *CellBuffer) Cell(col, row int) Cell {
	if !b.inBounds(col, row) {
		return Cell{}
	}
	return b.cells[row*b.cols+col]
}

// Row returns the runes of one row with empty cells as spaces
func (b *CellBuffer) Row(row int) string {
	if row < 0 || row >= b.rows {
		return ""
	}
	var sb strings.Builder
	skip := false
	for _, c := range b.cells[row*b.cols : (row+1)*b.cols] {
		if skip {
			// Trailing half of a wide rune
			skip = false
			continue
		}
		if c.Rune == 0 {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteRune(c.Rune)
		skip = runewidth.RuneWidth(c.Rune) == 2
	}
	return sb.String()
}

func (b *CellBuffer) inBounds(col, row int) bool {
	return col >= 0 && col < b.cols && row >= 0 && row < b.rows
}

func (b *CellBuffer) at(col, row int) *Cell {
	if !b.inBounds(col, row) {
		return nil
	}
	return &b.cells[row*b.cols+col]
}

// blendBg composites c over the cell background, the glyph color follows so text stays readable
func (b *CellBuffer) blendBg(col, row int, c Color) {
	if dst := b.at(col, row); dst != nil {
		dst.Bg = Over(dst.Bg, c)
		if dst.Rune == 0 {
			dst.Fg = dst.Bg
		}
	}
}

// ===== SURFACE =====

// Size implements Surface
func (b *CellBuffer) Size() (float64, float64) {
	return float64(b.cols) * parameter.CellWidth, float64(b.rows) * parameter.CellHeight
}

// Clear implements Surface, resets all cells using exponential copy
func (b *CellBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: 0, Fg: b.background, Bg: b.background}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// FillCircle implements Surface
// Discs smaller than half a cell become a dot glyph, larger ones tint every cell whose center they cover
func (b *CellBuffer) FillCircle(x, y, r float64, c Color) {
	if c.A <= 0 || r <= 0 {
		return
	}

	if r < parameter.CellWidth/2 {
		dst := b.at(cellCol(x), cellRow(y))
		if dst == nil {
			return
		}
		dst.Rune = parameter.DotGlyph
		dst.Fg = Over(dst.Bg, c)
		return
	}

	covered := false
	r2 := r * r
	for row := cellRow(y - r); row <= cellRow(y+r); row++ {
		cy := (float64(row) + 0.5) * parameter.CellHeight
		for col := cellCol(x - r); col <= cellCol(x+r); col++ {
			cx := (float64(col) + 0.5) * parameter.CellWidth
			if vmath.DistSq(x, y, cx, cy) <= r2 {
				b.blendBg(col, row, c)
				covered = true
			}
		}
	}
	if !covered {
		b.blendBg(cellCol(x), cellRow(y), c)
	}
}

// StrokeCircle implements Surface
// The band is at least one cell tall so rings stay closed on the coarse grid
func (b *CellBuffer) StrokeCircle(x, y, r, width float64, c Color) {
	if c.A <= 0 || r <= 0 {
		return
	}
	half := math.Max(width, parameter.CellHeight) / 2
	outer := r + half

	for row := cellRow(y - outer); row <= cellRow(y+outer); row++ {
		cy := (float64(row) + 0.5) * parameter.CellHeight
		for col := cellCol(x - outer); col <= cellCol(x+outer); col++ {
			cx := (float64(col) + 0.5) * parameter.CellWidth
			if math.Abs(vmath.Dist(x, y, cx, cy)-r) <= half {
				b.blendBg(col, row, c)
			}
		}
	}
}

// StrokeLine implements Surface, every crossed cell is tinted once regardless of width
func (b *CellBuffer) StrokeLine(x1, y1, x2, y2, width float64, c Color) {
	if c.A <= 0 {
		return
	}
	t := vmath.NewGridTraverser(
		x1/parameter.CellWidth, y1/parameter.CellHeight,
		x2/parameter.CellWidth, y2/parameter.CellHeight,
	)
	for t.Next() {
		col, row := t.Pos()
		b.blendBg(col, row, c)
	}
}

// DrawText implements TextDrawer
// Text is laid out one rune per cell advance; size is ignored since terminal glyphs are fixed
func (b *CellBuffer) DrawText(x, y float64, s string, size float64, c Color) {
	if c.A <= 0 {
		return
	}
	col, row := cellCol(x), cellRow(y)
	if row < 0 || row >= b.rows {
		return
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if dst := b.at(col, row); dst != nil {
			dst.Rune = r
			dst.Fg = Over(dst.Bg, c)
		}
		if w == 2 {
			if dst := b.at(col+1, row); dst != nil {
				dst.Rune = 0
				dst.Fg = Over(dst.Bg, c)
			}
		}
		col += w
		if col >= b.cols {
			return
		}
	}
}

func cellCol(x float64) int {
	return int(math.Floor(x / parameter.CellWidth))
}

func cellRow(y float64) int {
	return int(math.Floor(y / parameter.CellHeight))
}
