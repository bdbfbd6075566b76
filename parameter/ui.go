package parameter

// Terminal Cell Geometry
// Terminal backends map surface units onto cells of this virtual size so pixel-based tunables keep their meaning
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Glyphs
const (
	// DotGlyph marks a sub-cell disc in a terminal cell
	DotGlyph = '·'

	// RingGlyph marks a cell on a stroked circle
	RingGlyph = '○'
)

// Backdrop Grid
const (
	// GridSpacing is the distance between backdrop grid lines
	GridSpacing = 80.0

	// GridAlpha is the backdrop grid line opacity
	GridAlpha = 0.018
)

// HUD
const (
	// HUDVisible toggles the metrics line in the terminal demo
	HUDVisible = false
)
