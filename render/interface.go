package render

// Surface is the 2D drawing target consumed by effects
// Coordinates are surface units; backends map them to cells or device pixels
type Surface interface {
	// Size returns the drawable extent in surface units
	Size() (w, h float64)
	// Clear erases everything drawn since the last Clear
	Clear()
	// FillCircle draws a filled disc
	FillCircle(x, y, r float64, c Color)
	// StrokeCircle draws a circle outline of the given line width
	StrokeCircle(x, y, r, width float64, c Color)
	// StrokeLine draws a segment of the given line width
	StrokeLine(x1, y1, x2, y2, width float64, c Color)
}

// TextDrawer is optionally implemented by surfaces that can place text
// (x, y) is the top-left of the text box; size is the font size in surface units
type TextDrawer interface {
	DrawText(x, y float64, s string, size float64, c Color)
}
