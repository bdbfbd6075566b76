package parameter

// Auto-Fit Text
const (
	// FitReferenceSize is the font size at which text is measured before scaling
	FitReferenceSize = 100.0

	// FitCellAdvance is the horizontal advance of one terminal cell per unit of font size
	FitCellAdvance = 0.6
)
