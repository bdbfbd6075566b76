package parameter

// Pointer Smoothing
const (
	// PointerSmoothing is the fraction of the remaining gap the ring closes each frame
	PointerSmoothing = 0.12
)

// Cursor Geometry (surface units)
const (
	// CursorDotRadius is half the 6-unit dot tracking the raw pointer
	CursorDotRadius = 3.0

	// CursorRingRadius is half the 36-unit ring tracking the smoothed pointer
	CursorRingRadius = 18.0

	// CursorRingWidth is the ring stroke width
	CursorRingWidth = 1.0

	// CursorRingAlpha is the ring stroke opacity at rest
	CursorRingAlpha = 0.5

	// CursorSpotlightRadius is the radius of the low-alpha disc under the raw pointer
	CursorSpotlightRadius = 220.0

	// CursorSpotlightAlpha is the spotlight opacity
	CursorSpotlightAlpha = 0.05
)

// Hover Scaling
const (
	// CursorHoverScale is the ring scale target while over an interactive element
	CursorHoverScale = 2.2

	// CursorScaleFrequency is the angular frequency of the scale spring
	CursorScaleFrequency = 9.0

	// CursorScaleDamping of 1 is critically damped: no overshoot
	CursorScaleDamping = 1.0
)

// InteractiveKinds are node kinds that switch the cursor into its hover state
var InteractiveKinds = []string{"a", "button"}
