package parameter

// Landing Layout (surface units)
const (
	// SceneMargin is the horizontal page margin of the nav row
	SceneMargin = 32.0

	// SceneNavY is the top of the nav row
	SceneNavY = 24.0

	// SceneNavGap separates nav items
	SceneNavGap = 28.0

	// SceneBadgeY is the badge row as a fraction of viewport height
	SceneBadgeY = 0.16

	// SceneHeadlineInset is the horizontal inset the headline is fitted inside
	SceneHeadlineInset = 64.0

	// SceneHeadlineMin/Max clamp the fitted headline size
	SceneHeadlineMin = 16.0
	SceneHeadlineMax = 64.0

	// SceneTextSize is the body text size
	SceneTextSize = 14.0

	// SceneLineHeight is the body line advance
	SceneLineHeight = 20.0

	// SceneSectionGap separates vertical sections
	SceneSectionGap = 36.0

	// SceneRuleWidth is the full width of a revealed horizontal rule, capped by the viewport
	SceneRuleWidth = 720.0

	// SceneStatSpacing separates counter centers
	SceneStatSpacing = 180.0

	// SceneActionPad is the padding around action labels used for hit regions
	SceneActionPad = 12.0
)
