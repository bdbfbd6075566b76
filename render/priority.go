package render

// Priority determines layer composite order. Lower values render first
type Priority int

const (
	PriorityBackground Priority = iota * 100
	PriorityParticle
	PriorityText
	PriorityUI
	PriorityCursor
	PriorityOverlay
	PriorityDebug
)
