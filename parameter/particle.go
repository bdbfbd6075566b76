package parameter

// Particle Field
const (
	// ParticleCount is the number of particles seeded per field
	ParticleCount = 55

	// ParticleRadiusMin/Span: radius drawn uniformly from [min, min+span) surface units
	ParticleRadiusMin  = 0.2
	ParticleRadiusSpan = 1.2

	// ParticleVelocitySpan: each velocity component is drawn from [-span/2, span/2) units per frame
	ParticleVelocitySpan = 0.18

	// ParticleAlphaMin/Span: per-particle opacity drawn from [min, min+span)
	ParticleAlphaMin  = 0.08
	ParticleAlphaSpan = 0.45
)

// Proximity Links
const (
	// ParticleLinkDistance is the exclusive distance under which two particles are linked
	ParticleLinkDistance = 110.0

	// ParticleLinkOpacity is the link opacity at zero distance, fading linearly to 0 at ParticleLinkDistance
	ParticleLinkOpacity = 0.07

	// ParticleLinkWidth is the stroke width of a link
	ParticleLinkWidth = 0.5
)
