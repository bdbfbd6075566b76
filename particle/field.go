package particle

import (
	"math"

	"github.com/lixenwraith/lumen/parameter"
	"github.com/lixenwraith/lumen/parameter/visual"
	"github.com/lixenwraith/lumen/render"
	"github.com/lixenwraith/lumen/vmath"
)

// Particle is one drifting point of the field, velocity is in surface units per frame
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Alpha  float64
}

// Edge links two particles closer than the link distance
type Edge struct {
	I, J  int
	Dist  float64
	Alpha float64
}

// Config controls seeding and link rendering of a field
type Config struct {
	Count        int
	RadiusMin    float64
	RadiusSpan   float64
	VelocitySpan float64
	AlphaMin     float64
	AlphaSpan    float64

	LinkDistance float64
	LinkOpacity  float64
	LinkWidth    float64

	Color render.Color
}

// DefaultConfig returns the landing page field
func DefaultConfig() Config {
	return Config{
		Count:        parameter.ParticleCount,
		RadiusMin:    parameter.ParticleRadiusMin,
		RadiusSpan:   parameter.ParticleRadiusSpan,
		VelocitySpan: parameter.ParticleVelocitySpan,
		AlphaMin:     parameter.ParticleAlphaMin,
		AlphaSpan:    parameter.ParticleAlphaSpan,
		LinkDistance: parameter.ParticleLinkDistance,
		LinkOpacity:  parameter.ParticleLinkOpacity,
		LinkWidth:    parameter.ParticleLinkWidth,
		Color:        visual.ColorParticle,
	}
}

// normalized clamps values that would otherwise produce NaN or negative extents
// Non-finite values fall back to the defaults
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.Count < 0 {
		c.Count = 0
	}
	c.RadiusMin = math.Max(vmath.Finite(c.RadiusMin, d.RadiusMin), 0)
	c.RadiusSpan = math.Max(vmath.Finite(c.RadiusSpan, d.RadiusSpan), 0)
	c.VelocitySpan = math.Max(vmath.Finite(c.VelocitySpan, d.VelocitySpan), 0)
	c.AlphaMin = vmath.Clamp01(vmath.Finite(c.AlphaMin, d.AlphaMin))
	c.AlphaSpan = math.Max(vmath.Finite(c.AlphaSpan, d.AlphaSpan), 0)
	c.LinkDistance = math.Max(vmath.Finite(c.LinkDistance, d.LinkDistance), 0)
	c.LinkOpacity = vmath.Clamp01(vmath.Finite(c.LinkOpacity, d.LinkOpacity))
	c.LinkWidth = math.Max(vmath.Finite(c.LinkWidth, d.LinkWidth), 0)
	return c
}

// Field is a fixed population of particles on a toroidal plane
type Field struct {
	particles []Particle
	cfg       Config
	width     float64
	height    float64

	edges []Edge // Scratch reused by Render
}

// NewField seeds cfg.Count particles uniformly over [0,w)x[0,h)
// A nil rng draws from the global generator
func NewField(w, h float64, cfg Config, rng vmath.Source) *Field {
	if rng == nil {
		rng = vmath.DefaultSource()
	}
	cfg = cfg.normalized()
	f := &Field{
		particles: make([]Particle, cfg.Count),
		cfg:       cfg,
	}
	f.setSize(w, h)

	for i := range f.particles {
		f.particles[i] = Particle{
			X:      rng.Float64() * f.width,
			Y:      rng.Float64() * f.height,
			Radius: vmath.RangeFloat(rng, cfg.RadiusMin, cfg.RadiusSpan),
			VX:     vmath.Centered(rng, cfg.VelocitySpan),
			VY:     vmath.Centered(rng, cfg.VelocitySpan),
			Alpha:  vmath.Clamp01(vmath.RangeFloat(rng, cfg.AlphaMin, cfg.AlphaSpan)),
		}
		// Float rounding of rand*W can land exactly on W
		f.particles[i].X = vmath.Wrap(f.particles[i].X, f.width)
		f.particles[i].Y = vmath.Wrap(f.particles[i].Y, f.height)
	}
	return f
}

func (f *Field) setSize(w, h float64) {
	if !(w > 0) || math.IsInf(w, 0) {
		w = 0
	}
	if !(h > 0) || math.IsInf(h, 0) {
		h = 0
	}
	f.width, f.height = w, h
}

// Size returns the field extent
func (f *Field) Size() (float64, float64) {
	return f.width, f.height
}

// Config returns the normalized configuration
func (f *Field) Config() Config {
	return f.cfg
}

// Resize changes the extent, positions and velocities are kept and wrap on the next Step
func (f *Field) Resize(w, h float64) {
	f.setSize(w, h)
}

// Len returns the particle count, constant for the lifetime of the field
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles returns the live particle slice, valid until the next Step
func (f *Field) Particles() []Particle {
	return f.particles
}

// Step advances every particle by its velocity and wraps it into the field
func (f *Field) Step() {
	for i := range f.particles {
		p := &f.particles[i]
		p.X = vmath.Wrap(p.X+p.VX, f.width)
		p.Y = vmath.Wrap(p.Y+p.VY, f.height)
	}
}

// Edges returns every linked pair
func (f *Field) Edges() []Edge {
	return f.AppendEdges(nil)
}

// AppendEdges appends every pair (i < j) closer than the link distance to dst
// Opacity falls linearly from LinkOpacity at distance 0 to 0 at the link distance
func (f *Field) AppendEdges(dst []Edge) []Edge {
	limit := f.cfg.LinkDistance
	if limit <= 0 {
		return dst
	}
	limitSq := limit * limit

	for i := 0; i < len(f.particles); i++ {
		a := &f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := &f.particles[j]
			dSq := vmath.DistSq(a.X, a.Y, b.X, b.Y)
			if dSq >= limitSq {
				continue
			}
			d := math.Sqrt(dSq)
			dst = append(dst, Edge{
				I:     i,
				J:     j,
				Dist:  d,
				Alpha: f.cfg.LinkOpacity * (1 - d/limit),
			})
		}
	}
	return dst
}

// Render draws every particle as a filled disc then every link as a stroked line
func (f *Field) Render(s render.Surface) {
	if s == nil {
		return
	}
	for i := range f.particles {
		p := &f.particles[i]
		s.FillCircle(p.X, p.Y, p.Radius, f.cfg.Color.WithAlpha(p.Alpha))
	}

	f.edges = f.AppendEdges(f.edges[:0])
	for _, e := range f.edges {
		a, b := &f.particles[e.I], &f.particles[e.J]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, f.cfg.LinkWidth, f.cfg.Color.WithAlpha(e.Alpha))
	}
}
