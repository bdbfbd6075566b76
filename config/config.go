package config

import (
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/lumen/counter"
	"github.com/lixenwraith/lumen/parameter"
	"github.com/lixenwraith/lumen/parameter/visual"
	"github.com/lixenwraith/lumen/particle"
	"github.com/lixenwraith/lumen/pointer"
	"github.com/lixenwraith/lumen/render"
	"github.com/lixenwraith/lumen/scramble"
	"github.com/lixenwraith/lumen/vmath"
)

// EnvPrefix is prepended to every environment override, e.g. LUMEN_PARTICLES_COUNT
const EnvPrefix = "LUMEN_"

// Limits applied by Normalize
const (
	maxParticles = 2000
	maxTicks     = 1000
)

// Config is the demo configuration: YAML file, then environment, then Normalize
type Config struct {
	Seed      uint64          `yaml:"seed" env:"SEED"`
	Particles ParticleConfig  `yaml:"particles" envPrefix:"PARTICLES_"`
	Pointer   PointerConfig   `yaml:"pointer" envPrefix:"POINTER_"`
	Scramble  ScrambleConfig  `yaml:"scramble" envPrefix:"SCRAMBLE_"`
	Reveal    RevealConfig    `yaml:"reveal" envPrefix:"REVEAL_"`
	Counters  []CounterConfig `yaml:"counters"`
	Colors    ColorConfig     `yaml:"colors" envPrefix:"COLOR_"`
	Sound     SoundConfig     `yaml:"sound" envPrefix:"SOUND_"`
	Content   ContentConfig   `yaml:"content" envPrefix:"CONTENT_"`
}

// ParticleConfig tunes the backdrop particle field
type ParticleConfig struct {
	Count        int     `yaml:"count" env:"COUNT"`
	VelocitySpan float64 `yaml:"velocity_span" env:"VELOCITY_SPAN"`
	LinkDistance float64 `yaml:"link_distance" env:"LINK_DISTANCE"`
	LinkOpacity  float64 `yaml:"link_opacity" env:"LINK_OPACITY"`
}

// PointerConfig tunes cursor smoothing and the hover ring
type PointerConfig struct {
	Smoothing  float64 `yaml:"smoothing" env:"SMOOTHING"`
	HoverScale float64 `yaml:"hover_scale" env:"HOVER_SCALE"`
}

// ScrambleConfig tunes the headline scramble
type ScrambleConfig struct {
	Alphabet   string        `yaml:"alphabet" env:"ALPHABET"`
	Ticks      int           `yaml:"ticks" env:"TICKS"`
	Interval   time.Duration `yaml:"interval" env:"INTERVAL"`
	StartDelay time.Duration `yaml:"start_delay" env:"START_DELAY"`
}

// RevealConfig holds the intro timing and the content stagger
type RevealConfig struct {
	IntroOut time.Duration `yaml:"intro_out" env:"INTRO_OUT"`
	Content  time.Duration `yaml:"content" env:"CONTENT"`
	Step     time.Duration `yaml:"step" env:"STEP"`
}

// CounterConfig is one stat counter, Target is clamped to zero or more
type CounterConfig struct {
	Label    string        `yaml:"label"`
	Target   int           `yaml:"target"`
	Duration time.Duration `yaml:"duration"`
	Delay    time.Duration `yaml:"delay"`
	Prefix   string        `yaml:"prefix"`
	Suffix   string        `yaml:"suffix"`
	Locale   string        `yaml:"locale"`
}

// ColorConfig holds "#rrggbb" overrides of the page palette
type ColorConfig struct {
	Background string `yaml:"background" env:"BACKGROUND"`
	Accent     string `yaml:"accent" env:"ACCENT"`
	Text       string `yaml:"text" env:"TEXT"`
}

// SoundConfig enables audio cues at a master volume in [0, 1]
type SoundConfig struct {
	Enabled bool    `yaml:"enabled" env:"ENABLED"`
	Volume  float64 `yaml:"volume" env:"VOLUME"`
}

// ContentConfig is the copy shown by the landing scene
type ContentConfig struct {
	Brand    string   `yaml:"brand" env:"BRAND"`
	Nav      []string `yaml:"nav" env:"NAV" envSeparator:"|"`
	Badge    string   `yaml:"badge" env:"BADGE"`
	Headline string   `yaml:"headline" env:"HEADLINE"`
	Subline  string   `yaml:"subline" env:"SUBLINE"`
	Columns  []string `yaml:"columns" env:"COLUMNS" envSeparator:"|"`
	Actions  []string `yaml:"actions" env:"ACTIONS" envSeparator:"|"`
}

// Default returns the landing page configuration
func Default() *Config {
	return &Config{
		Particles: ParticleConfig{
			Count:        parameter.ParticleCount,
			VelocitySpan: parameter.ParticleVelocitySpan,
			LinkDistance: parameter.ParticleLinkDistance,
			LinkOpacity:  parameter.ParticleLinkOpacity,
		},
		Pointer: PointerConfig{
			Smoothing:  parameter.PointerSmoothing,
			HoverScale: parameter.CursorHoverScale,
		},
		Scramble: ScrambleConfig{
			Alphabet: parameter.ScrambleAlphabet,
			Ticks:    parameter.ScrambleTicks,
			Interval: parameter.ScrambleInterval,
		},
		Reveal: RevealConfig{
			IntroOut: parameter.IntroOutDelay,
			Content:  parameter.IntroContentDelay,
			Step:     parameter.RevealNavItemStep,
		},
		Counters: []CounterConfig{
			{Label: "investors", Target: 128, Duration: parameter.CounterDuration, Suffix: "+", Locale: parameter.CounterLocale},
			{Label: "raised", Target: 12500000, Duration: parameter.CounterDuration, Prefix: "$", Locale: parameter.CounterLocale},
			{Label: "startups", Target: 340, Duration: parameter.CounterDuration, Locale: parameter.CounterLocale},
		},
		Colors: ColorConfig{
			Background: visual.ColorBackground.Hex(),
			Accent:     visual.ColorAccent.Hex(),
			Text:       visual.ColorText.Hex(),
		},
		Sound: SoundConfig{
			Enabled: false,
			Volume:  parameter.AudioMasterVolume,
		},
		Content: ContentConfig{
			Brand:    "lumen",
			Nav:      []string{"Platform", "Demo Day", "Contacts"},
			Badge:    "128 investors on the platform",
			Headline: "Invest in IT startups",
			Subline:  "that will change the future",
			Columns: []string{
				"InvestStarts: an investment platform with pre-screened projects",
				"Demo Day: meet the founders",
				"Closed environment: deals, analytics and direct contacts",
			},
			Actions: []string{"apply as a startup", "become an investor"},
		},
	}
}

// Load reads path (optional), applies environment overrides, then normalizes
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

// ParseEnv applies LUMEN_ prefixed environment variables onto target
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Save writes cfg as YAML to path
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Normalize clamps out-of-range values and restores defaults for unusable ones
func (c *Config) Normalize() {
	d := Default()

	p := &c.Particles
	p.Count = clampInt(p.Count, 0, maxParticles)
	p.VelocitySpan = finiteOr("particles.velocity_span", p.VelocitySpan, d.Particles.VelocitySpan)
	if p.VelocitySpan < 0 {
		p.VelocitySpan = 0
	}
	p.LinkDistance = finiteOr("particles.link_distance", p.LinkDistance, d.Particles.LinkDistance)
	if p.LinkDistance < 0 {
		p.LinkDistance = 0
	}
	p.LinkOpacity = clampFloat(finiteOr("particles.link_opacity", p.LinkOpacity, d.Particles.LinkOpacity), 0, 1)

	if c.Pointer.Smoothing <= 0 || c.Pointer.Smoothing > 1 || math.IsNaN(c.Pointer.Smoothing) {
		log.Printf("[config] pointer smoothing %v outside (0, 1], using %v", c.Pointer.Smoothing, d.Pointer.Smoothing)
		c.Pointer.Smoothing = d.Pointer.Smoothing
	}
	c.Pointer.HoverScale = finiteOr("pointer.hover_scale", c.Pointer.HoverScale, d.Pointer.HoverScale)
	if c.Pointer.HoverScale <= 0 {
		c.Pointer.HoverScale = d.Pointer.HoverScale
	}

	s := &c.Scramble
	if s.Alphabet == "" {
		s.Alphabet = d.Scramble.Alphabet
	}
	s.Ticks = clampInt(s.Ticks, 0, maxTicks)
	if s.Interval <= 0 {
		s.Interval = d.Scramble.Interval
	}
	if s.StartDelay < 0 {
		s.StartDelay = 0
	}

	r := &c.Reveal
	if r.IntroOut < 0 {
		r.IntroOut = 0
	}
	if r.Content < r.IntroOut {
		r.Content = r.IntroOut
	}
	if r.Step < 0 {
		r.Step = 0
	}

	for i := range c.Counters {
		k := &c.Counters[i]
		if k.Target < 0 {
			k.Target = 0
		}
		if k.Duration < 0 {
			k.Duration = 0
		}
		if k.Delay < 0 {
			k.Delay = 0
		}
		if k.Locale == "" {
			k.Locale = parameter.CounterLocale
		}
	}

	c.Colors.Background = validHex(c.Colors.Background, d.Colors.Background)
	c.Colors.Accent = validHex(c.Colors.Accent, d.Colors.Accent)
	c.Colors.Text = validHex(c.Colors.Text, d.Colors.Text)

	c.Sound.Volume = clampFloat(finiteOr("sound.volume", c.Sound.Volume, d.Sound.Volume), 0, 1)
}

// ParticleConfig converts to the field configuration, tinted with the accent color
func (c *Config) ParticleConfig() particle.Config {
	pc := particle.DefaultConfig()
	pc.Count = c.Particles.Count
	pc.VelocitySpan = c.Particles.VelocitySpan
	pc.LinkDistance = c.Particles.LinkDistance
	pc.LinkOpacity = c.Particles.LinkOpacity
	pc.Color = c.Palette().Accent
	return pc
}

// PointerConfig converts to the tracker configuration
func (c *Config) PointerConfig() pointer.Config {
	pc := pointer.DefaultConfig()
	pc.Smoothing = c.Pointer.Smoothing
	pc.HoverScale = c.Pointer.HoverScale
	return pc
}

// ScrambleConfig converts to the scramble configuration
func (c *Config) ScrambleConfig() scramble.Config {
	sc := scramble.DefaultConfig()
	sc.Alphabet = c.Scramble.Alphabet
	sc.Ticks = c.Scramble.Ticks
	sc.Interval = c.Scramble.Interval
	sc.StartDelay = c.Scramble.StartDelay
	return sc
}

// CounterConfigs converts every configured counter, extra delay is added to each
func (c *Config) CounterConfigs(extra time.Duration) []counter.Config {
	out := make([]counter.Config, 0, len(c.Counters))
	for _, k := range c.Counters {
		out = append(out, counter.Config{
			Target:   k.Target,
			Duration: k.Duration,
			Delay:    k.Delay + extra,
			Prefix:   k.Prefix,
			Suffix:   k.Suffix,
			Locale:   k.Locale,
		})
	}
	return out
}

// Palette is the resolved color set
type Palette struct {
	Background render.Color
	Accent     render.Color
	Text       render.Color
}

// Palette parses the configured colors, falling back to the page palette per entry
func (c *Config) Palette() Palette {
	return Palette{
		Background: hexOr(c.Colors.Background, visual.ColorBackground),
		Accent:     hexOr(c.Colors.Accent, visual.ColorAccent),
		Text:       hexOr(c.Colors.Text, visual.ColorText),
	}
}

func hexOr(s string, fallback render.Color) render.Color {
	col, err := render.ParseHex(s)
	if err != nil {
		return fallback
	}
	return col
}

func validHex(s, fallback string) string {
	if _, err := render.ParseHex(s); err != nil {
		log.Printf("[config] %v, using %s", err, fallback)
		return fallback
	}
	return s
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// clampFloat restricts v to [lo, hi], NaN maps to lo
func clampFloat(v, lo, hi float64) float64 {
	return vmath.Clamp(v, lo, hi)
}

// finiteOr replaces NaN and infinite settings with the default
func finiteOr(name string, v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		log.Printf("[config] %s %v is not a finite number, using %v", name, v, def)
		return def
	}
	return v
}
