package scene

import (
	"math"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/lumen/config"
	"github.com/lixenwraith/lumen/counter"
	"github.com/lixenwraith/lumen/engine"
	"github.com/lixenwraith/lumen/events"
	"github.com/lixenwraith/lumen/fittext"
	"github.com/lixenwraith/lumen/parameter"
	"github.com/lixenwraith/lumen/parameter/visual"
	"github.com/lixenwraith/lumen/particle"
	"github.com/lixenwraith/lumen/pointer"
	"github.com/lixenwraith/lumen/render"
	"github.com/lixenwraith/lumen/reveal"
	"github.com/lixenwraith/lumen/scramble"
	"github.com/lixenwraith/lumen/vmath"
)

// Layer names registered on the orchestrator
const (
	LayerBackdrop  = "backdrop"
	LayerParticles = "particles"
	LayerContent   = "content"
	LayerIntro     = "intro"
	LayerCursor    = "cursor"
)

// Visibility keys emitted when a section mounts
const (
	KeyHeadline = "headline"
	KeyStats    = "stats"
)

const stageProgress = "progress"

// CellMeasurer measures text as terminal cells, independent of font size
var CellMeasurer = fittext.MeasureFunc(func(text string, _ float64) float64 {
	return float64(runewidth.StringWidth(text)) * parameter.CellWidth
})

// Options are the host-specific inputs of a landing scene
type Options struct {
	// Measurer lays out text and fits the headline, CellMeasurer when nil
	Measurer fittext.Measurer
	// Rand seeds particles and scramble glyphs, the shared default source when nil
	Rand vmath.Source
}

// element is a revealing block of text
type element struct {
	tl   *reveal.Timeline
	text string
}

// action is a hit-testable link
type action struct {
	element
	node   *events.Element
	x0, y0 float64
	x1, y1 float64
	shown  bool
}

// Landing composes every effect into the landing page on an orchestrator
type Landing struct {
	res      *engine.Resource
	orch     *render.Orchestrator
	cfg      *config.Config
	palette  config.Palette
	measurer fittext.Measurer
	entrance reveal.Entrance

	backdrop *render.DisplayList
	content  *render.DisplayList
	intro    *render.DisplayList

	sequence *reveal.Sequence
	brand    element
	nav      []*action
	badge    element
	heading  element
	sub      element
	ruleTop  *reveal.Timeline
	columns  []element
	ruleEnd  *reveal.Timeline
	stats    *reveal.Timeline
	actions  []*action

	// Every content timeline, armed when content mounts
	timelines []*reveal.Timeline

	particles *particle.Effect
	cursor    *pointer.Cursor
	headline  *scramble.Reveal
	counters  []*counter.Counter
	fit       *fittext.Effect

	loop      *engine.AnimationLoop
	unsubs    []events.Unsubscribe
	introDone bool
	started   bool
	disposed  bool
}

// New builds the scene on orch; nothing animates until Start
func New(res *engine.Resource, orch *render.Orchestrator, cfg *config.Config, opts Options) *Landing {
	if cfg == nil {
		cfg = config.Default()
	}
	m := opts.Measurer
	if m == nil {
		m = CellMeasurer
	}
	timers := res.Timers()
	w, _ := orch.Size()

	l := &Landing{
		res:      res,
		orch:     orch,
		cfg:      cfg,
		palette:  cfg.Palette(),
		measurer: m,
		entrance: reveal.DefaultEntrance(),
		backdrop: orch.Layer(LayerBackdrop, render.PriorityBackground),
		content:  orch.Layer(LayerContent, render.PriorityText),
		intro:    orch.Layer(LayerIntro, render.PriorityOverlay),
		loop:     engine.NewAnimationLoop(res.Frames()),
	}

	l.sequence = reveal.NewSequence(timers)
	l.sequence.Stage(stageProgress, 0)
	l.sequence.Stage(reveal.StageIntroOut, cfg.Reveal.IntroOut)
	l.sequence.Stage(reveal.StageContent, cfg.Reveal.Content)

	c := cfg.Content
	l.brand = l.newElement(timers, parameter.RevealNavDelay, c.Brand)
	navTLs := reveal.Stagger(timers, parameter.RevealNavItemDelay, cfg.Reveal.Step, len(c.Nav))
	l.timelines = append(l.timelines, navTLs...)
	for i, tl := range navTLs {
		l.nav = append(l.nav, newAction(tl, c.Nav[i]))
	}
	l.badge = l.newElement(timers, parameter.RevealBadgeDelay, c.Badge)
	l.heading = l.newElement(timers, parameter.RevealHeadingDelay, c.Headline)
	l.sub = l.newElement(timers, parameter.RevealSubDelay, c.Subline)
	l.ruleTop = l.newTimeline(timers, parameter.RevealLineDelay)
	colTLs := reveal.Stagger(timers, parameter.RevealColumnDelay, parameter.RevealColumnStep, len(c.Columns))
	l.timelines = append(l.timelines, colTLs...)
	for i, tl := range colTLs {
		l.columns = append(l.columns, element{tl: tl, text: c.Columns[i]})
	}
	l.ruleEnd = l.newTimeline(timers, parameter.RevealLineEndDelay)
	l.stats = l.newTimeline(timers, parameter.RevealStatsDelay)
	actionTL := l.newTimeline(timers, parameter.RevealActionDelay)
	for _, label := range c.Actions {
		l.actions = append(l.actions, newAction(actionTL, label))
	}

	pcfg := cfg.ParticleConfig()
	l.particles = particle.NewEffect(res, orch.Layer(LayerParticles, render.PriorityParticle), pcfg, opts.Rand)

	style := pointer.DefaultCursorStyle()
	style.Dot = l.palette.Accent
	style.Ring = l.palette.Accent.WithAlpha(parameter.CursorRingAlpha)
	style.Spotlight = l.palette.Accent.WithAlpha(parameter.CursorSpotlightAlpha)
	l.cursor = pointer.NewCursor(res, orch.Layer(LayerCursor, render.PriorityCursor), cfg.PointerConfig(), style)

	l.headline = scramble.NewReveal(res, c.Headline, cfg.ScrambleConfig(), opts.Rand)
	for _, cc := range cfg.CounterConfigs(0) {
		l.counters = append(l.counters, counter.New(res, cc))
	}
	l.fit = fittext.NewEffect(res, m, c.Headline, w, parameter.SceneHeadlineInset)

	return l
}

func (l *Landing) newTimeline(timers engine.TimerScheduler, delay time.Duration) *reveal.Timeline {
	tl := reveal.NewTimeline(timers, delay)
	l.timelines = append(l.timelines, tl)
	return tl
}

func (l *Landing) newElement(timers engine.TimerScheduler, delay time.Duration, text string) element {
	return element{tl: l.newTimeline(timers, delay), text: text}
}

func newAction(tl *reveal.Timeline, label string) *action {
	return &action{element: element{tl: tl, text: label}, node: events.NewElement("a", nil)}
}

// Start arms the intro and starts every effect
func (l *Landing) Start() {
	if l.started || l.disposed {
		return
	}
	l.started = true

	if bus := l.res.Events(); bus != nil {
		l.unsubs = append(l.unsubs, bus.OnResize(l.orch.Resize))
	}

	// Mounting content arms its staggered timelines; sections announce visibility as they appear
	l.sequence.Get(reveal.StageContent).OnActivate(func(time.Time) {
		for _, tl := range l.timelines {
			tl.Arm()
		}
	})
	l.heading.tl.OnActivate(func(time.Time) { l.emitVisible(KeyHeadline) })
	l.stats.OnActivate(func(time.Time) { l.emitVisible(KeyStats) })

	l.headline.ArmOnVisible(KeyHeadline)
	for _, c := range l.counters {
		c.ArmOnVisible(KeyStats)
	}

	l.particles.Start()
	l.cursor.Start()
	l.fit.Start()
	l.sequence.Arm()
	l.loop.Start(l.frame)
	l.res.EffectStarted()
}

func (l *Landing) emitVisible(key string) {
	if bus := l.res.Events(); bus != nil {
		bus.EmitVisibility(key, true)
		return
	}
	// Without a bus the gates never open, run the effects directly
	switch key {
	case KeyHeadline:
		l.headline.Trigger()
	case KeyStats:
		for _, c := range l.counters {
			c.Run()
		}
	}
}

func (l *Landing) frame(now time.Time) {
	w, h := l.orch.Size()
	l.drawBackdrop(w, h)
	l.drawContent(now, w, h)
	l.drawIntro(now, w, h)
}

func (l *Landing) drawBackdrop(w, h float64) {
	dl := l.backdrop
	dl.Clear()
	dl.FillCircle(w/2, h*0.3, math.Min(w, h)*0.45, visual.ColorGlow)
	for x := parameter.GridSpacing; x < w; x += parameter.GridSpacing {
		dl.StrokeLine(x, 0, x, h, 1, visual.ColorGrid)
	}
	for y := parameter.GridSpacing; y < h; y += parameter.GridSpacing {
		dl.StrokeLine(0, y, w, y, 1, visual.ColorGrid)
	}
}

func (l *Landing) drawContent(now time.Time, w, h float64) {
	dl := l.content
	dl.Clear()
	cx := w / 2
	text := parameter.SceneTextSize
	muted := visual.ColorMuted
	fg := l.palette.Text

	// Nav row: brand left, links right-aligned
	l.drawText(now, l.brand.tl, parameter.SceneMargin, parameter.SceneNavY, l.brand.text, text, fg)
	x := w - parameter.SceneMargin
	for i := len(l.nav) - 1; i >= 0; i-- {
		a := l.nav[i]
		x -= l.measurer.Measure(a.text, text)
		l.drawAction(now, a, x, parameter.SceneNavY, text, muted)
		x -= parameter.SceneNavGap
	}

	y := h * parameter.SceneBadgeY
	l.drawCentered(now, l.badge.tl, cx, y, l.badge.text, text, l.palette.Accent)

	y += parameter.SceneSectionGap
	size := vmath.Clamp(l.fit.Size(), parameter.SceneHeadlineMin, parameter.SceneHeadlineMax)
	l.drawCentered(now, l.heading.tl, cx, y, l.headline.Display(), size, fg)

	y += size * 1.2
	l.drawCentered(now, l.sub.tl, cx, y, l.sub.text, size, l.palette.Accent)

	y += size*1.2 + parameter.SceneSectionGap
	ruleW := math.Min(parameter.SceneRuleWidth, w-2*parameter.SceneMargin)
	l.drawRule(now, l.ruleTop, cx, y, ruleW)

	y += parameter.SceneLineHeight
	for _, col := range l.columns {
		l.drawCentered(now, col.tl, cx, y, col.text, text, muted)
		y += parameter.SceneLineHeight
	}
	l.drawRule(now, l.ruleEnd, cx, y, ruleW)

	y += parameter.SceneSectionGap
	n := float64(len(l.counters))
	for i, c := range l.counters {
		sx := cx + (float64(i)-(n-1)/2)*parameter.SceneStatSpacing
		l.drawCentered(now, l.stats, sx, y, c.Display(), text*1.5, fg)
		l.drawCentered(now, l.stats, sx, y+parameter.SceneLineHeight*1.5, l.cfg.Counters[i].Label, text, muted)
	}

	y += parameter.SceneSectionGap * 2
	total := 0.0
	for i, a := range l.actions {
		if i > 0 {
			total += parameter.SceneNavGap
		}
		total += l.measurer.Measure(a.text, text)
	}
	x = cx - total/2
	for _, a := range l.actions {
		l.drawAction(now, a, x, y, text, fg)
		x += l.measurer.Measure(a.text, text) + parameter.SceneNavGap
	}
}

// drawText draws s with the entrance style of tl, reporting whether anything was drawn
func (l *Landing) drawText(now time.Time, tl *reveal.Timeline, x, y float64, s string, size float64, c render.Color) bool {
	st := tl.Style(l.entrance, now)
	// Text cannot be partially clipped, it appears once most of its box is open
	if st.Hidden() || st.ClipBottom > 0.5 {
		return false
	}
	l.content.DrawText(x, y+st.TranslateY, s, size, c.Fade(st.Opacity))
	return true
}

func (l *Landing) drawCentered(now time.Time, tl *reveal.Timeline, cx, y float64, s string, size float64, c render.Color) {
	l.drawText(now, tl, cx-l.measurer.Measure(s, size)/2, y, s, size, c)
}

func (l *Landing) drawAction(now time.Time, a *action, x, y, size float64, c render.Color) {
	a.shown = l.drawText(now, a.tl, x, y, a.text, size, c)
	pad := parameter.SceneActionPad
	a.x0, a.y0 = x-pad, y-pad
	a.x1, a.y1 = x+l.measurer.Measure(a.text, size)+pad, y+size+pad
}

// drawRule grows a horizontal rule from the center
func (l *Landing) drawRule(now time.Time, tl *reveal.Timeline, cx, y, width float64) {
	p := tl.Progress(reveal.LineTransition, now)
	if p <= 0 {
		return
	}
	half := width * p / 2
	l.content.StrokeLine(cx-half, y, cx+half, y, 1, visual.ColorRule)
}

func (l *Landing) drawIntro(now time.Time, w, h float64) {
	dl := l.intro
	dl.Clear()
	if l.introDone {
		return
	}
	out := l.sequence.Get(reveal.StageIntroOut)
	fade := out.Progress(reveal.IntroFadeTransition, now)
	if out.Activated() && fade >= 1 {
		l.introDone = true
		l.orch.SetVisible(LayerIntro, false)
		return
	}
	alpha := 1 - fade

	cx, cy := w/2, h/2
	size := parameter.SceneTextSize * 1.5
	brand := l.cfg.Content.Brand
	dl.DrawText(cx-l.measurer.Measure(brand, size)/2, cy-parameter.SceneSectionGap, brand, size, l.palette.Text.Fade(alpha))

	half := parameter.IntroProgressWidth / 2
	dl.StrokeLine(cx-half, cy, cx+half, cy, 1, visual.ColorTrack.Fade(alpha))
	p := l.sequence.Get(stageProgress).Progress(reveal.IntroProgressTransition, now)
	if p > 0 {
		dl.StrokeLine(cx-half, cy, cx-half+parameter.IntroProgressWidth*p, cy, 1, l.palette.Accent.Fade(alpha))
	}
}

// HitTest returns the link under (x, y), nil when none is showing there
func (l *Landing) HitTest(x, y float64) events.Node {
	for _, group := range [][]*action{l.nav, l.actions} {
		for _, a := range group {
			if a.shown && x >= a.x0 && x <= a.x1 && y >= a.y0 && y <= a.y1 {
				return a.node
			}
		}
	}
	return nil
}

// IntroDone reports whether the intro overlay has faded out
func (l *Landing) IntroDone() bool {
	return l.introDone
}

// ContentMounted reports whether the content stage has activated
func (l *Landing) ContentMounted() bool {
	return l.sequence.Get(reveal.StageContent).Activated()
}

// Headline returns the scrambled headline effect
func (l *Landing) Headline() *scramble.Reveal {
	return l.headline
}

// Counters returns the stat counters in display order
func (l *Landing) Counters() []*counter.Counter {
	return l.counters
}

// Particles returns the backdrop particle effect
func (l *Landing) Particles() *particle.Effect {
	return l.particles
}

// Cursor returns the pointer cursor effect
func (l *Landing) Cursor() *pointer.Cursor {
	return l.cursor
}

// Fit returns the headline sizer
func (l *Landing) Fit() *fittext.Effect {
	return l.fit
}

// Dispose stops every effect, cancels pending timelines and removes listeners; idempotent
func (l *Landing) Dispose() {
	if l.disposed {
		return
	}
	l.disposed = true

	l.loop.Stop()
	l.sequence.Dispose()
	for _, tl := range l.timelines {
		tl.Dispose()
	}
	l.particles.Dispose()
	l.cursor.Dispose()
	l.headline.Dispose()
	for _, c := range l.counters {
		c.Dispose()
	}
	l.fit.Dispose()
	for _, unsub := range l.unsubs {
		unsub()
	}
	l.unsubs = nil
	if l.started {
		l.res.EffectStopped()
	}
}
