package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lumen/audio"
	"github.com/lixenwraith/lumen/config"
	"github.com/lixenwraith/lumen/engine"
	"github.com/lixenwraith/lumen/events"
	"github.com/lixenwraith/lumen/parameter/visual"
	"github.com/lixenwraith/lumen/render"
	"github.com/lixenwraith/lumen/scene"
	"github.com/lixenwraith/lumen/terminal"
	"github.com/lixenwraith/lumen/vmath"
)

// app wires the landing scene to a terminal screen on one runtime
// Everything except Post-ed input runs on the runtime goroutine
type app struct {
	screen  *terminal.Screen
	rt      *engine.Runtime
	bus     *events.Bus
	orch    *render.Orchestrator
	landing *scene.Landing
	cues    *audio.Cues
	present *engine.AnimationLoop
	clock   *engine.PausableClock // nil when the runtime clock cannot pause

	hud  bool
	quit func()
}

func newApp(cfg *config.Config, screen *terminal.Screen, rt *engine.Runtime, cues *audio.Cues, rng vmath.Source) *app {
	bus := events.NewBus()
	res := &engine.Resource{Scheduler: rt, Bus: bus, Status: rt.Status()}
	if cues != nil {
		res.Audio = cues
	}

	w, h := screen.Size()
	orch := render.NewOrchestrator(w, h)
	landing := scene.New(res, orch, cfg, scene.Options{Rand: rng})
	screen.SetHitTester(landing)

	return &app{
		screen:  screen,
		rt:      rt,
		bus:     bus,
		orch:    orch,
		landing: landing,
		cues:    cues,
		present: engine.NewAnimationLoop(rt),
		quit:    func() {},
	}
}

// start runs the scene; the presenter loop starts last so it composites after every effect has drawn
func (a *app) start() {
	a.landing.Start()
	a.present.Start(a.frame)
}

func (a *app) frame(_ time.Time) {
	a.orch.Composite(a.screen.Buffer())
	if a.hud {
		a.screen.SetStatus(a.rt.Status().Summary(), visual.ColorMuted.WithAlpha(1))
	} else {
		a.screen.SetStatus("", render.Color{})
	}
	a.screen.Flush()
}

// handle processes one terminal event on the runtime goroutine
func (a *app) handle(ev tcell.Event) {
	switch a.screen.Dispatch(ev, a.bus) {
	case terminal.ActionQuit:
		a.quit()
	case terminal.ActionToggleMute:
		if a.cues == nil {
			log.Printf("[audio] sound disabled, mute toggle ignored")
			return
		}
		muted := a.cues.ToggleMute()
		log.Printf("[audio] muted=%v", muted)
	case terminal.ActionToggleHUD:
		a.hud = !a.hud
	case terminal.ActionTogglePause:
		if a.clock != nil {
			log.Printf("[main] paused=%v", a.clock.Toggle())
		}
	}
}

// stop disposes the scene; call only once the runtime no longer pumps
func (a *app) stop() {
	a.present.Stop()
	a.landing.Dispose()
}
