package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/lumen/audio"
	"github.com/lixenwraith/lumen/config"
	"github.com/lixenwraith/lumen/engine"
	"github.com/lixenwraith/lumen/events"
	"github.com/lixenwraith/lumen/parameter"
	"github.com/lixenwraith/lumen/render"
	"github.com/lixenwraith/lumen/render/ebitensurface"
	"github.com/lixenwraith/lumen/render/fontface"
	"github.com/lixenwraith/lumen/scene"
	"github.com/lixenwraith/lumen/vmath"
)

const (
	windowWidth  = 1280
	windowHeight = 800
)

var (
	configFlag = flag.String("config", "", "YAML configuration file")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	soundFlag  = flag.Bool("sound", false, "Play audio cues")
)

// game hosts the landing scene in an ebiten window
// ebiten calls Update, Draw and Layout on one goroutine, which owns the runtime
type game struct {
	rt      *engine.Runtime
	bus     *events.Bus
	orch    *render.Orchestrator
	surface *ebitensurface.Surface
	landing *scene.Landing
	cues    *audio.Cues

	mouseX, mouseY int
	width, height  int
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.cues != nil {
		g.cues.ToggleMute()
	}

	if x, y := ebiten.CursorPosition(); x != g.mouseX || y != g.mouseY {
		g.mouseX, g.mouseY = x, y
		fx, fy := float64(x), float64(y)
		g.bus.EmitPointerMove(fx, fy)
		g.bus.EmitPointerOver(g.landing.HitTest(fx, fy))
	}

	g.rt.Pump()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.surface.Begin(screen)
	g.orch.Composite(g.surface)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.surface.SetSize(float64(outsideWidth), float64(outsideHeight))
		g.bus.EmitResize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lumen-gui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	fonts, err := fontface.NewGoRegular()
	if err != nil {
		return err
	}
	defer fonts.Close()

	var cues *audio.Cues
	if *soundFlag || cfg.Sound.Enabled {
		cues = audio.NewCues(cfg.Sound.Volume)
		if err := cues.Initialize(); err != nil {
			log.Printf("[audio] %v, continuing without sound", err)
			cues = nil
		} else {
			defer cues.Cleanup()
		}
	}

	rt := engine.NewRuntime(engine.NewMonotonicTimeProvider(), parameter.FrameInterval, nil)
	bus := events.NewBus()
	res := &engine.Resource{Scheduler: rt, Bus: bus, Status: rt.Status()}
	if cues != nil {
		res.Audio = cues
	}

	orch := render.NewOrchestrator(windowWidth, windowHeight)
	landing := scene.New(res, orch, cfg, scene.Options{Measurer: fonts, Rand: vmath.NewSeededSource(seed)})
	g := &game{
		rt:      rt,
		bus:     bus,
		orch:    orch,
		surface: ebitensurface.New(fonts, cfg.Palette().Background),
		landing: landing,
		cues:    cues,
		width:   windowWidth,
		height:  windowHeight,
	}
	landing.Start()
	defer landing.Dispose()

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("lumen")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
