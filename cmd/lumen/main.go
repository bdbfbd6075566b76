package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/lumen/audio"
	"github.com/lixenwraith/lumen/config"
	"github.com/lixenwraith/lumen/core"
	"github.com/lixenwraith/lumen/engine"
	"github.com/lixenwraith/lumen/parameter"
	"github.com/lixenwraith/lumen/terminal"
	"github.com/lixenwraith/lumen/vmath"
)

var (
	configFlag = flag.String("config", "", "YAML configuration file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/lumen.log")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	soundFlag  = flag.Bool("sound", false, "Play audio cues")
	hudFlag    = flag.Bool("hud", parameter.HUDVisible, "Show runtime metrics on the bottom row")
	dumpFlag   = flag.String("write-config", "", "Write the effective configuration to this file and exit")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lumen: %v\n", err)
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
	if *soundFlag {
		cfg.Sound.Enabled = true
	}
	if *dumpFlag != "" {
		return cfg.Save(*dumpFlag)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[main] seed=%d", seed)

	var cues *audio.Cues
	if cfg.Sound.Enabled {
		cues = audio.NewCues(cfg.Sound.Volume)
		if err := cues.Initialize(); err != nil {
			log.Printf("[audio] %v, continuing without sound", err)
			cues = nil
		} else {
			defer cues.Cleanup()
		}
	}

	screen, err := terminal.Open(cfg.Palette().Background)
	if err != nil {
		return err
	}
	defer screen.Fini()
	core.SetCrashHook(screen.Fini)

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	rt := engine.NewRuntime(clock, parameter.FrameInterval, nil)
	a := newApp(cfg, screen, rt, cues, vmath.NewSeededSource(seed))
	a.clock = clock
	a.hud = *hudFlag

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.quit = cancel

	rt.Post(a.start)
	rt.Start()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer func() { core.HandleCrash(recover()) }()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			rt.Post(func() { a.handle(ev) })
		}
	})
	g.Go(func() error {
		<-ctx.Done()
		rt.Stop()
		a.stop()
		// Unblocks PollEvent
		screen.Fini()
		return nil
	})
	return g.Wait()
}
