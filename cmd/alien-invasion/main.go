package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/invasion/audio"
	"github.com/plus3/invasion/debugui"
	debugui_ebiten "github.com/plus3/invasion/debugui/ebiten"
	"github.com/plus3/invasion/invasion"
)

// Game adapts invasion.Game to ebiten.Game.
type Game struct {
	game    *invasion.Game
	events  *keyEvents
	overlay *debugui.Overlay
	backend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	for _, ev := range g.events.Poll() {
		if err := g.game.HandleEvent(ev); err != nil {
			if errors.Is(err, invasion.ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}

	g.game.Update()

	if g.backend != nil {
		g.backend.Update(g.overlay)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.game.Draw(screenCanvas{screen})

	if g.backend != nil {
		g.backend.DrawOver(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.game.Settings()
	if g.backend != nil {
		g.backend.Layout(s.ScreenWidth, s.ScreenHeight)
	}
	return s.ScreenWidth, s.ScreenHeight
}

// options holds the parsed command-line flags.
type options struct {
	configPath string
	fullscreen bool
	mute       bool
	debug      bool
	tps        int
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to a YAML settings file overlaid on the defaults.")
	flag.BoolVar(&opts.fullscreen, "fullscreen", true, "Size the game to the monitor and run fullscreen.")
	flag.BoolVar(&opts.mute, "mute", false, "Disable sound effects.")
	flag.BoolVar(&opts.debug, "debug", false, "Draw the ImGui debug overlay.")
	flag.IntVar(&opts.tps, "tps", 60, "Game updates per second. Speeds are per update.")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if err := run(opts, logger); err != nil {
		logger.Fatalf("Game exited with error: %v", err)
	}
}

func run(opts options, logger *log.Logger) error {
	var monitor func() (int, int)
	if opts.fullscreen {
		monitor = ebiten.Monitor().Size
	}
	settings, err := loadSettings(opts.configPath, monitor)
	if err != nil {
		return err
	}
	if opts.fullscreen {
		ebiten.SetFullscreen(true)
	}

	gameOpts := []invasion.Option{invasion.WithLogger(logger)}
	if !opts.mute {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			logger.Printf("Audio initialization failed: %v", err)
		} else {
			defer sounds.Cleanup()
			gameOpts = append(gameOpts, invasion.WithListener(sounds))
		}
	}

	g := &Game{events: &keyEvents{}}

	if opts.debug {
		g.backend = debugui_ebiten.NewImguiBackend("Alien Invasion", settings.ScreenWidth, settings.ScreenHeight)
	} else {
		ebiten.SetWindowSize(settings.ScreenWidth, settings.ScreenHeight)
		ebiten.SetWindowTitle("Alien Invasion")
	}
	ebiten.SetTPS(opts.tps)

	g.game = invasion.New(settings, gameOpts...)
	if opts.debug {
		g.overlay = debugui.NewOverlay(g.game)
	}

	return ebiten.RunGame(g)
}

// loadSettings reads the optional settings file and, when monitor is set,
// resizes the screen to the monitor.
func loadSettings(path string, monitor func() (int, int)) (*invasion.Settings, error) {
	settings := invasion.DefaultSettings()
	if path != "" {
		var err error
		settings, err = invasion.LoadSettings(path)
		if err != nil {
			return nil, err
		}
	}
	if monitor == nil {
		return settings, nil
	}

	w, h := monitor()
	if w <= 0 || h <= 0 {
		return settings, nil
	}
	settings = settings.WithScreen(w, h)
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("monitor %dx%d: %w", w, h, err)
	}
	return settings, nil
}
