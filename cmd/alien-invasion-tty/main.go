package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/invasion/audio"
	"github.com/plus3/invasion/invasion"
)

// options holds the parsed command-line flags.
type options struct {
	configPath string
	mute       bool
	tps        int
	hold       time.Duration
	logPath    string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to a YAML settings file overlaid on the defaults.")
	flag.BoolVar(&opts.mute, "mute", false, "Disable sound effects.")
	flag.IntVar(&opts.tps, "tps", 60, "Game updates per second. Speeds are per update.")
	flag.DurationVar(&opts.hold, "hold", 200*time.Millisecond, "How long a movement key stays held after its last repeat.")
	flag.StringVar(&opts.logPath, "log", "", "Write game logs to this file; the terminal is busy drawing.")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}

// openLog returns a logger writing to path, or a discarding one when path is empty.
// The returned close function is never nil.
func openLog(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard, "", log.LstdFlags), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "", log.LstdFlags), f.Close, nil
}

func run(opts options) error {
	if opts.tps <= 0 {
		return fmt.Errorf("-tps must be positive, got %d", opts.tps)
	}

	logger, closeLog, err := openLog(opts.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	settings := invasion.DefaultSettings()
	if opts.configPath != "" {
		settings, err = invasion.LoadSettings(opts.configPath)
		if err != nil {
			return err
		}
	}

	gameOpts := []invasion.Option{invasion.WithLogger(logger)}
	if !opts.mute {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			logger.Printf("Audio initialization failed: %v", err)
		} else {
			defer sounds.Cleanup()
			gameOpts = append(gameOpts, invasion.WithListener(sounds))
		}
	}

	return play(settings, gameOpts, opts.hold, time.Second/time.Duration(opts.tps))
}

func play(settings *invasion.Settings, opts []invasion.Option, hold, interval time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	surface := newCellSurface(screen, settings.ScreenWidth, settings.ScreenHeight)
	events := newTTYEvents(screen, surface, hold)
	defer events.Close()
	game := invasion.New(settings, opts...)

	err = invasion.Run(ctx, game, events, surface, interval)
	if errors.Is(err, invasion.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
