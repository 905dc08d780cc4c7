package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/invasion/invasion"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The longest the soak run may take.")
	frames := flag.Int64("frames", 100000, "The number of frames to simulate. The run also ends at game over.")
	configPath := flag.String("config", "", "Path to a YAML settings file overlaid on the defaults.")
	verbose := flag.Bool("v", false, "Log game lifecycle events.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	settings := invasion.DefaultSettings()
	if *configPath != "" {
		var err error
		settings, err = invasion.LoadSettings(*configPath)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}

	log.Println("Starting soak run...")

	report, err := soak(settings, *frames, *duration, *verbose)
	if err != nil {
		log.Fatalf("Soak run failed: %v", err)
	}
	report.GCPauseMetrics = *gcPauseMetrics

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func soak(settings *invasion.Settings, frames int64, duration time.Duration, verbose bool) (*Report, error) {
	counts := &eventCounts{}
	opts := []invasion.Option{
		invasion.WithListener(counts),
		invasion.WithPause(func(time.Duration) {}),
	}
	if verbose {
		opts = append(opts, invasion.WithLogger(log.Default()))
	}

	game := invasion.New(settings, opts...)
	pilot := &autopilot{game: game}
	surface := &nullSurface{}

	report := &Report{
		Duration:  duration,
		MaxFrames: frames,
		Session:   game.Session().String(),
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0, min(frames, 1<<20)),
		},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running up to %d frames for at most %s...\n", frames, duration)
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for report.Frames < frames && game.Stats().GameActive {
		select {
		case <-ctx.Done():
			break Loop
		default:
			stepStart := time.Now()
			if err := invasion.Step(game, pilot, surface); err != nil && !errors.Is(err, invasion.ErrQuit) {
				return nil, err
			}
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(stepStart))
			report.Frames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Events = *counts
	report.ShipsLeft = game.Stats().ShipsLeft
	report.Scheduler = game.SchedulerStats()
	report.World = game.WorldStats()
	report.RectsDrawn = surface.rects

	log.Println("Soak run finished.")
	return report, nil
}
