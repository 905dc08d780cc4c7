package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/invasion/ecs"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	MaxFrames int64
	Session   string

	// Results
	Frames         int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Events         eventCounts
	ShipsLeft      int
	RectsDrawn     int
	Scheduler      *ecs.SchedulerStats
	World          ecs.WorldStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Alien Invasion Soak Report

## Run Configuration
- **Session:** {{.Session}}
- **Max Duration:** {{.Duration}}
- **Max Frames:** {{.MaxFrames}}

## Gameplay
- **Frames Simulated:** {{.Frames}}
- **Bullets Fired:** {{.Events.BulletsFired}}
- **Aliens Destroyed:** {{.Events.AliensDestroyed}}
- **Fleets Spawned:** {{.Events.FleetsSpawned}}
- **Ships Hit:** {{.Events.ShipsHit}}
- **Ships Left:** {{.ShipsLeft}}
- **Game Over:** {{.Events.GameOver}}

## Performance Results
- **Total Time:** {{.TotalTime}}
- **Rects Drawn:** {{.RectsDrawn}}
- **Frame Time (update + draw):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{with .Scheduler}}
## Systems
| System | Executions | Avg | Min | Max |
|---|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{end}}{{end}}
## Pools
| Pool | Type | Entities | Capacity |
|---|---|---|---|
{{range .World.Pools}}| {{.ID}} | {{.Type}} | {{.EntityCount}} | {{.Capacity}} |
{{end}}
## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
