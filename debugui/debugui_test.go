package debugui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/invasion/ecs"
)

func TestPerformanceStatsAverage(t *testing.T) {
	ps := NewPerformanceStats(nil, 4)
	assert.Zero(t, ps.AverageFrameTime())

	ps.Record(0.010)
	ps.Record(0.020)
	assert.InDelta(t, 15.0, ps.AverageFrameTime(), 1e-3)

	for range 4 {
		ps.Record(0.016)
	}
	assert.InDelta(t, 16.0, ps.AverageFrameTime(), 1e-3, "old samples are overwritten")
}

func TestSortSystems(t *testing.T) {
	systems := func() []ecs.SystemStats {
		return []ecs.SystemStats{
			{Name: "FleetSystem", AvgDuration: 3 * time.Microsecond, MinDuration: 1 * time.Microsecond, MaxDuration: 9 * time.Microsecond},
			{Name: "BulletSystem", AvgDuration: 1 * time.Microsecond, MinDuration: 2 * time.Microsecond, MaxDuration: 4 * time.Microsecond},
			{Name: "CollisionSystem", AvgDuration: 7 * time.Microsecond, MinDuration: 3 * time.Microsecond, MaxDuration: 8 * time.Microsecond},
		}
	}
	names := func(s []ecs.SystemStats) []string {
		out := make([]string, len(s))
		for i, sys := range s {
			out[i] = sys.Name
		}
		return out
	}

	tests := []struct {
		name       string
		column     int
		descending bool
		want       []string
	}{
		{"name ascending", columnName, false, []string{"BulletSystem", "CollisionSystem", "FleetSystem"}},
		{"avg descending", columnAvg, true, []string{"CollisionSystem", "FleetSystem", "BulletSystem"}},
		{"min ascending", columnMin, false, []string{"FleetSystem", "BulletSystem", "CollisionSystem"}},
		{"max descending", columnMax, true, []string{"FleetSystem", "CollisionSystem", "BulletSystem"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := systems()
			sortSystems(s, tt.column, tt.descending)
			assert.Equal(t, tt.want, names(s))
		})
	}
}
