package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorldStats(t *testing.T) {
	world := NewWorld()
	ints := NewPool[int](world)
	strs := NewPool[string](world)

	stats := world.CollectStats()
	assert.Equal(t, 2, stats.PoolCount)
	assert.Equal(t, 0, stats.TotalEntityCount)

	ints.Spawn(1)
	ints.Spawn(2)
	doomed := ints.Spawn(3)
	strs.Spawn("hello")
	ints.Delete(doomed)

	stats = world.CollectStats()
	assert.Equal(t, 3, stats.TotalEntityCount)
	if assert.Len(t, stats.Pools, 2) {
		assert.Equal(t, "int", stats.Pools[0].Type)
		assert.Equal(t, 2, stats.Pools[0].EntityCount)
		assert.Equal(t, 3, stats.Pools[0].Capacity)
		assert.Equal(t, "string", stats.Pools[1].Type)
		assert.Equal(t, 1, stats.Pools[1].EntityCount)
	}
}

func TestSchedulerStatsBeforeExecution(t *testing.T) {
	scheduler := NewScheduler(NewWorld())
	scheduler.Register(&noopSystem{})

	stats := scheduler.GetStats()
	assert.Equal(t, 1, stats.SystemCount)
	assert.Equal(t, int64(0), stats.TotalExecutions)
	assert.Equal(t, "noopSystem", stats.Systems[0].Name)
	assert.Zero(t, stats.Systems[0].MinDuration)

	scheduler.Once(0)
	scheduler.Once(0)

	stats = scheduler.GetStats()
	assert.Equal(t, int64(2), stats.TotalExecutions)
	assert.Equal(t, int64(2), stats.Systems[0].ExecutionCount)
	assert.Equal(t, int64(2), scheduler.Frames())
	assert.LessOrEqual(t, stats.Systems[0].MinDuration, stats.Systems[0].MaxDuration)
}

type noopSystem struct{}

func (noopSystem) Execute(*UpdateFrame) {}
