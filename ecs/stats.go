package ecs

// WorldStats summarises pool occupancy for debugging and reports.
type WorldStats struct {
	PoolCount        int
	TotalEntityCount int
	Pools            []PoolStats
}

// PoolStats describes a single pool.
type PoolStats struct {
	ID          uint32
	Type        string
	EntityCount int
	Capacity    int
}

// CollectStats gathers statistics about all registered pools, in registration order.
func (w *World) CollectStats() WorldStats {
	stats := WorldStats{
		PoolCount: len(w.order),
		Pools:     make([]PoolStats, 0, len(w.order)),
	}

	for _, p := range w.order {
		stats.Pools = append(stats.Pools, PoolStats{
			ID:          p.id(),
			Type:        p.typeName(),
			EntityCount: p.Len(),
			Capacity:    p.Capacity(),
		})
		stats.TotalEntityCount += p.Len()
	}

	return stats
}
