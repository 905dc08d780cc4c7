package ecs

import (
	"github.com/kamstrup/intmap"
)

// World owns every pool and routes type-erased operations (deletes, stats) to them.
type World struct {
	pools  *intmap.Map[uint32, iPool]
	order  []iPool
	lastId uint32
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		pools: intmap.New[uint32, iPool](8),
	}
}

func (w *World) nextPoolId() uint32 {
	w.lastId++
	return w.lastId
}

func (w *World) register(p iPool) {
	w.pools.Put(p.id(), p)
	w.order = append(w.order, p)
}

// Delete removes the entity from whichever pool issued it.
func (w *World) Delete(id EntityId) bool {
	pool, ok := w.pools.Get(id.PoolId())
	if !ok {
		return false
	}
	return pool.Delete(id)
}

// Len returns the number of live entities across all pools.
func (w *World) Len() int {
	total := 0
	for _, p := range w.order {
		total += p.Len()
	}
	return total
}

// Clear empties every pool.
func (w *World) Clear() {
	for _, p := range w.order {
		p.Clear()
	}
}
