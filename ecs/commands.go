package ecs

import "github.com/kamstrup/intmap"

// Commands provides a buffer for deferred world operations.
// Systems queue removals here instead of mutating a pool they are ranging over;
// the Scheduler flushes the buffer once the system returns.
type Commands struct {
	deletes []EntityId
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.deletes) + len(c.defers)
}

// Flush applies deletes, then deferred functions to the world, resetting the buffer state.
// Deleting the same entity twice in one frame is applied once.
func (c *Commands) Flush(world *World) {
	if c.Pending() == 0 {
		return
	}

	deleted := intmap.New[EntityId, struct{}](len(c.deletes))
	for _, id := range c.deletes {
		if _, seen := deleted.Get(id); seen {
			continue
		}
		deleted.Put(id, struct{}{})
		world.Delete(id)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.deletes = c.deletes[:0]
	c.defers = c.defers[:0]
}
