package ecs

import (
	"iter"
	"reflect"
)

const (
	poolBlockSize = 64
)

// iPool is the type-erased view of a Pool used by World and Commands.
type iPool interface {
	id() uint32
	typeName() string
	Delete(id EntityId) bool
	Len() int
	Capacity() int
	Clear()
}

// Pool stores entities of a single type `T` in fixed-size blocks.
// Deleted slots are recycled and ids carry no generation: once an entity is
// deleted, or the pool cleared, its old EntityId may resolve to whatever is
// spawned into the same slot later. Callers must drop ids at that point.
type Pool[T any] struct {
	poolId    uint32
	name      string
	blocks    [][poolBlockSize]T
	filled    [][poolBlockSize]bool
	freeSlots []int
	nextIndex int
	count     int
}

// NewPool creates a pool for entities of type T and registers it with the world.
func NewPool[T any](w *World) *Pool[T] {
	p := &Pool[T]{
		poolId: w.nextPoolId(),
		name:   reflect.TypeFor[T]().String(),
	}
	w.register(p)
	return p
}

func (p *Pool[T]) id() uint32 {
	return p.poolId
}

func (p *Pool[T]) typeName() string {
	return p.name
}

// owns reports whether id was issued by this pool and returns its slot index.
func (p *Pool[T]) owns(id EntityId) (int, bool) {
	if id == 0 || id.PoolId() != p.poolId {
		return 0, false
	}
	index := int(id.Index())
	if index >= p.nextIndex {
		return 0, false
	}
	return index, true
}

// Spawn adds an entity to the pool and returns its id.
func (p *Pool[T]) Spawn(item T) EntityId {
	var index int
	if len(p.freeSlots) > 0 {
		index = p.freeSlots[len(p.freeSlots)-1]
		p.freeSlots = p.freeSlots[:len(p.freeSlots)-1]
	} else {
		index = p.nextIndex
		p.nextIndex++
		if index/poolBlockSize >= len(p.blocks) {
			p.blocks = append(p.blocks, [poolBlockSize]T{})
			p.filled = append(p.filled, [poolBlockSize]bool{})
		}
	}

	blockIdx := index / poolBlockSize
	slotIdx := index % poolBlockSize

	p.blocks[blockIdx][slotIdx] = item
	p.filled[blockIdx][slotIdx] = true
	p.count++
	return NewEntityId(p.poolId, uint32(index))
}

// Get returns a pointer to the entity, or nil if it does not exist.
func (p *Pool[T]) Get(id EntityId) *T {
	index, ok := p.owns(id)
	if !ok {
		return nil
	}

	blockIdx := index / poolBlockSize
	slotIdx := index % poolBlockSize

	if !p.filled[blockIdx][slotIdx] {
		return nil
	}
	return &p.blocks[blockIdx][slotIdx]
}

// Has checks if the entity exists in this pool.
func (p *Pool[T]) Has(id EntityId) bool {
	return p.Get(id) != nil
}

// Delete marks the entity's slot as empty. It returns false if the entity did not exist.
// Deleting while ranging over Iter is safe; the deleted slot is simply not yielded again.
func (p *Pool[T]) Delete(id EntityId) bool {
	index, ok := p.owns(id)
	if !ok {
		return false
	}

	blockIdx := index / poolBlockSize
	slotIdx := index % poolBlockSize

	if !p.filled[blockIdx][slotIdx] {
		return false
	}

	p.filled[blockIdx][slotIdx] = false
	var zero T
	p.blocks[blockIdx][slotIdx] = zero
	p.freeSlots = append(p.freeSlots, index)
	p.count--
	return true
}

// Len returns the number of live entities.
func (p *Pool[T]) Len() int {
	return p.count
}

// Capacity returns the number of slots ever allocated, live or free.
func (p *Pool[T]) Capacity() int {
	return p.nextIndex
}

// Clear removes every entity and releases all blocks but the first.
// Every id issued before the call becomes invalid; slot numbering restarts at 0.
func (p *Pool[T]) Clear() {
	p.blocks = make([][poolBlockSize]T, 1)
	p.filled = make([][poolBlockSize]bool, 1)
	p.freeSlots = nil
	p.nextIndex = 0
	p.count = 0
}

// Iter returns an iterator over live entity ids and pointers to their data.
func (p *Pool[T]) Iter() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for i := 0; i < p.nextIndex; i++ {
			blockIdx := i / poolBlockSize
			slotIdx := i % poolBlockSize

			if blockIdx >= len(p.filled) {
				return
			}

			if p.filled[blockIdx][slotIdx] {
				if !yield(NewEntityId(p.poolId, uint32(i)), &p.blocks[blockIdx][slotIdx]) {
					return
				}
			}
		}
	}
}

// Values returns an iterator over pointers to live entity data only.
func (p *Pool[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, item := range p.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}

// Snapshot returns the ids of all live entities at the time of the call.
func (p *Pool[T]) Snapshot() []EntityId {
	ids := make([]EntityId, 0, p.count)
	for id := range p.Iter() {
		ids = append(ids, id)
	}
	return ids
}
