package ecs

// EntityId encodes both the pool ID (upper 32 bits) and the slot index (lower 32 bits).
// The zero EntityId never refers to a live entity.
type EntityId uint64

// NewEntityId creates an EntityId from a pool ID and slot index
func NewEntityId(poolId uint32, index uint32) EntityId {
	return EntityId(uint64(poolId)<<32 | uint64(index))
}

// PoolId extracts the pool ID from the entity ID
func (e EntityId) PoolId() uint32 {
	return uint32(e >> 32)
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}
