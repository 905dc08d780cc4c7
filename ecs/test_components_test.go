package ecs_test

// Common test entity types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Mover struct {
	Position
	Velocity
}

type Health struct {
	Current int
	Max     int
}
