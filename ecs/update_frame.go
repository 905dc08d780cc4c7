package ecs

type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	World     *World
}

func newUpdateFrame(dt float64, world *World) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		World:     world,
	}
}
