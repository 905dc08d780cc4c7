package ecs

// System represents a behavior that runs once per frame.
// Systems hold references to the pools they operate on, as well as custom state
// fields that persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
