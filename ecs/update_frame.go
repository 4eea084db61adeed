package ecs

import "errors"

// UpdateFrame is the context handed to every system during one scheduler tick.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	World     *World

	errs []error
}

func newUpdateFrame(dt float64, world *World) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		World:     world,
	}
}

// Fail records an error for this frame. The frame keeps running; the
// scheduler returns all recorded errors once the frame is flushed.
func (f *UpdateFrame) Fail(err error) {
	if err != nil {
		f.errs = append(f.errs, err)
	}
}

// Err returns the errors recorded so far, joined.
func (f *UpdateFrame) Err() error {
	return errors.Join(f.errs...)
}
