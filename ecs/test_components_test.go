package ecs_test

import "github.com/plus3/wavetd/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current int
	Max     int
}

type Marker struct{}

type testStores struct {
	world      *ecs.World
	positions  *ecs.Components[Position]
	velocities *ecs.Components[Velocity]
	healths    *ecs.Components[Health]
	markers    *ecs.Components[Marker]
}

func newTestStores() *testStores {
	w := ecs.NewWorld()
	return &testStores{
		world:      w,
		positions:  ecs.Register[Position](w, "Position"),
		velocities: ecs.Register[Velocity](w, "Velocity"),
		healths:    ecs.Register[Health](w, "Health"),
		markers:    ecs.Register[Marker](w, "Marker"),
	}
}
