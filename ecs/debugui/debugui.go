// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// Panels are entities carrying an ImguiItem; the ImguiSystem queues their
// render functions so they run after the frame's structural changes.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/wavetd/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton.
// Hosts check it before forwarding mouse and keyboard input to the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every ImguiItem and refreshes
// the ImguiInputState singleton.
type ImguiSystem struct {
	Items      *ecs.Components[ImguiItem]
	InputState *ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Name() string { return "Imgui" }

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := i.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Items.Iter() {
		frame.Commands.Defer(item.Render)
	}
}

// Overlay is the debug UI installed on a world.
type Overlay struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	items     *ecs.Components[ImguiItem]
	input     *ecs.Singleton[ImguiInputState]
}

// Install registers the ImguiItem store and appends the ImguiSystem to the
// scheduler. Call it after the gameplay systems so panels see their results.
func Install(world *ecs.World, scheduler *ecs.Scheduler) *Overlay {
	o := &Overlay{
		world:     world,
		scheduler: scheduler,
		items:     ecs.Register[ImguiItem](world, "ImguiItem"),
		input:     ecs.NewSingleton[ImguiInputState](world),
	}
	scheduler.Register(&ImguiSystem{Items: o.items, InputState: o.input})
	return o
}

// Add spawns a panel.
func (o *Overlay) Add(render func()) ecs.EntityId {
	id := o.world.Spawn()
	o.items.Set(id, ImguiItem{Render: render})
	return id
}

// InputState reports whether ImGui currently owns the mouse or keyboard.
func (o *Overlay) InputState() ImguiInputState {
	return *o.input.Get()
}
