package td

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	"github.com/plus3/wavetd/config"
	"github.com/plus3/wavetd/ecs"
	"github.com/plus3/wavetd/event"
)

// Stores groups the component stores of the gameplay world.
type Stores struct {
	Transforms *ecs.Components[Transform]
	Enemies    *ecs.Components[Enemy]
	Towers     *ecs.Components[Tower]
	Sprites    *ecs.Components[Sprite]
	Cameras    *ecs.Components[Camera]
	Windows    *ecs.Components[Window]
}

// RegisterStores registers every gameplay store on w.
func RegisterStores(w *ecs.World) Stores {
	return Stores{
		Transforms: ecs.Register[Transform](w, "Transform"),
		Enemies:    ecs.Register[Enemy](w, "Enemy"),
		Towers:     ecs.Register[Tower](w, "Tower"),
		Sprites:    ecs.Register[Sprite](w, "Sprite"),
		Cameras:    ecs.Register[Camera](w, "Camera"),
		Windows:    ecs.Register[Window](w, "Window"),
	}
}

// camera resolves the only camera together with its transform.
func (s Stores) camera() (ecs.EntityId, *Camera, *Transform, error) {
	id, cam, err := ecs.Single(s.Cameras)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("%w: %w", ErrPreconditionViolation, err)
	}
	tr := s.Transforms.Get(id)
	if tr == nil {
		return 0, nil, nil, fmt.Errorf("%w: camera %d has no Transform", ErrPreconditionViolation, id)
	}
	return id, cam, tr, nil
}

func (s Stores) window() (*Window, error) {
	_, win, err := ecs.Single(s.Windows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPreconditionViolation, err)
	}
	return win, nil
}

// SpawnerSystem spawns one enemy near the spawn origin each time the spawn
// timer completes a period. Missed periods are not caught up.
type SpawnerSystem struct {
	Stores Stores
	Timer  *ecs.Singleton[SpawnTimer]
	Assets *ecs.Singleton[AssetSet]
	Rand   *rand.Rand
	Events *event.Dispatcher
	Config config.SpawnConfig
}

func (s *SpawnerSystem) Name() string { return "Spawner" }

func (s *SpawnerSystem) Execute(frame *ecs.UpdateFrame) {
	timer := s.Timer.Get()
	timer.Tick(frame.DeltaTime)
	if !timer.JustFinished() {
		return
	}

	pos := Vec3{
		X: s.Config.Origin.X + s.jitter(),
		Y: s.Config.Origin.Y + s.jitter(),
	}
	frame.Commands.SpawnThen(
		func(id ecs.EntityId) {
			s.Events.Dispatch(event.Event{Type: event.EnemySpawned, Entity: id, X: pos.X, Y: pos.Y, Z: pos.Z})
		},
		ecs.With(s.Stores.Transforms, Transform{Translation: pos}),
		ecs.With(s.Stores.Sprites, Sprite{Visual: s.Assets.Get().Enemy}),
		ecs.With(s.Stores.Enemies, Enemy{}),
	)
}

// jitter draws from [-Jitter, Jitter).
func (s *SpawnerSystem) jitter() float64 {
	return (s.Rand.Float64()*2 - 1) * s.Config.Jitter
}

// MoverSystem advances every enemy along its trajectory and despawns the
// ones that crossed the left boundary.
type MoverSystem struct {
	Stores Stores
	Events *event.Dispatcher
	Config config.EnemyConfig
}

func (s *MoverSystem) Name() string { return "Mover" }

func (s *MoverSystem) Execute(frame *ecs.UpdateFrame) {
	for id, pair := range ecs.Join(s.Stores.Enemies, s.Stores.Transforms) {
		t := &pair.B.Translation
		t.X -= s.Config.Speed * frame.DeltaTime
		t.Y = math.Sin(t.X*s.Config.WaveFrequency) * s.Config.WaveAmplitude
		if t.X < s.Config.DespawnX {
			frame.Commands.Despawn(id)
			last := *t
			frame.Commands.Defer(func() {
				s.Events.Dispatch(event.Event{Type: event.EnemyDespawned, Entity: id, X: last.X, Y: last.Y, Z: last.Z})
			})
		}
	}
}

// PlacerSystem places a tower under the cursor when the primary button is
// pressed.
type PlacerSystem struct {
	Stores Stores
	Input  *ecs.Singleton[Input]
	Assets *ecs.Singleton[AssetSet]
	Events *event.Dispatcher
	Logger *log.Logger
	TowerZ float64
}

func (s *PlacerSystem) Name() string { return "Placer" }

func (s *PlacerSystem) Execute(frame *ecs.UpdateFrame) {
	if !s.Input.Get().PrimaryJustPressed {
		return
	}

	_, cam, camTransform, err := s.Stores.camera()
	if err != nil {
		frame.Fail(fmt.Errorf("placer: %w", err))
		return
	}
	win, err := s.Stores.window()
	if err != nil {
		frame.Fail(fmt.Errorf("placer: %w", err))
		return
	}

	if !win.CursorValid {
		s.Logger.Printf("[Placer] %v", ErrPointerUnavailable)
		s.Events.Dispatch(event.Event{Type: event.PointerUnavailable, Err: ErrPointerUnavailable})
		return
	}

	view := View{Camera: camTransform.Translation, Scale: cam.Scale, Width: win.Width, Height: win.Height}
	world := view.Unproject(win.Cursor)
	pos := Vec3{X: world.X, Y: world.Y, Z: s.TowerZ}
	s.Logger.Printf("[Placer] Creating tower at (%.2f, %.2f)", pos.X, pos.Y)

	frame.Commands.SpawnThen(
		func(id ecs.EntityId) {
			s.Events.Dispatch(event.Event{Type: event.TowerPlaced, Entity: id, X: pos.X, Y: pos.Y, Z: pos.Z})
		},
		ecs.With(s.Stores.Transforms, Transform{Translation: pos}),
		ecs.With(s.Stores.Sprites, Sprite{Visual: s.Assets.Get().Tower}),
		ecs.With(s.Stores.Towers, Tower{}),
	)
}

// CameraControllerSystem pans the camera with the arrow keys and zooms it
// with the scroll wheel.
type CameraControllerSystem struct {
	Stores Stores
	Input  *ecs.Singleton[Input]
	Config config.CameraConfig
}

func (s *CameraControllerSystem) Name() string { return "CameraController" }

func (s *CameraControllerSystem) Execute(frame *ecs.UpdateFrame) {
	_, cam, tr, err := s.Stores.camera()
	if err != nil {
		frame.Fail(fmt.Errorf("camera controller: %w", err))
		return
	}
	input := s.Input.Get()

	step := s.Config.PanStep * cam.Scale
	if input.Left {
		tr.Translation.X -= step
	}
	if input.Right {
		tr.Translation.X += step
	}
	if input.Up {
		tr.Translation.Y += step
	}
	if input.Down {
		tr.Translation.Y -= step
	}

	for _, ev := range input.Scroll {
		switch ev.Unit {
		case ScrollLine:
			cam.Scale *= 1 + ev.Y*s.Config.LineZoomFactor
		case ScrollPixel:
			cam.Scale *= 1 + ev.Y*s.Config.PixelZoomFactor
		}
	}
}
