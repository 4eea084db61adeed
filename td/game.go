package td

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"log"
	"math/rand/v2"
	"slices"

	"github.com/plus3/wavetd/config"
	"github.com/plus3/wavetd/ecs"
	"github.com/plus3/wavetd/event"
)

// Game owns the world, its systems and the per-frame input snapshot.
// It is driven by a host calling Step once per frame.
type Game struct {
	cfg       config.Config
	world     *ecs.World
	scheduler *ecs.Scheduler
	stores    Stores
	events    *event.Dispatcher
	logger    *log.Logger

	input  *ecs.Singleton[Input]
	assets *ecs.Singleton[AssetSet]
	timer  *ecs.Singleton[SpawnTimer]

	rng    *rand.Rand
	camera ecs.EntityId
	window ecs.EntityId
}

type Option func(*Game)

// WithLogger sends diagnostics to l instead of the standard logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithRand replaces the spawner's random source.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithDispatcher shares an existing dispatcher instead of creating one.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Game) { g.events = d }
}

// Quiet discards diagnostics.
func Quiet() Option {
	return WithLogger(log.New(io.Discard, "", 0))
}

// New builds the world: stores, resources, the camera and the window
// entities and the systems in their fixed order.
func New(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:   cfg,
		world: ecs.NewWorld(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	if g.events == nil {
		g.events = event.NewDispatcher()
	}
	if g.rng == nil {
		seed := cfg.Spawn.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}

	g.stores = RegisterStores(g.world)
	g.input = ecs.NewSingleton[Input](g.world)
	g.assets = ecs.NewSingleton(g.world, NewAssetSet())
	g.timer = ecs.NewSingleton(g.world, SpawnTimer{NewRepeatingTimer(cfg.Spawn.Period)})

	g.camera = g.world.Spawn()
	g.stores.Cameras.Set(g.camera, Camera{Scale: cfg.Camera.Scale})
	g.stores.Transforms.Set(g.camera, Transform{Translation: Vec3{
		X: cfg.Camera.Start[0],
		Y: cfg.Camera.Start[1],
		Z: cfg.Camera.Start[2],
	}})

	g.window = g.world.Spawn()
	g.stores.Windows.Set(g.window, Window{
		Width:  float64(cfg.Window.Width),
		Height: float64(cfg.Window.Height),
	})

	if err := g.checkSingletons(); err != nil {
		return nil, fmt.Errorf("failed to set up world: %w", err)
	}

	g.scheduler = ecs.NewScheduler(g.world)
	g.scheduler.Register(&SpawnerSystem{
		Stores: g.stores,
		Timer:  g.timer,
		Assets: g.assets,
		Rand:   g.rng,
		Events: g.events,
		Config: cfg.Spawn,
	})
	g.scheduler.Register(&MoverSystem{
		Stores: g.stores,
		Events: g.events,
		Config: cfg.Enemy,
	})
	g.scheduler.Register(&PlacerSystem{
		Stores: g.stores,
		Input:  g.input,
		Assets: g.assets,
		Events: g.events,
		Logger: g.logger,
		TowerZ: cfg.TowerZ,
	})
	g.scheduler.Register(&CameraControllerSystem{
		Stores: g.stores,
		Input:  g.input,
		Config: cfg.Camera,
	})

	return g, nil
}

func (g *Game) checkSingletons() error {
	if _, _, _, err := g.stores.camera(); err != nil {
		return err
	}
	if _, err := g.stores.window(); err != nil {
		return err
	}
	return nil
}

// Step runs one frame of dt seconds with the given input.
func (g *Game) Step(dt float64, input Input) error {
	*g.input.Get() = input

	if win := g.stores.Windows.Get(g.window); win != nil {
		win.Cursor = input.Cursor
		win.CursorValid = input.CursorValid
	}

	return g.scheduler.Once(dt)
}

// Resize updates the primary window size.
func (g *Game) Resize(width, height float64) {
	if win := g.stores.Windows.Get(g.window); win != nil {
		win.Width = width
		win.Height = height
	}
}

// View returns the current camera and window mapping.
func (g *Game) View() (View, error) {
	_, cam, tr, err := g.stores.camera()
	if err != nil {
		return View{}, err
	}
	win, err := g.stores.window()
	if err != nil {
		return View{}, err
	}
	return View{Camera: tr.Translation, Scale: cam.Scale, Width: win.Width, Height: win.Height}, nil
}

// Enemies iterates the live enemies and their positions.
func (g *Game) Enemies() iter.Seq2[ecs.EntityId, Vec3] {
	return positions(g.stores.Enemies, g.stores.Transforms)
}

// Towers iterates the placed towers and their positions.
func (g *Game) Towers() iter.Seq2[ecs.EntityId, Vec3] {
	return positions(g.stores.Towers, g.stores.Transforms)
}

func positions[T any](tags *ecs.Components[T], transforms *ecs.Components[Transform]) iter.Seq2[ecs.EntityId, Vec3] {
	return func(yield func(ecs.EntityId, Vec3) bool) {
		for id, pair := range ecs.Join(tags, transforms) {
			if !yield(id, pair.B.Translation) {
				return
			}
		}
	}
}

// Drawable is a sprite resolved for rendering.
type Drawable struct {
	Entity   ecs.EntityId
	Position Vec3
	Visual   Visual
}

// Drawables returns every sprite sorted back to front by Z.
func (g *Game) Drawables() []Drawable {
	assets := g.assets.Get()
	var out []Drawable
	for id, pair := range ecs.Join(g.stores.Sprites, g.stores.Transforms) {
		visual, ok := assets.Visual(pair.A.Visual)
		if !ok {
			continue
		}
		out = append(out, Drawable{Entity: id, Position: pair.B.Translation, Visual: visual})
	}
	slices.SortStableFunc(out, func(a, b Drawable) int {
		return cmp.Compare(a.Position.Z, b.Position.Z)
	})
	return out
}

// Camera returns the camera position and projection.
func (g *Game) Camera() (Vec3, Camera) {
	var pos Vec3
	if tr := g.stores.Transforms.Get(g.camera); tr != nil {
		pos = tr.Translation
	}
	var cam Camera
	if c := g.stores.Cameras.Get(g.camera); c != nil {
		cam = *c
	}
	return pos, cam
}

func (g *Game) Window() Window {
	if win := g.stores.Windows.Get(g.window); win != nil {
		return *win
	}
	return Window{}
}

func (g *Game) Assets() *AssetSet         { return g.assets.Get() }
func (g *Game) Events() *event.Dispatcher { return g.events }
func (g *Game) World() *ecs.World         { return g.world }
func (g *Game) Stores() Stores            { return g.stores }
func (g *Game) Scheduler() *ecs.Scheduler { return g.scheduler }
func (g *Game) Config() config.Config     { return g.cfg }
func (g *Game) SpawnTimer() *SpawnTimer   { return g.timer.Get() }
