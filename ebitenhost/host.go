// Package ebitenhost runs the game in an Ebitengine window: it samples
// input, steps the simulation and draws the world and the static UI.
package ebitenhost

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/wavetd/ecs/debugui"
	debugui_ebiten "github.com/plus3/wavetd/ecs/debugui/ebiten"
	"github.com/plus3/wavetd/td"
	"github.com/plus3/wavetd/ui"
)

// maxFrameTime keeps a stalled frame from teleporting enemies.
const maxFrameTime = 0.25

// listScrollSpeed is how many pixels PageUp and PageDown move the list per frame.
const listScrollSpeed = 12

type Options struct {
	Title    string
	Width    int
	Height   int
	AssetDir string
	DebugUI  bool
	Logger   *log.Logger
}

// Host implements ebiten.Game.
type Host struct {
	game   *td.Game
	logger *log.Logger

	registry *ui.Registry
	assets   *Assets
	tree     *ui.Node
	scroll   *ui.Scroll
	layout   *ui.Box

	backend *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay

	width, height int
}

func New(game *td.Game, opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	registry := ui.NewRegistry()
	h := &Host{
		game:     game,
		logger:   logger,
		registry: registry,
		assets:   NewAssets(opts.AssetDir, registry, logger),
		scroll:   ui.NewScroll(),
		width:    opts.Width,
		height:   opts.Height,
	}
	h.tree = ui.BuildTopBar(registry)

	if opts.DebugUI {
		// the ImGui backend creates the window itself
		h.backend = debugui_ebiten.NewImguiBackend(opts.Title, opts.Width, opts.Height)
		h.overlay = debugui.Install(game.World(), game.Scheduler())
		debugui.SpawnDebugUI(h.overlay)
	} else {
		ebiten.SetWindowSize(opts.Width, opts.Height)
		ebiten.SetWindowTitle(opts.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return h
}

// Run blocks until the window is closed or the game fails.
func (h *Host) Run() error {
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("ebiten host: %w", err)
	}
	return nil
}

func (h *Host) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if h.backend != nil {
		return h.backend.Frame(h.step)
	}
	return h.step()
}

func (h *Host) step() error {
	captured := false
	if h.overlay != nil {
		captured = h.overlay.InputState().WantCaptureMouse
	}

	h.scrollList()

	dt := min(1/float64(ebiten.TPS()), maxFrameTime)
	if err := h.game.Step(dt, readInput(h.width, h.height, captured)); err != nil {
		return fmt.Errorf("frame failed: %w", err)
	}
	return nil
}

func (h *Host) scrollList() {
	if h.layout == nil {
		return
	}
	list := h.layout.Find(ui.ListName)
	if ebiten.IsKeyPressed(ebiten.KeyPageDown) {
		h.scroll.By(list, listScrollSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyPageUp) {
		h.scroll.By(list, -listScrollSpeed)
	}
}

func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)

	if view, err := h.game.View(); err == nil {
		drawWorld(screen, view, h.game.Drawables())
	}

	h.layout = ui.Layout(h.tree, float64(h.width), float64(h.height), h.assets, h.scroll)
	drawUI(screen, h.layout, h.assets)

	if h.backend != nil {
		h.backend.Draw(screen)
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width, h.height = outsideWidth, outsideHeight
		h.game.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	if h.backend != nil {
		h.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
