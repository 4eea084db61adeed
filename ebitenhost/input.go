package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/wavetd/td"
)

// readInput samples the devices for one frame. Mouse input is dropped
// while the debug overlay owns the mouse.
func readInput(width, height int, mouseCaptured bool) td.Input {
	in := td.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsFocused() && x >= 0 && y >= 0 && x < width && y < height {
		in.Cursor = td.Vec2{X: float64(x), Y: float64(y)}
		in.CursorValid = true
	}

	if mouseCaptured {
		return in
	}

	in.PrimaryJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	// Ebitengine reports wheel notches and trackpad deltas alike, so all
	// scrolling is treated as line units.
	if _, dy := ebiten.Wheel(); dy != 0 {
		in.Scroll = append(in.Scroll, td.ScrollEvent{Unit: td.ScrollLine, Y: dy})
	}
	return in
}
