package main

import (
	"github.com/plus3/wavetd/td"
)

// syntheticInput replays a fixed pattern: the cursor walks a diagonal
// across the window and leaves it for one click in eight, the camera pans
// in a slow square and the wheel alternates between zooming in and out.
type syntheticInput struct {
	width, height float64
	clickEvery    int
	scrollEvery   int
}

func (s *syntheticInput) next(frame int64) td.Input {
	var in td.Input

	clicks := int64(0)
	if s.clickEvery > 0 {
		clicks = frame / int64(s.clickEvery)
		in.PrimaryJustPressed = frame%int64(s.clickEvery) == 0
	}

	// one click in eight lands outside the window
	step := float64(clicks%16) / 16
	in.Cursor = td.Vec2{X: step * s.width, Y: step * s.height}
	in.CursorValid = clicks%8 != 7

	switch (frame / 120) % 4 {
	case 0:
		in.Right = true
	case 1:
		in.Up = true
	case 2:
		in.Left = true
	case 3:
		in.Down = true
	}

	if s.scrollEvery > 0 && frame%int64(s.scrollEvery) == 0 {
		y := 1.0
		if (frame/int64(s.scrollEvery))%2 == 1 {
			y = -1
		}
		in.Scroll = []td.ScrollEvent{{Unit: td.ScrollLine, Y: y}}
	}
	return in
}
