package termhost

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/wavetd/td"
)

// Terminal cells are mapped to a fixed pixel size so the gameplay sees the
// same window geometry as on a graphical host.
const (
	CellWidth  = 8
	CellHeight = 16
)

// inputCollector turns tcell events into per-frame input snapshots.
// Terminals report key presses but not releases, so an arrow key counts as
// held for the frame after each press or auto repeat.
type inputCollector struct {
	next       td.Input
	buttonDown bool

	// world area in cells; the cursor is only valid inside it
	cols, rows int
}

func newInputCollector(cols, rows int) *inputCollector {
	return &inputCollector{cols: cols, rows: rows}
}

func (c *inputCollector) resize(cols, rows int) {
	c.cols, c.rows = cols, rows
	if c.next.CursorValid && !c.inside(c.next.Cursor) {
		c.next.CursorValid = false
	}
}

func (c *inputCollector) inside(p td.Vec2) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < float64(c.cols*CellWidth) && p.Y < float64(c.rows*CellHeight)
}

// handle records one event. It reports false when the user asked to quit.
func (c *inputCollector) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			c.next.Left = true
		case tcell.KeyRight:
			c.next.Right = true
		case tcell.KeyUp:
			c.next.Up = true
		case tcell.KeyDown:
			c.next.Down = true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		// cell centre in window pixels
		c.next.Cursor = td.Vec2{X: float64(x*CellWidth + CellWidth/2), Y: float64(y*CellHeight + CellHeight/2)}
		c.next.CursorValid = c.inside(c.next.Cursor)

		buttons := ev.Buttons()
		down := buttons&tcell.Button1 != 0
		if down && !c.buttonDown {
			c.next.PrimaryJustPressed = true
		}
		c.buttonDown = down

		if buttons&tcell.WheelUp != 0 {
			c.next.Scroll = append(c.next.Scroll, td.ScrollEvent{Unit: td.ScrollLine, Y: 1})
		}
		if buttons&tcell.WheelDown != 0 {
			c.next.Scroll = append(c.next.Scroll, td.ScrollEvent{Unit: td.ScrollLine, Y: -1})
		}
	}
	return true
}

// take returns the snapshot for this frame and starts the next one. Only
// the cursor carries over.
func (c *inputCollector) take() td.Input {
	in := c.next
	c.next = td.Input{Cursor: in.Cursor, CursorValid: in.CursorValid}
	return in
}
