package termhost

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/wavetd/td"
	"github.com/stretchr/testify/assert"
)

func TestInputCollector(t *testing.T) {
	t.Run("arrows last one frame", func(t *testing.T) {
		c := newInputCollector(80, 24)
		assert.True(t, c.handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
		assert.True(t, c.handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))

		in := c.take()
		assert.True(t, in.Left)
		assert.True(t, in.Up)
		assert.False(t, in.Right)

		assert.False(t, c.take().Left)
	})

	t.Run("press edge and cursor", func(t *testing.T) {
		c := newInputCollector(80, 24)

		c.handle(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
		in := c.take()
		assert.True(t, in.PrimaryJustPressed)
		assert.True(t, in.CursorValid)
		assert.Equal(t, td.Vec2{X: 84, Y: 88}, in.Cursor)

		// still held while dragging
		c.handle(tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone))
		in = c.take()
		assert.False(t, in.PrimaryJustPressed)
		assert.Equal(t, td.Vec2{X: 92, Y: 88}, in.Cursor)

		c.handle(tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModNone))
		c.handle(tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone))
		assert.True(t, c.take().PrimaryJustPressed)

		// cursor carries over to later frames
		assert.True(t, c.take().CursorValid)
	})

	t.Run("cursor outside the world area", func(t *testing.T) {
		c := newInputCollector(80, 23)
		c.handle(tcell.NewEventMouse(3, 23, tcell.Button1, tcell.ModNone))

		in := c.take()
		assert.True(t, in.PrimaryJustPressed)
		assert.False(t, in.CursorValid)
	})

	t.Run("resize invalidates the cursor", func(t *testing.T) {
		c := newInputCollector(80, 24)
		c.handle(tcell.NewEventMouse(70, 5, tcell.ButtonNone, tcell.ModNone))
		c.resize(40, 24)
		assert.False(t, c.take().CursorValid)
	})

	t.Run("wheel", func(t *testing.T) {
		c := newInputCollector(80, 24)
		c.handle(tcell.NewEventMouse(1, 1, tcell.WheelUp, tcell.ModNone))
		c.handle(tcell.NewEventMouse(1, 1, tcell.WheelDown, tcell.ModNone))
		c.handle(tcell.NewEventMouse(1, 1, tcell.WheelUp, tcell.ModNone))

		assert.Equal(t, []td.ScrollEvent{
			{Unit: td.ScrollLine, Y: 1},
			{Unit: td.ScrollLine, Y: -1},
			{Unit: td.ScrollLine, Y: 1},
		}, c.take().Scroll)
		assert.Empty(t, c.take().Scroll)
	})

	t.Run("quit keys", func(t *testing.T) {
		c := newInputCollector(80, 24)
		assert.False(t, c.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
		assert.False(t, c.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
		assert.True(t, c.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	})
}
