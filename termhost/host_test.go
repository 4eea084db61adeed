package termhost

import (
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/wavetd/config"
	"github.com/plus3/wavetd/td"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHost(t *testing.T) (*Host, tcell.SimulationScreen, *td.Game) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(120, 41)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Spawn.Period = time.Hour
	game, err := td.New(cfg, td.Quiet())
	require.NoError(t, err)

	return New(screen, game, log.New(io.Discard, "", 0)), screen, game
}

func rowText(screen tcell.Screen, row, cols int) string {
	runes := make([]rune, 0, cols)
	for x := range cols {
		r, _, _, _ := screen.GetContent(x, row)
		runes = append(runes, r)
	}
	return string(runes)
}

func TestHostWindowGeometry(t *testing.T) {
	_, _, game := newTestHost(t)

	win := game.Window()
	assert.Equal(t, 960.0, win.Width)
	assert.Equal(t, 640.0, win.Height)
}

func TestHostPlacesTower(t *testing.T) {
	h, screen, game := newTestHost(t)

	// right of the logo, clear of every panel
	assert.True(t, h.Handle(tcell.NewEventMouse(100, 30, tcell.Button1, tcell.ModNone)))
	require.NoError(t, h.Tick(1.0/30))

	var towers []td.Vec3
	for _, pos := range game.Towers() {
		towers = append(towers, pos)
	}
	require.Len(t, towers, 1)
	assert.Equal(t, td.Vec3{X: 424, Y: -68, Z: 10}, towers[0])

	r, _, _, _ := screen.GetContent(100, 30)
	assert.Equal(t, towerRune, r)
	assert.Contains(t, rowText(screen, 40, 120), "towers 1")
}

func TestHostDrawsEnemies(t *testing.T) {
	h, screen, game := newTestHost(t)
	view, err := game.View()
	require.NoError(t, err)

	// an enemy under a world cell outside of the UI panels
	target := view.Unproject(td.Vec2{X: 100*CellWidth + 4, Y: 2*CellHeight + 8})
	s := game.Stores()
	id := game.World().Spawn()
	s.Transforms.Set(id, td.Transform{Translation: td.Vec3{X: target.X, Y: target.Y}})
	s.Sprites.Set(id, td.Sprite{Visual: game.Assets().Enemy})
	s.Enemies.Set(id, td.Enemy{})

	h.Draw()

	r, _, style, _ := screen.GetContent(100, 2)
	assert.Equal(t, enemyRune, r)
	fg, _, _ := style.Decompose()
	assert.Equal(t, cellColor(0.5, 0, 0.5), fg)
}

func TestHostDrawsSidebar(t *testing.T) {
	h, screen, _ := newTestHost(t)

	h.Draw()

	found := false
	for row := range 40 {
		if strings.Contains(rowText(screen, row, 25), "Scrolling list") {
			found = true
		}
	}
	assert.True(t, found, "title is drawn in the side column")
}

func TestHostMissedClick(t *testing.T) {
	h, screen, game := newTestHost(t)

	// the status row is outside the world area
	h.Handle(tcell.NewEventMouse(5, 40, tcell.Button1, tcell.ModNone))
	require.NoError(t, h.Tick(1.0/30))

	assert.Equal(t, 0, countTowers(game))
	assert.Contains(t, rowText(screen, 40, 120), "cursor is not in the game window")
}

func TestHostPanAndZoom(t *testing.T) {
	h, _, game := newTestHost(t)

	h.Handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	h.Handle(tcell.NewEventMouse(60, 20, tcell.WheelUp, tcell.ModNone))
	require.NoError(t, h.Tick(1.0/30))

	pos, cam := game.Camera()
	assert.Equal(t, 110.0, pos.X)
	assert.InDelta(t, 1.0001, cam.Scale, 1e-12)

	require.NoError(t, h.Tick(1.0/30))
	pos, _ = game.Camera()
	assert.Equal(t, 110.0, pos.X)
}

func TestHostResize(t *testing.T) {
	h, screen, game := newTestHost(t)

	screen.SetSize(80, 25)
	h.Handle(tcell.NewEventResize(80, 25))

	assert.Equal(t, 640.0, game.Window().Width)
	assert.Equal(t, 384.0, game.Window().Height)
}

func TestHostScrollsList(t *testing.T) {
	h, _, _ := newTestHost(t)

	h.Handle(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	h.Handle(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))

	assert.Equal(t, 32.0, h.scroll.Offset("ScrollingList"))

	h.Handle(tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone))
	h.Handle(tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone))
	h.Handle(tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone))
	assert.Equal(t, 0.0, h.scroll.Offset("ScrollingList"))
}

func countTowers(game *td.Game) int {
	n := 0
	for range game.Towers() {
		n++
	}
	return n
}
