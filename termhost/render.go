package termhost

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/wavetd/td"
	"github.com/plus3/wavetd/ui"
)

const (
	enemyRune = 'o'
	towerRune = '#'
	imageRune = '▒'
)

// cellMeasurer sizes text in whole cells.
var cellMeasurer = ui.MeasureFunc(func(t ui.Text) (float64, float64) {
	return float64(len([]rune(t.Value)) * CellWidth), CellHeight
})

func cellColor(r, g, b float64) tcell.Color {
	c := func(v float64) int32 { return int32(math.Round(math.Max(0, math.Min(1, v)) * 255)) }
	return tcell.NewRGBColor(c(r), c(g), c(b))
}

// toCell maps window pixels to a cell.
func toCell(p td.Vec2) (int, int) {
	return int(math.Floor(p.X / CellWidth)), int(math.Floor(p.Y / CellHeight))
}

// drawWorld puts one glyph per sprite. Sprites outside the world area are
// skipped.
func drawWorld(screen tcell.Screen, cols, rows int, view td.View, drawables []td.Drawable) {
	for _, d := range drawables {
		x, y := toCell(view.Project(td.Vec2{X: d.Position.X, Y: d.Position.Y}))
		if x < 0 || y < 0 || x >= cols || y >= rows {
			continue
		}

		glyph := enemyRune
		if d.Visual.Shape == td.ShapeQuad {
			glyph = towerRune
		}
		c := d.Visual.Color
		screen.SetContent(x, y, glyph, nil, tcell.StyleDefault.Foreground(cellColor(c.R, c.G, c.B)))
	}
}

// drawUI paints backgrounds, images and labels of the laid out tree. Fully
// transparent backgrounds keep the world visible; translucent ones are
// painted opaque.
func drawUI(screen tcell.Screen, root *ui.Box) {
	for box := range root.Walk() {
		visible := box.Visible()
		if visible.Empty() {
			continue
		}
		n := box.Node

		if !n.Background.Transparent() {
			bg := tcell.StyleDefault.Background(cellColor(n.Background.R, n.Background.G, n.Background.B))
			fillRect(screen, visible, ' ', bg)
		}
		if n.Image != 0 {
			fillRect(screen, visible, imageRune, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		}
		if n.Text != nil {
			drawText(screen, box, n.Text.Value)
		}
	}
}

func cellRange(r ui.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Ceil(r.X / CellWidth))
	y0 = int(math.Ceil(r.Y / CellHeight))
	x1 = int(math.Floor((r.X + r.W) / CellWidth))
	y1 = int(math.Floor((r.Y + r.H) / CellHeight))
	return
}

func fillRect(screen tcell.Screen, r ui.Rect, glyph rune, style tcell.Style) {
	x0, y0, x1, y1 := cellRange(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

// drawText writes a label on its first row, keeping whatever background
// the cell already has.
func drawText(screen tcell.Screen, box *ui.Box, value string) {
	x, y := toCell(td.Vec2{X: box.Content.X, Y: box.Content.Y})
	if box.Clipped {
		_, cy0, _, cy1 := cellRange(box.Clip)
		if y < cy0 || y >= cy1 {
			return
		}
	}
	for i, r := range []rune(value) {
		_, _, style, _ := screen.GetContent(x+i, y)
		screen.SetContent(x+i, y, r, nil, style.Foreground(tcell.ColorWhite))
	}
}

func drawStatus(screen tcell.Screen, row, cols int, status string) {
	style := tcell.StyleDefault.Reverse(true)
	runes := []rune(status)
	for x := range cols {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		screen.SetContent(x, row, r, nil, style)
	}
}
