package ebitenhost

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/wavetd/td"
	"github.com/plus3/wavetd/ui"
)

var clearColor = color.RGBA{R: 40, G: 40, B: 46, A: 255}

func toRGBA(r, g, b, a float64) color.RGBA {
	// color.RGBA is alpha premultiplied
	c := func(v float64) uint8 { return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255)) }
	return color.RGBA{R: c(r * a), G: c(g * a), B: c(b * a), A: c(a)}
}

func uiColor(c ui.Color) color.RGBA { return toRGBA(c.R, c.G, c.B, c.A) }
func tdColor(c td.Color) color.RGBA { return toRGBA(c.R, c.G, c.B, c.A) }

// drawWorld paints every sprite through the camera. World sizes shrink as
// the camera scale grows.
func drawWorld(screen *ebiten.Image, view td.View, drawables []td.Drawable) {
	for _, d := range drawables {
		p := view.Project(td.Vec2{X: d.Position.X, Y: d.Position.Y})
		clr := tdColor(d.Visual.Color)

		switch d.Visual.Shape {
		case td.ShapeCircle:
			r := d.Visual.Radius / view.Scale
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(r), clr, true)
		case td.ShapeQuad:
			w := d.Visual.Width / view.Scale
			h := d.Visual.Height / view.Scale
			vector.DrawFilledRect(screen, float32(p.X-w/2), float32(p.Y-h/2), float32(w), float32(h), clr, false)
		}
	}
}

// drawUI paints the laid out tree in paint order, honouring clip rects.
func drawUI(screen *ebiten.Image, root *ui.Box, assets *Assets) {
	for box := range root.Walk() {
		target := screen
		if box.Clipped {
			if box.Visible().Empty() {
				continue
			}
			target = screen.SubImage(toImageRect(box.Clip)).(*ebiten.Image)
		}
		drawBox(target, box, assets)
	}
}

func toImageRect(r ui.Rect) image.Rectangle {
	return image.Rect(int(math.Floor(r.X)), int(math.Floor(r.Y)), int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)))
}

func drawBox(dst *ebiten.Image, box *ui.Box, assets *Assets) {
	n := box.Node
	r := box.Rect

	if b := n.Style.Border; b > 0 && !n.BorderColor.Transparent() {
		vector.StrokeRect(dst, float32(r.X+b/2), float32(r.Y+b/2), float32(r.W-b), float32(r.H-b), float32(b), uiColor(n.BorderColor), false)
	}

	c := box.Content
	if !n.Background.Transparent() {
		vector.DrawFilledRect(dst, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), uiColor(n.Background), false)
	}

	if n.Image != 0 {
		img := assets.Image(n.Image)
		bounds := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(c.W/float64(bounds.Dx()), c.H/float64(bounds.Dy()))
		op.GeoM.Translate(c.X, c.Y)
		op.ColorScale.Scale(float32(n.Tint.R), float32(n.Tint.G), float32(n.Tint.B), float32(n.Tint.A))
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, op)
	}

	if t := n.Text; t != nil {
		face := assets.Face(t.Font, t.Size)
		ascent := face.Metrics().Ascent.Ceil()
		text.Draw(dst, t.Value, face, int(c.X), int(c.Y)+ascent, color.White)
	}
}
