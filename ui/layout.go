package ui

import (
	"iter"
	"math"
	"unicode/utf8"
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: max(0, r.W-2*d), H: max(0, r.H-2*d)}
}

// Intersect returns the overlap of r and o, empty if they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Measurer sizes text runs.
type Measurer interface {
	Measure(t Text) (w, h float64)
}

type MeasureFunc func(t Text) (w, h float64)

func (f MeasureFunc) Measure(t Text) (w, h float64) { return f(t) }

// DefaultMeasurer approximates a proportional font: half an em per rune
// and a line height of 1.2 em.
var DefaultMeasurer Measurer = MeasureFunc(func(t Text) (float64, float64) {
	return 0.5 * t.Size * float64(utf8.RuneCountInString(t.Value)), 1.2 * t.Size
})

// Box is a laid out node. Rect is the border box in window pixels with the
// origin at the top left; Content is Rect minus the border.
type Box struct {
	Node    *Node
	Rect    Rect
	Content Rect
	// Clip is set when an ancestor clips this box.
	Clip    Rect
	Clipped bool
	// Extent is the main axis size of the in-flow children.
	Extent   float64
	Children []*Box
}

// Walk iterates boxes in paint order: parents before children, siblings in
// declaration order. Nodes with DisplayNone have no box.
func (b *Box) Walk() iter.Seq[*Box] {
	return func(yield func(*Box) bool) {
		b.walk(yield)
	}
}

func (b *Box) walk(yield func(*Box) bool) bool {
	if !yield(b) {
		return false
	}
	for _, c := range b.Children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// Find returns the box of the first node with the given name.
func (b *Box) Find(name string) *Box {
	for box := range b.Walk() {
		if box.Node.Name == name {
			return box
		}
	}
	return nil
}

// Visible is the part of the box that gets painted.
func (b *Box) Visible() Rect {
	if b.Clipped {
		return b.Rect.Intersect(b.Clip)
	}
	return b.Rect
}

// Layout positions the tree in a viewport of the given size. scroll may be
// nil. The tree is not modified.
func Layout(root *Node, width, height float64, m Measurer, scroll *Scroll) *Box {
	if m == nil {
		m = DefaultMeasurer
	}
	l := &layouter{vw: width, vh: height, m: m, scroll: scroll}

	viewport := Rect{W: width, H: height}
	w, h := l.size(root, viewport, Row, AlignStretch)
	return l.place(root, Rect{W: w, H: h}, nil)
}

type layouter struct {
	vw, vh float64
	m      Measurer
	scroll *Scroll
}

// resolve turns v into pixels against base. Percentages of an unknown
// (NaN) base are unresolved, like Auto.
func (l *layouter) resolve(v Val, base float64) (float64, bool) {
	switch v.Unit {
	case UnitPx:
		return v.Value, true
	case UnitPercent:
		if math.IsNaN(base) {
			return 0, false
		}
		return base * v.Value / 100, true
	case UnitVMin:
		return min(l.vw, l.vh) * v.Value / 100, true
	default:
		return 0, false
	}
}

func (l *layouter) marginTop(n *Node, base float64) float64 {
	m, _ := l.resolve(n.Style.MarginTop, base)
	return m
}

func inFlow(n *Node) bool {
	return n.Style.Display != DisplayNone && n.Style.Position == Relative
}

// size computes the border box size of an in-flow child of a container
// with the given content box, direction and AlignItems.
func (l *layouter) size(n *Node, content Rect, dir Direction, alignItems Align) (float64, float64) {
	w, wok := l.resolve(n.Style.Width, content.W)
	h, hok := l.resolve(n.Style.Height, content.H)

	align := n.Style.AlignSelf
	if align == AlignAuto {
		align = alignItems
	}
	stretch := align == AlignAuto || align == AlignStretch
	if stretch {
		if dir == Row && !hok {
			h, hok = content.H-l.marginTop(n, content.W), true
		}
		if dir == Column && !wok {
			w, wok = content.W, true
		}
	}

	if !wok || !hok {
		iw, ih := l.intrinsic(n)
		if !wok {
			w = iw
		}
		if !hok {
			h = ih
		}
	}
	return w, h
}

// intrinsic is the content based size of n, ignoring its parent.
func (l *layouter) intrinsic(n *Node) (float64, float64) {
	border := 2 * n.Style.Border
	if n.Text != nil {
		w, h := l.m.Measure(*n.Text)
		return w + border, h + border
	}

	var w, h float64
	for _, c := range n.Children {
		if !inFlow(c) {
			continue
		}
		cw, ok := l.resolve(c.Style.Width, math.NaN())
		ch, hok := l.resolve(c.Style.Height, math.NaN())
		if !ok || !hok {
			iw, ih := l.intrinsic(c)
			if !ok {
				cw = iw
			}
			if !hok {
				ch = ih
			}
		}
		margin := l.marginTop(c, math.NaN())
		if n.Style.Direction == Row {
			w += cw
			h = max(h, ch+margin)
		} else {
			w = max(w, cw)
			h += ch + margin
		}
	}
	return w + border, h + border
}

func (l *layouter) place(n *Node, rect Rect, clip *Rect) *Box {
	b := &Box{Node: n, Rect: rect, Content: rect.Inset(n.Style.Border)}
	if clip != nil {
		b.Clip, b.Clipped = *clip, true
	}

	childClip := clip
	if n.Style.Overflow == OverflowClipY {
		c := Rect{X: 0, Y: b.Content.Y, W: l.vw, H: b.Content.H}
		if clip != nil {
			c = c.Intersect(*clip)
		}
		childClip = &c
	}

	rects := l.arrange(n, b)
	for i, c := range n.Children {
		if c.Style.Display == DisplayNone {
			continue
		}
		b.Children = append(b.Children, l.place(c, rects[i], childClip))
	}
	return b
}

// arrange computes the border box of every child of n, indexed like
// n.Children. It also records the in-flow extent on b.
func (l *layouter) arrange(n *Node, b *Box) []Rect {
	content := b.Content
	st := n.Style
	rects := make([]Rect, len(n.Children))

	type item struct {
		index  int
		w, h   float64
		margin float64
	}
	var flow []item
	var total float64
	for i, c := range n.Children {
		if !inFlow(c) {
			continue
		}
		w, h := l.size(c, content, st.Direction, st.AlignItems)
		it := item{index: i, w: w, h: h, margin: l.marginTop(c, content.W)}
		if st.Direction == Row {
			total += w
		} else {
			total += h + it.margin
		}
		flow = append(flow, it)
	}
	b.Extent = total

	mainSize := content.W
	if st.Direction == Column {
		mainSize = content.H
	}
	free := mainSize - total

	var offset, gap float64
	switch st.Justify {
	case JustifyCenter:
		offset = free / 2
	case JustifySpaceBetween:
		if len(flow) > 1 && free > 0 {
			gap = free / float64(len(flow)-1)
		}
	}
	if st.Overflow == OverflowClipY && st.Direction == Column && l.scroll != nil {
		offset -= l.scroll.Offset(n.Name)
	}

	for _, it := range flow {
		c := n.Children[it.index]
		align := c.Style.AlignSelf
		if align == AlignAuto {
			align = st.AlignItems
		}

		var r Rect
		r.W, r.H = it.w, it.h
		if st.Direction == Row {
			r.X = content.X + offset
			r.Y = content.Y + it.margin + crossOffset(align, content.H-it.margin, it.h)
			offset += it.w + gap
		} else {
			r.Y = content.Y + offset + it.margin
			r.X = content.X + crossOffset(align, content.W, it.w)
			offset += it.h + it.margin + gap
		}
		rects[it.index] = r
	}

	for i, c := range n.Children {
		if c.Style.Display == DisplayNone || c.Style.Position != Absolute {
			continue
		}
		rects[i] = l.absolute(c, content)
	}
	return rects
}

func crossOffset(align Align, space, size float64) float64 {
	if align == AlignCenter {
		return (space - size) / 2
	}
	return 0
}

// absolute places an out-of-flow child against the container's content
// box. Without Left the child starts at the left edge; without Bottom it
// starts at the top.
func (l *layouter) absolute(n *Node, content Rect) Rect {
	w, wok := l.resolve(n.Style.Width, content.W)
	h, hok := l.resolve(n.Style.Height, content.H)
	if !wok || !hok {
		iw, ih := l.intrinsic(n)
		if !wok {
			w = iw
		}
		if !hok {
			h = ih
		}
	}

	r := Rect{X: content.X, Y: content.Y + l.marginTop(n, content.W), W: w, H: h}
	if left, ok := l.resolve(n.Style.Left, content.W); ok {
		r.X = content.X + left
	}
	if bottom, ok := l.resolve(n.Style.Bottom, content.H); ok {
		r.Y = content.Y + content.H - bottom - h
	}
	return r
}
