package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layoutTopBar(t *testing.T, scroll *Scroll) *Box {
	t.Helper()
	root := Layout(BuildTopBar(NewRegistry()), 800, 600, DefaultMeasurer, scroll)
	require.NotNil(t, root)
	return root
}

func find(t *testing.T, root *Box, name string) *Box {
	t.Helper()
	b := root.Find(name)
	require.NotNil(t, b, name)
	return b
}

func TestLayoutTopBar(t *testing.T) {
	root := layoutTopBar(t, nil)

	tests := []struct {
		name string
		want Rect
	}{
		{"Root", Rect{X: 0, Y: 0, W: 800, H: 600}},
		{"LeftColumn", Rect{X: 0, Y: 0, W: 200, H: 600}},
		{"Title", Rect{X: 12.5, Y: 135, W: 175, H: 30}},
		{ListName, Rect{X: 0, Y: 165, W: 200, H: 300}},
		{"MovingPanel", Rect{X: 0, Y: 165, W: 200, H: 720}},
		{"Item 0", Rect{X: 70, Y: 165, W: 60, H: 24}},
		{"Item 10", Rect{X: 65, Y: 405, W: 70, H: 24}},
		{"BorderedBox", Rect{X: 210, Y: 390, W: 200, H: 200}},
		{"BorderedBoxInner", Rect{X: 230, Y: 410, W: 160, H: 160}},
		{"RenderOrder", Rect{X: 0, Y: 0, W: 800, H: 600}},
		{"RedSquare", Rect{X: 350, Y: 250, W: 100, H: 100}},
		{"Overlay 1", Rect{X: 370, Y: 230, W: 100, H: 100}},
		{"Overlay 4", Rect{X: 430, Y: 170, W: 100, H: 100}},
		{"LogoRow", Rect{X: 0, Y: 0, W: 800, H: 155}},
		{"Logo", Rect{X: 150, Y: 30, W: 500, H: 125}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := find(t, root, tt.name).Rect
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			assert.InDelta(t, tt.want.W, got.W, 1e-9)
			assert.InDelta(t, tt.want.H, got.H, 1e-9)
		})
	}
}

func TestLayoutPaintOrder(t *testing.T) {
	root := layoutTopBar(t, nil)

	var names []string
	for b := range root.Walk() {
		names = append(names, b.Node.Name)
	}

	assert.Equal(t, "Root", names[0])
	assert.NotContains(t, names, "LogoAlt")

	index := func(name string) int {
		for i, n := range names {
			if n == name {
				return i
			}
		}
		t.Fatalf("%s not painted", name)
		return -1
	}
	assert.Less(t, index("LeftColumn"), index("Item 29"))
	assert.Less(t, index("Item 29"), index("BorderedBox"))
	assert.Less(t, index("RedSquare"), index("Overlay 1"))
	assert.Less(t, index("Overlay 1"), index("Overlay 2"))
	assert.Less(t, index("Overlay 3"), index("Overlay 4"))
	assert.Less(t, index("Overlay 4"), index("Logo"))
}

func TestLayoutClip(t *testing.T) {
	root := layoutTopBar(t, nil)

	list := find(t, root, ListName)
	assert.False(t, list.Clipped)
	assert.Equal(t, 720.0, list.Extent)

	item := find(t, root, "Item 29")
	assert.True(t, item.Clipped)
	assert.Equal(t, Rect{X: 0, Y: 165, W: 800, H: 300}, item.Clip)
	assert.True(t, item.Visible().Empty())

	first := find(t, root, "Item 0")
	assert.Equal(t, first.Rect, first.Visible())

	assert.False(t, find(t, root, "Logo").Clipped)
}

func TestLayoutDoesNotModifyTree(t *testing.T) {
	tree := BuildTopBar(NewRegistry())
	before := BuildTopBar(NewRegistry())

	Layout(tree, 800, 600, nil, nil)
	Layout(tree, 1024, 768, nil, nil)

	assert.Equal(t, before, tree)
}

func TestLayoutViewportUnits(t *testing.T) {
	root := Layout(BuildTopBar(NewRegistry()), 1280, 720, nil, nil)

	logo := find(t, root, "Logo")
	assert.InDelta(t, 36.0, logo.Rect.Y, 1e-9)
	assert.InDelta(t, 390.0, logo.Rect.X, 1e-9)
}

func TestScroll(t *testing.T) {
	unscrolled := layoutTopBar(t, nil)
	list := find(t, unscrolled, ListName)

	scroll := NewScroll()
	scroll.By(list, 48)
	assert.Equal(t, 48.0, scroll.Offset(ListName))

	root := layoutTopBar(t, scroll)
	assert.InDelta(t, 165.0-48, find(t, root, "Item 0").Rect.Y, 1e-9)
	assert.InDelta(t, 165.0, find(t, root, "Item 2").Rect.Y, 1e-9)
	assert.Equal(t, list.Rect, find(t, root, ListName).Rect)

	scroll.By(list, 10_000)
	assert.Equal(t, 420.0, scroll.Offset(ListName))

	scroll.By(list, -10_000)
	assert.Equal(t, 0.0, scroll.Offset(ListName))

	var none *Scroll
	assert.Equal(t, 0.0, none.Offset(ListName))
}

func TestScrollZeroValue(t *testing.T) {
	list := find(t, layoutTopBar(t, nil), ListName)

	var scroll Scroll
	assert.Equal(t, 0.0, scroll.Offset(ListName))
	assert.NotPanics(t, func() { scroll.By(list, 30) })
	assert.Equal(t, 30.0, scroll.Offset(ListName))
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 100, H: 50}

	assert.True(t, r.Contains(10, 10))
	assert.False(t, r.Contains(110, 10))
	assert.Equal(t, Rect{X: 20, Y: 20, W: 80, H: 30}, r.Inset(10))
	assert.Equal(t, Rect{X: 50, Y: 10, W: 60, H: 50}, r.Intersect(Rect{X: 50, Y: 0, W: 500, H: 500}))
	assert.True(t, r.Intersect(Rect{X: 500, Y: 500, W: 1, H: 1}).Empty())
}
