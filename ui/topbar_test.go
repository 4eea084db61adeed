package ui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTopBar(t *testing.T) {
	t.Run("structure", func(t *testing.T) {
		root := BuildTopBar(NewRegistry())

		require.Len(t, root.Children, 4)
		assert.Equal(t, JustifySpaceBetween, root.Style.Justify)
		assert.Equal(t, []string{"LeftColumn", "BorderedBox", "RenderOrder", "LogoRow"},
			[]string{root.Children[0].Name, root.Children[1].Name, root.Children[2].Name, root.Children[3].Name})

		title := root.Find("Title")
		require.NotNil(t, title)
		assert.Equal(t, "Scrolling list", title.Text.Value)
		assert.Equal(t, 25.0, title.Text.Size)

		panel := root.Find("MovingPanel")
		require.NotNil(t, panel)
		require.Len(t, panel.Children, ListItems)
		for i, item := range panel.Children {
			assert.Equal(t, fmt.Sprintf("Item %d", i), item.Text.Value)
			assert.Equal(t, 20.0, item.Text.Size)
			assert.Equal(t, title.Text.Font, item.Text.Font)
		}

		list := root.Find(ListName)
		assert.Equal(t, OverflowClipY, list.Style.Overflow)
		assert.Equal(t, Percent(50), list.Style.Height)
	})

	t.Run("render order squares", func(t *testing.T) {
		root := BuildTopBar(NewRegistry())
		square := root.Find("RedSquare")
		require.NotNil(t, square)
		require.Len(t, square.Children, 4)

		for i, c := range square.Children {
			offset := float64(20 * (i + 1))
			assert.Equal(t, Absolute, c.Style.Position)
			assert.Equal(t, Px(offset), c.Style.Left)
			assert.Equal(t, Px(offset), c.Style.Bottom)
		}
		assert.Equal(t, 0.4, square.Children[3].Background.A)
		assert.Equal(t, 1.0, square.Children[2].Background.A)
	})

	t.Run("logo", func(t *testing.T) {
		assets := NewRegistry()
		root := BuildTopBar(assets)

		logo := root.Find("Logo")
		require.NotNil(t, logo)
		path, ok := assets.ImagePath(logo.Image)
		assert.True(t, ok)
		assert.Equal(t, LogoPath, path)
		assert.Equal(t, White, logo.Tint)

		alt := root.Find("LogoAlt")
		require.NotNil(t, alt)
		assert.Equal(t, DisplayNone, alt.Style.Display)
		assert.Equal(t, "Logo", alt.Text.Value)
	})

	t.Run("builds independent equal trees", func(t *testing.T) {
		assets := NewRegistry()
		a := BuildTopBar(assets)
		b := BuildTopBar(assets)

		assert.Equal(t, a, b)
		assert.NotSame(t, a, b)

		a.Find("Title").Text.Value = "changed"
		assert.Equal(t, "Scrolling list", b.Find("Title").Text.Value)
	})

	t.Run("requests the font and the logo", func(t *testing.T) {
		assets := &countingAssets{}
		BuildTopBar(assets)

		assert.Contains(t, assets.fonts, FontPath)
		assert.Equal(t, []string{LogoPath}, assets.images)
	})
}

type countingAssets struct {
	fonts  []string
	images []string
}

func (c *countingAssets) LoadFont(path string) FontHandle {
	c.fonts = append(c.fonts, path)
	return FontHandle(len(c.fonts))
}

func (c *countingAssets) LoadImage(path string) ImageHandle {
	c.images = append(c.images, path)
	return ImageHandle(len(c.images))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	f := r.LoadFont("a.ttf")
	assert.Equal(t, f, r.LoadFont("a.ttf"))
	assert.NotEqual(t, f, r.LoadFont("b.ttf"))

	img := r.LoadImage("a.ttf")
	path, ok := r.ImagePath(img)
	assert.True(t, ok)
	assert.Equal(t, "a.ttf", path)

	_, ok = r.FontPath(0)
	assert.False(t, ok)
	_, ok = r.ImagePath(42)
	assert.False(t, ok)
}
