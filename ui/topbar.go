package ui

import "fmt"

const (
	FontPath = "fonts/FiraSans-Bold.ttf"
	LogoPath = "branding/logo_dark_big.png"

	// ListName is the clipped list viewport, the node hosts scroll.
	ListName = "ScrollingList"
	// ListItems is the number of labels in the scrolling list.
	ListItems = 30
)

// BuildTopBar declares the static UI: a side column with a scrolling list,
// a bordered box, a stack of overlapping squares and a centered logo.
// Every call returns a fresh tree.
func BuildTopBar(assets AssetServer) *Node {
	font := assets.LoadFont(FontPath)

	return NewNode("Root", Style{
		Width:   Percent(100),
		Height:  Percent(100),
		Justify: JustifySpaceBetween,
	},
		sideColumn(font),
		borderedBox(),
		renderOrderStack(),
		logo(assets.LoadImage(LogoPath)),
	)
}

func sideColumn(font FontHandle) *Node {
	return NewNode("LeftColumn", Style{
		Direction:  Column,
		Justify:    JustifyCenter,
		AlignItems: AlignCenter,
		Width:      Px(200),
	},
		NewLabel("Title", "Scrolling list", font, 25),
		scrollingList(font),
	).WithBackground(RGB(0.15, 0.15, 0.15))
}

func scrollingList(font FontHandle) *Node {
	items := make([]*Node, 0, ListItems)
	for i := range ListItems {
		text := fmt.Sprintf("Item %d", i)
		items = append(items, NewLabel(text, text, font, 20))
	}

	panel := NewNode("MovingPanel", Style{
		Direction:  Column,
		AlignItems: AlignCenter,
	}, items...)

	return NewNode(ListName, Style{
		Direction: Column,
		AlignSelf: AlignStretch,
		Height:    Percent(50),
		Overflow:  OverflowClipY,
	}, panel).WithBackground(RGB(0.10, 0.10, 0.10))
}

func borderedBox() *Node {
	inner := NewNode("BorderedBoxInner", Style{
		Width:  Percent(100),
		Height: Percent(100),
	}).WithBackground(RGB(0.8, 0.8, 1))

	return NewNode("BorderedBox", Style{
		Position: Absolute,
		Width:    Px(200),
		Height:   Px(200),
		Left:     Px(210),
		Bottom:   Px(10),
	}, inner).
		WithBorder(20, Green).
		WithBackground(RGB(0.4, 0.4, 1))
}

// renderOrderStack paints five overlapping squares, reddest at the back.
// The last one is translucent.
func renderOrderStack() *Node {
	overlays := []Color{
		RGB(1, 0.3, 0.3),
		RGB(1, 0.5, 0.5),
		RGB(1, 0.7, 0.7),
		RGBA(1, 0.9, 0.9, 0.4),
	}
	children := make([]*Node, 0, len(overlays))
	for i, c := range overlays {
		offset := float64(20 * (i + 1))
		children = append(children, NewNode(fmt.Sprintf("Overlay %d", i+1), Style{
			Position: Absolute,
			Width:    Percent(100),
			Height:   Percent(100),
			Left:     Px(offset),
			Bottom:   Px(offset),
		}).WithBackground(c))
	}

	square := NewNode("RedSquare", Style{
		Width:  Px(100),
		Height: Px(100),
	}, children...).WithBackground(RGB(1, 0, 0))

	return NewNode("RenderOrder", Style{
		Position:   Absolute,
		Width:      Percent(100),
		Height:     Percent(100),
		Justify:    JustifyCenter,
		AlignItems: AlignCenter,
	}, square)
}

func logo(img ImageHandle) *Node {
	// The alt text takes no space and is never painted.
	alt := NewLabel("LogoAlt", "Logo", 0, 0)
	alt.Style.Display = DisplayNone

	image := NewNode("Logo", Style{
		Width:     Px(500),
		Height:    Px(125),
		MarginTop: VMin(5),
	}, alt).WithImage(img, White)

	return NewNode("LogoRow", Style{
		Position:   Absolute,
		Width:      Percent(100),
		Justify:    JustifyCenter,
		AlignItems: AlignStart,
	}, image)
}
