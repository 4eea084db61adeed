package ui

// Unit is the unit of a Val.
type Unit int

const (
	UnitAuto Unit = iota
	UnitPx
	UnitPercent
	// UnitVMin is a percentage of the smaller viewport side.
	UnitVMin
)

// Val is a length. The zero value is Auto.
type Val struct {
	Unit  Unit
	Value float64
}

var Auto = Val{}

func Px(v float64) Val      { return Val{Unit: UnitPx, Value: v} }
func Percent(v float64) Val { return Val{Unit: UnitPercent, Value: v} }
func VMin(v float64) Val    { return Val{Unit: UnitVMin, Value: v} }

type Display int

const (
	DisplayFlex Display = iota
	// DisplayNone removes the node and its subtree from layout and painting.
	DisplayNone
)

type Direction int

const (
	Row Direction = iota
	Column
)

type Justify int

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifySpaceBetween
)

type Align int

const (
	// AlignAuto defers to the parent's AlignItems. As AlignItems it means stretch.
	AlignAuto Align = iota
	AlignStretch
	AlignCenter
	AlignStart
)

type Position int

const (
	Relative Position = iota
	Absolute
)

type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowClipY
)

// Style is the subset of flexbox the static UI needs.
type Style struct {
	Display    Display
	Direction  Direction
	Justify    Justify
	AlignItems Align
	AlignSelf  Align
	Position   Position
	Overflow   Overflow

	Width, Height Val
	// Left and Bottom only apply to absolutely positioned nodes.
	Left, Bottom Val
	MarginTop    Val
	// Border is the width of all four borders in pixels.
	Border float64
}

// Color is a straight-alpha RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

func RGB(r, g, b float64) Color     { return Color{R: r, G: g, B: b, A: 1} }
func RGBA(r, g, b, a float64) Color { return Color{R: r, G: g, B: b, A: a} }

// Transparent reports whether the color paints nothing.
func (c Color) Transparent() bool { return c.A <= 0 }

var (
	White = RGB(1, 1, 1)
	Green = RGB(0, 1, 0)
)
