package td

// Color is a straight-alpha RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

type Shape int

const (
	ShapeCircle Shape = iota
	ShapeQuad
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeQuad:
		return "quad"
	default:
		return "unknown"
	}
}

// Visual is a flat colored 2D shape centred on the entity position.
// Radius is used by circles, Width and Height by quads.
type Visual struct {
	Shape         Shape
	Radius        float64
	Width, Height float64
	Color         Color
}

// VisualHandle is an index into an AssetSet.
type VisualHandle int

// AssetSet holds the shared visuals. It is built once at startup and never
// changes afterwards.
type AssetSet struct {
	Enemy VisualHandle
	Tower VisualHandle

	visuals []Visual
}

var (
	Purple    = RGB(0.5, 0, 0.5)
	LimeGreen = RGB(0.2, 0.8, 0.2)
)

// NewAssetSet builds the enemy circle and the tower quad.
func NewAssetSet() AssetSet {
	set := AssetSet{}
	set.Enemy = set.add(Visual{Shape: ShapeCircle, Radius: 5, Color: Purple})
	set.Tower = set.add(Visual{Shape: ShapeQuad, Width: 20, Height: 20, Color: LimeGreen})
	return set
}

func (a *AssetSet) add(v Visual) VisualHandle {
	a.visuals = append(a.visuals, v)
	return VisualHandle(len(a.visuals) - 1)
}

// Visual resolves a handle.
func (a *AssetSet) Visual(h VisualHandle) (Visual, bool) {
	if h < 0 || int(h) >= len(a.visuals) {
		return Visual{}, false
	}
	return a.visuals[h], true
}
