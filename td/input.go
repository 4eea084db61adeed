package td

type ScrollUnit int

const (
	// ScrollLine is a wheel notch.
	ScrollLine ScrollUnit = iota
	// ScrollPixel comes from trackpads and other precise devices.
	ScrollPixel
)

func (u ScrollUnit) String() string {
	if u == ScrollPixel {
		return "pixel"
	}
	return "line"
}

type ScrollEvent struct {
	Unit ScrollUnit
	Y    float64
}

// Input is the snapshot of the input devices for one frame. Hosts build it
// from their backend before every Step.
type Input struct {
	Left, Right, Up, Down bool

	// PrimaryJustPressed is set only on the frame the primary button went down.
	PrimaryJustPressed bool

	Cursor      Vec2
	CursorValid bool

	// Scroll holds the wheel events of this frame in arrival order.
	Scroll []ScrollEvent
}
