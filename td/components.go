// Package td implements the tower defense gameplay: enemy spawning and
// movement, tower placement and the camera controller, all as systems over
// an ecs.World.
package td

// Vec2 is a point in window pixels or on the world plane.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a world position. Z only orders drawing.
type Vec3 struct {
	X, Y, Z float64
}

type Transform struct {
	Translation Vec3
}

// Enemy tags entities moved by the mover system.
type Enemy struct{}

// Tower tags entities placed by the player.
type Tower struct{}

// Sprite references the visual an entity is drawn with.
type Sprite struct {
	Visual VisualHandle
}

// Camera is an orthographic 2D camera. Its position lives in the entity's
// Transform. Scale is world units per window pixel.
type Camera struct {
	Scale float64
}

// Window is the primary display surface. Cursor is in window pixels with
// the origin at the top left and is only meaningful when CursorValid is set.
type Window struct {
	Width, Height float64
	Cursor        Vec2
	CursorValid   bool
}
