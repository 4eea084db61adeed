package td

// View captures what is needed to map between window pixels and the world
// plane: the camera position and scale and the window size.
type View struct {
	Camera Vec3
	Scale  float64
	Width  float64
	Height float64
}

// Unproject maps a window point (origin top left, y down) to the world
// plane (y up). The window centre maps to the camera position.
func (v View) Unproject(p Vec2) Vec2 {
	return Vec2{
		X: v.Camera.X + (p.X-v.Width/2)*v.Scale,
		Y: v.Camera.Y - (p.Y-v.Height/2)*v.Scale,
	}
}

// Project is the inverse of Unproject.
func (v View) Project(w Vec2) Vec2 {
	return Vec2{
		X: (w.X-v.Camera.X)/v.Scale + v.Width/2,
		Y: v.Height/2 - (w.Y-v.Camera.Y)/v.Scale,
	}
}

// Visible reports whether a world point lands inside the window.
func (v View) Visible(w Vec2) bool {
	p := v.Project(w)
	return p.X >= 0 && p.Y >= 0 && p.X < v.Width && p.Y < v.Height
}
