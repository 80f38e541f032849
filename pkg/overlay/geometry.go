package overlay

// Point is a position in balloon geometry space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner,
// matching image coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the right edge X coordinate.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the bottom edge Y coordinate.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() &&
		p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersects checks if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return !(r.Right() < other.X ||
		r.X > other.Right() ||
		r.Bottom() < other.Y ||
		r.Y > other.Bottom())
}

// Scaled maps a normalized rectangle onto an image of the given pixel
// dimensions. Overlay views use this to place balloons over the page.
func (r Rect) Scaled(width, height float64) Rect {
	return Rect{
		X:      r.X * width,
		Y:      r.Y * height,
		Width:  r.Width * width,
		Height: r.Height * height,
	}
}
