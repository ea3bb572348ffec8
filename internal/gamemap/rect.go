package gamemap

// Rect is an axis-aligned rectangle with half-open bounds: Left() and Top()
// are inside, Right() and Bottom() are the first coordinates outside.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() int { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Center returns the center point of the rectangle.
func (r Rect) Center() Position { return Position{X: r.CenterX(), Y: r.CenterY()} }

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether r overlaps other.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Inflate returns a copy grown by dx cells on each horizontal side and dy
// cells on each vertical side. Used for overlap tests with margin.
func (r Rect) Inflate(dx, dy int) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}
