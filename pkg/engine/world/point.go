package world

import "fmt"

// Point is an integer (x, y) coordinate. X grows east, Y grows south.
type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the point one tile away in the given direction
func (p Point) Step(dir Direction) Point {
	dx, dy := dir.Delta()
	return p.Add(dx, dy)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle anchored at its top-left tile.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Center returns the tile at the middle of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains checks if a point lies inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Within checks if the whole rectangle fits inside a width×height grid
func (r Rect) Within(width, height int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Width > 0 && r.Height > 0 &&
		r.X+r.Width <= width && r.Y+r.Height <= height
}

// MaxX returns the first column to the right of the rectangle
func (r Rect) MaxX() int {
	return r.X + r.Width
}

// MaxY returns the first row below the rectangle
func (r Rect) MaxY() int {
	return r.Y + r.Height
}

// Grow returns the rectangle expanded by n tiles on every side
func (r Rect) Grow(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}

// Overlaps reports whether the two rectangles share at least one tile
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// ClampInner returns the tile nearest p that is at least one tile inside the
// rectangle's edge
func (r Rect) ClampInner(p Point) Point {
	return Point{
		X: max(r.X+1, min(p.X, r.MaxX()-2)),
		Y: max(r.Y+1, min(p.Y, r.MaxY()-2)),
	}
}
