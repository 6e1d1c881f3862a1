package game

// Vec2 is a position, velocity or acceleration in world pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// offGrid is returned for collectibles that must not be hit.
// It sits far outside any playfield and has no area.
var offGrid = Rect{X: -1000, Y: -1000}

// Intersects is the collectible hit test. Touching edges count.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X+o.W && o.X <= r.X+r.W &&
		r.Y <= o.Y+o.H && o.Y <= r.Y+r.H
}

// Overlaps requires a positive-area overlap. Neighbouring body cells share
// an edge, so self-collision uses this instead of Intersects.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W*0.5, Y: r.Y + r.H*0.5}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// cellRect is the box of the grid cell whose top-left corner is p.
func cellRect(p Vec2, cell int) Rect {
	return Rect{X: p.X, Y: p.Y, W: float64(cell), H: float64(cell)}
}
