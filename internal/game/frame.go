package game

import "math"

// Entity is anything the scene advances once per tick and draws once per frame.
type Entity interface {
	Update(dt float64)
	Render(f *Frame)
}

var (
	_ Entity = (*Snake)(nil)
	_ Entity = (*Food)(nil)
	_ Entity = (*SpecialFood)(nil)
	_ Entity = (*Emitter)(nil)
	_ Entity = (*HUD)(nil)
	_ Entity = (*Scene)(nil)
)

// Layer orders draw requests back to front.
type Layer uint8

const (
	LayerParticles Layer = iota
	LayerCollectibles
	LayerSnake
	LayerUI
)

// Sprite is one rectangle draw request.
// Solid entities use Alpha 1; particles carry their life-based fade.
type Sprite struct {
	Bounds   Rect
	Col      RGB
	Alpha    float64
	Rotation float64 // degrees, about the top-left corner
	Layer    Layer
}

// Label is a line of HUD text in world pixels.
type Label struct {
	Text string
	X, Y float64
	Col  RGB
}

// Frame is a renderable snapshot. Render calls append to it in layer order;
// frontends only read it.
type Frame struct {
	Sprites []Sprite
	Labels  []Label
}

// Reset empties the frame, keeping capacity for the next one.
func (f *Frame) Reset() {
	f.Sprites = f.Sprites[:0]
	f.Labels = f.Labels[:0]
}

func (f *Frame) solid(layer Layer, r Rect, col RGB) {
	f.Sprites = append(f.Sprites, Sprite{Bounds: r, Col: col, Alpha: 1, Layer: layer})
}

func (f *Frame) text(x, y float64, col RGB, s string) {
	f.Labels = append(f.Labels, Label{Text: s, X: x, Y: y, Col: col})
}

// Count returns how many sprites sit on layer.
func (f *Frame) Count(layer Layer) int {
	n := 0
	for i := range f.Sprites {
		if f.Sprites[i].Layer == layer {
			n++
		}
	}
	return n
}

// SpriteData appends the frame as point sprites.
// Format: [cx, cy, size, r, g, b, a, rotationRad] * N, the layout the GL sprite shader reads.
// Point sprites are square, so a rect longer on one axis is laid out as a row
// of squares of its short side; the last square is pulled back to end flush.
func (f *Frame) SpriteData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range f.Sprites {
		s := &f.Sprites[i]
		b := s.Bounds
		size := math.Min(b.W, b.H)
		if size <= 0 || s.Alpha <= 0 {
			continue
		}
		r, g, bl := s.Col.Floats()
		a := float32(clampF(s.Alpha, 0, 1))
		rot := float32(s.Rotation * degToRad)
		nx := int(math.Ceil(b.W/size - 1e-9))
		ny := int(math.Ceil(b.H/size - 1e-9))
		for ty := 0; ty < ny; ty++ {
			y := b.Y + math.Min(float64(ty)*size, b.H-size)
			for tx := 0; tx < nx; tx++ {
				x := b.X + math.Min(float64(tx)*size, b.W-size)
				buf = append(buf, float32(x+size/2), float32(y+size/2), float32(size), r, g, bl, a, rot)
			}
		}
	}
	return buf
}
