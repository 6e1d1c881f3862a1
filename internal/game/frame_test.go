package game

import (
	"math"
	"testing"
)

func TestSpriteDataLayout(t *testing.T) {
	var f Frame
	f.solid(LayerSnake, Rect{X: 10, Y: 20, W: 10, H: 10}, RGB{R: 255})
	f.Sprites = append(f.Sprites,
		Sprite{Bounds: Rect{X: 0, Y: 0, W: 4, H: 4}, Col: RGB{B: 255}, Alpha: 0.5, Rotation: 90, Layer: LayerParticles},
		Sprite{Bounds: Rect{X: 0, Y: 0, W: 4, H: 4}, Alpha: 0, Layer: LayerParticles},
	)

	buf := f.SpriteData(nil)
	if len(buf) != 16 {
		t.Fatalf("expected two sprites of 8 floats, got %d floats", len(buf))
	}
	want := []float32{15, 25, 10, 1, 0, 0, 1, 0}
	for i, v := range want {
		if buf[i] != v {
			t.Fatalf("float %d = %v, want %v", i, buf[i], v)
		}
	}
	if buf[8] != 2 || buf[9] != 2 || buf[14] != 0.5 {
		t.Fatalf("unexpected particle sprite %v", buf[8:])
	}
	if math.Abs(float64(buf[15])-math.Pi/2) > 1e-6 {
		t.Fatalf("rotation not converted to radians: %v", buf[15])
	}
}

func TestFrameReset(t *testing.T) {
	var f Frame
	f.solid(LayerUI, Rect{W: 1, H: 1}, RGB{})
	f.text(0, 0, RGB{}, "x")
	f.Reset()
	if len(f.Sprites) != 0 || len(f.Labels) != 0 {
		t.Fatalf("frame not empty after reset: %+v", f)
	}
}

func TestSpriteDataTilesLongRects(t *testing.T) {
	var f Frame
	bounds := Rect{X: 4, Y: 233, W: 31, H: 3}
	f.solid(LayerUI, bounds, RGB{G: 255})

	buf := f.SpriteData(nil)
	if n := len(buf) / 8; n != 11 {
		t.Fatalf("expected 11 square tiles for a 31x3 strip, got %d", n)
	}
	covered := 0.0
	for i := 0; i < len(buf); i += 8 {
		cx, cy, size := float64(buf[i]), float64(buf[i+1]), float64(buf[i+2])
		if size != 3 {
			t.Fatalf("tile %d has size %.1f, want 3", i/8, size)
		}
		if cy != bounds.Y+1.5 {
			t.Fatalf("tile %d off the strip row at y=%.1f", i/8, cy)
		}
		covered = math.Max(covered, cx+size/2)
	}
	if covered != bounds.X+bounds.W {
		t.Fatalf("tiles end at %.1f, strip ends at %.1f", covered, bounds.X+bounds.W)
	}
}

func TestSceneSpritesStayInsideTheirBounds(t *testing.T) {
	s, _ := newTestScene(t, MoveContinuous)
	for range 30 {
		s.Step(Input{Boost: true}, tickDT)
	}
	var f Frame
	s.Render(&f)
	if f.Count(LayerUI) == 0 {
		t.Fatal("expected the boost strip on the UI layer")
	}

	buf := f.SpriteData(nil)
	for i := 0; i < len(buf); i += 8 {
		cx, cy, half := float64(buf[i]), float64(buf[i+1]), float64(buf[i+2])/2
		inside := false
		for _, sp := range f.Sprites {
			b := sp.Bounds
			if cx-half >= b.X-1e-6 && cx+half <= b.X+b.W+1e-6 &&
				cy-half >= b.Y-1e-6 && cy+half <= b.Y+b.H+1e-6 {
				inside = true
				break
			}
		}
		if !inside {
			t.Fatalf("sprite at (%.1f,%.1f) size %.1f covers more than any rect in the frame", cx, cy, 2*half)
		}
	}
}
