package term

import (
	"github.com/gdamore/tcell/v2"

	"snek/internal/game"
)

// Each world cell is two terminal columns wide so cells come out roughly square.
const colsPerCell = 2

// Particles fainter than this are not drawn.
const minParticleAlpha = 0.3

const (
	runeSolid    = '█'
	runeParticle = '·'
)

func color(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Size is the terminal area the playfield of cfg needs.
func Size(cfg game.Config) (w, h int) {
	return cfg.Width / cfg.Cell * colsPerCell, cfg.Height / cfg.Cell
}

// Draw rasterises f onto s, one world cell per character pair, and shows it.
// The HUD bar sprite is left out; its label carries the same value.
func Draw(s tcell.Screen, f *game.Frame, cfg game.Config) {
	w, h := Size(cfg)
	bg := tcell.StyleDefault.Background(color(game.Palette.Background))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.SetContent(x, y, ' ', nil, bg)
		}
	}

	for i := range f.Sprites {
		sp := &f.Sprites[i]
		r := runeSolid
		switch sp.Layer {
		case game.LayerUI:
			continue
		case game.LayerParticles:
			if sp.Alpha < minParticleAlpha {
				continue
			}
			r = runeParticle
		}
		c := sp.Bounds.Center()
		if c.X < 0 || c.Y < 0 {
			continue
		}
		cx := int(c.X) / cfg.Cell
		cy := int(c.Y) / cfg.Cell
		if cx >= w/colsPerCell || cy >= h {
			continue
		}
		st := bg.Foreground(color(sp.Col))
		for j := 0; j < colsPerCell; j++ {
			s.SetContent(cx*colsPerCell+j, cy, r, nil, st)
		}
	}

	for _, l := range f.Labels {
		x := int(l.X) * colsPerCell / cfg.Cell
		y := int(l.Y) / cfg.Cell
		st := bg.Foreground(color(l.Col))
		for _, ch := range l.Text {
			if x >= 0 && x < w && y >= 0 && y < h {
				s.SetContent(x, y, ch, nil, st)
			}
			x++
		}
	}
	s.Show()
}
