// Package glyph rasterises a bitmap font into a texture atlas for the HUD.
package glyph

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII only.
const (
	First = 32
	Last  = 126
	Cols  = 16
)

// Atlas is a grid of white glyphs on a transparent background,
// one fixed-size cell per character from First to Last.
type Atlas struct {
	Img          *image.NRGBA
	CellW, CellH int
	Cols, Rows   int
}

// NewAtlas draws every printable character of face into a new atlas.
func NewAtlas(face font.Face) *Atlas {
	m := face.Metrics()
	cellH := m.Height.Ceil()
	ascent := m.Ascent.Ceil()
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		adv = fixed.I(cellH / 2)
	}
	cellW := adv.Ceil()

	n := Last - First + 1
	rows := (n + Cols - 1) / Cols
	a := &Atlas{
		Img:   image.NewNRGBA(image.Rect(0, 0, Cols*cellW, rows*cellH)),
		CellW: cellW,
		CellH: cellH,
		Cols:  Cols,
		Rows:  rows,
	}

	d := font.Drawer{Dst: a.Img, Src: image.White, Face: face}
	for ch := First; ch <= Last; ch++ {
		col, row := a.cell(rune(ch))
		d.Dot = fixed.P(col*cellW, row*cellH+ascent)
		d.DrawString(string(rune(ch)))
	}
	return a
}

// Default is the 7x13 fixed font shipped with x/image.
func Default() *Atlas { return NewAtlas(basicfont.Face7x13) }

func (a *Atlas) cell(ch rune) (col, row int) {
	i := int(ch) - First
	return i % a.Cols, i / a.Cols
}

// UV returns the texture coordinates of ch. ok is false for characters
// outside the atlas.
func (a *Atlas) UV(ch rune) (u0, v0, u1, v1 float32, ok bool) {
	if ch < First || ch > Last {
		return 0, 0, 0, 0, false
	}
	col, row := a.cell(ch)
	w := float32(a.Img.Bounds().Dx())
	h := float32(a.Img.Bounds().Dy())
	u0 = float32(col*a.CellW) / w
	v0 = float32(row*a.CellH) / h
	u1 = float32((col+1)*a.CellW) / w
	v1 = float32((row+1)*a.CellH) / h
	return u0, v0, u1, v1, true
}

// Width returns the width in pixels of the longest line of text at scale.
func (a *Atlas) Width(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			maxLineLen = max(maxLineLen, lineLen)
			lineLen = 0
			continue
		}
		lineLen++
	}
	maxLineLen = max(maxLineLen, lineLen)
	return int(float32(maxLineLen*a.CellW) * scale)
}
