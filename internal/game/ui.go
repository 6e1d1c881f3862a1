package game

import (
	"fmt"
	"strings"
)

// HUD layout in world pixels.
const (
	hudMargin   = 4.0
	hudBarChars = 10
	hudBarH     = 3.0
)

// HUD draws the score, the boost reserve and the game-over banner.
// It only reads the session.
type HUD struct {
	session *GameSession
	cfg     *Config
}

func NewHUD(session *GameSession, cfg *Config) *HUD {
	return &HUD{session: session, cfg: cfg}
}

func (h *HUD) Update(dt float64) {}

func (h *HUD) Render(f *Frame) {
	s := h.session
	f.text(hudMargin, hudMargin, Palette.Text, fmt.Sprintf("Score: %d", s.Score))

	frac := s.Boost.Fraction()
	col := Palette.BoostFull
	if s.Boost.Reserve <= h.cfg.MinBoost {
		col = Palette.BoostLow
	}
	filled := int(float64(hudBarChars)*frac + 0.5)
	bar := fmt.Sprintf("[%s%s]", strings.Repeat("#", filled), strings.Repeat(".", hudBarChars-filled))
	f.text(hudMargin, float64(h.cfg.Height)-hudMargin-hudBarH-hudGlyphH, col, "BOOST "+bar)

	// Solid strip along the bottom edge for frontends without text.
	width := (float64(h.cfg.Width) - 2*hudMargin) * frac
	if width > 0 {
		f.solid(LayerUI, Rect{X: hudMargin, Y: float64(h.cfg.Height) - hudMargin - hudBarH, W: width, H: hudBarH}, col)
	}

	if s.GameOver() {
		msg := "GAME OVER"
		x := float64(h.cfg.Width)/2 - float64(len(msg))*hudGlyphW/2
		f.text(x, float64(h.cfg.Height)/2-hudGlyphH, Palette.GameOver, msg)
		final := fmt.Sprintf("Final Score: %d", s.Score)
		x = float64(h.cfg.Width)/2 - float64(len(final))*hudGlyphW/2
		f.text(x, float64(h.cfg.Height)/2+hudGlyphH, Palette.Text, final)
	}
}

// Nominal glyph cell used to centre labels; frontends scale text to it.
const (
	hudGlyphW = 7.0
	hudGlyphH = 13.0
)
