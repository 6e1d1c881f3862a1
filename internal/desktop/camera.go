package desktop

import (
	"math"

	"snek/internal/game"
)

// Camera maps world pixels to framebuffer pixels.
type Camera struct {
	X, Y float64 // world-pixel space, camera centre
	Zoom float64 // screen pixels per world pixel

	// Screen shake.
	ShakeX, ShakeY float64 // current offset in world pixels
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

// Fit centres the playfield and picks the largest zoom that shows all of it.
func (c *Camera) Fit(worldW, worldH, fbW, fbH int) {
	zoomW := float64(fbW) / float64(worldW)
	zoomH := float64(fbH) / float64(worldH)
	c.Zoom = math.Min(zoomW, zoomH)
	c.X = float64(worldW) / 2
	c.Y = float64(worldH) / 2
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	c.ShakeIntensity = math.Max(c.ShakeIntensity, intensity)
	c.ShakeTimer = math.Max(c.ShakeTimer, duration)
}

// UpdateShake decays the shake and picks this frame's offset.
func (c *Camera) UpdateShake(dt float64, r *game.Rand) {
	if c.ShakeTimer <= 0 {
		c.ShakeX, c.ShakeY, c.ShakeIntensity = 0, 0, 0
		return
	}
	c.ShakeTimer = math.Max(c.ShakeTimer-dt, 0)
	t := c.ShakeTimer
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = r.RangeF(-mag, mag)
	c.ShakeY = r.RangeF(-mag, mag)
}

// EffectivePos returns camera position with shake applied.
func (c Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Y + c.ShakeY
}

// ToScreen converts a world position to framebuffer pixels.
func (c Camera) ToScreen(x, y float64, fbW, fbH int) (float64, float64) {
	cx, cy := c.EffectivePos()
	return (x-cx)*c.Zoom + float64(fbW)*0.5, (y-cy)*c.Zoom + float64(fbH)*0.5
}
