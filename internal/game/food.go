package game

import "math"

// Food is a grid-aligned pickup. It is created once and relocated when eaten.
type Food struct {
	rect  Rect
	cfg   *Config
	rng   *Rand
	color RGB
}

func NewFood(cfg *Config, rng *Rand, at Vec2) *Food {
	return &Food{
		rect:  cellRect(at, cfg.Cell),
		cfg:   cfg,
		rng:   rng,
		color: Palette.Food,
	}
}

// randomCell picks a point uniformly inside the playfield and rounds it to the
// nearest cell corner. The snake's own cells are not excluded.
func randomCell(cfg *Config, r *Rand) Vec2 {
	cell := float64(cfg.Cell)
	x := r.RangeF(0, float64(cfg.Width-cfg.Cell))
	y := r.RangeF(0, float64(cfg.Height-cfg.Cell))
	return Vec2{X: math.Round(x/cell) * cell, Y: math.Round(y/cell) * cell}
}

// Eaten moves the food to a new random cell.
func (fd *Food) Eaten() {
	fd.rect = cellRect(randomCell(fd.cfg, fd.rng), fd.cfg.Cell)
}

func (fd *Food) Rect() Rect { return fd.rect }

func (fd *Food) Update(dt float64) {}

func (fd *Food) Render(f *Frame) {
	f.solid(LayerCollectibles, fd.rect, fd.color)
}

// SpecialFood appears SpawnTimer seconds after it was last dormant, stays for
// AliveTimer seconds and sparkles through its own emitter while up.
type SpecialFood struct {
	Food
	Emitter *Emitter

	active bool
	timer  float64
}

func NewSpecialFood(cfg *Config, rng *Rand) *SpecialFood {
	sf := &SpecialFood{
		Food: Food{rect: offGrid, cfg: cfg, rng: rng, color: Palette.Special},
	}
	sf.Emitter = NewEmitter(Vec2{}, Palette.Spark, cfg.EmitterPopulation, cfg.Bounds(), rng)
	return sf
}

func (sf *SpecialFood) Active() bool { return sf.active }

// Timer is the seconds accumulated since the food last went dormant.
func (sf *SpecialFood) Timer() float64 { return sf.timer }

// Rect is the real box only while active; a dormant special food cannot be hit.
func (sf *SpecialFood) Rect() Rect {
	if !sf.active {
		return offGrid
	}
	return sf.rect
}

// Update runs the dormant/active cycle. The timer is not reset on appearing,
// only on leaving the active state. The emitter always updates so a stopping
// burst finishes after the food has gone.
func (sf *SpecialFood) Update(dt float64) {
	sf.timer += dt
	switch {
	case !sf.active && sf.timer >= sf.cfg.SpawnTimer:
		sf.Food.Eaten()
		sf.Emitter.Reset(sf.rect.Center())
		sf.Emitter.Activate()
		sf.active = true
	case sf.active && sf.timer >= sf.cfg.SpawnTimer+sf.cfg.AliveTimer:
		sf.deactivate()
	}
	sf.Emitter.Update(dt)
}

// Eaten forces the food dormant regardless of the timer.
func (sf *SpecialFood) Eaten() {
	sf.deactivate()
}

func (sf *SpecialFood) deactivate() {
	sf.active = false
	sf.timer = 0
	sf.Emitter.Stop()
}

func (sf *SpecialFood) Render(f *Frame) {
	if !sf.active {
		return
	}
	sf.Food.Render(f)
}
