package game

// Scene is one simulation session: the snake, the two collectibles, the
// eat-burst emitter and the session counters. It is driven from a single
// goroutine, one Update and one Render per frame.
type Scene struct {
	Session *GameSession
	Snake   *Snake
	Food    *Food
	Special *SpecialFood
	Bursts  *Emitter
	HUD     *HUD

	cfg      Config
	rng      *Rand
	bus      *EventBus
	input    Input
	growHeld bool
}

// Plain food starts here, a few cells in from the top-left corner.
var foodStart = Vec2{X: 30, Y: 30}

// NewScene validates cfg and builds a fresh session. A zero cfg.Seed seeds
// from the wall clock; a nil bus gets a private one.
func NewScene(cfg Config, bus *EventBus) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = ClockSeed()
	}
	if bus == nil {
		bus = NewEventBus()
	}

	s := &Scene{cfg: cfg, rng: NewRand(seed), bus: bus}
	s.Session = NewGameSession(cfg, seed)

	c := float64(cfg.Cell)
	start := Vec2{
		X: float64(cfg.Width/cfg.Cell/2) * c,
		Y: float64(cfg.Height/cfg.Cell/2) * c,
	}
	s.Snake = NewSnake(&s.cfg, &s.Session.Boost, start, DirLeft)
	s.Food = NewFood(&s.cfg, s.rng, foodStart)
	s.Special = NewSpecialFood(&s.cfg, s.rng)
	s.Bursts = NewEmitter(Vec2{}, Palette.Burst, 0, cfg.Bounds(), s.rng)
	s.HUD = NewHUD(s.Session, &s.cfg)
	return s, nil
}

func (s *Scene) Config() Config { return s.cfg }

func (s *Scene) Bus() *EventBus { return s.bus }

// Step records in as this tick's input and advances the scene by dt.
func (s *Scene) Step(in Input, dt float64) {
	s.Control(in)
	s.Update(dt)
}

// Control sets the input for the next Update.
func (s *Scene) Control(in Input) {
	s.input = in
	s.Snake.Control(in)
}

// Update runs one tick. Entities move first, then every hit is resolved
// against the new positions within the same tick.
func (s *Scene) Update(dt float64) {
	s.Session.Tick++

	s.Snake.Update(dt)
	s.Food.Update(dt)
	wasActive := s.Special.Active()
	s.Special.Update(dt)
	if active := s.Special.Active(); active != wasActive {
		if active {
			s.emit(EventSpecialSpawned, s.Special.Rect().Center())
		} else {
			s.emit(EventSpecialExpired, s.Special.Emitter.Origin)
		}
	}
	s.Bursts.Update(dt)

	head := s.Snake.HeadRect()
	if head.Intersects(s.Food.Rect()) {
		at := s.Food.Rect().Center()
		s.Food.Eaten()
		s.Snake.Grow()
		s.Session.AddScore(FoodScore)
		s.Bursts.Burst(at, BurstPopulation)
		s.emit(EventFoodEaten, at)
	}
	if head.Intersects(s.Special.Rect()) {
		at := s.Special.Rect().Center()
		s.Special.Eaten()
		s.Snake.Grow()
		s.Session.AddScore(SpecialFoodScore)
		s.emit(EventSpecialEaten, at)
	}

	if s.Snake.SelfColliding() && s.Session.endGame() {
		s.emit(EventSelfCollision, s.Snake.Head())
	}

	if s.input.Grow && !s.growHeld {
		s.Snake.Grow()
	}
	s.growHeld = s.input.Grow
}

func (s *Scene) emit(t EventType, at Vec2) {
	s.bus.Emit(Event{Type: t, Tick: s.Session.Tick, X: at.X, Y: at.Y, Data: s.Session.Score})
}

// Render draws back to front: particles, collectibles, snake, HUD.
func (s *Scene) Render(f *Frame) {
	s.Special.Emitter.Render(f)
	s.Bursts.Render(f)
	s.Food.Render(f)
	s.Special.Render(f)
	s.Snake.Render(f)
	s.HUD.Render(f)
}
