package game

import (
	"fmt"
	"math"
)

const degToRad = math.Pi / 180.0

// Spawn ranges. Sparks feed a running emitter; bursts are the one-shot ring
// thrown when plain food is eaten.
const (
	particleSizeMin  = 2
	particleSizeMax  = 5
	particleLifeMin  = 20.0 // ticks
	particleLifeMax  = 50.0
	sparkSpeedMin    = 20.0
	sparkSpeedMax    = 70.0
	burstSpeedMin    = 50.0
	burstSpeedMax    = 135.0
	particleAngleMax = 360.0
)

// Particle is a single decaying square.
// Life counts ticks, not seconds: it drops by exactly one per Update.
type Particle struct {
	Pos, Vel, Acc Vec2

	Size     float64
	Life     float64
	MaxLife  float64
	Rotation float64 // degrees
	Col      RGB
}

func (p *Particle) Alive() bool { return p.Life > 0 }

// Alpha is the linear life fade used when drawing.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return clampF(p.Life/p.MaxLife, 0, 1)
}

// step advances the particle one tick; semi-implicit Euler, killed when it leaves bounds.
func (p *Particle) step(dt float64, bounds Rect) {
	p.Life--
	if p.Life < 0 {
		p.Life = 0
	}
	if p.Alive() {
		p.Rotation += ParticleSpin
		p.Vel = p.Vel.Add(p.Acc.Scale(dt))
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		if !bounds.Contains(p.Pos) {
			p.Life = 0
		}
	}
	mustf(p.Life >= 0 && p.Life <= p.MaxLife, "particle life %.2f outside [0, %.2f]", p.Life, p.MaxLife)
}

func (p *Particle) Render(f *Frame) {
	if !p.Alive() {
		return
	}
	f.Sprites = append(f.Sprites, Sprite{
		Bounds:   Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Size, H: p.Size},
		Col:      p.Col,
		Alpha:    p.Alpha(),
		Rotation: p.Rotation,
		Layer:    LayerParticles,
	})
}

// EmitterState is the lifecycle of an Emitter.
type EmitterState uint8

const (
	EmitterStopped  EmitterState = iota // no particles
	EmitterActive                       // pool topped up to Target every tick
	EmitterStopping                     // no spawning; becomes Stopped once the pool drains
)

func (s EmitterState) String() string {
	switch s {
	case EmitterStopped:
		return "stopped"
	case EmitterActive:
		return "active"
	case EmitterStopping:
		return "stopping"
	}
	return fmt.Sprintf("EmitterState(%d)", uint8(s))
}

// Emitter owns a pool of particles and keeps it at Target while Active.
type Emitter struct {
	State  EmitterState
	Target int
	Origin Vec2
	Col    RGB

	P      []Particle
	bounds Rect
	rng    *Rand
}

func NewEmitter(origin Vec2, col RGB, target int, bounds Rect, rng *Rand) *Emitter {
	return &Emitter{
		State:  EmitterStopped,
		Target: target,
		Origin: origin,
		Col:    col,
		P:      make([]Particle, 0, target),
		bounds: bounds,
		rng:    rng,
	}
}

// Activate starts spawning. A Stopping emitter resumes and keeps its live particles.
func (e *Emitter) Activate() {
	e.State = EmitterActive
}

// Stop lets the current pool expire.
func (e *Emitter) Stop() {
	if e.State == EmitterActive {
		e.State = EmitterStopping
	}
}

// Reset drops every particle and moves the spawn origin.
func (e *Emitter) Reset(origin Vec2) {
	e.P = e.P[:0]
	e.State = EmitterStopped
	e.Origin = origin
}

// Burst throws n fast particles from origin in one go.
// A Stopped emitter goes to Stopping so it returns to Stopped once they expire.
func (e *Emitter) Burst(origin Vec2, n int) {
	for range n {
		e.P = append(e.P, e.spawn(origin, burstSpeedMin, burstSpeedMax))
	}
	if e.State == EmitterStopped && len(e.P) > 0 {
		e.State = EmitterStopping
	}
}

func (e *Emitter) spawn(origin Vec2, speedMin, speedMax float64) Particle {
	r := e.rng
	size := float64(r.Range(particleSizeMin, particleSizeMax))
	speed := r.RangeF(speedMin, speedMax)
	life := r.RangeF(particleLifeMin, particleLifeMax)
	ang := clampF(r.Float64()*particleAngleMax, 0, particleAngleMax) * degToRad
	return Particle{
		Pos:     origin,
		Vel:     Vec2{X: math.Cos(ang) * speed, Y: math.Sin(ang) * speed},
		Acc:     Vec2{X: ParticleAccel, Y: ParticleAccel},
		Size:    size,
		Life:    life,
		MaxLife: life,
		Col:     e.Col,
	}
}

// Update ages every particle, drops the dead ones and, while Active, refills
// the whole shortfall in the same call.
func (e *Emitter) Update(dt float64) {
	for i := 0; i < len(e.P); {
		p := &e.P[i]
		p.step(dt, e.bounds)
		if !p.Alive() {
			e.P[i] = e.P[len(e.P)-1]
			e.P = e.P[:len(e.P)-1]
			continue
		}
		i++
	}

	switch e.State {
	case EmitterActive:
		for len(e.P) < e.Target {
			e.P = append(e.P, e.spawn(e.Origin, sparkSpeedMin, sparkSpeedMax))
		}
	case EmitterStopping:
		if len(e.P) == 0 {
			e.State = EmitterStopped
		}
	}
	mustf(e.State != EmitterStopped || len(e.P) == 0, "stopped emitter holds %d particles", len(e.P))
}

func (e *Emitter) Render(f *Frame) {
	if e.State == EmitterStopped {
		return
	}
	for i := range e.P {
		e.P[i].Render(f)
	}
}

// Len is the number of live particles.
func (e *Emitter) Len() int { return len(e.P) }
