package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// World owns a set of bodies and steps them with a fixed timestep
type World struct {
	Gravity     mgl32.Vec3
	Friction    float32
	Restitution float32

	bodies []*Body
	time   float64
	steps  uint64
}

// NewWorld creates an empty world
func NewWorld(gravity mgl32.Vec3) *World {
	return &World{
		Gravity:     gravity,
		Friction:    DefaultFriction,
		Restitution: DefaultRestitution,
	}
}

// AddBody registers a body with the world
func (w *World) AddBody(b *Body) {
	w.bodies = append(w.bodies, b)
}

// RemoveBody unregisters a body. It reports whether the body was found.
func (w *World) RemoveBody(b *Body) bool {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return true
		}
	}
	return false
}

// Bodies returns the registered bodies
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Time returns the simulated time in seconds
func (w *World) Time() float64 {
	return w.time
}

// Steps returns the number of steps taken
func (w *World) Steps() uint64 {
	return w.steps
}

// Step advances the simulation by dt seconds
func (w *World) Step(dt float32) {
	for _, b := range w.bodies {
		if b.Kind == Dynamic {
			b.integrate(w.Gravity, dt)
		}
	}

	for _, b := range w.bodies {
		if b.Kind != Dynamic {
			continue
		}
		for _, other := range w.bodies {
			if other == b {
				continue
			}
			switch {
			case other.Shape.Type == PlaneShape:
				w.resolvePlane(b, other, dt)
			case other.Kind == Kinematic && other.Shape.Type == BoxShape:
				w.resolveBox(b, other)
			}
		}
	}

	w.resolveDynamicPairs()

	w.time += float64(dt)
	w.steps++
}
