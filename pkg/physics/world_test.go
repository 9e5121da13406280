package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const step = float32(1.0 / 60)

var gravity = mgl32.Vec3{0, -90, 0}

func newGroundWorld() *World {
	w := NewWorld(gravity)
	w.AddBody(NewBody("ground", Static, Plane(), 0))
	return w
}

func run(w *World, seconds float32) {
	for t := float32(0); t < seconds; t += step {
		w.Step(step)
	}
}

func TestFreeFall(t *testing.T) {
	w := NewWorld(gravity)
	b := NewBody("ball", Dynamic, Sphere(1), 1)
	b.Position = mgl32.Vec3{0, 100, 0}
	w.AddBody(b)

	w.Step(step)

	wantV := -90 * step * float32(math.Pow(0.99, float64(step)))
	assert.InDelta(t, wantV, b.Velocity.Y(), 1e-4)
	assert.InDelta(t, 100+wantV*step, b.Position.Y(), 1e-4)
	assert.Equal(t, uint64(1), w.Steps())
	assert.InDelta(t, step, w.Time(), 1e-9)
}

func TestSphereRestsOnGround(t *testing.T) {
	w := newGroundWorld()
	b := NewBody("sphere", Dynamic, Sphere(10), 1)
	b.Position = mgl32.Vec3{30, 100, 50}
	w.AddBody(b)

	run(w, 5)

	assert.InDelta(t, 10.0, b.Position.Y(), 1e-3)
	assert.InDelta(t, 30.0, b.Position.X(), 1e-3)
	assert.InDelta(t, 0.0, b.Velocity.Y(), 1e-3)
}

func TestSpinningBoxRestsOnGround(t *testing.T) {
	w := newGroundWorld()
	b := NewBody("box", Dynamic, Box(mgl32.Vec3{5, 5, 5}), 1)
	b.Position = mgl32.Vec3{0, 100, 50}
	b.AngularVelocity = mgl32.Vec3{0, 10, 0}
	b.AngularDamping = 0.5
	w.AddBody(b)

	run(w, 5)

	// spinning about Y keeps the box flat on the ground
	assert.InDelta(t, 5.0, b.Position.Y(), 1e-2)
	assert.InDelta(t, 1.0, b.Quaternion.Len(), 1e-4)
	assert.Less(t, b.AngularVelocity.Y(), float32(10*math.Pow(0.5, 4.9)))
	assert.Greater(t, b.AngularVelocity.Y(), float32(0))

	q := b.Quaternion
	assert.NotEqual(t, mgl32.QuatIdent(), q, "box should have turned")
}

func TestStaticAndKinematicNotIntegrated(t *testing.T) {
	w := NewWorld(gravity)
	static := NewBody("wall", Static, Box(mgl32.Vec3{1, 1, 1}), 0)
	static.Position = mgl32.Vec3{0, 50, 0}
	kinematic := NewBody("ship", Kinematic, Box(mgl32.Vec3{45, 15, 45}), 100)
	kinematic.Position = mgl32.Vec3{500, 50, 0}
	w.AddBody(static)
	w.AddBody(kinematic)

	run(w, 1)

	assert.Equal(t, mgl32.Vec3{0, 50, 0}, static.Position)
	assert.Equal(t, mgl32.Vec3{500, 50, 0}, kinematic.Position)
	assert.Zero(t, kinematic.InverseMass())
}

func TestKinematicBoxPushesDynamic(t *testing.T) {
	w := NewWorld(mgl32.Vec3{})
	ship := NewBody("ship", Kinematic, Box(mgl32.Vec3{45, 15, 45}), 100)
	w.AddBody(ship)

	ball := NewBody("ball", Dynamic, Sphere(10), 1)
	ball.Position = mgl32.Vec3{50, 0, 0}
	ball.Velocity = mgl32.Vec3{-10, 0, 0}
	w.AddBody(ball)

	w.Step(step)

	assert.GreaterOrEqual(t, ball.Position.X(), float32(55)-1e-3)
	assert.GreaterOrEqual(t, ball.Velocity.X(), float32(0))
}

func TestKinematicBoxEjectsContainedBody(t *testing.T) {
	w := NewWorld(mgl32.Vec3{})
	ship := NewBody("ship", Kinematic, Box(mgl32.Vec3{45, 15, 45}), 100)
	w.AddBody(ship)

	ball := NewBody("ball", Dynamic, Sphere(1), 1)
	ball.Position = mgl32.Vec3{0, 10, 0}
	w.AddBody(ball)

	w.Step(step)

	// nearest face is the top
	assert.InDelta(t, 16.0, ball.Position.Y(), 1e-3)
}

func TestDynamicPairsSeparate(t *testing.T) {
	w := NewWorld(mgl32.Vec3{})
	a := NewBody("a", Dynamic, Sphere(1), 1)
	b := NewBody("b", Dynamic, Sphere(1), 1)
	a.Position = mgl32.Vec3{0, 0, 0}
	b.Position = mgl32.Vec3{1, 0, 0}
	a.Velocity = mgl32.Vec3{1, 0, 0}
	w.AddBody(a)
	w.AddBody(b)

	w.Step(step)

	dist := b.Position.Sub(a.Position).Len()
	assert.InDelta(t, 2.0, dist, 1e-3)
	assert.GreaterOrEqual(t, b.Velocity.X()-a.Velocity.X(), float32(-1e-5))
}

func TestGroundFriction(t *testing.T) {
	w := newGroundWorld()
	b := NewBody("box", Dynamic, Box(mgl32.Vec3{1, 1, 1}), 1)
	b.Position = mgl32.Vec3{0, 1, 0}
	b.Velocity = mgl32.Vec3{5, 0, 0}
	w.AddBody(b)

	run(w, 1)

	assert.InDelta(t, 0.0, b.Velocity.X(), 1e-4)
}

func TestRemoveBody(t *testing.T) {
	w := NewWorld(gravity)
	b := NewBody("b", Dynamic, Sphere(1), 1)
	w.AddBody(b)
	require.Len(t, w.Bodies(), 1)

	assert.True(t, w.RemoveBody(b))
	assert.False(t, w.RemoveBody(b))
	assert.Empty(t, w.Bodies())
}

func TestBoundingRadius(t *testing.T) {
	assert.Equal(t, float32(3), NewBody("", Dynamic, Sphere(3), 1).BoundingRadius())
	assert.InDelta(t, math.Sqrt(3), NewBody("", Dynamic, Box(mgl32.Vec3{1, 1, 1}), 1).BoundingRadius(), 1e-6)
	assert.True(t, math.IsInf(float64(NewBody("", Static, Plane(), 0).BoundingRadius()), 1))
}
