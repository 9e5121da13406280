package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

type fixedTarget struct {
	position mgl32.Vec3
	rotation mgl32.Quat
}

func (f *fixedTarget) Position() mgl32.Vec3 { return f.position }
func (f *fixedTarget) Rotation() mgl32.Quat { return f.rotation }

func TestSmoothingFactor(t *testing.T) {
	assert.Equal(t, float32(0), SmoothingFactor(0))
	assert.InDelta(t, 0.999, SmoothingFactor(1), 1e-6)
	assert.InDelta(t, 1.0, SmoothingFactor(100), 1e-6)

	// monotonic in dt
	prev := float32(0)
	for dt := float32(0.001); dt < 5; dt *= 2 {
		s := SmoothingFactor(dt)
		assert.Greater(t, s, prev)
		assert.Less(t, s, float32(1.0000001))
		prev = s
	}

	// approaches zero as dt shrinks
	assert.Less(t, SmoothingFactor(1e-6), float32(1e-4))
}

func TestSmoothingIsFrameRateIndependent(t *testing.T) {
	a := mgl32.Vec3{}
	b := mgl32.Vec3{}
	target := mgl32.Vec3{100, 0, 0}

	for i := 0; i < 100; i++ {
		a = Lerp(a, target, SmoothingFactor(1.0/100))
	}
	for i := 0; i < 50; i++ {
		b = Lerp(b, target, SmoothingFactor(1.0/50))
	}
	assert.InDelta(t, a.X(), b.X(), 0.05)
	assert.InDelta(t, 99.9, a.X(), 0.05)
}

func TestLerp(t *testing.T) {
	a := mgl32.Vec3{1, 2, 3}
	b := mgl32.Vec3{5, -6, 7.25}

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, mgl32.Vec3{3, -2, 5.125}, Lerp(a, b, 0.5))

	// idempotent at t=1
	assert.Equal(t, b, Lerp(Lerp(a, b, 1), b, 1))
}

func TestIdealPlacement(t *testing.T) {
	target := &fixedTarget{position: mgl32.Vec3{10, 0, 20}, rotation: mgl32.QuatIdent()}
	f := NewFollower(NewCamera(DefaultStartPosition, 800, 600), target)

	assertVec(t, mgl32.Vec3{10, 80, -80}, f.IdealOffset(), 1e-4)
	assertVec(t, mgl32.Vec3{10, 10, 70}, f.IdealLookAt(), 1e-4)

	// facing +X the camera trails along -X
	target.rotation = mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0})
	assertVec(t, mgl32.Vec3{-90, 80, 20}, f.IdealOffset(), 1e-3)
	assertVec(t, mgl32.Vec3{60, 10, 20}, f.IdealLookAt(), 1e-3)
}

func TestFollowerSnapsOnLongFrame(t *testing.T) {
	target := &fixedTarget{position: mgl32.Vec3{0, 0, 0}, rotation: mgl32.QuatIdent()}
	cam := NewCamera(DefaultStartPosition, 800, 600)
	f := NewFollower(cam, target)

	f.Update(1e6)

	pos, look := f.Current()
	assert.Equal(t, f.IdealOffset(), pos)
	assert.Equal(t, f.IdealLookAt(), look)
	assert.Equal(t, pos, cam.Position())
	assert.Equal(t, look, cam.Target())
}

func TestFollowerZeroDt(t *testing.T) {
	target := &fixedTarget{position: mgl32.Vec3{50, 0, 50}, rotation: mgl32.QuatIdent()}
	f := NewFollower(NewCamera(DefaultStartPosition, 800, 600), target)

	f.Update(0)
	pos, look := f.Current()
	assert.Equal(t, mgl32.Vec3{}, pos)
	assert.Equal(t, mgl32.Vec3{}, look)
}

func TestFollowerConverges(t *testing.T) {
	target := &fixedTarget{position: mgl32.Vec3{0, 0, 100}, rotation: mgl32.QuatIdent()}
	f := NewFollower(NewCamera(DefaultStartPosition, 800, 600), target)

	ideal := f.IdealOffset()
	prevDist := float32(math.MaxFloat32)
	for i := 0; i < 60; i++ {
		f.Update(1.0 / 60)
		pos, _ := f.Current()
		dist := ideal.Sub(pos).Len()
		assert.Less(t, dist, prevDist)
		prevDist = dist
	}
	assert.Less(t, prevDist, float32(0.2))
}
