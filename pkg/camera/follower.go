package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Target is anything the follower can track
type Target interface {
	Position() mgl32.Vec3
	Rotation() mgl32.Quat
}

// Follower keeps the camera behind and above a target, smoothing toward
// the ideal placement independently of frame rate
type Follower struct {
	camera *Camera
	target Target

	offset mgl32.Vec3
	lookAt mgl32.Vec3

	currentPosition mgl32.Vec3
	currentLookAt   mgl32.Vec3
}

// NewFollower creates a follower using the default offsets
func NewFollower(camera *Camera, target Target) *Follower {
	return &Follower{
		camera: camera,
		target: target,
		offset: DefaultOffset,
		lookAt: DefaultLookAt,
	}
}

// SetOffsets overrides the local camera offset and look-at point
func (f *Follower) SetOffsets(offset, lookAt mgl32.Vec3) {
	f.offset = offset
	f.lookAt = lookAt
}

// IdealOffset returns the unsmoothed camera position
func (f *Follower) IdealOffset() mgl32.Vec3 {
	return f.target.Rotation().Rotate(f.offset).Add(f.target.Position())
}

// IdealLookAt returns the unsmoothed look-at point
func (f *Follower) IdealLookAt() mgl32.Vec3 {
	return f.target.Rotation().Rotate(f.lookAt).Add(f.target.Position())
}

// Current returns the smoothed camera position and look-at point
func (f *Follower) Current() (position, lookAt mgl32.Vec3) {
	return f.currentPosition, f.currentLookAt
}

// Update moves the camera dt seconds closer to the ideal placement
func (f *Follower) Update(dt float32) {
	t := SmoothingFactor(dt)

	f.currentPosition = Lerp(f.currentPosition, f.IdealOffset(), t)
	f.currentLookAt = Lerp(f.currentLookAt, f.IdealLookAt(), t)

	f.camera.SetPosition(f.currentPosition)
	f.camera.LookAt(f.currentLookAt)
}

// SmoothingFactor returns the interpolation weight for a frame of dt seconds
func SmoothingFactor(dt float32) float32 {
	return float32(1.0 - math.Pow(SmoothingBase, float64(dt)))
}

// Lerp interpolates from a to b by t. At t == 1 it returns b exactly.
func Lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	if t >= 1 {
		return b
	}
	return a.Add(b.Sub(a).Mul(t))
}
