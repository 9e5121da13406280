// Package transform holds the pose of objects placed in the scene.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Local axes in model space
var (
	AxisForward = mgl32.Vec3{0, 0, 1}
	AxisRight   = mgl32.Vec3{1, 0, 0}
	AxisUp      = mgl32.Vec3{0, 1, 0}
)

// Transform is a position, orientation and scale
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// New creates a transform at the origin with unit scale
func New() *Transform {
	return &Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// SetScalar scales uniformly on every axis
func (t *Transform) SetScalar(s float32) {
	t.Scale = mgl32.Vec3{s, s, s}
}

// SetPose copies a position and rotation, leaving scale untouched
func (t *Transform) SetPose(position mgl32.Vec3, rotation mgl32.Quat) {
	t.Position = position
	t.Rotation = rotation
}

// Forward returns the world-space forward axis
func (t *Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(AxisForward).Normalize()
}

// Right returns the world-space sideways axis
func (t *Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(AxisRight).Normalize()
}

// Matrix returns the model matrix (translate * rotate * scale)
func (t *Transform) Matrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(t.Rotation.Normalize().Mat4()).Mul4(scale)
}
