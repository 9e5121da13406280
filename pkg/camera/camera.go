// Package camera provides the perspective camera and the third-person
// follower that drives it.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera defined by a position and look-at point
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	target   mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// Projection
	fov        float32
	near       float32
	far        float32
	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a camera at position looking down -Z
func NewCamera(position mgl32.Vec3, width, height int) *Camera {
	camera := &Camera{
		position: position,
		target:   position.Add(mgl32.Vec3{0, 0, -1}),
		worldUp:  mgl32.Vec3{0, 1, 0}, // Y-up coordinate system
		fov:      DefaultFOV,
		near:     DefaultNear,
		far:      DefaultFar,
		width:    width,
		height:   height,
	}

	camera.updateCameraVectors()
	camera.updateProjectionMatrix()

	return camera
}

// updateCameraVectors recalculates the basis from position and target
func (c *Camera) updateCameraVectors() {
	dir := c.target.Sub(c.position)
	if dir.Len() == 0 {
		return
	}
	c.front = dir.Normalize()

	right := c.front.Cross(c.worldUp)
	if right.Len() == 0 {
		// looking straight up or down, keep the previous right vector
		right = c.right
		if right.Len() == 0 {
			right = mgl32.Vec3{1, 0, 0}
		}
	}
	c.right = right.Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// updateProjectionMatrix recalculates the projection matrix
func (c *Camera) updateProjectionMatrix() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), c.Aspect(), c.near, c.far)
}

// SetClipPlanes sets the near and far clip distances
func (c *Camera) SetClipPlanes(near, far float32) {
	c.near = near
	c.far = far
	c.updateProjectionMatrix()
}

// SetFOV sets the vertical field of view in degrees, clamped to the allowed range
func (c *Camera) SetFOV(fov float32) {
	c.fov = mgl32.Clamp(fov, MinFOV, MaxFOV)
	c.updateProjectionMatrix()
}

// FOV returns the vertical field of view in degrees
func (c *Camera) FOV() float32 {
	return c.fov
}

// UpdateProjectionMatrix updates the projection matrix with new dimensions
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// Aspect returns the viewport aspect ratio
func (c *Camera) Aspect() float32 {
	if c.height <= 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition moves the camera, keeping its look-at point
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
	c.updateCameraVectors()
}

// Target returns the point the camera looks at
func (c *Camera) Target() mgl32.Vec3 {
	return c.target
}

// LookAt makes the camera look at a specific point
func (c *Camera) LookAt(target mgl32.Vec3) {
	c.target = target
	c.updateCameraVectors()
}

// FrontVector returns the camera's front direction vector
func (c *Camera) FrontVector() mgl32.Vec3 {
	return c.front
}

// RightVector returns the camera's right direction vector
func (c *Camera) RightVector() mgl32.Vec3 {
	return c.right
}

// UpVector returns the camera's up direction vector
func (c *Camera) UpVector() mgl32.Vec3 {
	return c.up
}

// HandleMouseScroll zooms by narrowing or widening the field of view
func (c *Camera) HandleMouseScroll(yoffset float64) {
	c.SetFOV(c.fov - float32(yoffset))
}
