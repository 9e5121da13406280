package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection constants
const (
	DefaultFOV  = 60.0
	MinFOV      = 20.0
	MaxFOV      = 90.0
	DefaultNear = 1.0
	DefaultFar  = 1000.0
)

// Follower constants
const (
	// SmoothingBase is the fraction of the remaining distance left after one second
	SmoothingBase = 0.001
)

var (
	// DefaultStartPosition is where the camera sits before the first follow update
	DefaultStartPosition = mgl32.Vec3{25, 10, 25}
	// DefaultOffset is the camera position in the target's local frame
	DefaultOffset = mgl32.Vec3{0, 80, -100}
	// DefaultLookAt is the look-at point in the target's local frame
	DefaultLookAt = mgl32.Vec3{0, 10, 50}
)
