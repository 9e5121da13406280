package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Damping applied to new bodies, as a fraction of velocity lost per second
	DefaultLinearDamping  = 0.01
	DefaultAngularDamping = 0.01

	// Contact material
	DefaultFriction    = 0.3
	DefaultRestitution = 0.0
)

// planeNormal is the local normal of a plane shape
var planeNormal = mgl32.Vec3{0, 1, 0}
