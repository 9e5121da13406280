// Package physics is a small rigid-body world: gravity, damping, spin and
// contact resolution against planes and kinematic boxes.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind controls how a body takes part in the simulation
type Kind int

const (
	// Static bodies never move
	Static Kind = iota
	// Dynamic bodies are integrated every step
	Dynamic
	// Kinematic bodies are moved only through SetPose and push dynamic bodies
	Kinematic
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	case Kinematic:
		return "kinematic"
	default:
		return "unknown"
	}
}

// ShapeType identifies a collision shape
type ShapeType int

const (
	BoxShape ShapeType = iota
	SphereShape
	PlaneShape
)

// Shape is the collision geometry of a body in its local frame
type Shape struct {
	Type        ShapeType
	HalfExtents mgl32.Vec3 // boxes
	Radius      float32    // spheres
}

// Box returns a box shape with the given half extents
func Box(halfExtents mgl32.Vec3) Shape {
	return Shape{Type: BoxShape, HalfExtents: halfExtents}
}

// Sphere returns a sphere shape
func Sphere(radius float32) Shape {
	return Shape{Type: SphereShape, Radius: radius}
}

// Plane returns an infinite plane whose normal is the body's local +Y
func Plane() Shape {
	return Shape{Type: PlaneShape}
}

// Body is a rigid body
type Body struct {
	Name  string
	Kind  Kind
	Shape Shape
	Mass  float32

	Position        mgl32.Vec3
	Quaternion      mgl32.Quat
	Velocity        mgl32.Vec3
	AngularVelocity mgl32.Vec3

	LinearDamping  float32
	AngularDamping float32
}

// NewBody creates a body at the origin. Static and kinematic bodies ignore mass.
func NewBody(name string, kind Kind, shape Shape, mass float32) *Body {
	return &Body{
		Name:           name,
		Kind:           kind,
		Shape:          shape,
		Mass:           mass,
		Quaternion:     mgl32.QuatIdent(),
		LinearDamping:  DefaultLinearDamping,
		AngularDamping: DefaultAngularDamping,
	}
}

// SetPose places the body
func (b *Body) SetPose(position mgl32.Vec3, rotation mgl32.Quat) {
	b.Position = position
	b.Quaternion = rotation
}

// Pose returns the body's position and orientation
func (b *Body) Pose() (mgl32.Vec3, mgl32.Quat) {
	return b.Position, b.Quaternion
}

// InverseMass is zero for bodies that do not respond to contacts
func (b *Body) InverseMass() float32 {
	if b.Kind != Dynamic || b.Mass <= 0 {
		return 0
	}
	return 1 / b.Mass
}

// BoundingRadius returns the radius of a sphere enclosing the shape
func (b *Body) BoundingRadius() float32 {
	switch b.Shape.Type {
	case SphereShape:
		return b.Shape.Radius
	case BoxShape:
		return b.Shape.HalfExtents.Len()
	default:
		return float32(math.Inf(1))
	}
}

// extentAlong returns how far the shape reaches from its center along dir
func (b *Body) extentAlong(dir mgl32.Vec3) float32 {
	switch b.Shape.Type {
	case SphereShape:
		return b.Shape.Radius
	case BoxShape:
		var extent float32
		for i := 0; i < 3; i++ {
			axis := b.axis(i)
			extent += abs(axis.Dot(dir)) * b.Shape.HalfExtents[i]
		}
		return extent
	default:
		return 0
	}
}

// axis returns the world-space direction of local axis i
func (b *Body) axis(i int) mgl32.Vec3 {
	var local mgl32.Vec3
	local[i] = 1
	return b.Quaternion.Rotate(local)
}

// integrate advances a dynamic body by dt
func (b *Body) integrate(gravity mgl32.Vec3, dt float32) {
	b.Velocity = b.Velocity.Add(gravity.Mul(dt))

	b.Velocity = b.Velocity.Mul(dampingFactor(b.LinearDamping, dt))
	b.AngularVelocity = b.AngularVelocity.Mul(dampingFactor(b.AngularDamping, dt))

	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	// q' = q + 0.5 * w * q * dt
	w := mgl32.Quat{W: 0, V: b.AngularVelocity}
	spin := w.Mul(b.Quaternion).Scale(0.5 * dt)
	b.Quaternion = b.Quaternion.Add(spin).Normalize()
}

func dampingFactor(damping, dt float32) float32 {
	return float32(math.Pow(float64(1-damping), float64(dt)))
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
