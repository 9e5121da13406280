// Package character integrates player input into the motion of the
// controlled spaceship.
package character

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-spaceship/pkg/anim"
	"github.com/leterax/go-spaceship/pkg/input"
	"github.com/leterax/go-spaceship/pkg/transform"
)

// Controller tuning
var (
	DefaultDeceleration = mgl32.Vec3{-0.0005, -0.0001, -5.0}
	DefaultAcceleration = mgl32.Vec3{1, 0.25, 1000.0}
)

const (
	// SprintMultiplier scales acceleration while sprint is held
	SprintMultiplier = 2.0
	// ModelScale is the uniform scale applied to the loaded model
	ModelScale = 10.0
	// turnRate is multiplied by acceleration.y and dt to give the yaw angle
	turnRate = 4.0 * math.Pi
)

// Controller owns the kinematic state of the controlled character.
// Velocity is in the character's local frame: x is lateral, z longitudinal.
type Controller struct {
	deceleration mgl32.Vec3
	acceleration mgl32.Vec3

	velocity mgl32.Vec3
	position mgl32.Vec3

	target  *transform.Transform
	input   *input.Sampler
	machine *anim.Machine
	mixer   anim.Mixer
}

// NewController creates a controller reading from the given sampler.
// It does nothing until a model is attached.
func NewController(in *input.Sampler, machine *anim.Machine) *Controller {
	return &Controller{
		deceleration: DefaultDeceleration,
		acceleration: DefaultAcceleration,
		input:        in,
		machine:      machine,
	}
}

// Attach hands the loaded model to the controller. The mixer may be nil.
func (c *Controller) Attach(target *transform.Transform, mixer anim.Mixer) {
	target.SetScalar(ModelScale)
	target.Position = c.position
	c.target = target
	c.mixer = mixer
}

// Attached reports whether the model has been loaded
func (c *Controller) Attached() bool {
	return c.target != nil
}

// Position returns the world position of the character
func (c *Controller) Position() mgl32.Vec3 {
	return c.position
}

// Rotation returns the orientation of the character, or the identity
// quaternion while the model is not loaded
func (c *Controller) Rotation() mgl32.Quat {
	if c.target == nil {
		return mgl32.QuatIdent()
	}
	return c.target.Rotation
}

// Velocity returns the local-frame velocity
func (c *Controller) Velocity() mgl32.Vec3 {
	return c.velocity
}

// State returns the active animation state
func (c *Controller) State() (anim.State, bool) {
	return c.machine.Current()
}

// Update advances the character by dt seconds
func (c *Controller) Update(dt float32) {
	if c.target == nil {
		return
	}
	if _, ok := c.machine.Current(); !ok {
		return
	}

	in := c.input.Snapshot()

	c.velocity = c.velocity.Add(Decay(c.velocity, c.deceleration, dt))

	acc := c.acceleration
	if in.Sprint {
		acc = acc.Mul(SprintMultiplier)
	}

	if in.Forward {
		c.velocity[2] += acc.Z() * dt
	}
	if in.Backward {
		c.velocity[2] -= acc.Z() * dt
	}

	rotation := c.target.Rotation
	if in.Left {
		rotation = rotation.Mul(yaw(turnRate * dt * c.acceleration.Y()))
	}
	if in.Right {
		rotation = rotation.Mul(yaw(-turnRate * dt * c.acceleration.Y()))
	}
	c.target.Rotation = rotation.Normalize()

	forward := c.target.Forward().Mul(c.velocity.Z() * dt)
	sideways := c.target.Right().Mul(c.velocity.X() * dt)
	c.target.Position = c.target.Position.Add(forward).Add(sideways)
	c.position = c.target.Position

	c.machine.Update(dt, in)

	if c.mixer != nil {
		c.mixer.Update(dt)
	}
}

// Decay returns the velocity change from damping over dt. The longitudinal
// component never exceeds the current longitudinal speed, so it cannot flip
// its sign.
func Decay(velocity, deceleration mgl32.Vec3, dt float32) mgl32.Vec3 {
	d := mgl32.Vec3{
		velocity.X() * deceleration.X(),
		velocity.Y() * deceleration.Y(),
		velocity.Z() * deceleration.Z(),
	}.Mul(dt)

	limit := math.Min(math.Abs(float64(d.Z())), math.Abs(float64(velocity.Z())))
	d[2] = float32(sign(float64(d.Z())) * limit)
	return d
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func yaw(angle float32) mgl32.Quat {
	return mgl32.QuatRotate(angle, transform.AxisUp)
}
