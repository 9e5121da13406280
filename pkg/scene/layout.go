package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-spaceship/pkg/physics"
)

// Layout constants
const (
	GroundSize      = 5000.0
	ObstacleSize    = 4.0
	ObstacleHeight  = 10.0
	ObstacleSpacing = 100.0
	ObstacleCount   = 25
	obstacleOrigin  = 50.0
)

// ShipHalfExtents is the collision box of the ship
var ShipHalfExtents = mgl32.Vec3{45, 15, 45}

const shipMass = 100

type obstacleLine struct {
	color mgl32.Vec3
	count int
	// position of box i
	at func(i float32) (x, z float32)
}

var obstacleLines = []obstacleLine{
	{ColorGreen, ObstacleCount, func(i float32) (float32, float32) {
		return i*ObstacleSpacing + obstacleOrigin, obstacleOrigin
	}},
	{ColorRed, ObstacleCount, func(i float32) (float32, float32) {
		return i*ObstacleSpacing + obstacleOrigin, i*ObstacleSpacing + obstacleOrigin
	}},
	{ColorGreen, ObstacleCount, func(i float32) (float32, float32) {
		return -i*ObstacleSpacing + obstacleOrigin, obstacleOrigin
	}},
	{ColorRed, ObstacleCount, func(i float32) (float32, float32) {
		return -i*ObstacleSpacing + obstacleOrigin, i*ObstacleSpacing + obstacleOrigin
	}},
	{ColorBlue, ObstacleCount, func(i float32) (float32, float32) {
		return obstacleOrigin, i*ObstacleSpacing + obstacleOrigin
	}},
	{ColorWhite, 1, func(i float32) (float32, float32) {
		return obstacleOrigin, i*ObstacleSpacing + obstacleOrigin
	}},
}

// buildObstacles returns the static marker boxes laid out along the axes
// and diagonals
func buildObstacles() []*Mesh {
	var meshes []*Mesh
	for line, l := range obstacleLines {
		for i := 0; i < l.count; i++ {
			x, z := l.at(float32(i))
			m := NewMesh(fmt.Sprintf("obstacle-%d-%d", line, i), UnitBox, l.color)
			m.Transform.Position = mgl32.Vec3{x, ObstacleHeight, z}
			m.Transform.SetScalar(ObstacleSize)
			meshes = append(meshes, m)
		}
	}
	return meshes
}

// buildGround returns the ground mesh and its static body
func buildGround() (*Mesh, *physics.Body) {
	mesh := NewMesh("ground", UnitPlane, ColorGround)
	mesh.Transform.Scale = mgl32.Vec3{GroundSize, 1, GroundSize}

	body := physics.NewBody("ground", physics.Static, physics.Plane(), 0)
	return mesh, body
}

// buildProps returns the simulated box and ball
func buildProps() []PropPair {
	box := physics.NewBody("box", physics.Dynamic, physics.Box(mgl32.Vec3{5, 5, 5}), 1)
	box.Position = mgl32.Vec3{0, 100, 50}
	box.AngularVelocity = mgl32.Vec3{0, 10, 0}
	box.AngularDamping = 0.5
	boxMesh := NewMesh("box", UnitBox, ColorWhite)
	boxMesh.Transform.SetScalar(10)

	ball := physics.NewBody("ball", physics.Dynamic, physics.Sphere(10), 1)
	ball.Position = mgl32.Vec3{30, 100, 50}
	ballMesh := NewMesh("ball", UnitSphere, ColorRed)
	ballMesh.Transform.SetScalar(10)

	props := []PropPair{
		{Body: box, Mesh: boxMesh},
		{Body: ball, Mesh: ballMesh},
	}
	for _, p := range props {
		p.Sync()
	}
	return props
}

// buildShipBody returns the kinematic collider that follows the ship
func buildShipBody() *physics.Body {
	return physics.NewBody("ship", physics.Kinematic, physics.Box(ShipHalfExtents), shipMass)
}
