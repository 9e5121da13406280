package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-spaceship/pkg/physics"
	"github.com/leterax/go-spaceship/pkg/transform"
)

// Geometry selects the vertex data a mesh is drawn with
type Geometry int

const (
	// UnitBox is a cube with side 1, scaled by the transform
	UnitBox Geometry = iota
	// UnitSphere is a sphere with radius 1, scaled by the transform
	UnitSphere
	// UnitPlane is a 1x1 quad in the XZ plane facing +Y
	UnitPlane
	// ShipModel is the loaded character model
	ShipModel
)

// Mesh is a render-only object
type Mesh struct {
	Name      string
	Geometry  Geometry
	Color     mgl32.Vec3
	Transform *transform.Transform
}

// NewMesh creates a mesh at the origin
func NewMesh(name string, geometry Geometry, color mgl32.Vec3) *Mesh {
	return &Mesh{
		Name:      name,
		Geometry:  geometry,
		Color:     color,
		Transform: transform.New(),
	}
}

// PropPair binds a simulated body to the mesh that shows it.
// Poses flow one way, from body to mesh.
type PropPair struct {
	Body *physics.Body
	Mesh *Mesh
}

// Sync copies the body's pose onto the mesh
func (p PropPair) Sync() {
	p.Mesh.Transform.SetPose(p.Body.Pose())
}

// Colors used by the scene
var (
	ColorWhite  = mgl32.Vec3{1, 1, 1}
	ColorRed    = mgl32.Vec3{1, 0, 0}
	ColorGreen  = mgl32.Vec3{0, 1, 0}
	ColorBlue   = mgl32.Vec3{0, 0, 1}
	ColorGround = mgl32.Vec3{0.05, 0.05, 0.06}
	ColorShip   = mgl32.Vec3{0.8, 0.8, 0.85}
)
