package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Lighting
var (
	// LightDirection points from the sun at (0,1000,200) towards the origin
	LightDirection = mgl32.Vec3{0, -1000, -200}.Normalize()
	LightColor     = mgl32.Vec3{1, 1, 1}
)

const AmbientStrength = 0.25

// Clear color behind the scene
var BackgroundColor = mgl32.Vec4{0.02, 0.02, 0.05, 1}

// Collision wireframe color
var ColliderColor = mgl32.Vec3{0, 1, 0.4}

// Progress bar placement in normalized device coordinates
const (
	ProgressBarX      = -0.5
	ProgressBarY      = -0.05
	ProgressBarWidth  = 1.0
	ProgressBarHeight = 0.1
	// progressBarBorder is the gap between the track and the fill
	progressBarBorder = 0.01
)

var (
	ProgressTrackColor = mgl32.Vec4{0.15, 0.15, 0.2, 1}
	ProgressFillColor  = mgl32.Vec4{0.9, 0.9, 1, 1}
)

// Sphere tessellation for props and colliders
const (
	sphereStacks = 16
	sphereSlices = 32
)
