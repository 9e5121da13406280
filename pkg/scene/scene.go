// Package scene owns every object in the world and drives them once per
// displayed frame.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"

	"github.com/leterax/go-spaceship/pkg/anim"
	"github.com/leterax/go-spaceship/pkg/assets"
	"github.com/leterax/go-spaceship/pkg/camera"
	"github.com/leterax/go-spaceship/pkg/character"
	"github.com/leterax/go-spaceship/pkg/input"
	"github.com/leterax/go-spaceship/pkg/physics"
	"github.com/leterax/go-spaceship/pkg/transform"
)

// Options configures a new scene
type Options struct {
	Width  int
	Height int

	FOV          float32
	Near         float32
	Far          float32
	CameraOffset mgl32.Vec3
	CameraLookAt mgl32.Vec3

	Gravity     mgl32.Vec3
	TimeStep    float32
	Accumulate  bool
	MaxSubsteps int
}

// DefaultOptions mirrors the built-in configuration
func DefaultOptions() Options {
	return Options{
		Width:        1920,
		Height:       1080,
		FOV:          camera.DefaultFOV,
		Near:         camera.DefaultNear,
		Far:          camera.DefaultFar,
		CameraOffset: camera.DefaultOffset,
		CameraLookAt: camera.DefaultLookAt,
		Gravity:      mgl32.Vec3{0, -90, 0},
		TimeStep:     1.0 / 60.0,
		Accumulate:   true,
		MaxSubsteps:  5,
	}
}

// Scene holds the world state. It is built once and used from the frame
// loop's thread only.
type Scene struct {
	Input      *input.Sampler
	Machine    *anim.Machine
	Controller *character.Controller
	Camera     *camera.Camera
	Follower   *camera.Follower
	Physics    *physics.World

	Ground    *Mesh
	Obstacles []*Mesh
	Props     []PropPair
	ShipBody  *physics.Body

	// Ship and Model are nil until the asset load completes
	Ship  *Mesh
	Model *assets.Model

	clips       *anim.ClipSet
	loading     bool
	tracker     *assets.Tracker
	progress    assets.Progress
	loadErr     error
	timeStep    float32
	accumulate  bool
	maxSubsteps int
	accumulator float32
}

// New builds the world: ground, props, obstacles, the ship collider and
// the camera rig. The ship itself appears once its model is loaded.
func New(opts Options) *Scene {
	in := input.NewSampler()
	machine := anim.NewMachine()
	controller := character.NewController(in, machine)

	cam := camera.NewCamera(camera.DefaultStartPosition, opts.Width, opts.Height)
	cam.SetFOV(opts.FOV)
	cam.SetClipPlanes(opts.Near, opts.Far)
	follower := camera.NewFollower(cam, controller)
	follower.SetOffsets(opts.CameraOffset, opts.CameraLookAt)

	world := physics.NewWorld(opts.Gravity)
	ground, groundBody := buildGround()
	world.AddBody(groundBody)

	props := buildProps()
	for _, p := range props {
		world.AddBody(p.Body)
	}

	shipBody := buildShipBody()
	world.AddBody(shipBody)

	s := &Scene{
		Input:       in,
		Machine:     machine,
		Controller:  controller,
		Camera:      cam,
		Follower:    follower,
		Physics:     world,
		Ground:      ground,
		Obstacles:   buildObstacles(),
		Props:       props,
		ShipBody:    shipBody,
		loading:     true,
		timeStep:    opts.TimeStep,
		accumulate:  opts.Accumulate,
		maxSubsteps: opts.MaxSubsteps,
	}

	machine.OnEnter = s.playClip

	log.Debug().
		Int("obstacles", len(s.Obstacles)).
		Int("bodies", len(world.Bodies())).
		Msg("scene built")

	return s
}

// Loading reports whether the ship model is still loading
func (s *Scene) Loading() bool {
	return s.loading
}

// TrackLoad reads load progress from t instead of waiting for loader
// events, so the indicator moves as soon as the loader advances
func (s *Scene) TrackLoad(t *assets.Tracker) {
	s.tracker = t
}

// Progress returns the current load progress
func (s *Scene) Progress() assets.Progress {
	if s.tracker != nil {
		return s.tracker.Progress()
	}
	return s.progress
}

// LoadError returns the error that ended loading, if any
func (s *Scene) LoadError() error {
	return s.loadErr
}

// HandleLoadEvent applies an event from the asset loader
func (s *Scene) HandleLoadEvent(ev assets.Event) {
	s.progress = ev.Progress
	if !ev.Done {
		return
	}

	s.loading = false
	if ev.Err != nil {
		s.loadErr = ev.Err
		return
	}
	s.OnLoaded(ev.Model)
}

// OnLoaded places the ship model in the scene, hands it to the controller
// and starts the animation state machine
func (s *Scene) OnLoaded(model *assets.Model) {
	s.Model = model
	s.clips = model.Clips

	ship := &Mesh{
		Name:      "ship",
		Geometry:  ShipModel,
		Color:     ColorShip,
		Transform: transform.New(),
	}
	s.Ship = ship
	s.Controller.Attach(ship.Transform, model.Clips)
	s.loading = false

	s.Machine.SetState(anim.Idle)
	log.Info().Msg("spaceship ready")
}

func (s *Scene) playClip(state, _ anim.State) {
	if s.clips == nil {
		return
	}
	name := state.String()
	if !s.clips.Has(name) {
		log.Debug().Str("clip", name).Msg("clip not loaded")
		return
	}
	s.clips.Play(name)
}

// ActiveClip returns the playing clip name, empty before load
func (s *Scene) ActiveClip() string {
	if s.clips == nil {
		return ""
	}
	return s.clips.Active()
}

// Resize updates the camera for a new framebuffer size
func (s *Scene) Resize(width, height int) {
	s.Camera.UpdateProjectionMatrix(width, height)
}
