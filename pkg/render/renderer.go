// Package render presents a scene in a GLFW window and runs the frame loop.
package render

import (
	"context"
	"embed"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"

	"github.com/leterax/go-spaceship/internal/openglhelper"
	"github.com/leterax/go-spaceship/pkg/assets"
	"github.com/leterax/go-spaceship/pkg/physics"
	"github.com/leterax/go-spaceship/pkg/scene"
)

//go:embed shaders
var shaderFS embed.FS

// Options configures a renderer
type Options struct {
	Width          int
	Height         int
	Title          string
	VSync          bool
	DebugCollision bool
}

// Renderer handles rendering logic and game loop
type Renderer struct {
	window *openglhelper.Window
	scene  *scene.Scene
	loader *assets.Loader

	meshShader    *openglhelper.Shader
	overlayShader *openglhelper.Shader

	geometry map[scene.Geometry]*openglhelper.Mesh
	quad     *openglhelper.Quad

	debugCollision bool

	// Timing
	lastFrameTime float64
	frames        uint64
}

// NewRenderer opens the window and uploads the shared geometry. The loader
// may be nil, in which case the ship never appears.
func NewRenderer(opts Options, s *scene.Scene, loader *assets.Loader) (*Renderer, error) {
	window, err := openglhelper.NewWindow(opts.Width, opts.Height, opts.Title, opts.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if loader != nil {
		s.TrackLoad(loader.Tracker())
	}

	r := &Renderer{
		window:         window,
		scene:          s,
		loader:         loader,
		geometry:       make(map[scene.Geometry]*openglhelper.Mesh),
		debugCollision: opts.DebugCollision,
	}

	r.meshShader, err = openglhelper.LoadShaderFromFS(shaderFS, "shaders/mesh.vert", "shaders/mesh.frag")
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load mesh shader: %w", err)
	}
	r.overlayShader, err = openglhelper.LoadShaderFromFS(shaderFS, "shaders/overlay.vert", "shaders/overlay.frag")
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load overlay shader: %w", err)
	}

	r.geometry[scene.UnitBox] = upload(assets.BoxMesh(mgl32.Vec3{0.5, 0.5, 0.5}))
	r.geometry[scene.UnitSphere] = upload(assets.SphereMesh(1, sphereStacks, sphereSlices))
	r.geometry[scene.UnitPlane] = upload(assets.PlaneMesh(1))
	r.quad = openglhelper.NewQuad()

	// Set up callbacks
	glfwWindow := window.GLFWWindow()
	glfwWindow.SetKeyCallback(r.keyCallback)
	glfwWindow.SetScrollCallback(r.scrollCallback)
	glfwWindow.SetFramebufferSizeCallback(r.framebufferSizeCallback)
	glfwWindow.SetFocusCallback(r.focusCallback)

	width, height := window.Size()
	r.framebufferSizeCallback(glfwWindow, width, height)

	return r, nil
}

func upload(data *assets.MeshData) *openglhelper.Mesh {
	return openglhelper.NewMesh(data.Interleaved(), data.Indices)
}

// Run drives the scene once per displayed frame until the window closes or
// ctx is cancelled
func (r *Renderer) Run(ctx context.Context) {
	defer r.Cleanup()

	r.lastFrameTime = r.window.Time()

	for !r.window.ShouldClose() {
		select {
		case <-ctx.Done():
			log.Info().Msg("shutting down")
			return
		default:
		}

		// Calculate delta time
		currentTime := r.window.Time()
		deltaTime := float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime

		r.window.PollEvents()
		r.pollLoader()

		r.scene.Frame(deltaTime)
		r.render()

		r.window.SwapBuffers()
		r.frames++
	}
}

// pollLoader drains every pending loader event without blocking
func (r *Renderer) pollLoader() {
	if r.loader == nil {
		return
	}
	for {
		ev, ok := r.loader.Poll()
		if !ok {
			return
		}
		r.scene.HandleLoadEvent(ev)

		if ev.Done && ev.Err == nil && ev.Model != nil {
			r.geometry[scene.ShipModel] = upload(ev.Model.Mesh)
			log.Debug().
				Int("vertices", len(ev.Model.Mesh.Positions)).
				Int("triangles", len(ev.Model.Mesh.Indices)/3).
				Msg("ship mesh uploaded")
		}
	}
}

func (r *Renderer) render() {
	r.window.Clear(BackgroundColor)

	cam := r.scene.Camera
	r.meshShader.Use()
	r.meshShader.SetMat4("view", cam.ViewMatrix())
	r.meshShader.SetMat4("projection", cam.ProjectionMatrix())
	r.meshShader.SetVec3("lightDir", LightDirection)
	r.meshShader.SetVec3("lightColor", LightColor)
	r.meshShader.SetFloat("ambient", AmbientStrength)

	r.drawMesh(r.scene.Ground)
	for _, m := range r.scene.Obstacles {
		r.drawMesh(m)
	}
	for _, p := range r.scene.Props {
		r.drawMesh(p.Mesh)
	}
	if r.scene.Ship != nil {
		r.drawMesh(r.scene.Ship)
	}

	if r.debugCollision {
		r.drawColliders()
	}

	if r.scene.Loading() {
		r.drawProgress(r.scene.Progress())
	}
}

func (r *Renderer) drawMesh(m *scene.Mesh) {
	mesh, ok := r.geometry[m.Geometry]
	if !ok {
		return
	}
	r.meshShader.SetMat4("model", m.Transform.Matrix())
	r.meshShader.SetVec3("color", m.Color)
	mesh.Draw()
}

// drawColliders outlines every box and sphere body in the physics world
func (r *Renderer) drawColliders() {
	r.meshShader.SetVec3("color", ColliderColor)
	for _, b := range r.scene.Physics.Bodies() {
		geometry, model, ok := colliderModel(b)
		if !ok {
			continue
		}
		r.meshShader.SetMat4("model", model)
		r.geometry[geometry].DrawWireframe()
	}
}

// colliderModel returns the unit geometry and model matrix that outline a
// body's collision shape. Planes are not outlined.
func colliderModel(b *physics.Body) (scene.Geometry, mgl32.Mat4, bool) {
	var geometry scene.Geometry
	var scale mgl32.Mat4
	switch b.Shape.Type {
	case physics.BoxShape:
		h := b.Shape.HalfExtents
		geometry = scene.UnitBox
		scale = mgl32.Scale3D(2*h.X(), 2*h.Y(), 2*h.Z())
	case physics.SphereShape:
		geometry = scene.UnitSphere
		scale = mgl32.Scale3D(b.Shape.Radius, b.Shape.Radius, b.Shape.Radius)
	default:
		return 0, mgl32.Ident4(), false
	}
	position, rotation := b.Pose()
	model := mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(rotation.Mat4()).
		Mul4(scale)
	return geometry, model, true
}

// drawProgress shows the load percentage as a horizontal bar
func (r *Renderer) drawProgress(p assets.Progress) {
	r.window.ClearDepth()

	r.overlayShader.Use()
	r.overlayShader.SetVec4("rect", mgl32.Vec4{ProgressBarX, ProgressBarY, ProgressBarWidth, ProgressBarHeight})
	r.overlayShader.SetVec4("color", ProgressTrackColor)
	r.quad.Draw()

	r.overlayShader.SetVec4("rect", progressFillRect(p.Percent()))
	r.overlayShader.SetVec4("color", ProgressFillColor)
	r.quad.Draw()
}

// progressFillRect returns the filled part of the progress bar for a
// percentage in [0, 100]; values outside are clamped
func progressFillRect(percent float32) mgl32.Vec4 {
	fraction := mgl32.Clamp(percent/100, 0, 1)
	inner := float32(ProgressBarWidth - 2*progressBarBorder)
	return mgl32.Vec4{
		ProgressBarX + progressBarBorder,
		ProgressBarY + progressBarBorder,
		inner * fraction,
		ProgressBarHeight - 2*progressBarBorder,
	}
}

// Cleanup releases GPU resources and closes the window
func (r *Renderer) Cleanup() {
	for _, m := range r.geometry {
		m.Delete()
	}
	r.quad.Delete()
	r.meshShader.Delete()
	r.overlayShader.Delete()

	log.Debug().Uint64("frames", r.frames).Msg("renderer closed")
	r.window.Close()
}

func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		r.window.SetShouldClose(true)
		return
	}
	r.scene.Input.HandleKey(key, action)
}

func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	r.scene.Camera.HandleMouseScroll(yoffset)
}

// focusCallback releases all keys when the window loses focus, since their
// release events go elsewhere
func (r *Renderer) focusCallback(_ *glfw.Window, focused bool) {
	if !focused {
		r.scene.Input.Reset()
	}
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	r.scene.Resize(width, height)
}
