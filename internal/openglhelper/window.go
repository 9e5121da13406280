package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"
)

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow *glfw.Window
	width      int
	height     int
	title      string
	vsync      bool
}

// NewWindow creates a new GLFW window with OpenGL context
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	// Create window
	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info().
		Str("version", gl.GoStr(gl.GetString(gl.VERSION))).
		Str("renderer", gl.GoStr(gl.GetString(gl.RENDERER))).
		Msg("OpenGL context ready")

	// Configure global OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)

	// The framebuffer can differ from the window size on HiDPI displays
	fbWidth, fbHeight := glfwWindow.GetFramebufferSize()

	return &Window{
		glfwWindow: glfwWindow,
		width:      fbWidth,
		height:     fbHeight,
		title:      title,
		vsync:      vsync,
	}, nil
}

// Clear clears the color and depth buffers
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// SetShouldClose asks the main loop to exit
func (w *Window) SetShouldClose(close bool) {
	w.glfwWindow.SetShouldClose(close)
}

// Close releases all resources
func (w *Window) Close() {
	glfw.Terminate()
}

// Size returns the framebuffer dimensions
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// SetTitle sets the window title
func (w *Window) SetTitle(title string) {
	w.title = title
	w.glfwWindow.SetTitle(title)
}

// OnResize is called when the framebuffer is resized
func (w *Window) OnResize(width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// GLFWWindow returns the underlying GLFW window
func (w *Window) GLFWWindow() *glfw.Window {
	return w.glfwWindow
}

// Time returns seconds since GLFW was initialized
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// ClearDepth clears only the depth buffer, so overlays draw on top
func (w *Window) ClearDepth() {
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}
