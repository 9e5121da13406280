package openglhelper

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader represents an OpenGL shader program
type Shader struct {
	ID       uint32
	uniforms map[string]int32
}

// stage is one shader stage of a program
type stage struct {
	kind   uint32
	name   string
	source string
}

// infoLog reads a shader or program log with the matching GL getters
func infoLog(id uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var length int32
	getiv(id, gl.INFO_LOG_LENGTH, &length)
	buf := strings.Repeat("\x00", int(length+1))
	getLog(id, length, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func compileStage(st stage) (uint32, error) {
	shader := gl.CreateShader(st.kind)

	csources, free := gl.Strs(st.source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader compilation failed: %s", st.name, msg)
	}
	return shader, nil
}

// NewShader creates a new shader program from vertex and fragment shader source
func NewShader(vertexSource, fragmentSource string) (*Shader, error) {
	stages := []stage{
		{gl.VERTEX_SHADER, "vertex", vertexSource},
		{gl.FRAGMENT_SHADER, "fragment", fragmentSource},
	}

	program := gl.CreateProgram()
	for _, st := range stages {
		shader, err := compileStage(st)
		if err != nil {
			gl.DeleteProgram(program)
			return nil, err
		}
		gl.AttachShader(program, shader)
		// flagged for deletion, freed with the program
		gl.DeleteShader(shader)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("failed to link program: %s", msg)
	}

	return &Shader{ID: program, uniforms: make(map[string]int32)}, nil
}

// LoadShaderFromFS loads a shader program from two files in fsys
func LoadShaderFromFS(fsys fs.FS, vertexPath, fragmentPath string) (*Shader, error) {
	vertexSource, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vertex shader file: %w", err)
	}

	fragmentSource, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fragment shader file: %w", err)
	}

	return NewShader(string(vertexSource), string(fragmentSource))
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the shader program
func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
}

// location looks up a uniform once and caches it
func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

// SetFloat sets a float uniform
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

// SetVec3 sets a vec3 uniform
func (s *Shader) SetVec3(name string, vec mgl32.Vec3) {
	gl.Uniform3f(s.location(name), vec[0], vec[1], vec[2])
}

// SetVec4 sets a vec4 uniform
func (s *Shader) SetVec4(name string, vec mgl32.Vec4) {
	gl.Uniform4f(s.location(name), vec[0], vec[1], vec[2], vec[3])
}

// SetMat4 sets a mat4 uniform
func (s *Shader) SetMat4(name string, mat mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &mat[0])
}
