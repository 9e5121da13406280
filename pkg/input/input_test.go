package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestSetPressed(t *testing.T) {
	s := NewSampler()

	for _, a := range []Action{Forward, Backward, Left, Right, Jump, Sprint} {
		assert.False(t, s.IsPressed(a), a.String())
		s.SetPressed(a, true)
		assert.True(t, s.IsPressed(a), a.String())
		s.SetPressed(a, false)
		assert.False(t, s.IsPressed(a), a.String())
	}
}

func TestUnknownActionIgnored(t *testing.T) {
	s := NewSampler()

	assert.NotPanics(t, func() {
		s.SetPressed(Action(42), true)
		s.SetPressed(Action(-1), true)
	})
	assert.False(t, s.IsPressed(Action(42)))
	assert.Equal(t, State{}, s.Snapshot())
	assert.Equal(t, "unknown", Action(42).String())
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name   string
		key    glfw.Key
		action Action
	}{
		{"w", glfw.KeyW, Forward},
		{"s", glfw.KeyS, Backward},
		{"a", glfw.KeyA, Left},
		{"d", glfw.KeyD, Right},
		{"space", glfw.KeySpace, Jump},
		{"left shift", glfw.KeyLeftShift, Sprint},
		{"right shift", glfw.KeyRightShift, Sprint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSampler()

			s.HandleKey(tt.key, glfw.Press)
			assert.True(t, s.IsPressed(tt.action))

			// repeats do not change state
			s.HandleKey(tt.key, glfw.Repeat)
			assert.True(t, s.IsPressed(tt.action))

			s.HandleKey(tt.key, glfw.Release)
			assert.False(t, s.IsPressed(tt.action))
		})
	}
}

func TestHandleKeyUnbound(t *testing.T) {
	s := NewSampler()
	s.HandleKey(glfw.KeyQ, glfw.Press)
	assert.Equal(t, State{}, s.Snapshot())
}

func TestSnapshot(t *testing.T) {
	s := NewSampler()
	s.SetPressed(Forward, true)
	s.SetPressed(Sprint, true)

	state := s.Snapshot()
	assert.Equal(t, State{Forward: true, Sprint: true}, state)
	assert.True(t, state.Moving())

	s.Reset()
	assert.False(t, s.Snapshot().Moving())
}

func TestSprintHeldByEitherShift(t *testing.T) {
	s := NewSampler()

	s.HandleKey(glfw.KeyLeftShift, glfw.Press)
	s.HandleKey(glfw.KeyRightShift, glfw.Press)
	s.HandleKey(glfw.KeyLeftShift, glfw.Release)
	assert.True(t, s.IsPressed(Sprint))

	s.HandleKey(glfw.KeyRightShift, glfw.Repeat)
	assert.True(t, s.IsPressed(Sprint))

	s.HandleKey(glfw.KeyRightShift, glfw.Release)
	assert.False(t, s.IsPressed(Sprint))
}

func TestResetForgetsHeldKeys(t *testing.T) {
	s := NewSampler()

	s.HandleKey(glfw.KeyLeftShift, glfw.Press)
	s.HandleKey(glfw.KeyW, glfw.Press)
	s.Reset()
	assert.Equal(t, State{}, s.Snapshot())

	// a release after focus returns must not leave the other shift stuck
	s.HandleKey(glfw.KeyRightShift, glfw.Press)
	s.HandleKey(glfw.KeyRightShift, glfw.Release)
	assert.False(t, s.IsPressed(Sprint))
}
