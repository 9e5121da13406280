// Package input tracks the pressed state of the player's movement actions.
package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a named player action driven by the keyboard
type Action int

const (
	Forward Action = iota
	Backward
	Left
	Right
	Jump
	Sprint

	numActions
)

var actionNames = [numActions]string{
	Forward:  "forward",
	Backward: "backward",
	Left:     "left",
	Right:    "right",
	Jump:     "jump",
	Sprint:   "sprint",
}

// String returns the lowercase action name
func (a Action) String() string {
	if !a.valid() {
		return "unknown"
	}
	return actionNames[a]
}

func (a Action) valid() bool {
	return a >= 0 && a < numActions
}

// State is a snapshot of every action taken once per frame
type State struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Jump     bool
	Sprint   bool
}

// Moving reports whether a longitudinal movement action is held
func (s State) Moving() bool {
	return s.Forward || s.Backward
}

// KeyBindings maps physical keys to actions
var KeyBindings = map[glfw.Key]Action{
	glfw.KeyW:          Forward,
	glfw.KeyS:          Backward,
	glfw.KeyA:          Left,
	glfw.KeyD:          Right,
	glfw.KeySpace:      Jump,
	glfw.KeyLeftShift:  Sprint,
	glfw.KeyRightShift: Sprint,
}

// Sampler holds the pressed state of each action.
// It is mutated only by key edges and read by the controller once per frame.
type Sampler struct {
	pressed [numActions]bool
	// keys holds the physical keys currently down
	keys map[glfw.Key]bool
}

// NewSampler creates a sampler with every action released
func NewSampler() *Sampler {
	return &Sampler{keys: make(map[glfw.Key]bool)}
}

// SetPressed records the pressed state of an action. Unknown actions are ignored.
func (s *Sampler) SetPressed(action Action, pressed bool) {
	if !action.valid() {
		return
	}
	s.pressed[action] = pressed
}

// IsPressed returns whether the action is currently held
func (s *Sampler) IsPressed(action Action) bool {
	if !action.valid() {
		return false
	}
	return s.pressed[action]
}

// HandleKey applies a GLFW key edge. Repeats and unbound keys are ignored.
// An action bound to several keys stays held until all of them are released.
func (s *Sampler) HandleKey(key glfw.Key, action glfw.Action) {
	bound, ok := KeyBindings[key]
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		s.keys[key] = true
	case glfw.Release:
		delete(s.keys, key)
	default:
		return
	}
	s.SetPressed(bound, s.anyKeyDown(bound))
}

func (s *Sampler) anyKeyDown(action Action) bool {
	for key := range s.keys {
		if KeyBindings[key] == action {
			return true
		}
	}
	return false
}

// Reset releases every action and key, e.g. when the window loses focus
func (s *Sampler) Reset() {
	s.pressed = [numActions]bool{}
	clear(s.keys)
}

// Snapshot returns the current state of all actions
func (s *Sampler) Snapshot() State {
	return State{
		Forward:  s.pressed[Forward],
		Backward: s.pressed[Backward],
		Left:     s.pressed[Left],
		Right:    s.pressed[Right],
		Jump:     s.pressed[Jump],
		Sprint:   s.pressed[Sprint],
	}
}
