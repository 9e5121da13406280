// Package anim implements the character animation state machine and tracks
// which animation clip is active.
package anim

import (
	"github.com/leterax/go-spaceship/pkg/input"
)

// State is an animation state of the controlled character
type State int

const (
	Idle State = iota
	Walk
	Run
)

// String returns the clip name used for the state
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walk:
		return "walk"
	case Run:
		return "run"
	default:
		return "unknown"
	}
}

// States lists every state in declaration order
var States = []State{Idle, Walk, Run}

// Next returns the state that follows current for the given input.
// Transitions depend only on the movement and sprint flags, never on time.
func Next(current State, in input.State) State {
	switch current {
	case Idle:
		if in.Moving() {
			return Walk
		}
	case Walk:
		if !in.Moving() {
			return Idle
		}
		if in.Sprint {
			return Run
		}
	case Run:
		if !in.Moving() {
			return Idle
		}
		if !in.Sprint {
			return Walk
		}
	}
	return current
}
