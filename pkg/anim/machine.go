package anim

import (
	"github.com/rs/zerolog/log"

	"github.com/leterax/go-spaceship/pkg/input"
)

// Hook is called when a state is entered or exited
type Hook func(state, other State)

// Machine holds the single active animation state
type Machine struct {
	current State
	started bool

	// OnEnter receives the new state and the state it replaced
	OnEnter Hook
	// OnExit receives the old state and the state replacing it
	OnExit Hook
}

// NewMachine creates a machine with no active state
func NewMachine() *Machine {
	return &Machine{}
}

// Current returns the active state. ok is false until SetState is first called.
func (m *Machine) Current() (state State, ok bool) {
	return m.current, m.started
}

// SetState activates the given state. Re-entering the active state is a no-op.
func (m *Machine) SetState(next State) {
	prev := m.current
	if m.started {
		if prev == next {
			return
		}
		if m.OnExit != nil {
			m.OnExit(prev, next)
		}
	}

	m.current = next
	wasStarted := m.started
	m.started = true

	log.Debug().
		Str("from", fromName(prev, wasStarted)).
		Str("to", next.String()).
		Msg("animation state")

	if m.OnEnter != nil {
		m.OnEnter(next, prev)
	}
}

// Update evaluates the transition table for the active state
func (m *Machine) Update(_ float32, in input.State) {
	if !m.started {
		return
	}
	m.SetState(Next(m.current, in))
}

func fromName(s State, started bool) string {
	if !started {
		return "none"
	}
	return s.String()
}
