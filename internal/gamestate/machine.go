// Package gamestate implements the ready/playing/paused/finished lifecycle of
// a single game, with an explicit transition table.
package gamestate

import (
	"errors"
	"fmt"
)

// State is a game lifecycle state.
type State int

const (
	Ready State = iota
	Playing
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Event requests a transition.
type Event string

const (
	EventStart  Event = "start"
	EventPause  Event = "pause"
	EventResume Event = "resume"
	EventFinish Event = "finish"
	EventReset  Event = "reset"
)

// transitions is the complete set of allowed moves.
var transitions = map[State]map[Event]State{
	Ready:    {EventStart: Playing},
	Playing:  {EventPause: Paused, EventFinish: Finished},
	Paused:   {EventResume: Playing},
	Finished: {EventReset: Ready},
}

// ErrInvalidTransition is wrapped by every rejected transition.
var ErrInvalidTransition = errors.New("invalid game state transition")

// TransitionError reports an event that is not allowed from the current state.
type TransitionError struct {
	From  State
	Event Event
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Event, e.From)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// Listener is notified after every successful transition.
type Listener func(from, to State)

// Machine holds the current state of one game.
type Machine struct {
	state     State
	listeners []Listener
}

// New returns a machine in the Ready state.
func New() *Machine {
	return &Machine{state: Ready}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// OnChange registers a listener.
func (m *Machine) OnChange(l Listener) {
	m.listeners = append(m.listeners, l)
}

// Can reports whether ev is allowed from the current state.
func (m *Machine) Can(ev Event) bool {
	_, ok := transitions[m.state][ev]
	return ok
}

// Fire applies ev. A disallowed event leaves the state unchanged and
// returns a *TransitionError.
func (m *Machine) Fire(ev Event) error {
	next, ok := transitions[m.state][ev]
	if !ok {
		return &TransitionError{From: m.state, Event: ev}
	}
	from := m.state
	m.state = next
	for _, l := range m.listeners {
		l(from, next)
	}
	return nil
}

func (m *Machine) Start() error  { return m.Fire(EventStart) }
func (m *Machine) Pause() error  { return m.Fire(EventPause) }
func (m *Machine) Resume() error { return m.Fire(EventResume) }
func (m *Machine) Finish() error { return m.Fire(EventFinish) }
func (m *Machine) Reset() error  { return m.Fire(EventReset) }

// IsActive reports whether answers may be accepted.
func (m *Machine) IsActive() bool { return m.state == Playing }
