// Package airport models a single-runway airport: aircraft arrive,
// queue for the runway, land, dwell on the ground, and depart. It is a
// sample client of the sim engine and doubles as its conformance
// reference.
package airport

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tarmaclab/tarmac/sim"
)

// State captures the airport at one instant.
type State struct {
	InAir      int
	OnGround   int
	RunwayFree bool
}

// InitialState returns the state of an empty airport.
func InitialState() State {
	return State{RunwayFree: true}
}

// ArrivedEvent fires when an aircraft reaches the airport airspace.
type ArrivedEvent struct {
	*sim.EventBase
}

// LandedEvent fires when an aircraft finishes its landing roll.
type LandedEvent struct {
	*sim.EventBase
}

// DepartedEvent fires when an aircraft leaves the ground.
type DepartedEvent struct {
	*sim.EventBase
}

// A Model simulates a single-runway airport. R is how long a landing
// occupies the runway. G is how long an aircraft dwells on the ground
// before departing.
type Model struct {
	R sim.VTime
	G sim.VTime
}

// NewModel creates an airport model with the given runway occupancy and
// ground dwell durations.
func NewModel(r, g sim.VTime) *Model {
	return &Model{R: r, G: g}
}

// NewArrival creates an arrival event at time t.
func (m *Model) NewArrival(t sim.VTime) ArrivedEvent {
	return ArrivedEvent{sim.NewEventBase(t, m)}
}

// Seed schedules one arrival per entry in arrivals and returns the
// initial state for the run.
func (m *Model) Seed(sched sim.EventScheduler, arrivals []sim.VTime) State {
	for _, t := range arrivals {
		sched.Schedule(m.NewArrival(t))
	}
	return InitialState()
}

// Handle dispatches one airport event.
func (m *Model) Handle(
	e sim.Event,
	state sim.State,
	sched sim.EventScheduler,
) (sim.State, error) {
	s := state.(State)

	switch e.(type) {
	case ArrivedEvent:
		return m.arrived(s, sched), nil
	case LandedEvent:
		return m.landed(s, sched), nil
	case DepartedEvent:
		return m.departed(s, sched), nil
	default:
		return state, fmt.Errorf("airport: cannot handle event of type %T", e)
	}
}

func (m *Model) arrived(s State, sched sim.EventScheduler) State {
	now := sched.CurrentTime()

	s.InAir++
	if s.RunwayFree {
		s.RunwayFree = false
		sched.Schedule(LandedEvent{sim.NewEventBase(now+m.R, m)})
	}

	logrus.WithFields(logrus.Fields{
		"now":    now,
		"in_air": s.InAir,
	}).Debug("aircraft arrived")

	return s
}

func (m *Model) landed(s State, sched sim.EventScheduler) State {
	now := sched.CurrentTime()

	// A landing can only fire while the runway is held. Anything else is
	// a defect in the model or the engine.
	if s.RunwayFree {
		panic("airport: landed while the runway is free")
	}

	s.InAir--
	s.OnGround++
	sched.Schedule(DepartedEvent{sim.NewEventBase(now+m.G, m)})

	if s.InAir > 0 {
		sched.Schedule(LandedEvent{sim.NewEventBase(now+m.R, m)})
	} else {
		s.RunwayFree = true
	}

	logrus.WithFields(logrus.Fields{
		"now":       now,
		"in_air":    s.InAir,
		"on_ground": s.OnGround,
	}).Debug("aircraft landed")

	return s
}

func (m *Model) departed(s State, sched sim.EventScheduler) State {
	s.OnGround--

	logrus.WithFields(logrus.Fields{
		"now":       sched.CurrentTime(),
		"on_ground": s.OnGround,
	}).Debug("aircraft departed")

	return s
}
