package sim

// A SimulationEndHandler is a handler that is called after the
// simulation ends.
type SimulationEndHandler interface {
	Handle(now VTime)
}

// An Engine is a unit that keeps a discrete event simulation running.
type Engine interface {
	Hookable
	TimeTeller
	EventScheduler

	// Simulate processes all the pending events in time order, threading
	// the state through the handlers, and returns the final state.
	Simulate(initial State) (State, error)

	// Run processes all the pending events, discarding the threaded
	// state. It suits clients that keep their state elsewhere.
	Run() error

	// Pause will pause the simulation until Continue is called.
	Pause()

	// Continue will continue the paused simulation.
	Continue()

	// RegisterSimulationEndHandler registers a handler that performs
	// some actions after the simulation is finished.
	RegisterSimulationEndHandler(handler SimulationEndHandler)

	// Finished invokes all the registered SimulationEndHandler.
	Finished()
}
