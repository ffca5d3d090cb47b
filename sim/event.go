package sim

// State is the client-defined value threaded through a simulation run.
// The engine never inspects its structure; it only passes the value
// produced by one handler invocation to the next.
type State any

// An Event is something going to happen in the future.
type Event interface {
	// Time returns the time that the event should happen.
	Time() VTime

	// Handler returns the handler that should handle the event.
	Handler() Handler

	// IsSecondary tells if the event is a secondary event. Secondary
	// events are handled after all same-time primary events are handled.
	IsSecondary() bool
}

// EventBase provides the basic fields and getters for other events.
type EventBase struct {
	ID        string
	time      VTime
	handler   Handler
	secondary bool
}

// NewEventBase creates a new EventBase.
func NewEventBase(t VTime, handler Handler) *EventBase {
	e := new(EventBase)
	e.ID = GetIDGenerator().Generate()
	e.time = t
	e.handler = handler
	e.secondary = false
	return e
}

// NewSecondaryEventBase creates an EventBase for a secondary event.
func NewSecondaryEventBase(t VTime, handler Handler) *EventBase {
	e := NewEventBase(t, handler)
	e.secondary = true
	return e
}

// Time returns the time that the event is going to happen.
func (e EventBase) Time() VTime {
	return e.time
}

// Handler returns the handler to handle the event.
func (e EventBase) Handler() Handler {
	return e.handler
}

// IsSecondary returns true if the event is a secondary event.
func (e EventBase) IsSecondary() bool {
	return e.secondary
}

// EventScheduler is the pending-event-set reference handed to a handler
// for the duration of one invocation, letting it schedule further
// events. Handlers must not retain it across invocations.
type EventScheduler interface {
	TimeTeller
	Schedule(e Event)
}

// A Handler consumes one event and produces the next simulation state.
//
// Handle receives the state returned by the previous handler invocation
// and returns the state the engine holds until the next one. It may call
// sched.Schedule zero or more times. A non-nil error aborts the run and
// is surfaced to the caller of Simulate.
type Handler interface {
	Handle(e Event, state State, sched EventScheduler) (State, error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(e Event, state State, sched EventScheduler) (State, error)

// Handle calls f.
func (f HandlerFunc) Handle(
	e Event,
	state State,
	sched EventScheduler,
) (State, error) {
	return f(e, state, sched)
}
