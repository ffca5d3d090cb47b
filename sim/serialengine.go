package sim

import (
	"fmt"
	"reflect"
	"sync"
)

// A SerialEngine is an Engine that always runs events one after another.
type SerialEngine struct {
	HookableBase

	clock          *Clock
	queue          EventQueue
	secondaryQueue EventQueue

	stopFunc func(now VTime, state State) bool

	isPaused     bool
	isPausedLock sync.Mutex
	pauseLock    sync.Mutex

	singleRunLock sync.Mutex

	simulationEndHandlers []SimulationEndHandler
}

// NewSerialEngine creates a SerialEngine.
func NewSerialEngine() *SerialEngine {
	e := new(SerialEngine)

	e.clock = NewClock()
	e.queue = NewEventQueue()
	e.secondaryQueue = NewEventQueue()
	//e.queue = NewInsertionQueue()

	return e
}

// Schedule registers an event to happen in the future. Scheduling at the
// current time is allowed; scheduling before the current time is a
// client logic defect and panics.
func (e *SerialEngine) Schedule(evt Event) {
	now := e.clock.Now()
	if evt.Time() < now {
		panic(fmt.Sprintf(
			"sim: cannot schedule event in the past, evt %s @ %d, now %d",
			reflect.TypeOf(evt), evt.Time(), now))
	}

	if evt.IsSecondary() {
		e.secondaryQueue.Push(evt)
		return
	}

	e.queue.Push(evt)
}

// StopWhen installs a predicate that is evaluated once per loop
// iteration, before the next event is popped. When it returns true, the
// run ends early with the current state and pending events left in the
// queue. It must be set before the run starts.
func (e *SerialEngine) StopWhen(pred func(now VTime, state State) bool) {
	e.stopFunc = pred
}

// Simulate processes the pending events in time order until none remain.
// Each iteration pops the earliest event, advances the clock to its
// time, and invokes its handler with the current state and this engine
// as the scheduler. The handler's returned state replaces the current
// one. A handler error aborts the run immediately.
func (e *SerialEngine) Simulate(initial State) (State, error) {
	e.singleRunLock.Lock()
	defer e.singleRunLock.Unlock()

	state := initial

	for {
		if e.stopFunc != nil && e.stopFunc(e.clock.Now(), state) {
			return state, nil
		}

		if e.noMoreEvent() {
			return state, nil
		}

		e.pauseLock.Lock()

		evt := e.nextEvent()
		now := e.clock.Now()
		if evt.Time() < now {
			e.pauseLock.Unlock()
			panic(fmt.Sprintf(
				"sim: cannot run event in the past, evt %s @ %d, now %d",
				reflect.TypeOf(evt), evt.Time(), now))
		}
		e.clock.AdvanceTo(evt.Time())

		hookCtx := HookCtx{
			Domain: e,
			Pos:    HookPosBeforeEvent,
			Item:   evt,
		}
		e.InvokeHook(hookCtx)

		next, err := evt.Handler().Handle(evt, state, e)
		if err != nil {
			e.pauseLock.Unlock()
			return state, fmt.Errorf(
				"handling event %s at %d: %w",
				reflect.TypeOf(evt), evt.Time(), err)
		}
		state = next

		hookCtx.Pos = HookPosAfterEvent
		hookCtx.Detail = state
		e.InvokeHook(hookCtx)

		e.pauseLock.Unlock()
	}
}

// Run processes all the events scheduled in the SerialEngine, discarding
// the threaded state.
func (e *SerialEngine) Run() error {
	_, err := e.Simulate(nil)
	return err
}

func (e *SerialEngine) noMoreEvent() bool {
	return e.queue.Len() == 0 && e.secondaryQueue.Len() == 0
}

func (e *SerialEngine) nextEvent() Event {
	if e.queue.Len() == 0 {
		return e.secondaryQueue.Pop()
	}

	if e.secondaryQueue.Len() == 0 {
		return e.queue.Pop()
	}

	primaryEvt := e.queue.Peek()
	secondaryEvt := e.secondaryQueue.Peek()

	if primaryEvt.Time() <= secondaryEvt.Time() {
		e.queue.Pop()
		return primaryEvt
	}

	e.secondaryQueue.Pop()
	return secondaryEvt
}

// PendingEventCount returns the number of events waiting in the engine.
func (e *SerialEngine) PendingEventCount() int {
	return e.queue.Len() + e.secondaryQueue.Len()
}

// PendingEventTimes lists the pending event times for diagnostics. The
// format is human-readable only.
func (e *SerialEngine) PendingEventTimes() string {
	primary, ok := e.queue.(fmt.Stringer)
	if !ok {
		return ""
	}

	if e.secondaryQueue.Len() == 0 {
		return primary.String()
	}

	secondary, ok := e.secondaryQueue.(fmt.Stringer)
	if !ok {
		return primary.String()
	}

	return primary.String() + " secondary " + secondary.String()
}

// Pause prevents the SerialEngine from triggering more events.
func (e *SerialEngine) Pause() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if e.isPaused {
		return
	}

	e.pauseLock.Lock()
	e.isPaused = true
}

// Continue allows the SerialEngine to trigger more events.
func (e *SerialEngine) Continue() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if !e.isPaused {
		return
	}

	e.pauseLock.Unlock()
	e.isPaused = false
}

// CurrentTime returns the current time at which the engine is at.
// Specifically, the run time of the current event.
func (e *SerialEngine) CurrentTime() VTime {
	return e.clock.Now()
}

// RegisterSimulationEndHandler registers a simulation end handler.
func (e *SerialEngine) RegisterSimulationEndHandler(
	handler SimulationEndHandler,
) {
	e.simulationEndHandlers = append(e.simulationEndHandlers, handler)
}

// Finished should be called after the simulation ends. This function
// calls all the registered SimulationEndHandler.
func (e *SerialEngine) Finished() {
	now := e.clock.Now()
	for _, h := range e.simulationEndHandlers {
		h.Handle(now)
	}
}
