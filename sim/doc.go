// Package sim provides a minimal discrete-event simulation engine.
//
// The engine advances a logical clock by repeatedly extracting the
// chronologically next event from a pending event queue and invoking its
// handler. Handlers receive the current state and the scheduler, may
// schedule further events, and return the next state. A run ends when
// the queue drains.
package sim
