// Package tracing records the (timestamp, state) sequence of a
// simulation run. Tracing is a side channel attached through engine
// hooks; the engine contract does not depend on it.
package tracing

import (
	"fmt"
	"reflect"

	"github.com/tarmaclab/tarmac/sim"
)

// A StepRecord captures one engine iteration: the event that fired and
// the state its handler returned.
type StepRecord struct {
	Step  int    `json:"step"`
	Time  int64  `json:"time"`
	Kind  string `json:"kind"`
	State string `json:"state"`
}

// A StepWriter stores step records somewhere.
type StepWriter interface {
	Write(rec StepRecord)
	Flush()
}

// StepTracer is a hook that turns every handled event into a StepRecord.
// Attach it to an engine with AcceptHook.
type StepTracer struct {
	writer StepWriter
	step   int
}

// NewStepTracer creates a StepTracer that writes into the given backend.
func NewStepTracer(writer StepWriter) *StepTracer {
	return &StepTracer{writer: writer}
}

// Func records the event at the AfterEvent hook position, where Detail
// carries the state the handler returned.
func (t *StepTracer) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosAfterEvent {
		return
	}

	evt, ok := ctx.Item.(sim.Event)
	if !ok {
		return
	}

	t.writer.Write(StepRecord{
		Step:  t.step,
		Time:  int64(evt.Time()),
		Kind:  reflect.TypeOf(evt).String(),
		State: fmt.Sprintf("%+v", ctx.Detail),
	})
	t.step++
}

// Flush forwards to the backend.
func (t *StepTracer) Flush() {
	t.writer.Flush()
}
