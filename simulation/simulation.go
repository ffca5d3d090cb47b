// Package simulation wires an engine together with the recording,
// tracing, and monitoring services of one run.
package simulation

import (
	"github.com/tarmaclab/tarmac/datarecording"
	"github.com/tarmaclab/tarmac/monitoring"
	"github.com/tarmaclab/tarmac/sim"
	"github.com/tarmaclab/tarmac/tracing"
)

// A Simulation provides the services required to run a simulation.
type Simulation struct {
	id     string
	engine sim.Engine

	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
	stepTracer   *tracing.StepTracer
}

// ID returns the ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetDataRecorder returns the data recorder used in the simulation.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the simulation. It is nil when
// monitoring is disabled.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// GetStepTracer returns the tracer used in the simulation. It is nil
// when tracing is disabled.
func (s *Simulation) GetStepTracer() *tracing.StepTracer {
	return s.stepTracer
}

// Terminate flushes the trace and closes the data recorder. Call it
// after the run finishes.
func (s *Simulation) Terminate() {
	if s.stepTracer != nil {
		s.stepTracer.Flush()
	}

	if s.dataRecorder != nil {
		s.dataRecorder.Close()
	}
}
