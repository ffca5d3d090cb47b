package simulation

import (
	"github.com/rs/xid"

	"github.com/tarmaclab/tarmac/datarecording"
	"github.com/tarmaclab/tarmac/monitoring"
	"github.com/tarmaclab/tarmac/sim"
	"github.com/tarmaclab/tarmac/tracing"
)

// Builder can be used to build a simulation.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	tracingOn      bool
	outputFileName string
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		monitorOn: true,
		tracingOn: true,
	}
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithoutTracing disables step tracing; no database is created.
func (b Builder) WithoutTracing() Builder {
	b.tracingOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the data
// recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.tracingOn && b.outputFileName != "" {
		panic("output file name cannot be set when tracing is disabled")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		id: xid.New().String(),
	}

	engine := sim.NewSerialEngine()
	s.engine = engine

	if b.tracingOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "tarmac_sim_" + s.id
		}

		s.dataRecorder = datarecording.NewDataRecorder(outputPath)
		s.stepTracer = tracing.NewStepTracer(
			tracing.NewDBTraceWriter(s.dataRecorder))
		engine.AcceptHook(s.stepTracer)
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.RegisterEngine(engine)
		s.monitor.StartServer()
	}

	return s
}
