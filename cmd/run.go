package cmd

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tarmaclab/tarmac/airport"
	"github.com/tarmaclab/tarmac/monitoring"
	"github.com/tarmaclab/tarmac/sim"
	"github.com/tarmaclab/tarmac/simulation"
	"github.com/tarmaclab/tarmac/tracing"
)

var (
	scenarioPath string
	logLevel     string
	horizon      int64
	monitorOn    bool
	monitorPort  int
	openBrowser  bool
	tracingOn    bool
	outputName   string
	traceCSVPath string
)

// runCmd executes an airport simulation described by a scenario file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an airport simulation from a scenario file",
	Run: func(_ *cobra.Command, _ []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		scenario, err := LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("Cannot load scenario: %s", err)
		}

		s := buildSimulation()
		defer s.Terminate()

		engine := s.GetEngine()

		if traceCSVPath != "" {
			writer := tracing.NewCSVTraceWriter(traceCSVPath)
			writer.Init()
			csvTracer := tracing.NewStepTracer(writer)
			engine.AcceptHook(csvTracer)
			defer csvTracer.Flush()
		}

		model := airport.NewModel(
			sim.VTime(scenario.RunwayOccupancy),
			sim.VTime(scenario.GroundDwell))

		var arrivalBar *monitoring.ProgressBar
		if s.GetMonitor() != nil {
			s.GetMonitor().RegisterInspectable("airport", model)

			arrivalBar = s.GetMonitor().CreateProgressBar(
				"arrivals", uint64(len(scenario.Arrivals)))
			engine.AcceptHook(&arrivalProgress{bar: arrivalBar})
		}

		if horizon > 0 {
			serial, ok := engine.(*sim.SerialEngine)
			if ok {
				limit := sim.VTime(horizon)
				serial.StopWhen(func(now sim.VTime, _ sim.State) bool {
					return now >= limit
				})
			}
		}

		initial := model.Seed(engine, scenario.ArrivalTimes())

		final, err := engine.Simulate(initial)
		if err != nil {
			logrus.Fatalf("Simulation failed: %s", err)
		}
		engine.Finished()

		if arrivalBar != nil {
			s.GetMonitor().CompleteProgressBar(arrivalBar)
		}

		finalState := final.(airport.State)
		logrus.WithFields(logrus.Fields{
			"now":         engine.CurrentTime(),
			"in_air":      finalState.InAir,
			"on_ground":   finalState.OnGround,
			"runway_free": finalState.RunwayFree,
		}).Info("simulation finished")
	},
}

// arrivalProgress advances a progress bar as the run consumes the
// seeded arrival events.
type arrivalProgress struct {
	bar *monitoring.ProgressBar
}

func (p *arrivalProgress) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosAfterEvent {
		return
	}

	if _, ok := ctx.Item.(airport.ArrivedEvent); ok {
		p.bar.IncrementFinished(1)
	}
}

func buildSimulation() *simulation.Simulation {
	builder := simulation.MakeBuilder()

	if !monitorOn {
		builder = builder.WithoutMonitoring()
	} else if port := resolveMonitorPort(); port > 0 {
		builder = builder.WithMonitorPort(port)
	}

	if !tracingOn {
		builder = builder.WithoutTracing()
	} else if outputName != "" {
		builder = builder.WithOutputFileName(outputName)
	}

	s := builder.Build()

	if monitorOn && openBrowser {
		s.GetMonitor().OpenBrowser()
	}

	return s
}

func resolveMonitorPort() int {
	if monitorPort > 0 {
		return monitorPort
	}

	env := os.Getenv("TARMAC_MONITOR_PORT")
	if env == "" {
		return 0
	}

	port, err := strconv.Atoi(env)
	if err != nil {
		logrus.Warnf("Ignoring invalid TARMAC_MONITOR_PORT %q", env)
		return 0
	}

	return port
}

func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "scenario.yaml",
		"Path to the scenario YAML file")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info",
		"Log verbosity level")
	runCmd.Flags().Int64Var(&horizon, "horizon", 0,
		"Stop the run once the clock reaches this time, 0 for no limit")
	runCmd.Flags().BoolVar(&monitorOn, "monitor", false,
		"Serve the monitoring API during the run")
	runCmd.Flags().IntVar(&monitorPort, "monitor-port", 0,
		"Port for the monitoring API, 0 picks a random port")
	runCmd.Flags().BoolVar(&openBrowser, "open-browser", false,
		"Open the monitoring URL in the default browser")
	runCmd.Flags().BoolVar(&tracingOn, "trace", false,
		"Record a (timestamp, state) trace database")
	runCmd.Flags().StringVar(&outputName, "output", "",
		"Base name for the trace database")
	runCmd.Flags().StringVar(&traceCSVPath, "trace-csv", "",
		"Base name for an additional CSV trace file")

	rootCmd.AddCommand(runCmd)
}
