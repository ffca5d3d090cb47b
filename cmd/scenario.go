package cmd

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tarmaclab/tarmac/sim"
)

// A Scenario describes one airport run: the two model constants and the
// arrival schedule.
type Scenario struct {
	RunwayOccupancy int64   `yaml:"runway_occupancy"`
	GroundDwell     int64   `yaml:"ground_dwell"`
	Arrivals        []int64 `yaml:"arrivals"`
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario: %w", err)
	}

	if err := s.validate(); err != nil {
		return Scenario{}, err
	}

	return s, nil
}

func (s Scenario) validate() error {
	if s.RunwayOccupancy <= 0 {
		return errors.New("scenario: runway_occupancy must be positive")
	}

	if s.GroundDwell <= 0 {
		return errors.New("scenario: ground_dwell must be positive")
	}

	for _, t := range s.Arrivals {
		if t < 0 {
			return fmt.Errorf("scenario: arrival time %d is negative", t)
		}
	}

	return nil
}

// ArrivalTimes converts the arrival schedule to simulation times.
func (s Scenario) ArrivalTimes() []sim.VTime {
	times := make([]sim.VTime, 0, len(s.Arrivals))
	for _, t := range s.Arrivals {
		times = append(times, sim.VTime(t))
	}
	return times
}
