package models

// SimulationResult is the set of trajectories produced by one run
type SimulationResult struct {
	RunID         string           `json:"runId"`
	Seed          int64            `json:"seed"`
	Config        SimulationConfig `json:"config"`
	StdDevPerHand float64          `json:"effectiveStdDev"`
	Trajectories  []Trajectory     `json:"trajectories"`
}

func NewSimulationResult(runID string, seed int64, config SimulationConfig, stdDev float64) SimulationResult {
	return SimulationResult{
		RunID:         runID,
		Seed:          seed,
		Config:        config,
		StdDevPerHand: stdDev,
		Trajectories:  make([]Trajectory, config.NumPaths),
	}
}

// MaxValue returns the highest bankroll reached by any trajectory
func (sr *SimulationResult) MaxValue() float64 {
	max := 0.0
	for _, trajectory := range sr.Trajectories {
		if m := trajectory.Max(); m > max {
			max = m
		}
	}
	return max
}
