package models

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned by the simulator before any trajectory is generated
var ErrInvalidConfiguration = errors.New("invalid configuration")

// DefaultStdDevMultiplier scales the bet size into a per-hand standard deviation when none is set
const DefaultStdDevMultiplier = 1.14

// Limits bounds the work and memory of one run. MaxSteps caps NumHands x NumPaths.
type Limits struct {
	MaxHands int
	MaxPaths int
	MaxSteps int
}

func DefaultLimits() Limits {
	return Limits{
		MaxHands: 100000,
		MaxPaths: 1000,
		MaxSteps: 10000000,
	}
}

// SimulationConfig holds the parameters of one simulation run
type SimulationConfig struct {
	InitialBankroll float64  `json:"initialBankroll"`
	BetSize         float64  `json:"betSize"`
	HouseEdge       float64  `json:"houseEdge"`
	StdDevPerHand   *float64 `json:"stdDevPerHand,omitempty"`
	NumHands        int      `json:"numHands"`
	NumPaths        int      `json:"numPaths"`
}

func NewSimulationConfig(initialBankroll float64, betSize float64, houseEdge float64,
	numHands int, numPaths int) SimulationConfig {
	return SimulationConfig{
		InitialBankroll: initialBankroll,
		BetSize:         betSize,
		HouseEdge:       houseEdge,
		NumHands:        numHands,
		NumPaths:        numPaths,
	}
}

// WithStdDev returns a copy of the config with an explicit per-hand standard deviation
func (sc SimulationConfig) WithStdDev(stdDev float64) SimulationConfig {
	sc.StdDevPerHand = &stdDev
	return sc
}

func (sc SimulationConfig) Validate() error {
	return sc.ValidateWithin(DefaultLimits())
}

func (sc SimulationConfig) ValidateWithin(limits Limits) error {
	if sc.NumHands < 1 {
		return fmt.Errorf("%w: numHands must be at least 1, got %d", ErrInvalidConfiguration, sc.NumHands)
	}
	if sc.NumPaths < 1 {
		return fmt.Errorf("%w: numPaths must be at least 1, got %d", ErrInvalidConfiguration, sc.NumPaths)
	}
	if sc.NumHands > limits.MaxHands {
		return fmt.Errorf("%w: numHands must be at most %d, got %d", ErrInvalidConfiguration, limits.MaxHands, sc.NumHands)
	}
	if sc.NumPaths > limits.MaxPaths {
		return fmt.Errorf("%w: numPaths must be at most %d, got %d", ErrInvalidConfiguration, limits.MaxPaths, sc.NumPaths)
	}
	// both factors are bounded above, so the product cannot overflow
	if sc.NumHands*sc.NumPaths > limits.MaxSteps {
		return fmt.Errorf("%w: numHands x numPaths must be at most %d, got %d", ErrInvalidConfiguration,
			limits.MaxSteps, sc.NumHands*sc.NumPaths)
	}
	if sc.StdDevPerHand != nil && !(*sc.StdDevPerHand > 0) {
		return fmt.Errorf("%w: stdDevPerHand must be positive, got %g", ErrInvalidConfiguration, *sc.StdDevPerHand)
	}
	return nil
}

// EffectiveStdDev resolves the per-hand standard deviation, falling back to multiplier x betSize
func (sc SimulationConfig) EffectiveStdDev(multiplier float64) float64 {
	if sc.StdDevPerHand != nil {
		return *sc.StdDevPerHand
	}
	return multiplier * sc.BetSize
}

// Drift is the expected bankroll change per hand
func (sc SimulationConfig) Drift() float64 {
	return sc.HouseEdge * sc.BetSize
}
