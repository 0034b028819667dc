package services

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AOBankroll/helpers"
	"gitlab.com/aoterocom/AOBankroll/models"
	"math"
	"math/rand"
	"testing"
)

func defaultConfig() models.SimulationConfig {
	return models.NewSimulationConfig(150, 15, -0.005, 400, 20)
}

func assertTrajectoryInvariants(t *testing.T, config models.SimulationConfig, result models.SimulationResult) {
	require.Len(t, result.Trajectories, config.NumPaths)
	for p, trajectory := range result.Trajectories {
		require.Len(t, trajectory, config.NumHands+1, "path %d", p)
		assert.Equal(t, config.InitialBankroll, trajectory[0], "path %d", p)
		assert.True(t, helpers.AllValuesNonNegative(trajectory), "path %d", p)
		bankrupt := false
		for i, value := range trajectory {
			if bankrupt {
				assert.Equal(t, 0.0, value, "path %d hand %d after bankruptcy", p, i)
			}
			if value == 0 {
				bankrupt = true
			}
		}
	}
}

func TestSimulateShapeAndInvariants(t *testing.T) {
	simulator := NewSimulatorService(7, 1, models.DefaultStdDevMultiplier)
	config := defaultConfig()

	result, err := simulator.Simulate(config)
	require.NoError(t, err)

	assertTrajectoryInvariants(t, config, result)
	assert.NotEmpty(t, result.RunID)
	assert.InDelta(t, 17.1, result.StdDevPerHand, 1e-9)
}

func TestSimulateAbsorbsRuinedPaths(t *testing.T) {
	// a tiny bankroll against a huge variance goes broke almost immediately
	config := models.NewSimulationConfig(1, 100, -0.5, 200, 50)
	result, err := NewSimulatorService(3, 1, models.DefaultStdDevMultiplier).Simulate(config)
	require.NoError(t, err)

	assertTrajectoryInvariants(t, config, result)
	bankrupt := 0
	for _, trajectory := range result.Trajectories {
		if trajectory.IsBankrupt() {
			bankrupt++
		}
	}
	assert.Greater(t, bankrupt, 0)
}

func TestSimulateIsDeterministicForSeed(t *testing.T) {
	config := defaultConfig()

	first, err := NewSimulatorService(99, 1, models.DefaultStdDevMultiplier).Simulate(config)
	require.NoError(t, err)
	second, err := NewSimulatorService(99, 1, models.DefaultStdDevMultiplier).Simulate(config)
	require.NoError(t, err)
	assert.Equal(t, first.Trajectories, second.Trajectories)
	assert.Equal(t, first.Seed, second.Seed)

	replay, err := NewSimulatorService(1, 1, models.DefaultStdDevMultiplier).SimulateWithSeed(config, first.Seed)
	require.NoError(t, err)
	assert.Equal(t, first.Trajectories, replay.Trajectories)
}

func TestSequentialOrderIsTrajectoryMajor(t *testing.T) {
	config := models.NewSimulationConfig(1000, 10, 0, 5, 3)
	result, err := NewSimulatorService(1, 1, models.DefaultStdDevMultiplier).SimulateWithSeed(config, 1234)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1234))
	for p := 0; p < config.NumPaths; p++ {
		expected := GenerateTrajectory(config, config.EffectiveStdDev(models.DefaultStdDevMultiplier), rng)
		assert.Equal(t, expected, result.Trajectories[p], "path %d", p)
	}
}

func TestParallelIsIndependentOfWorkerCount(t *testing.T) {
	config := defaultConfig()

	two, err := NewSimulatorService(1, 2, models.DefaultStdDevMultiplier).SimulateWithSeed(config, 555)
	require.NoError(t, err)
	eight, err := NewSimulatorService(1, 8, models.DefaultStdDevMultiplier).SimulateWithSeed(config, 555)
	require.NoError(t, err)

	assertTrajectoryInvariants(t, config, two)
	assert.Equal(t, two.Trajectories, eight.Trajectories)
}

func TestSimulateRejectsInvalidConfiguration(t *testing.T) {
	simulator := NewSimulatorService(1, 1, models.DefaultStdDevMultiplier)

	for _, config := range []models.SimulationConfig{
		models.NewSimulationConfig(150, 15, -0.005, 0, 20),
		models.NewSimulationConfig(150, 15, -0.005, 400, 0),
		defaultConfig().WithStdDev(-2),
	} {
		result, err := simulator.Simulate(config)
		assert.True(t, errors.Is(err, models.ErrInvalidConfiguration))
		assert.Empty(t, result.Trajectories)
	}
}

func TestSingleHandWithoutDriftOrVariance(t *testing.T) {
	config := models.NewSimulationConfig(150, 15, 0, 1, 1).WithStdDev(1e-12)
	result, err := NewSimulatorService(5, 1, models.DefaultStdDevMultiplier).Simulate(config)
	require.NoError(t, err)

	require.Len(t, result.Trajectories[0], 2)
	assert.Equal(t, 150.0, result.Trajectories[0][0])
	assert.InDelta(t, 150.0, result.Trajectories[0][1], 1e-9)
}

func TestNearDeterministicDrift(t *testing.T) {
	config := models.NewSimulationConfig(100, 10, -0.005, 3, 1).WithStdDev(0.001)
	result, err := NewSimulatorService(11, 1, models.DefaultStdDevMultiplier).Simulate(config)
	require.NoError(t, err)

	expected := []float64{100, 99.95, 99.90, 99.85}
	for i, value := range result.Trajectories[0] {
		assert.InDelta(t, expected[i], value, 0.01, "hand %d", i)
	}
}

func TestZeroBankrollStaysZero(t *testing.T) {
	config := models.NewSimulationConfig(0, 15, 0.5, 10, 2)
	result, err := NewSimulatorService(5, 1, models.DefaultStdDevMultiplier).Simulate(config)
	require.NoError(t, err)
	for _, trajectory := range result.Trajectories {
		assert.Equal(t, make(models.Trajectory, 11), trajectory)
	}
}

func TestSimulateRejectsOversizedRuns(t *testing.T) {
	simulator := NewSimulatorService(1, 1, models.DefaultStdDevMultiplier)
	simulator.SetLimits(models.Limits{MaxHands: 100, MaxPaths: 10, MaxSteps: 500})

	for _, config := range []models.SimulationConfig{
		models.NewSimulationConfig(150, 15, -0.005, math.MaxInt, 1),
		models.NewSimulationConfig(150, 15, -0.005, 1, math.MaxInt),
		models.NewSimulationConfig(150, 15, -0.005, 101, 1),
		models.NewSimulationConfig(150, 15, -0.005, 100, 6),
	} {
		result, err := simulator.Simulate(config)
		assert.True(t, errors.Is(err, models.ErrInvalidConfiguration), "%d x %d", config.NumHands, config.NumPaths)
		assert.Empty(t, result.Trajectories)

		_, err = simulator.SimulateWithSeed(config, 3)
		assert.True(t, errors.Is(err, models.ErrInvalidConfiguration))
	}

	result, err := simulator.Simulate(models.NewSimulationConfig(150, 15, -0.005, 100, 5))
	require.NoError(t, err)
	assert.Len(t, result.Trajectories, 5)
}

func TestDefaultLimitsApply(t *testing.T) {
	simulator := NewSimulatorService(1, 1, models.DefaultStdDevMultiplier)
	assert.Equal(t, models.DefaultLimits(), simulator.Limits())

	_, err := simulator.Simulate(models.NewSimulationConfig(150, 15, -0.005, math.MaxInt, 20))
	assert.True(t, errors.Is(err, models.ErrInvalidConfiguration))
}

func TestUnusableMultiplierFallsBackToDefault(t *testing.T) {
	config := models.NewSimulationConfig(150, 15, -0.005, 50, 3)
	for _, multiplier := range []float64{math.NaN(), math.Inf(1), -1, 0} {
		result, err := NewSimulatorService(4, 1, multiplier).Simulate(config)
		require.NoError(t, err)
		assert.InDelta(t, 17.1, result.StdDevPerHand, 1e-9)
		assertTrajectoryInvariants(t, config, result)
	}
}
