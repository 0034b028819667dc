package services

import (
	"github.com/google/uuid"
	"gitlab.com/aoterocom/AOBankroll/helpers"
	"gitlab.com/aoterocom/AOBankroll/models"
	"math"
	"math/rand"
	"sync"
	"time"
)

// SimulatorService generates bankroll trajectories as a normal random walk with an absorbing zero
type SimulatorService struct {
	mu               sync.Mutex
	rng              *rand.Rand
	workers          int
	stdDevMultiplier float64
	limits           models.Limits
}

// NewSimulatorService seeds the run-seed generator. A zero seed is replaced by the clock.
func NewSimulatorService(seed int64, workers int, stdDevMultiplier float64) *SimulatorService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if !(stdDevMultiplier > 0) || math.IsInf(stdDevMultiplier, 0) {
		stdDevMultiplier = models.DefaultStdDevMultiplier
	}
	return &SimulatorService{
		rng:              rand.New(rand.NewSource(seed)),
		workers:          workers,
		stdDevMultiplier: stdDevMultiplier,
		limits:           models.DefaultLimits(),
	}
}

// SetLimits replaces the per-run size bounds checked before any path is generated
func (ss *SimulatorService) SetLimits(limits models.Limits) {
	ss.limits = limits
}

func (ss *SimulatorService) Limits() models.Limits {
	return ss.limits
}

// Simulate draws a fresh run seed and generates config.NumPaths trajectories
func (ss *SimulatorService) Simulate(config models.SimulationConfig) (models.SimulationResult, error) {
	if err := config.ValidateWithin(ss.limits); err != nil {
		return models.SimulationResult{}, err
	}
	ss.mu.Lock()
	seed := ss.rng.Int63()
	ss.mu.Unlock()
	return ss.SimulateWithSeed(config, seed)
}

// SimulateWithSeed is reproducible: the same config, seed and worker mode always give the same paths
func (ss *SimulatorService) SimulateWithSeed(config models.SimulationConfig, seed int64) (models.SimulationResult, error) {
	if err := config.ValidateWithin(ss.limits); err != nil {
		return models.SimulationResult{}, err
	}

	stdDev := config.EffectiveStdDev(ss.stdDevMultiplier)
	result := models.NewSimulationResult(uuid.NewString(), seed, config, stdDev)
	rng := rand.New(rand.NewSource(seed))

	start := time.Now()
	if ss.workers <= 1 {
		for i := range result.Trajectories {
			result.Trajectories[i] = GenerateTrajectory(config, stdDev, rng)
		}
	} else {
		ss.generateConcurrently(config, stdDev, rng, result.Trajectories)
	}

	helpers.Logger.Debugln(
		"simulated", config.NumPaths, "paths of", config.NumHands, "hands in", time.Since(start),
		"(run", result.RunID+")")

	return result, nil
}

// generateConcurrently derives one sub-seed per path in path order, so the output
// does not depend on the number of workers or on scheduling.
func (ss *SimulatorService) generateConcurrently(config models.SimulationConfig, stdDev float64,
	rng *rand.Rand, trajectories []models.Trajectory) {

	seeds := make([]int64, len(trajectories))
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < ss.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				pathRng := rand.New(rand.NewSource(seeds[i]))
				trajectories[i] = GenerateTrajectory(config, stdDev, pathRng)
			}
		}()
	}

	for i := range trajectories {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// GenerateTrajectory walks one bankroll over config.NumHands hands using rng.
// The clamp to zero is applied after each step and zero is absorbing.
func GenerateTrajectory(config models.SimulationConfig, stdDev float64, rng *rand.Rand) models.Trajectory {
	mean := config.Drift()
	trajectory := make(models.Trajectory, 1, config.NumHands+1)
	trajectory[0] = config.InitialBankroll

	for hand := 0; hand < config.NumHands; hand++ {
		current := trajectory[len(trajectory)-1]
		if current <= 0 {
			trajectory = append(trajectory, 0)
			continue
		}
		outcome := rng.NormFloat64()*stdDev + mean
		trajectory = append(trajectory, math.Max(0, current+outcome))
	}

	return trajectory
}
