package interfaces

import (
	"gitlab.com/aoterocom/AOBankroll/models"
	"gitlab.com/aoterocom/AOBankroll/models/analytics"
)

type (
	PathSimulator interface {
		Simulate(config models.SimulationConfig) (models.SimulationResult, error)
		SimulateWithSeed(config models.SimulationConfig, seed int64) (models.SimulationResult, error)
	}

	// RunRecorder persists finished runs. A nil RunRecorder disables recording.
	RunRecorder interface {
		RecordRun(result models.SimulationResult, summary analytics.RunSummary) (uint, error)
	}
)
