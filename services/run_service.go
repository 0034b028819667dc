package services

import (
	"fmt"
	"gitlab.com/aoterocom/AOBankroll/helpers"
	"gitlab.com/aoterocom/AOBankroll/interfaces"
	"gitlab.com/aoterocom/AOBankroll/models"
	"gitlab.com/aoterocom/AOBankroll/models/analytics"
)

// RunService is what every front end calls: simulate, summarize and optionally record
type RunService struct {
	simulator interfaces.PathSimulator
	analysis  AnalysisService
	recorder  interfaces.RunRecorder
}

func NewRunService(simulator interfaces.PathSimulator, analysis AnalysisService,
	recorder interfaces.RunRecorder) *RunService {
	return &RunService{
		simulator: simulator,
		analysis:  analysis,
		recorder:  recorder,
	}
}

func (rs *RunService) Run(config models.SimulationConfig) (models.SimulationResult, analytics.RunSummary, error) {
	result, err := rs.simulator.Simulate(config)
	if err != nil {
		helpers.Logger.Warnln("simulation rejected: " + err.Error())
		return models.SimulationResult{}, analytics.RunSummary{}, err
	}
	return rs.finish(result)
}

func (rs *RunService) RunWithSeed(config models.SimulationConfig, seed int64) (models.SimulationResult, analytics.RunSummary, error) {
	result, err := rs.simulator.SimulateWithSeed(config, seed)
	if err != nil {
		helpers.Logger.Warnln("simulation rejected: " + err.Error())
		return models.SimulationResult{}, analytics.RunSummary{}, err
	}
	return rs.finish(result)
}

func (rs *RunService) finish(result models.SimulationResult) (models.SimulationResult, analytics.RunSummary, error) {
	summary := rs.analysis.Summarize(result)

	helpers.Logger.Infoln(fmt.Sprintf("Run %s: %d/%d paths bankrupt after %d hands, mean final bankroll %.2f",
		result.RunID, summary.BankruptCount, summary.Paths, summary.Hands, summary.FinalMean))

	if rs.recorder != nil {
		id, err := rs.recorder.RecordRun(result, summary)
		if err != nil {
			helpers.Logger.Errorln("recording run " + result.RunID + ": " + err.Error())
		} else {
			helpers.Logger.Debugln("run", result.RunID, "recorded with id", id)
		}
	}

	return result, summary, nil
}
