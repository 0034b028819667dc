package services

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AOBankroll/models"
	"gitlab.com/aoterocom/AOBankroll/models/analytics"
	"testing"
)

type recorderMock struct {
	results   []models.SimulationResult
	summaries []analytics.RunSummary
	err       error
}

func (rm *recorderMock) RecordRun(result models.SimulationResult, summary analytics.RunSummary) (uint, error) {
	if rm.err != nil {
		return 0, rm.err
	}
	rm.results = append(rm.results, result)
	rm.summaries = append(rm.summaries, summary)
	return uint(len(rm.results)), nil
}

func TestRunServiceRecordsRuns(t *testing.T) {
	recorder := &recorderMock{}
	runService := NewRunService(NewSimulatorService(8, 1, models.DefaultStdDevMultiplier), NewAnalysisService(10), recorder)

	result, summary, err := runService.Run(models.NewSimulationConfig(150, 15, -0.005, 50, 4))
	require.NoError(t, err)

	assert.Equal(t, result.RunID, summary.RunID)
	assert.Equal(t, 4, summary.Paths)
	require.Len(t, recorder.results, 1)
	assert.Equal(t, result.RunID, recorder.results[0].RunID)
}

func TestRunServiceRejectsWithoutRecording(t *testing.T) {
	recorder := &recorderMock{}
	runService := NewRunService(NewSimulatorService(8, 1, models.DefaultStdDevMultiplier), NewAnalysisService(10), recorder)

	_, _, err := runService.Run(models.NewSimulationConfig(150, 15, -0.005, 0, 4))
	assert.True(t, errors.Is(err, models.ErrInvalidConfiguration))
	assert.Empty(t, recorder.results)
}

func TestRunServiceSurvivesRecorderFailure(t *testing.T) {
	recorder := &recorderMock{err: errors.New("database is gone")}
	runService := NewRunService(NewSimulatorService(8, 1, models.DefaultStdDevMultiplier), NewAnalysisService(10), recorder)

	result, _, err := runService.RunWithSeed(models.NewSimulationConfig(150, 15, -0.005, 10, 2), 77)
	require.NoError(t, err)
	assert.Equal(t, int64(77), result.Seed)
}

func TestRunServiceWithoutRecorder(t *testing.T) {
	runService := NewRunService(NewSimulatorService(8, 1, models.DefaultStdDevMultiplier), NewAnalysisService(10), nil)
	_, summary, err := runService.Run(models.NewSimulationConfig(150, 15, -0.005, 10, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Paths)
}
