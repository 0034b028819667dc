package database

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AOBankroll/helpers"
	"gitlab.com/aoterocom/AOBankroll/models"
	"gitlab.com/aoterocom/AOBankroll/models/analytics"
	"path/filepath"
	"testing"
)

func newTestDBService(t *testing.T) *DBService {
	dbs, err := NewDBServiceFromConfig(&helpers.Config{
		DatabaseDriver: "sqlite",
		DatabasePath:   filepath.Join(t.TempDir(), "runs.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { dbs.Close() })
	return dbs
}

func sampleRun(runID string) (models.SimulationResult, analytics.RunSummary) {
	config := models.NewSimulationConfig(100, 10, -0.005, 3, 2)
	result := models.NewSimulationResult(runID, 42, config, 11.4)
	result.Trajectories = []models.Trajectory{
		{100, 110, 95, 120},
		{100, 40, 0, 0},
	}
	summary := analytics.RunSummary{
		RunID:           runID,
		Paths:           2,
		Hands:           3,
		BankruptCount:   1,
		RuinProbability: 0.5,
		FinalMean:       60,
		FinalMedian:     60,
		FinalStdDev:     84.85,
	}
	return result, summary
}

func TestRecordAndLoadRun(t *testing.T) {
	dbs := newTestDBService(t)

	id, err := dbs.RecordRun(sampleRun("11111111-1111-1111-1111-111111111111"))
	require.NoError(t, err)
	assert.NotZero(t, id)

	run, err := dbs.GetRun("11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	assert.Equal(t, int64(42), run.Seed)
	assert.Equal(t, -0.005, run.HouseEdge)
	assert.Equal(t, 1, run.BankruptCount)
	require.Len(t, run.Paths, 2)
	assert.Equal(t, 120.0, run.Paths[0].FinalBankroll)
	assert.Equal(t, 120.0, run.Paths[0].MaxBankroll)
	assert.Equal(t, -1, run.Paths[0].BustHand)
	assert.Equal(t, 2, run.Paths[1].BustHand)
}

func TestRecentRunsNewestFirst(t *testing.T) {
	dbs := newTestDBService(t)

	for _, runID := range []string{"run-a", "run-b", "run-c"} {
		_, err := dbs.RecordRun(sampleRun(runID))
		require.NoError(t, err)
	}

	runs, err := dbs.RecentRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-c", runs[0].UUID)
	assert.Equal(t, "run-b", runs[1].UUID)
}

func TestDuplicateRunIsRejected(t *testing.T) {
	dbs := newTestDBService(t)

	_, err := dbs.RecordRun(sampleRun("same"))
	require.NoError(t, err)
	_, err = dbs.RecordRun(sampleRun("same"))
	assert.Error(t, err)
}

func TestUnknownRunAndDriver(t *testing.T) {
	dbs := newTestDBService(t)
	_, err := dbs.GetRun("missing")
	assert.Error(t, err)

	_, err = NewDBServiceFromConfig(&helpers.Config{DatabaseDriver: "oracle"})
	assert.Error(t, err)
}
