package app

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testEnv(t *testing.T) string {
	dir := t.TempDir()
	t.Setenv("logFile", filepath.Join(dir, "bankroll.log"))
	t.Setenv("databasePath", filepath.Join(dir, "bankroll.db"))
	t.Setenv("databaseDriver", "sqlite")
	return dir
}

func TestSimulateCommand(t *testing.T) {
	dir := testEnv(t)
	svgPath := filepath.Join(dir, "chart.svg")
	csvPath := filepath.Join(dir, "paths.csv")

	var out bytes.Buffer
	cliApp := NewApp()
	cliApp.Writer = &out
	err := cliApp.Run([]string{"bankroll", "--seed", "5", "simulate",
		"--hands", "30", "--paths", "4", "--edge", "-1", "--svg", svgPath, "--csv", csvPath})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Monte Carlo Simulation of Blackjack Bankrolls (30 Hands)")
	assert.Contains(t, out.String(), "Bankrupt:")

	svg, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(svg), "class='path'"))

	csvContent, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 32, strings.Count(string(csvContent), "\n"))
}

func TestSimulateCommandRejectsInvalidInput(t *testing.T) {
	testEnv(t)
	cliApp := NewApp()
	cliApp.Writer = &bytes.Buffer{}
	err := cliApp.Run([]string{"bankroll", "simulate", "--hands", "0"})
	assert.Error(t, err)
}

func TestHistoryCommand(t *testing.T) {
	testEnv(t)

	cliApp := NewApp()
	cliApp.Writer = &bytes.Buffer{}
	require.NoError(t, cliApp.Run([]string{"bankroll", "--record", "simulate", "--hands", "10", "--paths", "2"}))

	var out bytes.Buffer
	cliApp = NewApp()
	cliApp.Writer = &out
	require.NoError(t, cliApp.Run([]string{"bankroll", "--record", "history"}))
	assert.Contains(t, out.String(), "10 hands x 2 paths")

	cliApp = NewApp()
	cliApp.Writer = &bytes.Buffer{}
	assert.Error(t, cliApp.Run([]string{"bankroll", "history"}))
}
