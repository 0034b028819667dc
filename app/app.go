package app

import (
	"fmt"
	"github.com/urfave/cli/v2"
	"gitlab.com/aoterocom/AOBankroll/database"
	"gitlab.com/aoterocom/AOBankroll/helpers"
	"gitlab.com/aoterocom/AOBankroll/interfaces"
	"gitlab.com/aoterocom/AOBankroll/models"
	"gitlab.com/aoterocom/AOBankroll/services"
	"io"
	"os"
	"strconv"
)

// Simulator wires configuration, logging, persistence and the run service for every command
type Simulator struct {
	Config     *helpers.Config
	RunService *services.RunService
	DBService  *database.DBService
	closers    []io.Closer
}

func NewApp() *cli.App {
	return &cli.App{
		Name:  "bankroll",
		Usage: "Monte Carlo simulation of blackjack bankrolls",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env", Value: "conf.env", Usage: "environment file with default settings"},
			&cli.Int64Flag{Name: "seed", Usage: "random seed, 0 seeds from the clock"},
			&cli.IntFlag{Name: "workers", Usage: "paths generated concurrently, 1 keeps the sequential order"},
			&cli.BoolFlag{Name: "record", Usage: "record runs in the history database"},
		},
		Commands: []*cli.Command{
			simulateCommand(),
			uiCommand(),
			webCommand(),
			historyCommand(),
		},
	}
}

// Setup loads the configuration and applies global flag overrides
func Setup(c *cli.Context) (*Simulator, error) {
	config, err := helpers.LoadConfig(c.String("env"), c.IsSet("env"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("seed") {
		config.Seed = c.Int64("seed")
	}
	if c.IsSet("workers") {
		config.Workers = c.Int("workers")
	}
	if c.IsSet("record") {
		config.EnableDatabaseRecording = c.Bool("record")
	}

	st := &Simulator{Config: config}

	logCloser, err := helpers.ConfigureLogger(config)
	if err != nil {
		return nil, err
	}
	st.closers = append(st.closers, logCloser)

	var recorder interfaces.RunRecorder
	if config.EnableDatabaseRecording {
		st.DBService, err = database.NewDBServiceFromConfig(config)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("opening history database: %w", err)
		}
		st.closers = append(st.closers, st.DBService)
		recorder = st.DBService
	}

	simulator := services.NewSimulatorService(config.Seed, config.Workers, config.StdDevMultiplier)
	simulator.SetLimits(config.Limits())
	st.RunService = services.NewRunService(simulator, services.NewAnalysisService(config.TrendWindow), recorder)

	return st, nil
}

func (st *Simulator) Close() {
	helpers.Logger.SetOutput(os.Stderr)
	for i := len(st.closers) - 1; i >= 0; i-- {
		st.closers[i].Close()
	}
}

// DefaultForm seeds the front-end form with the configured defaults
func (st *Simulator) DefaultForm() models.SimulationForm {
	return models.SimulationForm{
		InitialBankroll: strconv.FormatFloat(st.Config.InitialBankroll, 'f', -1, 64),
		BetSize:         strconv.FormatFloat(st.Config.BetSize, 'f', -1, 64),
		HouseEdgePct:    strconv.FormatFloat(st.Config.HouseEdgePct, 'f', -1, 64),
		NumHands:        strconv.Itoa(st.Config.NumHands),
		NumPaths:        strconv.Itoa(st.Config.NumPaths),
	}
}
