package app

import (
	"fmt"
	"github.com/urfave/cli/v2"
	"gitlab.com/aoterocom/AOBankroll/helpers"
	"gitlab.com/aoterocom/AOBankroll/interfaces"
	"gitlab.com/aoterocom/AOBankroll/models"
	"gitlab.com/aoterocom/AOBankroll/models/analytics"
	"gitlab.com/aoterocom/AOBankroll/render"
	"gitlab.com/aoterocom/AOBankroll/ui"
	"gitlab.com/aoterocom/AOBankroll/web"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func simulateCommand() *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "run one simulation and print its summary",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bankroll", Usage: "initial bankroll ($)"},
			&cli.StringFlag{Name: "bet", Usage: "bet size ($)"},
			&cli.StringFlag{Name: "edge", Usage: "house edge (%), negative favors the house"},
			&cli.StringFlag{Name: "stddev", Usage: "standard deviation per hand ($), defaults to multiplier x bet"},
			&cli.StringFlag{Name: "hands", Usage: "number of hands"},
			&cli.StringFlag{Name: "paths", Usage: "number of paths"},
			&cli.StringFlag{Name: "svg", Usage: "write the chart to this SVG file"},
			&cli.StringFlag{Name: "csv", Usage: "write the trajectories to this CSV file"},
		},
		Action: func(c *cli.Context) error {
			st, err := Setup(c)
			if err != nil {
				return err
			}
			defer st.Close()

			form := st.DefaultForm()
			overrideField(c, "bankroll", &form.InitialBankroll)
			overrideField(c, "bet", &form.BetSize)
			overrideField(c, "edge", &form.HouseEdgePct)
			overrideField(c, "stddev", &form.StdDevPerHand)
			overrideField(c, "hands", &form.NumHands)
			overrideField(c, "paths", &form.NumPaths)

			config, err := form.ToConfigWithin(st.Config.Limits())
			if err != nil {
				return err
			}
			result, summary, err := st.RunService.Run(config)
			if err != nil {
				return err
			}

			if path := c.String("svg"); path != "" {
				if err := writeFile(path, render.NewSVGRenderer(), result); err != nil {
					return err
				}
			}
			if path := c.String("csv"); path != "" {
				if err := writeFile(path, render.CSVRenderer{}, result); err != nil {
					return err
				}
			}

			printSummary(c.App.Writer, result, summary)
			return nil
		},
	}
}

func uiCommand() *cli.Command {
	return &cli.Command{
		Name:  "ui",
		Usage: "interactive terminal form and chart",
		Action: func(c *cli.Context) error {
			st, err := Setup(c)
			if err != nil {
				return err
			}
			defer st.Close()

			return ui.NewUserInterface(st.RunService, st.DefaultForm(), st.Config.Limits()).Run()
		},
	}
}

func webCommand() *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "serve the browser form",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "listen", Usage: "listen address, e.g. :8080"},
		},
		Action: func(c *cli.Context) error {
			st, err := Setup(c)
			if err != nil {
				return err
			}
			defer st.Close()

			listen := st.Config.WebListen
			if c.IsSet("listen") {
				listen = c.String("listen")
			}
			server := web.NewServer(st.RunService, st.DBService, st.DefaultForm(), st.Config.Limits(), listen,
				st.Config.WebReadTimeout, st.Config.WebWriteTimeout)

			go func() {
				quit := make(chan os.Signal, 1)
				signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
				<-quit
				helpers.Logger.Infoln("Web simulator shutting down")
				server.Shutdown()
			}()

			return server.Start()
		},
	}
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "list recorded runs",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Value: 20},
		},
		Action: func(c *cli.Context) error {
			st, err := Setup(c)
			if err != nil {
				return err
			}
			defer st.Close()

			if st.DBService == nil {
				return fmt.Errorf("history requires enableDatabaseRecording=true or --record")
			}
			runs, err := st.DBService.RecentRuns(c.Int("limit"))
			if err != nil {
				return err
			}
			for _, run := range runs {
				fmt.Fprintf(c.App.Writer, "%s  %s  bankroll %s bet %s edge %s  %d hands x %d paths  bankrupt %d  mean final %s\n",
					run.CreatedAt.Format("2006-01-02 15:04:05"), run.UUID,
					render.Money(run.InitialBankroll), render.Money(run.BetSize), render.Percent(run.HouseEdge),
					run.NumHands, run.NumPaths, run.BankruptCount, render.Money(run.FinalMean))
			}
			return nil
		},
	}
}

func overrideField(c *cli.Context, flag string, field *string) {
	if c.IsSet(flag) {
		*field = c.String(flag)
	}
}

func writeFile(path string, renderer interfaces.Renderer, result models.SimulationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := renderer.Render(f, result); err != nil {
		f.Close()
		return err
	}
	helpers.Logger.Infoln("Wrote " + path)
	return f.Close()
}

func printSummary(w io.Writer, result models.SimulationResult, summary analytics.RunSummary) {
	fmt.Fprintln(w, render.Title(result.Config.NumHands))
	fmt.Fprintf(w, "Run:              %s (seed %d)\n", result.RunID, result.Seed)
	fmt.Fprintf(w, "Std dev per hand: %s\n", render.Money(result.StdDevPerHand))
	fmt.Fprintf(w, "Bankrupt:         %d/%d (%s)\n", summary.BankruptCount, summary.Paths,
		render.Percent(summary.RuinProbability))
	fmt.Fprintf(w, "Final mean:       %s\n", render.Money(summary.FinalMean))
	fmt.Fprintf(w, "Final median:     %s\n", render.Money(summary.FinalMedian))
	fmt.Fprintf(w, "Final std dev:    %s\n", render.Money(summary.FinalStdDev))
	fmt.Fprintf(w, "Final min/max:    %s / %s\n", render.Money(summary.FinalMin), render.Money(summary.FinalMax))
}
