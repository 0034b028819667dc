package ui

import (
	"fmt"
	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"gitlab.com/aoterocom/AOBankroll/helpers"
	"gitlab.com/aoterocom/AOBankroll/models"
	"gitlab.com/aoterocom/AOBankroll/models/analytics"
	"gitlab.com/aoterocom/AOBankroll/render"
	"gitlab.com/aoterocom/AOBankroll/services"
)

const formWidth = 42

var lineColors = []termui.Color{
	termui.ColorBlue, termui.ColorYellow, termui.ColorGreen, termui.ColorMagenta,
	termui.ColorCyan, termui.ColorWhite,
}

type UserInterface struct {
	runService *services.RunService
	form       *Form
	limits     models.Limits
	status     string
	result     *models.SimulationResult
	summary    *analytics.RunSummary
}

func NewUserInterface(runService *services.RunService, defaults models.SimulationForm,
	limits models.Limits) *UserInterface {
	return &UserInterface{
		runService: runService,
		form:       NewForm(defaults),
		limits:     limits,
		status:     "Enter runs the simulation, Tab moves, q quits",
	}
}

func (ui *UserInterface) Run() error {
	if err := termui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	defer termui.Close()

	ui.UpdateUI()
	uiEvents := termui.PollEvents()
	for e := range uiEvents {
		if e.Type == termui.ResizeEvent {
			termui.Clear()
			ui.UpdateUI()
			continue
		}
		if e.Type != termui.KeyboardEvent {
			continue
		}
		switch ui.form.HandleKey(e.ID) {
		case ActionQuit:
			helpers.Logger.Infoln("Exited by keyboard interrupt")
			return nil
		case ActionSubmit:
			ui.simulate()
		}
		ui.UpdateUI()
	}
	return nil
}

// simulate leaves the previous chart untouched when the form is rejected
func (ui *UserInterface) simulate() {
	config, err := ui.form.Values().ToConfigWithin(ui.limits)
	if err != nil {
		ui.status = "[" + err.Error() + "](fg:red)"
		return
	}
	result, summary, err := ui.runService.Run(config)
	if err != nil {
		ui.status = "[" + err.Error() + "](fg:red)"
		return
	}
	ui.result = &result
	ui.summary = &summary
	ui.status = "Run " + result.RunID
}

func (ui *UserInterface) UpdateUI() {
	width, height := termui.TerminalDimensions()

	formParagraph := widgets.NewParagraph()
	formParagraph.Title = "Blackjack Monte Carlo Simulator"
	formParagraph.BorderStyle.Fg = termui.ColorYellow
	formParagraph.TitleStyle.Fg = termui.ColorYellow
	for i, field := range ui.form.Fields() {
		line := fmt.Sprintf("%-22s %s", field.Label, field.Value())
		if i == ui.form.Focus() {
			line = "[" + line + "_](fg:black,bg:yellow)"
		}
		formParagraph.Text += line + "\n"
	}
	formParagraph.Text += "\n[ Run Simulation: <Enter> ]"
	formParagraph.SetRect(0, 0, formWidth, 11)

	summaryParagraph := widgets.NewParagraph()
	summaryParagraph.Title = "Summary"
	if ui.summary != nil {
		summaryParagraph.Text = fmt.Sprintf("Bankrupt: %d/%d (%s)\n", ui.summary.BankruptCount, ui.summary.Paths,
			render.Percent(ui.summary.RuinProbability))
		summaryParagraph.Text += fmt.Sprintf("Mean final: %s\n", render.Money(ui.summary.FinalMean))
		summaryParagraph.Text += fmt.Sprintf("Median final: %s\n", render.Money(ui.summary.FinalMedian))
		summaryParagraph.Text += fmt.Sprintf("Std dev final: %s\n", render.Money(ui.summary.FinalStdDev))
		summaryParagraph.Text += fmt.Sprintf("Min/Max: %s / %s\n", render.Money(ui.summary.FinalMin),
			render.Money(ui.summary.FinalMax))
	}
	summaryParagraph.SetRect(0, 11, formWidth, height-3)

	statusParagraph := widgets.NewParagraph()
	statusParagraph.Text = ui.status
	statusParagraph.Border = false
	statusParagraph.SetRect(0, height-3, width, height)

	drawables := []termui.Drawable{formParagraph, summaryParagraph, statusParagraph}
	if ui.result != nil && width > formWidth+10 {
		drawables = append(drawables, ui.plot(width, height-3))
	}

	termui.Render(drawables...)
}

func (ui *UserInterface) plot(width int, height int) *widgets.Plot {
	plot := widgets.NewPlot()
	plot.Title = render.Title(ui.result.Config.NumHands)
	plot.Marker = widgets.MarkerBraille
	plot.AxesColor = termui.ColorWhite
	plot.SetRect(formWidth, 0, width, height)

	// braille gives two points per cell; leave room for the y axis labels
	points := (width - formWidth - 10) * 2
	for _, trajectory := range ui.result.Trajectories {
		plot.Data = append(plot.Data, downsample(trajectory, points))
	}
	plot.LineColors = make([]termui.Color, 0, len(plot.Data)+1)
	for i := range plot.Data {
		plot.LineColors = append(plot.LineColors, lineColors[i%len(lineColors)])
	}

	bankrupt := make([]float64, len(plot.Data[0]))
	plot.Data = append(plot.Data, bankrupt)
	plot.LineColors = append(plot.LineColors, termui.ColorRed)
	plot.MaxVal = ui.result.MaxValue() * 1.05

	return plot
}
