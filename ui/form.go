package ui

import (
	"gitlab.com/aoterocom/AOBankroll/models"
	"strings"
)

type FormAction int

const (
	ActionNone FormAction = iota
	ActionSubmit
	ActionQuit
)

const allowedInput = "0123456789.-+eE"

type FormField struct {
	Label string
	value *string
}

func (ff FormField) Value() string {
	return *ff.value
}

// Form is the editable parameter panel. It holds no termui state so it can be driven by tests.
type Form struct {
	values models.SimulationForm
	fields []FormField
	focus  int
}

func NewForm(defaults models.SimulationForm) *Form {
	f := &Form{values: defaults}
	f.fields = []FormField{
		{Label: "Initial Bankroll ($):", value: &f.values.InitialBankroll},
		{Label: "Bet Size ($):", value: &f.values.BetSize},
		{Label: "House Edge (%):", value: &f.values.HouseEdgePct},
		{Label: "Number of Hands:", value: &f.values.NumHands},
		{Label: "Number of Paths:", value: &f.values.NumPaths},
		{Label: "Std Dev per Hand ($):", value: &f.values.StdDevPerHand},
	}
	return f
}

func (f *Form) Fields() []FormField {
	return f.fields
}

func (f *Form) Focus() int {
	return f.focus
}

func (f *Form) Values() models.SimulationForm {
	return f.values
}

// HandleKey applies a termui key id to the form
func (f *Form) HandleKey(id string) FormAction {
	switch id {
	case "q", "<C-c>", "<Escape>":
		return ActionQuit
	case "<Enter>":
		return ActionSubmit
	case "<Tab>", "<Down>":
		f.focus = (f.focus + 1) % len(f.fields)
	case "<Up>":
		f.focus = (f.focus + len(f.fields) - 1) % len(f.fields)
	case "<Backspace>", "<C-<Backspace>>":
		value := f.fields[f.focus].value
		if len(*value) > 0 {
			*value = (*value)[:len(*value)-1]
		}
	default:
		if len(id) == 1 && strings.Contains(allowedInput, id) {
			*f.fields[f.focus].value += id
		}
	}
	return ActionNone
}

// downsample keeps at most n evenly spaced points, always including the last one
func downsample(values []float64, n int) []float64 {
	if n < 2 || len(values) <= n {
		return values
	}
	sampled := make([]float64, n)
	step := float64(len(values)-1) / float64(n-1)
	for i := range sampled {
		sampled[i] = values[int(float64(i)*step+0.5)]
	}
	return sampled
}
