package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when raw form values cannot be turned into a SimulationConfig
var ErrInvalidInput = errors.New("invalid input")

// SimulationForm holds the raw text values collected by a front end
type SimulationForm struct {
	InitialBankroll string `json:"initialBankroll" form:"initialBankroll" query:"initialBankroll"`
	BetSize         string `json:"betSize" form:"betSize" query:"betSize"`
	HouseEdgePct    string `json:"houseEdgePct" form:"houseEdgePct" query:"houseEdgePct"`
	StdDevPerHand   string `json:"stdDevPerHand" form:"stdDevPerHand" query:"stdDevPerHand"`
	NumHands        string `json:"numHands" form:"numHands" query:"numHands"`
	NumPaths        string `json:"numPaths" form:"numPaths" query:"numPaths"`
}

func DefaultSimulationForm() SimulationForm {
	return SimulationForm{
		InitialBankroll: "150",
		BetSize:         "15",
		HouseEdgePct:    "-0.5",
		NumHands:        "400",
		NumPaths:        "20",
	}
}

// ToConfig parses the form. House edge is entered in percent and stored as a fraction.
func (sf SimulationForm) ToConfig() (SimulationConfig, error) {
	return sf.ToConfigWithin(DefaultLimits())
}

func (sf SimulationForm) ToConfigWithin(limits Limits) (SimulationConfig, error) {
	bankroll, err := parseFloatField("initial bankroll", sf.InitialBankroll)
	if err != nil {
		return SimulationConfig{}, err
	}
	if bankroll <= 0 {
		return SimulationConfig{}, fmt.Errorf("%w: initial bankroll must be positive", ErrInvalidInput)
	}

	bet, err := parseFloatField("bet size", sf.BetSize)
	if err != nil {
		return SimulationConfig{}, err
	}
	if bet <= 0 {
		return SimulationConfig{}, fmt.Errorf("%w: bet size must be positive", ErrInvalidInput)
	}

	edgePct, err := parseFloatField("house edge", sf.HouseEdgePct)
	if err != nil {
		return SimulationConfig{}, err
	}

	hands, err := parseIntField("number of hands", sf.NumHands)
	if err != nil {
		return SimulationConfig{}, err
	}
	paths, err := parseIntField("number of paths", sf.NumPaths)
	if err != nil {
		return SimulationConfig{}, err
	}

	config := NewSimulationConfig(bankroll, bet, edgePct/100, hands, paths)

	if strings.TrimSpace(sf.StdDevPerHand) != "" {
		stdDev, err := parseFloatField("std dev per hand", sf.StdDevPerHand)
		if err != nil {
			return SimulationConfig{}, err
		}
		config = config.WithStdDev(stdDev)
	}

	if err := config.ValidateWithin(limits); err != nil {
		return SimulationConfig{}, err
	}

	return config, nil
}

func parseFloatField(name string, value string) (float64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidInput, name, value)
	}
	return parsed, nil
}

func parseIntField(name string, value string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a whole number", ErrInvalidInput, name, value)
	}
	if parsed < 1 {
		return 0, fmt.Errorf("%w: %s must be at least 1", ErrInvalidInput, name)
	}
	return parsed, nil
}
