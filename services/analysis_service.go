package services

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOBankroll/helpers"
	"gitlab.com/aoterocom/AOBankroll/models"
	"gitlab.com/aoterocom/AOBankroll/models/analytics"
	"time"
)

type AnalysisService struct {
	trendWindow int
}

func NewAnalysisService(trendWindow int) AnalysisService {
	if trendWindow < 1 {
		trendWindow = 1
	}
	return AnalysisService{trendWindow: trendWindow}
}

func (as AnalysisService) Summarize(result models.SimulationResult) analytics.RunSummary {
	summary := analytics.NewRunSummary()
	summary.RunID = result.RunID
	summary.Paths = len(result.Trajectories)
	summary.Hands = result.Config.NumHands
	summary.InitialBankroll = result.Config.InitialBankroll

	if summary.Paths == 0 {
		return summary
	}

	finals := make([]float64, 0, summary.Paths)
	summary.BustHands = make([]int, 0, summary.Paths)
	for _, trajectory := range result.Trajectories {
		finals = append(finals, trajectory.Final())
		bustHand := trajectory.BustHand()
		summary.BustHands = append(summary.BustHands, bustHand)
		if bustHand >= 0 {
			summary.BankruptCount++
		}
	}

	summary.RuinProbability = float64(summary.BankruptCount) / float64(summary.Paths)
	summary.FinalMean = helpers.Mean(finals)
	summary.FinalStdDev = helpers.StdDev(finals, summary.FinalMean)
	summary.FinalMedian = helpers.Median(finals)
	summary.FinalMin, summary.FinalMax = helpers.MinMax(finals)

	summary.MeanPath = meanPath(result.Trajectories)
	summary.TrendWindow = as.trendWindow
	if summary.TrendWindow > len(summary.MeanPath) {
		summary.TrendWindow = len(summary.MeanPath)
	}
	summary.MeanPathTrend = movingAverage(summary.MeanPath, summary.TrendWindow)

	return summary
}

func meanPath(trajectories []models.Trajectory) []float64 {
	length := 0
	for _, trajectory := range trajectories {
		if len(trajectory) > length {
			length = len(trajectory)
		}
	}

	path := make([]float64, length)
	for i := range path {
		column := make([]float64, 0, len(trajectories))
		for _, trajectory := range trajectories {
			if i < len(trajectory) {
				column = append(column, trajectory[i])
			}
		}
		path[i] = helpers.Mean(column)
	}
	return path
}

// movingAverage runs a techan SMA over the values treated as close prices.
// Until the window fills, the cumulative average is used.
func movingAverage(values []float64, window int) []float64 {
	if len(values) == 0 || window < 1 {
		return nil
	}

	series := techan.NewTimeSeries()
	start := time.Unix(0, 0).UTC()
	for i, value := range values {
		candle := techan.NewCandle(techan.NewTimePeriod(start.Add(time.Duration(i)*time.Minute), time.Minute))
		candle.ClosePrice = big.NewDecimal(value)
		series.AddCandle(candle)
	}

	sma := techan.NewSimpleMovingAverage(techan.NewClosePriceIndicator(series), window)
	trend := make([]float64, len(values))
	for i := range values {
		if i < window-1 {
			trend[i] = helpers.Mean(values[:i+1])
			continue
		}
		trend[i] = sma.Calculate(i).Float()
	}
	return trend
}
