package analytics

// RunSummary aggregates the trajectories of one simulation run
type RunSummary struct {
	RunID           string    `json:"runId"`
	Paths           int       `json:"paths"`
	Hands           int       `json:"hands"`
	InitialBankroll float64   `json:"initialBankroll"`
	BankruptCount   int       `json:"bankruptCount"`
	RuinProbability float64   `json:"ruinProbability"`
	FinalMean       float64   `json:"finalMean"`
	FinalStdDev     float64   `json:"finalStdDev"`
	FinalMedian     float64   `json:"finalMedian"`
	FinalMin        float64   `json:"finalMin"`
	FinalMax        float64   `json:"finalMax"`
	BustHands       []int     `json:"bustHands"`
	MeanPath        []float64 `json:"meanPath"`
	MeanPathTrend   []float64 `json:"meanPathTrend"`
	TrendWindow     int       `json:"trendWindow"`
}

func NewRunSummary() RunSummary {
	return RunSummary{}
}

// SurvivorCount is the number of paths that never went bankrupt
func (rs RunSummary) SurvivorCount() int {
	return rs.Paths - rs.BankruptCount
}
