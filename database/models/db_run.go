package database

import (
	"gorm.io/gorm"
)

type Run struct {
	gorm.Model
	UUID            string    `json:"runId" gorm:"uniqueIndex;size:36"`
	Seed            int64     `json:"seed"`
	InitialBankroll float64   `json:"initialBankroll"`
	BetSize         float64   `json:"betSize"`
	HouseEdge       float64   `json:"houseEdge"`
	StdDevPerHand   float64   `json:"stdDevPerHand"`
	NumHands        int       `json:"numHands"`
	NumPaths        int       `json:"numPaths"`
	BankruptCount   int       `json:"bankruptCount"`
	RuinProbability float64   `json:"ruinProbability"`
	FinalMean       float64   `json:"finalMean"`
	FinalMedian     float64   `json:"finalMedian"`
	FinalStdDev     float64   `json:"finalStdDev"`
	Paths           []RunPath `json:"paths"`
}

type RunPath struct {
	gorm.Model
	RunID         uint    `json:"-" gorm:"index"`
	PathIndex     int     `json:"pathIndex"`
	FinalBankroll float64 `json:"finalBankroll"`
	MaxBankroll   float64 `json:"maxBankroll"`
	BustHand      int     `json:"bustHand"`
}
