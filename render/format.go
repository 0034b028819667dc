package render

import (
	"github.com/shopspring/decimal"
)

// Amount formats a bankroll value with a fixed number of decimals
func Amount(value float64, places int32) string {
	return decimal.NewFromFloat(value).StringFixed(places)
}

func Money(value float64) string {
	return "$" + Amount(value, 2)
}

func Percent(fraction float64) string {
	return decimal.NewFromFloat(fraction).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
