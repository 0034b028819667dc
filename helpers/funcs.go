package helpers

import (
	"math"
	"sort"
)

func Mean(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	return Sum(numbers) / float64(len(numbers))
}

// StdDev is the sample standard deviation. It is 0 for fewer than two values.
func StdDev(numbers []float64, mean float64) float64 {
	if len(numbers) < 2 {
		return 0
	}
	total := 0.0
	for _, number := range numbers {
		total += math.Pow(number-mean, 2)
	}
	variance := total / float64(len(numbers)-1)
	return math.Sqrt(variance)
}

func Sum(numbers []float64) (total float64) {
	for _, x := range numbers {
		total += x
	}
	return total
}

func Median(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	sorted := append([]float64(nil), numbers...)
	sort.Float64s(sorted)
	middle := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[middle-1] + sorted[middle]) / 2
	}
	return sorted[middle]
}

func MinMax(numbers []float64) (min float64, max float64) {
	for i, number := range numbers {
		if i == 0 || number < min {
			min = number
		}
		if i == 0 || number > max {
			max = number
		}
	}
	return min, max
}

func AllValuesNonNegative(list []float64) bool {
	for _, item := range list {
		if item < 0.0 {
			return false
		}
	}
	return true
}
