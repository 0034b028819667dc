package models

// Trajectory is the bankroll after each hand, index 0 being the initial bankroll
type Trajectory []float64

// Final returns the last bankroll of the trajectory
func (t Trajectory) Final() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1]
}

// BustHand returns the first hand at which the bankroll hit zero, or -1
func (t Trajectory) BustHand() int {
	for i, value := range t {
		if value <= 0 {
			return i
		}
	}
	return -1
}

func (t Trajectory) IsBankrupt() bool {
	return t.BustHand() >= 0
}

func (t Trajectory) Max() float64 {
	max := 0.0
	for i, value := range t {
		if i == 0 || value > max {
			max = value
		}
	}
	return max
}
