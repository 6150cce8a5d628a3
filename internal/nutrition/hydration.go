package nutrition

import "math"

const (
	// DefaultCupGoal is the number of cups suggested per day when none is stored.
	DefaultCupGoal = 8
	// DefaultCupML is the volume of one cup.
	DefaultCupML = 250
	// DefaultWaterLiters is reported when no profile weight is known.
	DefaultWaterLiters = 2.0

	waterMLPerKG        = 35
	activeBonusML       = 500
	activeBonusFromMult = 1.6
)

// WaterIntakeLiters recommends a daily water volume rounded to one decimal.
// Profiles more active than the moderate tier receive an extra 500 ml.
func WaterIntakeLiters(weightKG float64, level ActivityLevel) float64 {
	if weightKG <= 0 {
		return DefaultWaterLiters
	}
	ml := weightKG * waterMLPerKG
	if m, ok := level.Multiplier(); ok && m > activeBonusFromMult {
		ml += activeBonusML
	}
	return math.Round(ml/100) / 10
}

// AdjustCups applies delta to the current cup count without going below zero.
func AdjustCups(current, delta int) int {
	next := current + delta
	if next < 0 {
		return 0
	}
	return next
}
