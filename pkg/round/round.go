// Package round centralizes the numeric precision rules for the budgeting
// engine. Every derived currency amount passes through Cents and every
// derived percentage through Tenth; applying them consistently keeps
// repeated derive/override cycles from accumulating floating-point drift.
package round

import "math"

// epsilon nudges values sitting exactly on a half-cent boundary upward in
// magnitude so 10.005 rounds to 10.01 rather than falling victim to the
// binary representation (10.005 stores as 10.004999...).
const epsilon = 1e-9

// Cents rounds to two decimal places, half away from zero at the cent
// boundary. Non-finite inputs collapse to 0.
func Cents(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	if x < 0 {
		return -Cents(-x)
	}
	return math.Round((x+epsilon)*100) / 100
}

// Tenth rounds to one decimal place, for percentages displayed in tenths.
// Non-finite inputs collapse to 0.
func Tenth(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	if x < 0 {
		return -Tenth(-x)
	}
	return math.Round((x+epsilon)*10) / 10
}

// Whole rounds to the nearest integer, half away from zero. Used for return
// counts and whole-dollar projections.
func Whole(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return math.Round(x)
}
