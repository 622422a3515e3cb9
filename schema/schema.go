// Package schema has configs, models and shared constants for all parts of podfit.
package schema

import (
	"math"
	"strconv"
)

// PowerValue is a player power rating on a half-step grid (1, 1.5, 2, ..., 10).
// All comparisons are numeric, never string based.
type PowerValue float64

// Power grid boundaries.
const (
	MinPower PowerValue = 1
	MaxPower PowerValue = 10

	// PowerGridStep is the resolution of the rating grid.
	PowerGridStep = 0.5
)

// RoundToGrid snaps an arbitrary value to the nearest half step.
func RoundToGrid(v float64) PowerValue {
	return PowerValue(math.Round(v/PowerGridStep) * PowerGridStep)
}

// OnGrid reports whether the value sits exactly on the half-step grid
// and inside the [MinPower, MaxPower] range.
func (p PowerValue) OnGrid() bool {
	if p < MinPower || p > MaxPower {
		return false
	}
	scaled := float64(p) / PowerGridStep
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}

// String renders the power without a trailing ".0" for whole numbers.
func (p PowerValue) String() string {
	if p == PowerValue(math.Trunc(float64(p))) {
		return strconv.FormatFloat(float64(p), 'f', 0, 64)
	}
	return strconv.FormatFloat(float64(p), 'f', 1, 64)
}
