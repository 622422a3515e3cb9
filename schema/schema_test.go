package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRoundToGrid verifies snapping to the half-step grid.
func TestRoundToGrid(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected PowerValue
	}{
		{name: "already on grid", input: 7, expected: 7},
		{name: "half step stays", input: 7.5, expected: 7.5},
		{name: "round down", input: 7.2, expected: 7},
		{name: "round up", input: 7.3, expected: 7.5},
		{name: "mean of 6 and 7", input: 6.5, expected: 6.5},
		{name: "mean of three", input: 6.666666, expected: 6.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundToGrid(tt.input))
		})
	}
}

// TestOnGrid verifies grid membership checks.
func TestOnGrid(t *testing.T) {
	assert.True(t, PowerValue(1).OnGrid())
	assert.True(t, PowerValue(9.5).OnGrid())
	assert.True(t, PowerValue(10).OnGrid())
	assert.False(t, PowerValue(0.5).OnGrid(), "below minimum")
	assert.False(t, PowerValue(10.5).OnGrid(), "above maximum")
	assert.False(t, PowerValue(7.3).OnGrid(), "off grid")
}

// TestPowerString verifies whole numbers drop the decimal.
func TestPowerString(t *testing.T) {
	assert.Equal(t, "7", PowerValue(7).String())
	assert.Equal(t, "7.5", PowerValue(7.5).String())
}

// TestLeniencyTolerance maps modes to tolerances.
func TestLeniencyTolerance(t *testing.T) {
	assert.Equal(t, 0.0, NoneLeniency.Tolerance())
	assert.Equal(t, 0.5, RegularLeniency.Tolerance())
	assert.Equal(t, 1.0, SuperLeniency.Tolerance())
	assert.Equal(t, 0.0, LeniencyMode("bogus").Tolerance())
}
