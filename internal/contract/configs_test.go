package contract

import (
	"testing"

	"github.com/mhelling/podfit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProcessAndValidateDefaults applies defaults on empty input.
func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{RosterPathStr: "roster.yaml", Precision: DefaultPrecision}

	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, "roster.yaml", cfg.RosterPath)
	assert.Equal(t, schema.NoneLeniency, cfg.Leniency)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
	assert.True(t, cfg.UseColors)
}

// TestProcessAndValidateFull parses every field.
func TestProcessAndValidateFull(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{
		RosterPathStr:  "night.json",
		Leniency:       "Super",
		Seed:           "42",
		Output:         "json",
		OutputFile:     "out.json",
		Detail:         true,
		Precision:      2,
		Width:          120,
		Color:          "no",
		StoreBackend:   "postgresql",
		StoreDBConnect: "host=localhost dbname=podfit",
	}

	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.SuperLeniency, cfg.Leniency)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, schema.JSONOut, cfg.Output)
	assert.Equal(t, "out.json", cfg.OutputFile)
	assert.True(t, cfg.Detail)
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, 120, cfg.Width)
	assert.False(t, cfg.UseColors)
	assert.Equal(t, schema.PostgreSQLBackend, cfg.StoreBackend)
}

// TestProcessAndValidateErrors rejects bad values.
func TestProcessAndValidateErrors(t *testing.T) {
	tests := []struct {
		name  string
		input ConfigRawInput
	}{
		{name: "bad leniency", input: ConfigRawInput{Leniency: "ultra"}},
		{name: "bad seed", input: ConfigRawInput{Seed: "abc"}},
		{name: "bad output", input: ConfigRawInput{Output: "xml"}},
		{name: "bad precision", input: ConfigRawInput{Precision: 9}},
		{name: "negative width", input: ConfigRawInput{Width: -1}},
		{name: "bad color", input: ConfigRawInput{Color: "maybe"}},
		{name: "bad backend", input: ConfigRawInput{StoreBackend: "oracle"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ProcessAndValidate(&Config{}, &tt.input))
		})
	}
}

// TestConfigClone keeps the seed independent.
func TestConfigClone(t *testing.T) {
	seed := int64(7)
	cfg := &Config{Leniency: schema.RegularLeniency, Seed: &seed}

	clone := cfg.Clone()
	*clone.Seed = 99
	assert.Equal(t, int64(7), *cfg.Seed)
	assert.Equal(t, schema.RegularLeniency, clone.Leniency)
}
