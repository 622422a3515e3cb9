package contract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mhelling/podfit/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	MaxPrecision     = 4
)

// Config holds the runtime configuration for a podfit invocation.
// This struct remains the "final, validated" config.
type Config struct {
	RosterPath string

	Leniency schema.LeniencyMode
	Seed     *int64 // nil means unseeded, stable tie-breaking

	Output     schema.OutputMode
	OutputFile string
	Detail     bool
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	StoreBackend   schema.StoreBackend
	StoreDBConnect string // Please use env var as this is plaintext

	PlanTotal int
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// Set manually from positional args, so no tag
	RosterPathStr string

	Leniency       string `mapstructure:"leniency"`
	Seed           string `mapstructure:"seed"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Detail         bool   `mapstructure:"detail"`
	Precision      int    `mapstructure:"precision"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
}

// ProcessAndValidate turns raw input into a validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.RosterPath = input.RosterPathStr

	mode := schema.LeniencyMode(strings.ToLower(strings.TrimSpace(input.Leniency)))
	if mode == "" {
		mode = schema.NoneLeniency
	}
	if _, ok := schema.ValidLeniencyModes[mode]; !ok {
		return fmt.Errorf("invalid leniency %q: must be none, regular or super", input.Leniency)
	}
	cfg.Leniency = mode

	if s := strings.TrimSpace(input.Seed); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %w", input.Seed, err)
		}
		cfg.Seed = &seed
	} else {
		cfg.Seed = nil
	}

	output := schema.OutputMode(strings.ToLower(strings.TrimSpace(input.Output)))
	if output == "" {
		output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output %q: must be text, csv or json", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("invalid precision %d: must be between 0 and %d", input.Precision, MaxPrecision)
	}
	cfg.Precision = input.Precision

	if input.Width < 0 {
		return fmt.Errorf("invalid width %d: must not be negative", input.Width)
	}
	cfg.Width = input.Width

	useColors, err := parseYesNo(input.Color, true)
	if err != nil {
		return fmt.Errorf("invalid color value %q: %w", input.Color, err)
	}
	cfg.UseColors = useColors

	backend := schema.StoreBackend(strings.ToLower(strings.TrimSpace(input.StoreBackend)))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend %q: must be sqlite, mysql, postgresql or none", input.StoreBackend)
	}
	cfg.StoreBackend = backend
	cfg.StoreDBConnect = input.StoreDBConnect

	return nil
}

// parseYesNo accepts yes/no/true/false/1/0 with a default for empty input.
func parseYesNo(value string, fallback bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return fallback, nil
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected yes/no/true/false/1/0")
	}
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Seed != nil {
		seed := *c.Seed
		clone.Seed = &seed
	}
	return &clone
}
