package cmd

import (
	"encoding/json"
	"time"

	"github.com/mhelling/podfit/core"
	"github.com/mhelling/podfit/internal/contract"
	"github.com/mhelling/podfit/internal/histstore"
	"github.com/mhelling/podfit/internal/outwriter"
	"github.com/mhelling/podfit/internal/roster"
	"github.com/mhelling/podfit/schema"
	"github.com/spf13/cobra"
)

// generateCmd seats a roster into pods.
var generateCmd = &cobra.Command{
	Use:   "generate <roster-path>",
	Short: "Seat a roster of players into pods of 3-5.",
	Long: `Read a roster file and seat its players into pods that agree on a power level.

Each player lists the power ratings they are willing to play at, in order of
preference. Groups bind players together: either the whole group seats into
one pod or nobody in it does.

Leniency widens what "agree" means:
  none    - everyone plays the level exactly
  regular - up to half a level away from the pod's base
  super   - up to a full level away from the pod's base

Examples:
  # Strict matching, table output
  podfit generate roster.yaml

  # Allow half-a-level spread and show per-player power lists
  podfit generate roster.yaml --leniency regular --detail

  # Reproducible shuffling of candidate levels
  podfit generate roster.yaml --seed 42

  # Export the seating to CSV
  podfit generate roster.yaml --output csv --output-file pods.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runGenerate(); err != nil {
			contract.LogFatal("Cannot generate pods", err)
		}
	},
}

// runGenerate loads the roster, runs the search and writes the result.
func runGenerate() error {
	r, err := roster.Load(cfg.RosterPath)
	if err != nil {
		return err
	}
	units, err := roster.BuildUnits(r)
	if err != nil {
		return err
	}

	start := time.Now()
	result := core.Generate(units, core.Options{Leniency: cfg.Leniency, Seed: cfg.Seed})
	duration := time.Since(start)

	ow := outwriter.NewOutWriter()
	if err := ow.WriteAssignment(&result, cfg, duration); err != nil {
		return err
	}

	saveSession(&result)
	return nil
}

// saveSession records the run in the history store. Failures are warnings:
// the seating already happened and is on screen.
func saveSession(result *schema.AssignmentResult) {
	if cfg.StoreBackend == schema.NoneBackend {
		return
	}

	store, err := histstore.NewSessionStore(cfg.StoreBackend, cfg.StoreDBConnect)
	if err != nil {
		contract.LogWarn("Cannot open history store", err)
		return
	}
	defer func() { _ = store.Close() }()

	view := schema.EnrichResult(result, cfg.Leniency)
	resultJSON, err := json.Marshal(view)
	if err != nil {
		contract.LogWarn("Cannot serialize session result", err)
		return
	}

	rec := &histstore.SessionRecord{
		ID:              histstore.NewSessionID(),
		CreatedAt:       time.Now(),
		Leniency:        string(cfg.Leniency),
		TotalPlayers:    result.TotalCount(),
		PodsFormed:      len(result.Pods),
		UnassignedCount: len(result.Unassigned),
		ResultJSON:      string(resultJSON),
	}
	if err := store.SaveSession(rec); err != nil {
		contract.LogWarn("Cannot save session history", err)
	}
}
