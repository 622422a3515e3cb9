// Package parquet provides data structures and functions for exporting pod
// session history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/mhelling/podfit/internal/histstore"
	"github.com/mhelling/podfit/schema"
	"github.com/parquet-go/parquet-go"
)

// SessionRow represents a single stored generation run.
// This struct maps to the podfit_sessions database table.
type SessionRow struct {
	// SessionID is the unique identifier for the run
	SessionID string `parquet:"session_id,snappy"`

	// CreatedAt is when the run happened (stored as TIMESTAMP with nanosecond precision)
	CreatedAt time.Time `parquet:"created_at,snappy"`

	// Leniency is the tolerance mode the run used
	Leniency string `parquet:"leniency,snappy"`

	// TotalPlayers is the number of players in the roster
	TotalPlayers int32 `parquet:"total_players,snappy"`

	// PodsFormed is the number of pods the search produced
	PodsFormed int32 `parquet:"pods_formed,snappy"`

	// UnassignedCount is the number of benched players
	UnassignedCount int32 `parquet:"unassigned_count,snappy"`

	// ResultJSON contains the full serialized assignment (nullable)
	ResultJSON *string `parquet:"result_json,optional,snappy"`
}

// PodRow represents one pod of a stored run, flattened for analytics.
type PodRow struct {
	// SessionID references the parent run
	SessionID string `parquet:"session_id,snappy"`

	// PodIndex is the 1-based position of the pod in the run
	PodIndex int32 `parquet:"pod_index,snappy"`

	// AnchorPower is the shared power level the pod plays at
	AnchorPower float64 `parquet:"anchor_power,snappy"`

	// Seats is the number of players in the pod
	Seats int32 `parquet:"seats,snappy"`

	// UnitIDs lists the placed unit identities, comma separated
	UnitIDs string `parquet:"unit_ids,snappy"`
}

// FromSessionRecords converts history records into parquet rows.
func FromSessionRecords(records []histstore.SessionRecord) []SessionRow {
	rows := make([]SessionRow, 0, len(records))
	for _, rec := range records {
		row := SessionRow{
			SessionID:       rec.ID,
			CreatedAt:       rec.CreatedAt,
			Leniency:        rec.Leniency,
			TotalPlayers:    int32(rec.TotalPlayers),
			PodsFormed:      int32(rec.PodsFormed),
			UnassignedCount: int32(rec.UnassignedCount),
		}
		if rec.ResultJSON != "" {
			resultJSON := rec.ResultJSON
			row.ResultJSON = &resultJSON
		}
		rows = append(rows, row)
	}
	return rows
}

// FromResultView flattens a generation result into per-pod rows.
func FromResultView(sessionID string, view schema.ResultView) []PodRow {
	rows := make([]PodRow, 0, len(view.Pods))
	for i, pod := range view.Pods {
		ids := ""
		for j, u := range pod.Units {
			if j > 0 {
				ids += ","
			}
			ids += u.ID
		}
		rows = append(rows, PodRow{
			SessionID:   sessionID,
			PodIndex:    int32(i + 1),
			AnchorPower: pod.Anchor,
			Seats:       int32(pod.Seats),
			UnitIDs:     ids,
		})
	}
	return rows
}

// WriteSessionsParquet writes a slice of SessionRow structs to a Parquet file.
func WriteSessionsParquet(data []SessionRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the SessionRow struct tags
	writer := parquet.NewGenericWriter[SessionRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// WritePodsParquet writes a slice of PodRow structs to a Parquet file.
func WritePodsParquet(data []PodRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the PodRow struct tags
	writer := parquet.NewGenericWriter[PodRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
