package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mhelling/podfit/internal/histstore"
	"github.com/mhelling/podfit/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSessionRowSchema verifies the derived parquet schema has the expected columns.
func TestSessionRowSchema(t *testing.T) {
	pqschema := parquet.SchemaOf(new(SessionRow))

	for _, col := range []string{
		"session_id",
		"created_at",
		"leniency",
		"total_players",
		"pods_formed",
		"unassigned_count",
		"result_json",
	} {
		_, ok := pqschema.Lookup(col)
		assert.True(t, ok, "missing column %s", col)
	}
}

// TestPodRowSchema verifies the flattened pod schema columns.
func TestPodRowSchema(t *testing.T) {
	pqschema := parquet.SchemaOf(new(PodRow))

	for _, col := range []string{
		"session_id",
		"pod_index",
		"anchor_power",
		"seats",
		"unit_ids",
	} {
		_, ok := pqschema.Lookup(col)
		assert.True(t, ok, "missing column %s", col)
	}
}

// TestFromSessionRecords maps history records onto rows.
func TestFromSessionRecords(t *testing.T) {
	at := time.Now().Truncate(time.Second)
	records := []histstore.SessionRecord{
		{
			ID:              "s1",
			CreatedAt:       at,
			Leniency:        "regular",
			TotalPlayers:    8,
			PodsFormed:      2,
			UnassignedCount: 0,
			ResultJSON:      `{"pods":[]}`,
		},
		{
			ID:        "s2",
			CreatedAt: at,
			Leniency:  "none",
		},
	}

	rows := FromSessionRecords(records)
	require.Len(t, rows, 2)
	assert.Equal(t, "s1", rows[0].SessionID)
	assert.Equal(t, int32(8), rows[0].TotalPlayers)
	require.NotNil(t, rows[0].ResultJSON)
	assert.Equal(t, `{"pods":[]}`, *rows[0].ResultJSON)
	assert.Nil(t, rows[1].ResultJSON)
}

// TestFromResultView flattens pods into per-pod rows.
func TestFromResultView(t *testing.T) {
	view := schema.ResultView{
		Pods: []schema.PodView{
			{
				Anchor: 7,
				Seats:  4,
				Units: []schema.UnitView{
					{ID: "player:Ana"},
					{ID: "group:Crew"},
				},
			},
			{
				Anchor: 5.5,
				Seats:  3,
				Units: []schema.UnitView{
					{ID: "player:Bo"},
				},
			},
		},
	}

	rows := FromResultView("s1", view)
	require.Len(t, rows, 2)
	assert.Equal(t, int32(1), rows[0].PodIndex)
	assert.Equal(t, "player:Ana,group:Crew", rows[0].UnitIDs)
	assert.Equal(t, 5.5, rows[1].AnchorPower)
	assert.Equal(t, int32(3), rows[1].Seats)
}

// TestWriteSessionsParquet round-trips rows through a file.
func TestWriteSessionsParquet(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "sessions.parquet")
	resultJSON := `{"pods":[]}`
	rows := []SessionRow{
		{
			SessionID:       "s1",
			CreatedAt:       time.Now().Truncate(time.Millisecond),
			Leniency:        "regular",
			TotalPlayers:    8,
			PodsFormed:      2,
			UnassignedCount: 0,
			ResultJSON:      &resultJSON,
		},
	}

	require.NoError(t, WriteSessionsParquet(rows, outPath))

	file, err := os.Open(outPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[SessionRow](file)
	defer func() { _ = reader.Close() }()

	got := make([]SessionRow, 1)
	n, err := reader.Read(got)
	require.Equal(t, 1, n)
	_ = err // io.EOF is fine once all rows are consumed
	assert.Equal(t, "s1", got[0].SessionID)
	assert.Equal(t, "regular", got[0].Leniency)
}
