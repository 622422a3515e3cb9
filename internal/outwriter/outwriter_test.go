package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mhelling/podfit/internal/contract"
	"github.com/mhelling/podfit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() *schema.AssignmentResult {
	alice := &schema.Participant{ID: "player:Alice", Name: "Alice", Powers: []schema.PowerValue{7}}
	bob := &schema.Participant{ID: "player:Bob", Name: "Bob", Powers: []schema.PowerValue{7}}
	carol := &schema.Participant{ID: "player:Carol", Name: "Carol", Powers: []schema.PowerValue{6}}
	dave := &schema.Participant{ID: "player:Dave", Name: "Dave", Powers: []schema.PowerValue{8}}
	grp := &schema.Group{ID: "group:ride", Name: "ride", Members: []*schema.Participant{carol, dave}}

	return &schema.AssignmentResult{
		Pods: []schema.Pod{{
			Members: []schema.Unit{alice, bob, grp},
			Anchor:  7,
		}},
		Unassigned: []schema.Unit{
			&schema.Participant{ID: "player:Eve", Name: "Eve", Powers: []schema.PowerValue{2}},
		},
	}
}

func testConfig() *contract.Config {
	return &contract.Config{
		Leniency:  schema.SuperLeniency,
		Output:    schema.TextOut,
		Precision: 1,
		Width:     120,
	}
}

// TestUnitCell renders players and groups.
func TestUnitCell(t *testing.T) {
	res := testResult()
	assert.Equal(t, "Alice", unitCell(res.Pods[0].Members[0], 0))
	assert.Equal(t, "ride (Carol, Dave)", unitCell(res.Pods[0].Members[2], 0))
	assert.Equal(t, "player", unitKind(res.Pods[0].Members[0]))
	assert.Equal(t, "group", unitKind(res.Pods[0].Members[2]))
}

// TestWriteAssignmentTable renders seats, bench and the summary line.
func TestWriteAssignmentTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	res := testResult()

	err := writeAssignmentTable(&buf, res, cfg, createFloatFormatter(cfg.Precision), 42*time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "ride (Carol, Dave)")
	assert.Contains(t, out, "Eve")
	assert.Contains(t, out, contract.FullValue)
	assert.Contains(t, out, contract.BenchValue)
	assert.Contains(t, out, "1 pods | 4/5 players seated")
}

// TestWriteAssignmentTableDetail adds the powers and common columns.
func TestWriteAssignmentTableDetail(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	cfg.Detail = true
	res := testResult()

	err := writeAssignmentTable(&buf, res, cfg, createFloatFormatter(cfg.Precision), time.Millisecond)
	require.NoError(t, err)

	// Headers render upper-cased; cell values keep their case.
	out := buf.String()
	assert.Contains(t, out, "POWERS")
	assert.Contains(t, out, "COMMON")
	assert.Contains(t, out, "7/6/8", "group powers cell lists mean/lo/hi")
}

// TestWriteAssignmentCSV emits one row per unit.
func TestWriteAssignmentCSV(t *testing.T) {
	var buf bytes.Buffer
	res := testResult()

	err := writeAssignmentCSV(&buf, res, createFloatFormatter(1))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5) // header + 3 pod rows + 1 bench row
	assert.Equal(t, "pod,anchor,fill,unit,kind,seats,powers", lines[0])
	assert.Contains(t, lines[3], "group")
	assert.True(t, strings.HasPrefix(lines[4], ",,Bench"), "bench row has no pod index")
}

// TestWritePlanTable renders a plan and the empty-plan warning.
func TestWritePlanTable(t *testing.T) {
	t.Run("normal plan", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writePlanTable(&buf, 7, []int{4, 3}, testConfig()))
		assert.Contains(t, buf.String(), "7 players across 2 pods")
	})

	t.Run("below minimum", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writePlanTable(&buf, 2, nil, testConfig()))
		assert.Contains(t, buf.String(), "cannot form a pod")
	})
}

// TestGetMaxTableNameWidth honors the width override and the bounds.
func TestGetMaxTableNameWidth(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 200
	assert.Equal(t, 40, getMaxTableNameWidth(cfg), "wide terminals cap at 40")

	cfg.Width = 50
	assert.Equal(t, 12, getMaxTableNameWidth(cfg), "narrow terminals floor at 12")
}
