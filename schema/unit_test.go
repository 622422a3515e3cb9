package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func player(id string, powers ...PowerValue) *Participant {
	return &Participant{ID: id, Name: id, Powers: powers}
}

// TestParticipantUnit checks the solo player accessors.
func TestParticipantUnit(t *testing.T) {
	p := player("alice", 7, 7.5)
	assert.Equal(t, "alice", p.UnitID())
	assert.Equal(t, 1, p.Size())
	assert.Equal(t, []PowerValue{7, 7.5}, p.Anchors())
}

// TestGroupAnchors checks the mean/min/max representative anchors.
func TestGroupAnchors(t *testing.T) {
	tests := []struct {
		name     string
		members  []*Participant
		expected []PowerValue
	}{
		{
			name:     "spread pair",
			members:  []*Participant{player("a", 6), player("b", 8)},
			expected: []PowerValue{7, 6, 8}, // mean, min, max
		},
		{
			name:     "identical members collapse to one anchor",
			members:  []*Participant{player("a", 7), player("b", 7)},
			expected: []PowerValue{7},
		},
		{
			name:     "min and max pulled from secondary ratings",
			members:  []*Participant{player("a", 7, 5), player("b", 7, 9)},
			expected: []PowerValue{7, 5, 9},
		},
		{
			name:     "mean snaps to grid",
			members:  []*Participant{player("a", 6), player("b", 7), player("c", 7)},
			expected: []PowerValue{6.5, 6, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Group{ID: "g", Name: "g", Members: tt.members}
			assert.Equal(t, tt.expected, g.Anchors())
			assert.Equal(t, len(tt.members), g.Size())
		})
	}
}

// TestTotalSeats sums sizes across mixed units.
func TestTotalSeats(t *testing.T) {
	units := []Unit{
		player("a", 7),
		&Group{ID: "g", Members: []*Participant{player("b", 6), player("c", 8)}},
	}
	assert.Equal(t, 3, TotalSeats(units))
}

// TestEnrichResult projects pods and bench into view form.
func TestEnrichResult(t *testing.T) {
	grp := &Group{ID: "g", Name: "carpool", Members: []*Participant{player("b", 6), player("c", 8)}}
	res := &AssignmentResult{
		Pods: []Pod{{
			Members: []Unit{player("a", 7), grp},
			Anchor:  7,
		}},
		Unassigned: []Unit{player("d", 9)},
	}

	view := EnrichResult(res, RegularLeniency)
	assert.Equal(t, "regular", view.Leniency)
	assert.Equal(t, 3, view.Seated)
	assert.Equal(t, 4, view.Total)
	assert.Len(t, view.Pods, 1)
	assert.Equal(t, 3, view.Pods[0].Seats)
	assert.Equal(t, "group", view.Pods[0].Units[1].Kind)
	assert.Equal(t, []string{"b", "c"}, view.Pods[0].Units[1].Players)
	assert.Len(t, view.Unassigned, 1)
	assert.Equal(t, "player", view.Unassigned[0].Kind)
}
