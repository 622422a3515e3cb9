package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mhelling/podfit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadYAML parses a YAML roster.
func TestLoadYAML(t *testing.T) {
	path := writeTemp(t, "roster.yaml", `
players:
  - name: Alice
    powers: [7, 7.5]
  - name: Bob
    powers: [6]
groups:
  - name: carpool
    players: [Bob]
`)

	r, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, r.Players, 2)
	require.Len(t, r.Groups, 1)
	assert.Equal(t, "carpool", r.Groups[0].Name)
}

// TestLoadJSON parses a JSON roster.
func TestLoadJSON(t *testing.T) {
	path := writeTemp(t, "roster.json", `{
  "players": [
    {"name": "Alice", "powers": [7]},
    {"name": "Bob", "powers": [6, 8]}
  ]
}`)

	r, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, r.Players, 2)
	assert.Empty(t, r.Groups)
}

// TestLoadMissingFile surfaces the read error.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// TestBuildUnits covers unit construction and ordering.
func TestBuildUnits(t *testing.T) {
	r := &schema.Roster{
		Players: []schema.RosterPlayer{
			{Name: "Alice", Powers: []float64{7}},
			{Name: "Bob", Powers: []float64{6}},
			{Name: "Carol", Powers: []float64{8}},
			{Name: "Dave", Powers: []float64{7}},
		},
		Groups: []schema.RosterGroup{
			{Name: "carpool", Players: []string{"Bob", "Dave"}},
		},
	}

	units, err := BuildUnits(r)
	require.NoError(t, err)
	require.Len(t, units, 3)

	// Group takes Bob's slot; Dave does not reappear.
	assert.Equal(t, "player:Alice", units[0].UnitID())
	assert.Equal(t, "group:carpool", units[1].UnitID())
	assert.Equal(t, 2, units[1].Size())
	assert.Equal(t, "player:Carol", units[2].UnitID())
	assert.Equal(t, 4, schema.TotalSeats(units))
}

// TestBuildUnitsValidation rejects malformed rosters.
func TestBuildUnitsValidation(t *testing.T) {
	tests := []struct {
		name   string
		roster schema.Roster
		errMsg string
	}{
		{
			name:   "empty roster",
			roster: schema.Roster{},
			errMsg: "no players",
		},
		{
			name: "blank player name",
			roster: schema.Roster{
				Players: []schema.RosterPlayer{{Name: "  ", Powers: []float64{7}}},
			},
			errMsg: "empty name",
		},
		{
			name: "duplicate player",
			roster: schema.Roster{
				Players: []schema.RosterPlayer{
					{Name: "Alice", Powers: []float64{7}},
					{Name: "Alice", Powers: []float64{8}},
				},
			},
			errMsg: "duplicate player",
		},
		{
			name: "no powers",
			roster: schema.Roster{
				Players: []schema.RosterPlayer{{Name: "Alice"}},
			},
			errMsg: "no power ratings",
		},
		{
			name: "off-grid power",
			roster: schema.Roster{
				Players: []schema.RosterPlayer{{Name: "Alice", Powers: []float64{7.3}}},
			},
			errMsg: "half-step grid",
		},
		{
			name: "power out of range",
			roster: schema.Roster{
				Players: []schema.RosterPlayer{{Name: "Alice", Powers: []float64{11}}},
			},
			errMsg: "half-step grid",
		},
		{
			name: "unknown group member",
			roster: schema.Roster{
				Players: []schema.RosterPlayer{{Name: "Alice", Powers: []float64{7}}},
				Groups:  []schema.RosterGroup{{Name: "g", Players: []string{"Ghost"}}},
			},
			errMsg: "unknown player",
		},
		{
			name: "player in two groups",
			roster: schema.Roster{
				Players: []schema.RosterPlayer{
					{Name: "Alice", Powers: []float64{7}},
					{Name: "Bob", Powers: []float64{7}},
				},
				Groups: []schema.RosterGroup{
					{Name: "g1", Players: []string{"Alice"}},
					{Name: "g2", Players: []string{"Alice", "Bob"}},
				},
			},
			errMsg: "both group",
		},
		{
			name: "empty group",
			roster: schema.Roster{
				Players: []schema.RosterPlayer{{Name: "Alice", Powers: []float64{7}}},
				Groups:  []schema.RosterGroup{{Name: "g"}},
			},
			errMsg: "no players",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildUnits(&tt.roster)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
