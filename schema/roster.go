package schema

// RosterPlayer is one row of a roster file: a player name plus the power
// ratings they are willing to play at, in the order they chose them.
type RosterPlayer struct {
	Name   string    `yaml:"name" json:"name"`
	Powers []float64 `yaml:"powers" json:"powers"`
}

// RosterGroup names a set of players that must stay together.
type RosterGroup struct {
	Name    string   `yaml:"name" json:"name"`
	Players []string `yaml:"players" json:"players"`
}

// Roster is the on-disk input format for a generation run. Players listed in
// a group still appear under Players; the group only binds them together.
type Roster struct {
	Players []RosterPlayer `yaml:"players" json:"players"`
	Groups  []RosterGroup  `yaml:"groups,omitempty" json:"groups,omitempty"`
}
