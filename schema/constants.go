package schema

// Custom string types for type safety.
type (
	// LeniencyMode controls how far a unit's power may sit from a pod's anchor.
	LeniencyMode string

	// OutputMode represents the format of the output.
	OutputMode string

	// StoreBackend represents the database backend for session history.
	StoreBackend string
)

// All leniency modes supported.
const (
	NoneLeniency    LeniencyMode = "none" // default: exact match on the grid
	RegularLeniency LeniencyMode = "regular"
	SuperLeniency   LeniencyMode = "super"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All history backends supported.
const (
	SQLiteBackend     StoreBackend = "sqlite" // default
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
	NoneBackend       StoreBackend = "none"
)

// MinPodSeats is the smallest playable pod. Plans never emit a target below it
// and the search never accepts a pod below it.
const MinPodSeats = 3

// ValidLeniencyModes lists all valid leniency modes.
var ValidLeniencyModes = map[LeniencyMode]struct{}{
	NoneLeniency:    {},
	RegularLeniency: {},
	SuperLeniency:   {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidStoreBackends lists all valid history backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Tolerance maps a leniency mode to its maximum allowed anchor deviation.
func (m LeniencyMode) Tolerance() float64 {
	switch m {
	case RegularLeniency:
		return 0.5
	case SuperLeniency:
		return 1.0
	default: // NoneLeniency
		return 0
	}
}
