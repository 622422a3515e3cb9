// Package histstore persists generation sessions across sqlite, mysql and
// postgresql backends.
package histstore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// sessionsTable is the fixed table name for session history.
const sessionsTable = "podfit_sessions"

// SessionRecord is one stored generation run.
type SessionRecord struct {
	ID              string
	CreatedAt       time.Time
	Leniency        string
	TotalPlayers    int
	PodsFormed      int
	UnassignedCount int
	ResultJSON      string
}

// StoreStatus summarizes the history backend for the status command.
type StoreStatus struct {
	Backend  string
	Location string
	Sessions int
}

// NewSessionID derives a unique id from the wall clock. Collisions would need
// two runs inside the same nanosecond on one host.
func NewSessionID() string {
	return fmt.Sprintf("s%013x", time.Now().UnixNano())
}

// GetDBFilePath returns the default SQLite database location, creating the
// parent directory if needed.
func GetDBFilePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	dir := filepath.Join(base, "podfit")
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, "sessions.db")
}
