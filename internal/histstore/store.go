package histstore

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/mhelling/podfit/schema"
)

// SessionStore handles durable session history operations.
type SessionStore interface {
	SaveSession(rec *SessionRecord) error
	ListSessions(limit int) ([]SessionRecord, error)
	ClearSessions() (int64, error)
	Status() (StoreStatus, error)
	Close() error
}

// SessionStoreImpl backs SessionStore with database/sql.
type SessionStoreImpl struct {
	db      *sql.DB
	backend schema.StoreBackend
	connStr string
}

var _ SessionStore = &SessionStoreImpl{} // Compile-time check

// NewSessionStore initializes and returns a new SessionStore based on the
// backend type. NoneBackend yields a no-op store.
func NewSessionStore(backend schema.StoreBackend, connStr string) (SessionStore, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite history at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
		connStr = dbPath

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL history: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=secret dbname=podfit
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL history: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		return &SessionStoreImpl{db: nil, backend: backend, connStr: connStr}, nil

	default:
		return nil, fmt.Errorf("unsupported history backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			session_id VARCHAR(64) PRIMARY KEY,
			created_at BIGINT NOT NULL,
			leniency VARCHAR(16) NOT NULL,
			total_players INT NOT NULL,
			pods_formed INT NOT NULL,
			unassigned_count INT NOT NULL,
			result_json TEXT NOT NULL
		);
	`, sessionsTable)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", sessionsTable, err)
	}

	return &SessionStoreImpl{db: db, backend: backend, connStr: connStr}, nil
}

// placeholder returns the parameter marker for the backend's dialect.
func (s *SessionStoreImpl) placeholder(n int) string {
	if s.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// SaveSession inserts one session record.
func (s *SessionStoreImpl) SaveSession(rec *SessionRecord) error {
	if s.db == nil {
		return nil
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (session_id, created_at, leniency, total_players, pods_formed, unassigned_count, result_json) VALUES (%s, %s, %s, %s, %s, %s, %s)",
		sessionsTable,
		s.placeholder(1), s.placeholder(2), s.placeholder(3), s.placeholder(4),
		s.placeholder(5), s.placeholder(6), s.placeholder(7),
	)
	_, err := s.db.Exec(query,
		rec.ID, rec.CreatedAt.Unix(), rec.Leniency,
		rec.TotalPlayers, rec.PodsFormed, rec.UnassignedCount, rec.ResultJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", rec.ID, err)
	}
	return nil
}

// ListSessions returns the most recent sessions, newest first. A limit of 0
// or below returns everything.
func (s *SessionStoreImpl) ListSessions(limit int) ([]SessionRecord, error) {
	if s.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(
		"SELECT session_id, created_at, leniency, total_players, pods_formed, unassigned_count, result_json FROM %s ORDER BY created_at DESC, session_id DESC",
		sessionsTable,
	)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var createdAt int64
		if err := rows.Scan(&rec.ID, &createdAt, &rec.Leniency,
			&rec.TotalPlayers, &rec.PodsFormed, &rec.UnassignedCount, &rec.ResultJSON); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		rec.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ClearSessions deletes all history and reports how many rows went away.
func (s *SessionStoreImpl) ClearSessions() (int64, error) {
	if s.db == nil {
		return 0, nil
	}

	res, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s", sessionsTable))
	if err != nil {
		return 0, fmt.Errorf("failed to clear sessions: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, nil // some drivers cannot report the count
	}
	return affected, nil
}

// Status reports the backend, its location and the stored session count.
func (s *SessionStoreImpl) Status() (StoreStatus, error) {
	status := StoreStatus{Backend: string(s.backend), Location: s.connStr}
	if s.db == nil {
		return status, nil
	}

	row := s.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", sessionsTable))
	if err := row.Scan(&status.Sessions); err != nil {
		return status, fmt.Errorf("failed to count sessions: %w", err)
	}
	return status, nil
}

// Close releases the underlying database handle.
func (s *SessionStoreImpl) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
