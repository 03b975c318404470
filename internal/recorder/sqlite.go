package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run telemetry to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers (e.g. Grafana) don't block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS run_snapshots (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			run_id      TEXT NOT NULL,
			nl_yoy      REAL,
			repo_level  INTEGER,
			yc_spread   REAL,
			stage       TEXT,
			label       TEXT,
			risk_score  INTEGER,
			delivered   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_ts ON run_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS delivery_events (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			run_id    TEXT NOT NULL,
			kind      TEXT,
			ok        INTEGER,
			detail    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_delivery_ts ON delivery_events(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(snap *RunSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO run_snapshots
		(timestamp, run_id, nl_yoy, repo_level, yc_spread, stage, label, risk_score, delivered)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.RunID,
		snap.NLYoY, snap.RepoLevel, snap.YCSpread,
		snap.Stage, snap.Label, snap.RiskScore, snap.Delivered,
	)
	return err
}

func (r *SQLiteRecorder) RecordDelivery(evt *DeliveryEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO delivery_events
		(timestamp, run_id, kind, ok, detail)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.RunID, evt.Kind, evt.OK, evt.Detail,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
