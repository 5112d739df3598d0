// Package results provides SQLite-based storage for finished-run history.
// The game loop itself never touches storage; runs are recorded after the
// fact for later comparison across experiments.
package results

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/allocsim/internal/game"
)

// DB wraps a SQLite connection for run-history storage.
type DB struct {
	conn *sqlx.DB
}

// RunInfo summarizes one recorded run.
type RunInfo struct {
	ID             string  `db:"id"`
	CreatedAt      string  `db:"created_at"`
	Rounds         int     `db:"rounds"`
	TotalResources float64 `db:"total_resources"`
	AgentCount     int     `db:"agent_count"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		rounds INTEGER NOT NULL,
		total_resources REAL NOT NULL,
		agent_count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_agents (
		run_id TEXT NOT NULL,
		name TEXT NOT NULL,
		capability REAL NOT NULL,
		resource_need REAL NOT NULL,
		selfishness REAL NOT NULL,
		final_strategy REAL NOT NULL,
		final_payoff REAL NOT NULL,
		final_resources REAL NOT NULL,
		PRIMARY KEY (run_id, name)
	);

	CREATE TABLE IF NOT EXISTS samples (
		run_id TEXT NOT NULL,
		round INTEGER NOT NULL,
		agent TEXT NOT NULL,
		allocation REAL NOT NULL,
		payoff REAL NOT NULL,
		PRIMARY KEY (run_id, round, agent)
	);

	CREATE INDEX IF NOT EXISTS idx_samples_run ON samples(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun records a finished run's agents and round history. Returns the
// generated run ID.
func (db *DB) SaveRun(agents []*game.Agent, poolTotal float64, hist *game.History) (string, error) {
	runID := uuid.NewString()

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO runs (id, created_at, rounds, total_resources, agent_count) VALUES (?, ?, ?, ?, ?)",
		runID, time.Now().UTC().Format(time.RFC3339), hist.Rounds, poolTotal, len(agents),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, a := range agents {
		_, err := tx.Exec(`INSERT INTO run_agents
			(run_id, name, capability, resource_need, selfishness,
			 final_strategy, final_payoff, final_resources)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, a.Name, a.Capability, a.ResourceNeed, a.Selfishness,
			a.Strategy, a.Payoff, a.ResourcesAllocated,
		)
		if err != nil {
			return "", fmt.Errorf("insert agent %s: %w", a.Name, err)
		}
	}

	stmt, err := tx.Preparex(
		"INSERT INTO samples (run_id, round, agent, allocation, payoff) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, a := range agents {
		payoffs := hist.Payoffs[a.Name]
		allocations := hist.Allocations[a.Name]
		for i := range payoffs {
			if _, err := stmt.Exec(runID, i+1, a.Name, allocations[i], payoffs[i]); err != nil {
				return "", fmt.Errorf("insert sample round %d agent %s: %w", i+1, a.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("run recorded", "run_id", runID, "rounds", hist.Rounds, "agents", len(agents))
	return runID, nil
}

// RecentRuns returns the most recently recorded runs, newest first.
func (db *DB) RecentRuns(limit int) ([]RunInfo, error) {
	var runs []RunInfo
	err := db.conn.Select(&runs,
		"SELECT id, created_at, rounds, total_resources, agent_count FROM runs ORDER BY created_at DESC LIMIT ?",
		limit,
	)
	return runs, err
}

// RunHistory reloads a recorded run's history in the shape the game loop
// produced it.
func (db *DB) RunHistory(runID string) (*game.History, error) {
	var rounds int
	if err := db.conn.Get(&rounds, "SELECT rounds FROM runs WHERE id = ?", runID); err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}

	rows, err := db.conn.Queryx(
		"SELECT round, agent, allocation, payoff FROM samples WHERE run_id = ? ORDER BY round, agent",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("load samples: %w", err)
	}
	defer rows.Close()

	hist := &game.History{
		Rounds:      rounds,
		Payoffs:     make(map[string][]float64),
		Allocations: make(map[string][]float64),
	}
	for rows.Next() {
		var round int
		var agent string
		var allocation, payoff float64
		if err := rows.Scan(&round, &agent, &allocation, &payoff); err != nil {
			return nil, err
		}
		hist.Payoffs[agent] = append(hist.Payoffs[agent], payoff)
		hist.Allocations[agent] = append(hist.Allocations[agent], allocation)
	}
	return hist, rows.Err()
}
