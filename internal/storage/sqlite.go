// Package storage provides SQLite-based persistence for analysis reports.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/litetux-lab/internal/metrics"
)

// Store manages the SQLite database connection for report persistence.
type Store struct {
	db *sql.DB
}

// ReportEntry is one stored analysis of a level.
type ReportEntry struct {
	ID         int64
	LevelID    string
	TileSet    string
	Source     string // file the level was read from, if any
	Report     metrics.Report
	Fitness    float64
	HasFitness bool
	CreatedAt  time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID      string
	Analyses     int
	BestFitness  float64
	Completable  int // analyses that found the level completable
	LastAnalyzed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			tileset TEXT NOT NULL,
			source TEXT NOT NULL DEFAULT '',
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			empty INTEGER NOT NULL,
			interesting INTEGER NOT NULL,
			enemies INTEGER NOT NULL,
			hazards INTEGER NOT NULL,
			rewards INTEGER NOT NULL,
			leniency INTEGER NOT NULL,
			adj_leniency REAL NOT NULL,
			path_leniency REAL NOT NULL,
			completable INTEGER NOT NULL,
			linearity REAL NOT NULL,
			negative_space REAL NOT NULL,
			density REAL NOT NULL,
			gaps INTEGER NOT NULL,
			jumps INTEGER NOT NULL,
			required_jumps INTEGER NOT NULL,
			reward_jumps INTEGER NOT NULL,
			placement_violations INTEGER NOT NULL,
			usage_violations INTEGER NOT NULL,
			furthest_column INTEGER NOT NULL,
			fitness REAL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_reports_level_id ON reports(level_id);
		CREATE INDEX IF NOT EXISTS idx_reports_fitness ON reports(fitness DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReport records an analysis. Returns the ID of the inserted record.
func (s *Store) SaveReport(e ReportEntry) (int64, error) {
	r := e.Report
	var fitness sql.NullFloat64
	if e.HasFitness {
		fitness = sql.NullFloat64{Float64: e.Fitness, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO reports
		 (level_id, tileset, source, width, height,
		  empty, interesting, enemies, hazards, rewards,
		  leniency, adj_leniency, path_leniency, completable,
		  linearity, negative_space, density, gaps,
		  jumps, required_jumps, reward_jumps,
		  placement_violations, usage_violations, furthest_column, fitness)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.LevelID, e.TileSet, e.Source, r.Width, r.Height,
		r.Empty, r.Interesting, r.Enemies, r.Hazards, r.Rewards,
		r.Leniency, r.AdjustedLeniency, r.PathLeniency, r.Completable,
		r.Linearity, r.NegativeSpace, r.Density, r.Gaps,
		r.Jumps, r.RequiredJumps, r.RewardJumps,
		r.PlacementViolations, r.UsageViolations, r.FurthestColumn, fitness,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const selectReports = `
	SELECT id, level_id, tileset, source, width, height,
	       empty, interesting, enemies, hazards, rewards,
	       leniency, adj_leniency, path_leniency, completable,
	       linearity, negative_space, density, gaps,
	       jumps, required_jumps, reward_jumps,
	       placement_violations, usage_violations, furthest_column, fitness, created_at
	FROM reports`

// RecentReports retrieves the most recent reports across all levels.
func (s *Store) RecentReports(limit int) ([]ReportEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryReports(selectReports+` ORDER BY id DESC LIMIT ?`, limit)
}

// ReportsForLevel retrieves the reports of one level, newest first.
func (s *Store) ReportsForLevel(levelID string, limit int) ([]ReportEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryReports(selectReports+` WHERE level_id = ? ORDER BY id DESC LIMIT ?`, levelID, limit)
}

// BestReports retrieves the top N reports by fitness.
// Reports stored without a fitness score are skipped.
func (s *Store) BestReports(limit int) ([]ReportEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryReports(selectReports+` WHERE fitness IS NOT NULL ORDER BY fitness DESC, id ASC LIMIT ?`, limit)
}

func (s *Store) queryReports(query string, args ...any) ([]ReportEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query reports: %w", err)
	}
	defer rows.Close()

	var entries []ReportEntry
	for rows.Next() {
		var e ReportEntry
		var fitness sql.NullFloat64
		var createdAt any
		r := &e.Report
		if err := rows.Scan(
			&e.ID, &e.LevelID, &e.TileSet, &e.Source, &r.Width, &r.Height,
			&r.Empty, &r.Interesting, &r.Enemies, &r.Hazards, &r.Rewards,
			&r.Leniency, &r.AdjustedLeniency, &r.PathLeniency, &r.Completable,
			&r.Linearity, &r.NegativeSpace, &r.Density, &r.Gaps,
			&r.Jumps, &r.RequiredJumps, &r.RewardJumps,
			&r.PlacementViolations, &r.UsageViolations, &r.FurthestColumn, &fitness, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Fitness, e.HasFitness = fitness.Float64, fitness.Valid
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearReports deletes all reports for the given level, or every report
// when levelID is empty.
func (s *Store) ClearReports(levelID string) error {
	var err error
	if levelID == "" {
		_, err = s.db.Exec("DELETE FROM reports")
	} else {
		_, err = s.db.Exec("DELETE FROM reports WHERE level_id = ?", levelID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear reports: %w", err)
	}
	return nil
}

// AllLevelStats retrieves statistics for every level that has been analysed.
func (s *Store) AllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), COALESCE(MAX(fitness), 0), SUM(completable), MAX(created_at)
		 FROM reports
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastAnalyzed any
		if err := rows.Scan(&ls.LevelID, &ls.Analyses, &ls.BestFitness, &ls.Completable, &lastAnalyzed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastAnalyzed = parseTime(lastAnalyzed)
		stats[ls.LevelID] = &ls
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime reads a DATETIME column, which the driver may return as
// time.Time or as text.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
