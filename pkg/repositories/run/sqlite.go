package run

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fadedpez/anteup/pkg/entities"
	_ "github.com/mattn/go-sqlite3"
)

// SQLite table schemas
const (
	createRunRecordsTableSQL = `
	CREATE TABLE IF NOT EXISTS run_records (
		run_id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		won BOOLEAN NOT NULL,
		ante_reached INTEGER NOT NULL,
		rounds_played INTEGER NOT NULL,
		hands_played INTEGER NOT NULL,
		best_hand_type TEXT NOT NULL,
		best_hand_score INTEGER NOT NULL,
		final_money INTEGER NOT NULL,
		joker_types TEXT NOT NULL,  -- JSON array of joker names
		completed_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

	createHandRecordsTableSQL = `
	CREATE TABLE IF NOT EXISTS hand_records (
		id TEXT PRIMARY KEY,
		run_id TEXT NOT NULL,
		ante INTEGER NOT NULL,
		blind TEXT NOT NULL,
		round INTEGER NOT NULL,
		hand_type TEXT NOT NULL,
		chips INTEGER NOT NULL,
		mult INTEGER NOT NULL,
		score INTEGER NOT NULL,
		cards_played TEXT NOT NULL,  -- JSON array of card strings
		created_at TIMESTAMP NOT NULL,
		FOREIGN KEY (run_id) REFERENCES run_records(run_id) ON DELETE CASCADE
	)`

	createRecordIndexesSQL = `
	CREATE INDEX IF NOT EXISTS idx_run_records_completed ON run_records(completed_at DESC);
	CREATE INDEX IF NOT EXISTS idx_hand_records_run ON hand_records(run_id)`
)

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite repository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Ensure the directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	// Open the database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Create tables if they don't exist
	if _, err := db.Exec(createRunRecordsTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating run_records table: %w", err)
	}

	if _, err := db.Exec(createHandRecordsTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating hand_records table: %w", err)
	}

	if _, err := db.Exec(createRecordIndexesSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating record indexes: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveRunRecord stores a run record, replacing any earlier record for the same run
func (r *SQLiteRepository) SaveRunRecord(ctx context.Context, record *entities.RunRecord) error {
	jokersJSON, err := json.Marshal(record.JokerTypes)
	if err != nil {
		return err
	}

	// Use UPSERT syntax for SQLite
	query := `
		INSERT INTO run_records (
			run_id, seed, won, ante_reached, rounds_played, hands_played,
			best_hand_type, best_hand_score, final_money, joker_types, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id)
		DO UPDATE SET won = ?, ante_reached = ?, rounds_played = ?, hands_played = ?,
			best_hand_type = ?, best_hand_score = ?, final_money = ?,
			joker_types = ?, completed_at = ?`

	_, err = r.db.ExecContext(ctx, query,
		record.RunID, record.Seed, record.Won, record.AnteReached, record.RoundsPlayed,
		record.HandsPlayed, record.BestHandType, record.BestHandScore, record.FinalMoney,
		jokersJSON, record.CompletedAt,
		record.Won, record.AnteReached, record.RoundsPlayed, record.HandsPlayed,
		record.BestHandType, record.BestHandScore, record.FinalMoney,
		jokersJSON, record.CompletedAt)
	return err
}

// GetRunRecord retrieves a run record by ID
func (r *SQLiteRepository) GetRunRecord(ctx context.Context, runID string) (*entities.RunRecord, error) {
	query := `
		SELECT run_id, seed, won, ante_reached, rounds_played, hands_played,
		       best_hand_type, best_hand_score, final_money, joker_types, completed_at
		FROM run_records
		WHERE run_id = ?`

	var record entities.RunRecord
	var jokersJSON []byte
	err := r.db.QueryRowContext(ctx, query, runID).Scan(
		&record.RunID, &record.Seed, &record.Won, &record.AnteReached, &record.RoundsPlayed,
		&record.HandsPlayed, &record.BestHandType, &record.BestHandScore, &record.FinalMoney,
		&jokersJSON, &record.CompletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil // No record stored for this run
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(jokersJSON, &record.JokerTypes); err != nil {
		return nil, err
	}

	return &record, nil
}

// ListRecentRuns retrieves the most recently completed runs, newest first.
// A non-positive limit returns every stored run.
func (r *SQLiteRepository) ListRecentRuns(ctx context.Context, limit int) ([]*entities.RunRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite reads a negative LIMIT as no limit
	}

	query := `
		SELECT run_id, seed, won, ante_reached, rounds_played, hands_played,
		       best_hand_type, best_hand_score, final_money, joker_types, completed_at
		FROM run_records
		ORDER BY completed_at DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*entities.RunRecord{}
	for rows.Next() {
		var record entities.RunRecord
		var jokersJSON []byte
		if err := rows.Scan(
			&record.RunID, &record.Seed, &record.Won, &record.AnteReached, &record.RoundsPlayed,
			&record.HandsPlayed, &record.BestHandType, &record.BestHandScore, &record.FinalMoney,
			&jokersJSON, &record.CompletedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(jokersJSON, &record.JokerTypes); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, rows.Err()
}

// SaveHandRecord stores a scored hand for a run
func (r *SQLiteRepository) SaveHandRecord(ctx context.Context, record *entities.HandRecord) error {
	cardsJSON, err := json.Marshal(record.CardsPlayed)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO hand_records (
			id, run_id, ante, blind, round, hand_type,
			chips, mult, score, cards_played, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		record.ID, record.RunID, record.Ante, record.Blind, record.Round,
		record.HandType, record.Chips, record.Mult, record.Score,
		cardsJSON, record.CreatedAt)
	return err
}

// GetHandRecords retrieves the scored hands for a run in play order
func (r *SQLiteRepository) GetHandRecords(ctx context.Context, runID string) ([]*entities.HandRecord, error) {
	query := `
		SELECT id, run_id, ante, blind, round, hand_type,
		       chips, mult, score, cards_played, created_at
		FROM hand_records
		WHERE run_id = ?
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*entities.HandRecord{}
	for rows.Next() {
		var record entities.HandRecord
		var cardsJSON []byte
		if err := rows.Scan(
			&record.ID, &record.RunID, &record.Ante, &record.Blind, &record.Round,
			&record.HandType, &record.Chips, &record.Mult, &record.Score,
			&cardsJSON, &record.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(cardsJSON, &record.CardsPlayed); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, rows.Err()
}

// GetRunStatistics aggregates statistics across all stored runs
func (r *SQLiteRepository) GetRunStatistics(ctx context.Context) (*entities.RunStatistics, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN won THEN 1 ELSE 0 END), 0),
		       COALESCE(MAX(best_hand_score), 0),
		       COALESCE(AVG(ante_reached), 0)
		FROM run_records`

	var stats entities.RunStatistics
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalRuns, &stats.Wins, &stats.BestScore, &stats.AvgAnte,
	)
	if err != nil {
		return nil, err
	}

	stats.Losses = stats.TotalRuns - stats.Wins
	return &stats, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
