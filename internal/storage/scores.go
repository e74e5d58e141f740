package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ScoreEntry represents a single recorded game result.
type ScoreEntry struct {
	ID             int64
	SessionID      string
	Score          int
	CompletedLevel int
	CreatedAt      time.Time
}

// Stats contains aggregated statistics over all recorded games.
type Stats struct {
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestLevel  int
	LastPlayed time.Time
}

// SaveScore appends a game result.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(sessionID string, score, completedLevel int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (session_id, score, completed_level) VALUES (?, ?, ?)",
		sessionID, score, completedLevel,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordScore appends a game result, discarding the row ID.
func (s *Store) RecordScore(sessionID string, score, completedLevel int) error {
	_, err := s.SaveScore(sessionID, score, completedLevel)
	return err
}

// TopScores retrieves the top N scores.
// Results are ordered by score descending, earlier entries first on ties.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, score, completed_level, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Score, &e.CompletedLevel, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score.
// Returns 0 if no scores exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all recorded scores.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec("DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetStats retrieves aggregated statistics.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	// Get count, high, avg, total, best level
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(MAX(completed_level), 0)
		 FROM scores`,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.BestLevel)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		"SELECT created_at FROM scores ORDER BY created_at DESC, id DESC LIMIT 1",
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
