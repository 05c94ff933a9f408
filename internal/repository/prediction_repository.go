// Package repository persists served predictions for later analysis.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/cricket-predictor/internal/database"
	"github.com/yourusername/cricket-predictor/internal/models"
)

// PredictionRepository stores the audit log of served predictions.
type PredictionRepository struct {
	db *database.DB
}

// NewPredictionRepository creates a prediction repository.
func NewPredictionRepository(db *database.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// EnsureSchema creates the predictions table when it does not exist.
func (r *PredictionRepository) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS predictions (
	id UUID PRIMARY KEY,
	batting_team TEXT NOT NULL,
	bowling_team TEXT NOT NULL,
	city TEXT NOT NULL,
	win_probability DOUBLE PRECISION NOT NULL,
	loss_probability DOUBLE PRECISION NOT NULL,
	runs_left INTEGER NOT NULL,
	balls_left INTEGER NOT NULL,
	wickets_left INTEGER NOT NULL,
	crr DOUBLE PRECISION NOT NULL,
	rrr DOUBLE PRECISION NOT NULL,
	predicted_at TIMESTAMPTZ NOT NULL
)`
	if err := r.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create predictions table: %w", err)
	}
	return nil
}

// Insert records a served prediction.
func (r *PredictionRepository) Insert(ctx context.Context, p *models.Prediction) error {
	const query = `
INSERT INTO predictions (
	id, batting_team, bowling_team, city,
	win_probability, loss_probability,
	runs_left, balls_left, wickets_left, crr, rrr, predicted_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	err := r.db.Exec(ctx, query,
		p.ID, p.BattingTeam, p.BowlingTeam, p.City,
		p.WinProbability, p.LossProbability,
		p.RunsLeft, p.BallsLeft, p.WicketsLeft, p.CRR, p.RRR, p.PredictedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}
	return nil
}

// GetByID fetches a single recorded prediction.
func (r *PredictionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Prediction, error) {
	const query = `
SELECT id, batting_team, bowling_team, city,
	win_probability, loss_probability,
	runs_left, balls_left, wickets_left, crr, rrr, predicted_at
FROM predictions WHERE id = $1`

	p := &models.Prediction{}
	row := r.db.QueryRow(ctx, query, id)
	err := row.Scan(
		&p.ID, &p.BattingTeam, &p.BowlingTeam, &p.City,
		&p.WinProbability, &p.LossProbability,
		&p.RunsLeft, &p.BallsLeft, &p.WicketsLeft, &p.CRR, &p.RRR, &p.PredictedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get prediction %s: %w", id, err)
	}
	return p, nil
}

// GetRecent returns the most recently served predictions, newest first.
func (r *PredictionRepository) GetRecent(ctx context.Context, since time.Time, limit int) ([]*models.Prediction, error) {
	const query = `
SELECT id, batting_team, bowling_team, city,
	win_probability, loss_probability,
	runs_left, balls_left, wickets_left, crr, rrr, predicted_at
FROM predictions
WHERE predicted_at >= $1
ORDER BY predicted_at DESC
LIMIT $2`

	rows, err := r.db.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent predictions: %w", err)
	}
	defer rows.Close()

	var predictions []*models.Prediction
	for rows.Next() {
		p := &models.Prediction{}
		if err := rows.Scan(
			&p.ID, &p.BattingTeam, &p.BowlingTeam, &p.City,
			&p.WinProbability, &p.LossProbability,
			&p.RunsLeft, &p.BallsLeft, &p.WicketsLeft, &p.CRR, &p.RRR, &p.PredictedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan prediction row: %w", err)
		}
		predictions = append(predictions, p)
	}
	return predictions, rows.Err()
}
