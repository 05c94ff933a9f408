package models

import (
	"time"

	"github.com/google/uuid"
)

// Prediction is the predictor service's response: the probability pair plus
// the derived summary fields callers display alongside it.
type Prediction struct {
	ID              uuid.UUID `json:"id"`
	BattingTeam     string    `json:"batting_team"`
	BowlingTeam     string    `json:"bowling_team"`
	City            string    `json:"city"`
	WinProbability  float64   `json:"win_probability"`
	LossProbability float64   `json:"loss_probability"`
	RunsLeft        int       `json:"runs_left"`
	BallsLeft       int       `json:"balls_left"`
	WicketsLeft     int       `json:"wickets_left"`
	CRR             float64   `json:"crr"`
	RRR             float64   `json:"rrr"`
	PredictedAt     time.Time `json:"predicted_at"`
}

// Favourite returns the team the model currently favours.
func (p *Prediction) Favourite() string {
	if p.WinProbability >= p.LossProbability {
		return p.BattingTeam
	}
	return p.BowlingTeam
}
