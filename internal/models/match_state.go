// Package models defines the domain types shared across the prediction pipeline.
package models

// MatchState is a live snapshot of a T20 run chase as entered by a caller.
type MatchState struct {
	BattingTeam   string  `json:"batting_team" validate:"required"`
	BowlingTeam   string  `json:"bowling_team" validate:"required,nefield=BattingTeam"`
	City          string  `json:"city" validate:"required"`
	Target        int     `json:"target" validate:"gte=0"`
	CurrentScore  int     `json:"current_score" validate:"gte=0"`
	OversDone     float64 `json:"overs_done" validate:"gte=0,lte=20"`
	WicketsFallen int     `json:"wickets_fallen" validate:"gte=0,lte=10"`
}

// HasSelections reports whether all three categorical fields are populated.
func (s MatchState) HasSelections() bool {
	return s.BattingTeam != "" && s.BowlingTeam != "" && s.City != ""
}
