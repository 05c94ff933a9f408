// Package dataset builds training examples from historical ball-by-ball records.
package dataset

import (
	"strings"

	"github.com/yourusername/cricket-predictor/internal/models"
)

// Column names of the raw match table, one row per match.
const (
	colMatchID = "id"
	colSeason  = "season"
	colCity    = "city"
	colTeam1   = "team1"
	colTeam2   = "team2"
	colWinner  = "winner"
)

// Column names of the raw delivery table, one row per ball bowled.
const (
	colDeliveryMatchID = "match_id"
	colInning          = "inning"
	colOver            = "over"
	colBall            = "ball"
	colBattingTeam     = "batting_team"
	colBowlingTeam     = "bowling_team"
	colTotalRuns       = "total_runs"
	colPlayerDismissed = "player_dismissed"
)

// Column names of the processed dataset consumed by the trainer.
var processedColumns = []string{
	"batting_team", "bowling_team", "city",
	"target", "current_score", "overs", "wickets_fallen",
	"result",
}

var matchColumns = []string{colMatchID, colSeason, colCity, colTeam1, colTeam2, colWinner}

var deliveryColumns = []string{
	colDeliveryMatchID, colInning, colOver, colBall,
	colBattingTeam, colBowlingTeam, colTotalRuns, colPlayerDismissed,
}

// columnIndex maps a CSV header row to column positions, checking that every
// required column is present. Header names are matched case-insensitively
// ("Season" and "season" both appear in published IPL exports). The whole
// batch job aborts on the first missing column; nothing is processed on a
// schema violation.
func columnIndex(table string, header []string, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, models.NewSchemaError(table, name)
		}
	}
	return idx, nil
}
