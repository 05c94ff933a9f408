package dataset

import (
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/cricket-predictor/internal/features"
	"github.com/yourusername/cricket-predictor/internal/models"
)

// ProcessedRow is one row of the processed dataset: the reconstructed match
// state at a single historical delivery plus the match outcome label.
type ProcessedRow struct {
	BattingTeam   string
	BowlingTeam   string
	City          string
	Target        int
	CurrentScore  int
	Overs         float64
	WicketsFallen int
	Result        int
}

// Builder replays historical deliveries into per-ball training rows.
type Builder struct {
	seasonFilter string
	logger       *logrus.Logger
}

// NewBuilder creates a dataset builder. seasonFilter is a substring matched
// against the match table's season column; only matching matches qualify.
func NewBuilder(seasonFilter string, logger *logrus.Logger) *Builder {
	if logger == nil {
		logger = logrus.New()
	}
	return &Builder{seasonFilter: seasonFilter, logger: logger}
}

type matchInfo struct {
	city   string
	winner string
}

// Build produces one processed row per delivery of every qualifying match,
// in delivery-file order. The output is deterministic: identical inputs yield
// an identical row sequence.
//
// Two deliberate reproductions of the upstream batch logic, documented rather
// than corrected:
//   - target is the total runs scored across the whole match (both innings),
//     not the first-innings total a chasing side actually faces;
//   - per-row overs are (over-1)+(ball-1)/6, which is not the tenths-digit
//     convention the live overs input uses. Changing either would change the
//     model against the data it was historically fit on.
func (b *Builder) Build(matches []MatchRecord, deliveries []DeliveryRecord) []ProcessedRow {
	qualifying := make(map[int]matchInfo, len(matches))
	for _, m := range matches {
		if !strings.Contains(m.Season, b.seasonFilter) {
			continue
		}
		qualifying[m.ID] = matchInfo{city: m.City, winner: m.Winner}
	}
	b.logger.WithFields(logrus.Fields{
		"matches":    len(matches),
		"qualifying": len(qualifying),
		"filter":     b.seasonFilter,
	}).Info("Filtered matches by season")

	// First pass: whole-match run totals, used as the chase target.
	targets := make(map[int]int, len(qualifying))
	for _, d := range deliveries {
		if _, ok := qualifying[d.MatchID]; ok {
			targets[d.MatchID] += d.TotalRuns
		}
	}

	type inningsKey struct {
		matchID int
		inning  int
	}
	scores := make(map[inningsKey]int)
	wickets := make(map[inningsKey]int)

	rows := make([]ProcessedRow, 0, len(deliveries))
	dropped := 0
	for _, d := range deliveries {
		info, ok := qualifying[d.MatchID]
		if !ok {
			continue
		}

		key := inningsKey{matchID: d.MatchID, inning: d.Inning}
		scores[key] += d.TotalRuns
		// Strictly-prior wicket count: the current ball's dismissal is
		// counted only for later deliveries.
		fallen := wickets[key]
		if d.PlayerDismissed != "" {
			wickets[key]++
		}

		row := ProcessedRow{
			BattingTeam:   d.BattingTeam,
			BowlingTeam:   d.BowlingTeam,
			City:          info.city,
			Target:        targets[d.MatchID],
			CurrentScore:  scores[key],
			Overs:         deliveryOvers(d.Over, d.Ball),
			WicketsFallen: fallen,
			Result:        boolToLabel(d.BattingTeam == info.winner && info.winner != ""),
		}

		if row.BattingTeam == "" || row.BowlingTeam == "" || row.City == "" {
			dropped++
			continue
		}
		rows = append(rows, row)
	}

	b.logger.WithFields(logrus.Fields{
		"rows":    len(rows),
		"dropped": dropped,
	}).Info("Built processed dataset")

	return rows
}

// deliveryOvers is the training-time overs convention: overs elapsed at the
// start of the given delivery, as a plain fraction of a 6-ball over. It is
// intentionally distinct from features.OversToBalls, which reads the tenths
// digit of a live overs input.
func deliveryOvers(over, ball int) float64 {
	return float64(over-1) + float64(ball-1)/6.0
}

// Examples converts processed rows into training examples using the same
// feature arithmetic the trainer has always applied: balls left via the
// tenths-digit converter, a NaN run rate when no overs have been bowled
// (filtered out before fitting rather than defaulted).
func Examples(rows []ProcessedRow) []models.TrainingExample {
	examples := make([]models.TrainingExample, 0, len(rows))
	for _, row := range rows {
		ballsLeft := float64(features.BallsRemaining(row.Overs))
		runsLeft := float64(row.Target - row.CurrentScore)

		crr := math.NaN()
		if row.Overs > 0 {
			crr = float64(row.CurrentScore) / row.Overs
		}
		rrr := 0.0
		if ballsLeft > 0 {
			rrr = runsLeft * 6 / ballsLeft
		}

		examples = append(examples, models.TrainingExample{
			Features: models.FeatureVector{
				BattingTeam: row.BattingTeam,
				BowlingTeam: row.BowlingTeam,
				City:        row.City,
				RunsLeft:    runsLeft,
				BallsLeft:   ballsLeft,
				WicketsLeft: float64(10 - row.WicketsFallen),
				CRR:         crr,
				RRR:         rrr,
			},
			Result: row.Result,
		})
	}
	return examples
}

func boolToLabel(b bool) int {
	if b {
		return 1
	}
	return 0
}
