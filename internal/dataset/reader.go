package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MatchRecord is one row of the raw match table.
type MatchRecord struct {
	ID     int
	Season string
	City   string
	Team1  string
	Team2  string
	Winner string
}

// DeliveryRecord is one row of the raw delivery table.
type DeliveryRecord struct {
	MatchID         int
	Inning          int
	Over            int
	Ball            int
	BattingTeam     string
	BowlingTeam     string
	TotalRuns       int
	PlayerDismissed string
}

// ReadMatches parses the match table from CSV. The header is schema-checked
// before any row is read; a missing column is a fatal SchemaError.
func ReadMatches(r io.Reader) ([]MatchRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read matches header: %w", err)
	}
	idx, err := columnIndex("matches", header, matchColumns)
	if err != nil {
		return nil, err
	}

	var matches []MatchRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read matches row: %w", err)
		}

		id, err := parseIntField(field(row, idx[colMatchID]))
		if err != nil {
			return nil, fmt.Errorf("matches row has invalid id: %w", err)
		}

		matches = append(matches, MatchRecord{
			ID:     id,
			Season: field(row, idx[colSeason]),
			City:   field(row, idx[colCity]),
			Team1:  field(row, idx[colTeam1]),
			Team2:  field(row, idx[colTeam2]),
			Winner: field(row, idx[colWinner]),
		})
	}

	return matches, nil
}

// ReadDeliveries parses the delivery table from CSV, one record per ball, in
// file order. Row order is preserved: the builder relies on it for running
// scores and wicket counts.
func ReadDeliveries(r io.Reader) ([]DeliveryRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read deliveries header: %w", err)
	}
	idx, err := columnIndex("deliveries", header, deliveryColumns)
	if err != nil {
		return nil, err
	}

	var deliveries []DeliveryRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read deliveries row: %w", err)
		}

		d := DeliveryRecord{
			BattingTeam:     field(row, idx[colBattingTeam]),
			BowlingTeam:     field(row, idx[colBowlingTeam]),
			PlayerDismissed: field(row, idx[colPlayerDismissed]),
		}
		if d.MatchID, err = parseIntField(field(row, idx[colDeliveryMatchID])); err != nil {
			return nil, fmt.Errorf("deliveries row has invalid match_id: %w", err)
		}
		if d.Inning, err = parseIntField(field(row, idx[colInning])); err != nil {
			return nil, fmt.Errorf("deliveries row has invalid inning: %w", err)
		}
		if d.Over, err = parseIntField(field(row, idx[colOver])); err != nil {
			return nil, fmt.Errorf("deliveries row has invalid over: %w", err)
		}
		if d.Ball, err = parseIntField(field(row, idx[colBall])); err != nil {
			return nil, fmt.Errorf("deliveries row has invalid ball: %w", err)
		}
		if d.TotalRuns, err = parseIntField(field(row, idx[colTotalRuns])); err != nil {
			return nil, fmt.Errorf("deliveries row has invalid total_runs: %w", err)
		}

		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseIntField(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return v, nil
}
