package dataset

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/yourusername/cricket-predictor/internal/models"
)

const matchesCSV = `id,Season,city,team1,team2,winner
1,IPL 2023,Chennai,Chennai Super Kings,Mumbai Indians,Chennai Super Kings
2,IPL 2023,Mumbai,Mumbai Indians,Gujarat Titans,Gujarat Titans
`

const deliveriesCSV = `match_id,inning,over,ball,batting_team,bowling_team,total_runs,player_dismissed
1,1,1,1,Mumbai Indians,Chennai Super Kings,4,
1,1,1,2,Mumbai Indians,Chennai Super Kings,0,RG Sharma
`

func TestReadMatches(t *testing.T) {
	matches, err := ReadMatches(strings.NewReader(matchesCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].ID != 1 || matches[0].City != "Chennai" || matches[0].Winner != "Chennai Super Kings" {
		t.Errorf("unexpected first match: %+v", matches[0])
	}
	if matches[1].Season != "IPL 2023" {
		t.Errorf("season = %q, want IPL 2023", matches[1].Season)
	}
}

func TestReadMatchesMissingColumn(t *testing.T) {
	csv := "id,city,team1,team2\n1,Chennai,A,B\n"
	_, err := ReadMatches(strings.NewReader(csv))

	var schemaErr *models.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if schemaErr.Table != "matches" {
		t.Errorf("table = %q, want matches", schemaErr.Table)
	}
}

func TestReadDeliveries(t *testing.T) {
	deliveries, err := ReadDeliveries(strings.NewReader(deliveriesCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deliveries) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(deliveries))
	}
	if deliveries[0].TotalRuns != 4 || deliveries[0].PlayerDismissed != "" {
		t.Errorf("unexpected first delivery: %+v", deliveries[0])
	}
	if deliveries[1].PlayerDismissed != "RG Sharma" {
		t.Errorf("player_dismissed = %q, want RG Sharma", deliveries[1].PlayerDismissed)
	}
}

func TestReadDeliveriesMissingColumn(t *testing.T) {
	csv := "match_id,inning,over\n1,1,1\n"
	_, err := ReadDeliveries(strings.NewReader(csv))

	var schemaErr *models.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestReadDeliveriesInvalidNumeric(t *testing.T) {
	csv := "match_id,inning,over,ball,batting_team,bowling_team,total_runs,player_dismissed\nnope,1,1,1,A,B,0,\n"
	if _, err := ReadDeliveries(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for non-numeric match_id")
	}
}

func TestProcessedRoundTrip(t *testing.T) {
	rows := []ProcessedRow{
		{BattingTeam: "A", BowlingTeam: "B", City: "C", Target: 180, CurrentScore: 95, Overs: 10.5, WicketsFallen: 3, Result: 1},
		{BattingTeam: "B", BowlingTeam: "A", City: "D", Target: 150, CurrentScore: 20, Overs: 1.0 / 6, WicketsFallen: 0, Result: 0},
	}

	var buf bytes.Buffer
	if err := WriteProcessed(&buf, rows); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := ReadProcessed(&buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("expected %d rows, got %d", len(rows), len(got))
	}
	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("row %d: got %+v, want %+v", i, got[i], rows[i])
		}
	}
}

func TestReadProcessedMissingColumn(t *testing.T) {
	csv := "batting_team,bowling_team,city\nA,B,C\n"
	_, err := ReadProcessed(strings.NewReader(csv))

	var schemaErr *models.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if schemaErr.Table != "processed" {
		t.Errorf("table = %q, want processed", schemaErr.Table)
	}
}
