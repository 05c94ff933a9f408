package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteProcessed writes the processed dataset as CSV with a fixed header.
func WriteProcessed(w io.Writer, rows []ProcessedRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(processedColumns); err != nil {
		return fmt.Errorf("failed to write processed header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.BattingTeam,
			row.BowlingTeam,
			row.City,
			strconv.Itoa(row.Target),
			strconv.Itoa(row.CurrentScore),
			strconv.FormatFloat(row.Overs, 'f', -1, 64),
			strconv.Itoa(row.WicketsFallen),
			strconv.Itoa(row.Result),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write processed row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadProcessed parses a processed dataset back from CSV. The header is
// schema-checked first; a missing column aborts with a SchemaError before
// any row is read.
func ReadProcessed(r io.Reader) ([]ProcessedRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read processed header: %w", err)
	}
	idx, err := columnIndex("processed", header, processedColumns)
	if err != nil {
		return nil, err
	}

	var rows []ProcessedRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read processed row: %w", err)
		}

		row := ProcessedRow{
			BattingTeam: field(record, idx["batting_team"]),
			BowlingTeam: field(record, idx["bowling_team"]),
			City:        field(record, idx["city"]),
		}
		if row.Target, err = parseIntField(field(record, idx["target"])); err != nil {
			return nil, fmt.Errorf("processed row has invalid target: %w", err)
		}
		if row.CurrentScore, err = parseIntField(field(record, idx["current_score"])); err != nil {
			return nil, fmt.Errorf("processed row has invalid current_score: %w", err)
		}
		if row.Overs, err = strconv.ParseFloat(field(record, idx["overs"]), 64); err != nil {
			return nil, fmt.Errorf("processed row has invalid overs: %w", err)
		}
		if row.WicketsFallen, err = parseIntField(field(record, idx["wickets_fallen"])); err != nil {
			return nil, fmt.Errorf("processed row has invalid wickets_fallen: %w", err)
		}
		if row.Result, err = parseIntField(field(record, idx["result"])); err != nil {
			return nil, fmt.Errorf("processed row has invalid result: %w", err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
