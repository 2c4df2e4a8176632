package usecase

import (
	"errors"
	"testing"

	"github.com/pucklab/icesync/external/hockeyref"
)

func goalieTable(rows [][]string) hockeyref.Table {
	return hockeyref.Table{
		ID:     "goalies",
		Header: [][]string{goalieBasicHeader},
		Rows:   rows,
	}
}

func TestNormalizePlayerTable(t *testing.T) {
	t.Run("fills empty cells and drops the aggregate row", func(t *testing.T) {
		table := hockeyref.Table{
			Header: [][]string{skaterBasicHeader},
			Rows: [][]string{
				{"Jack Eichel", "1", "2", "3", "", "0", "1", "0", "0", "0", "2", "0", "0", "4", "25.0", "21", "18:33"},
				{"TOTAL", "3", "5", "8", "", "6", "2", "1", "0", "1", "4", "1", "0", "31", "9.7", "", ""},
			},
		}

		cleaned, err := normalizePlayerTable(table, skaterBasicHeader)
		if err != nil {
			t.Fatalf("normalize: %v", err)
		}
		if len(cleaned.rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(cleaned.rows))
		}
		row := cleaned.rows[0]
		if row[0] != "Jack Eichel" {
			t.Fatalf("unexpected name %q", row[0])
		}
		if row[4] != "0" {
			t.Fatalf("empty +/- cell not zero-filled, got %q", row[4])
		}
	})

	t.Run("keeps the last row when it is not an aggregate", func(t *testing.T) {
		table := goalieTable([][]string{
			{"Goalie A", "W", "2", "30", "28", ".933", "0", "0", "60:00"},
			{"Goalie B", "", "1", "10", "9", ".900", "0", "0", "12:41"},
		})

		cleaned, err := normalizePlayerTable(table, goalieBasicHeader)
		if err != nil {
			t.Fatalf("normalize: %v", err)
		}
		if len(cleaned.rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(cleaned.rows))
		}
	})

	t.Run("aligns rows when the header carries a leading rank column", func(t *testing.T) {
		header := append([]string{"Rk"}, skaterAdvancedHeader...)
		table := hockeyref.Table{
			Header: [][]string{header},
			Rows: [][]string{
				{"1", "Cale Makar", "5", "20", "14", "58.8", "4.2", "10", "4", "71.4", "2", "3"},
			},
		}

		cleaned, err := normalizePlayerTable(table, skaterAdvancedHeader)
		if err != nil {
			t.Fatalf("normalize: %v", err)
		}
		if cleaned.rows[0][0] != "Cale Makar" {
			t.Fatalf("expected name first, got %q", cleaned.rows[0][0])
		}
	})

	t.Run("rejects a reshaped header", func(t *testing.T) {
		header := make([]string, len(skaterBasicHeader))
		copy(header, skaterBasicHeader)
		header[3] = "P" // renamed points column
		table := hockeyref.Table{
			Header: [][]string{header},
			Rows:   [][]string{{"Jack Eichel", "1", "2", "3", "0", "0", "1", "0", "0", "0", "2", "0", "0", "4", "25.0", "21", "18:33"}},
		}

		_, err := normalizePlayerTable(table, skaterBasicHeader)
		if !errors.Is(err, ErrDataShape) {
			t.Fatalf("expected ErrDataShape, got %v", err)
		}
	})

	t.Run("rejects a header missing the player column", func(t *testing.T) {
		table := hockeyref.Table{
			Header: [][]string{{"Rk", "G", "A"}},
			Rows:   [][]string{{"1", "2", "3"}},
		}

		_, err := normalizePlayerTable(table, skaterBasicHeader)
		if !errors.Is(err, ErrDataShape) {
			t.Fatalf("expected ErrDataShape, got %v", err)
		}
	})
}

func TestNormalizeGoalieTable(t *testing.T) {
	t.Run("folds the empty-net row into the preceding goalie", func(t *testing.T) {
		lines, err := normalizeGoalieTable(goalieTable([][]string{
			{"Goalie A", "L", "3", "30", "27", ".900", "0", "0", "58:45"},
			{"Empty Net", "", "1", "1", "0", "", "0", "0", "1:15"},
		}))
		if err != nil {
			t.Fatalf("normalize: %v", err)
		}
		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(lines))
		}
		line := lines[0]
		if line.cells[0] != "Goalie A" {
			t.Fatalf("unexpected goalie %q", line.cells[0])
		}
		if !line.emptyNet || line.emptyNetGA != 1 {
			t.Fatalf("empty-net fold missing: %+v", line)
		}
	})

	t.Run("drops rows rendered after the empty-net marker", func(t *testing.T) {
		lines, err := normalizeGoalieTable(goalieTable([][]string{
			{"Goalie A", "W", "2", "25", "23", ".920", "0", "0", "59:02"},
			{"Empty Net", "", "0", "0", "0", "", "0", "0", "0:58"},
			{"Goalie B", "", "0", "2", "2", "1.000", "0", "0", "0:58"},
		}))
		if err != nil {
			t.Fatalf("normalize: %v", err)
		}
		if len(lines) != 1 {
			t.Fatalf("expected artifact row dropped, got %d lines", len(lines))
		}
		if lines[0].cells[0] != "Goalie A" {
			t.Fatalf("unexpected goalie %q", lines[0].cells[0])
		}
	})

	t.Run("keeps both goalies when the net was never empty", func(t *testing.T) {
		lines, err := normalizeGoalieTable(goalieTable([][]string{
			{"Goalie A", "W", "2", "25", "23", ".920", "0", "0", "40:00"},
			{"Goalie B", "", "0", "8", "8", "1.000", "0", "0", "20:00"},
		}))
		if err != nil {
			t.Fatalf("normalize: %v", err)
		}
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		for _, line := range lines {
			if line.emptyNet {
				t.Fatalf("unexpected empty-net flag on %q", line.cells[0])
			}
		}
	})

	t.Run("clears the zero-filled decision of a relief goalie", func(t *testing.T) {
		lines, err := normalizeGoalieTable(goalieTable([][]string{
			{"Goalie A", "L", "4", "20", "16", ".800", "0", "0", "31:12"},
			{"Goalie B", "", "1", "14", "13", ".929", "0", "0", "28:48"},
		}))
		if err != nil {
			t.Fatalf("normalize: %v", err)
		}
		if got := lines[1].cells[1]; got != "" {
			t.Fatalf("expected blank decision, got %q", got)
		}
	})

	t.Run("marker without a preceding goalie is a shape error", func(t *testing.T) {
		_, err := normalizeGoalieTable(goalieTable([][]string{
			{"Empty Net", "", "1", "1", "0", "", "0", "0", "1:15"},
		}))
		if !errors.Is(err, ErrDataShape) {
			t.Fatalf("expected ErrDataShape, got %v", err)
		}
	})
}

func TestNormalizeTeamTotals(t *testing.T) {
	table := hockeyref.Table{
		Header: [][]string{skaterBasicHeader},
		Rows: [][]string{
			{"Jack Eichel", "1", "2", "3", "0", "0", "1", "0", "0", "0", "2", "0", "0", "4", "25.0", "21", "18:33"},
			{"TOTAL", "3", "5", "8", "", "6", "2", "1", "0", "", "", "", "", "31", "9.7", "", ""},
		},
	}

	cells, err := normalizeTeamTotals(table, teamBasicMetrics)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	want := []string{"3", "5", "8", "6", "2", "1", "0", "31", "9.7"}
	if len(cells) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(cells))
	}
	for idx := range want {
		if cells[idx] != want[idx] {
			t.Fatalf("cell %d: got %q, want %q", idx, cells[idx], want[idx])
		}
	}

	_, err = normalizeTeamTotals(table, teamAdvancedMetrics)
	if !errors.Is(err, ErrDataShape) {
		t.Fatalf("expected ErrDataShape on metric count mismatch, got %v", err)
	}
}

func TestParseTOICell(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "18:33", want: 1113},
		{in: "60:00", want: 3600},
		{in: "0:58", want: 58},
		{in: "", want: 0},
		{in: "0", want: 0},
		{in: "18", wantErr: true},
		{in: "18:75", wantErr: true},
	}
	for _, tc := range cases {
		got, err := parseTOICell(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parseTOICell(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseTOICell(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parseTOICell(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
