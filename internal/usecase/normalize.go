package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pucklab/icesync/external/hockeyref"
)

// Expected collapsed headers per category, starting at the Player column.
// The source renders the goals/assists situational groups with repeated
// EV/PP/SH labels; collapsing keeps the innermost level.
var (
	skaterBasicHeader = []string{
		"Player", "G", "A", "PTS", "+/-", "PIM",
		"EV", "PP", "SH", "GW", "EV", "PP", "SH",
		"S", "S%", "SHFT", "TOI",
	}
	skaterAdvancedHeader = []string{
		"Player", "ICF", "SAT-F", "SAT-A", "CF%", "CRel%",
		"ZSO", "DZS", "oZS%", "HIT", "BLK",
	}
	goalieBasicHeader = []string{
		"Player", "DEC", "GA", "SA", "SV", "SV%", "SO", "PIM", "TOI",
	}
)

const (
	teamBasicMetrics    = 9 // g a pts pim evg ppg shg sog sp
	teamAdvancedMetrics = 6 // satf sata cfp ozsp hit blk
	emptyNetMarker      = "Empty Net"
	totalRowLabel       = "TOTAL"
)

// playerTable is a cleaned player-keyed table: dense rows in source order,
// cells aligned to the category's expected header, name first.
type playerTable struct {
	rows [][]string
}

// goalieLine is one real goalie appearance with any empty-net pseudo-row
// already folded in.
type goalieLine struct {
	cells      []string
	emptyNet   bool
	emptyNetGA int
}

// normalizePlayerTable strips header artifacts and the trailing aggregate
// row from one side's skater or goalie table and aligns every row to the
// expected header. Missing cells become "0"; a header mismatch is a shape
// error rather than silently mis-mapped columns.
func normalizePlayerTable(t hockeyref.Table, expected []string) (playerTable, error) {
	header := t.CollapsedHeader()
	offset := -1
	for idx, name := range header {
		if name == expected[0] {
			offset = idx
			break
		}
	}
	if offset < 0 {
		return playerTable{}, fmt.Errorf("%w: no %q column in header %v", ErrDataShape, expected[0], header)
	}
	if len(header)-offset != len(expected) {
		return playerTable{}, fmt.Errorf("%w: expected %d columns from %q, header has %d",
			ErrDataShape, len(expected), expected[0], len(header)-offset)
	}
	for idx, want := range expected {
		if header[offset+idx] != want {
			return playerTable{}, fmt.Errorf("%w: column %d is %q, expected %q",
				ErrDataShape, idx, header[offset+idx], want)
		}
	}

	if len(t.Rows) == 0 {
		return playerTable{}, fmt.Errorf("%w: table has no rows", ErrDataShape)
	}

	// The trailing aggregate row belongs to the team categories, not here.
	body := t.Rows
	if isTotalRow(body[len(body)-1]) {
		body = body[:len(body)-1]
	}
	out := make([][]string, 0, len(body))
	for _, raw := range body {
		if len(raw) < offset+1 {
			return playerTable{}, fmt.Errorf("%w: row %v shorter than header offset", ErrDataShape, raw)
		}
		cells := make([]string, len(expected))
		copy(cells, raw[offset:])
		for idx := 1; idx < len(cells); idx++ {
			if strings.TrimSpace(cells[idx]) == "" {
				cells[idx] = "0"
			}
		}
		cells[0] = strings.TrimSpace(cells[0])
		if cells[0] == "" {
			return playerTable{}, fmt.Errorf("%w: row with empty player name", ErrDataShape)
		}
		out = append(out, cells)
	}

	return playerTable{rows: out}, nil
}

// normalizeGoalieTable additionally folds empty-net pseudo-rows into the
// preceding goalie. A real goalie entry showing up after an empty-net marker
// is a rendering artifact of the source and is dropped.
func normalizeGoalieTable(t hockeyref.Table) ([]goalieLine, error) {
	cleaned, err := normalizePlayerTable(t, goalieBasicHeader)
	if err != nil {
		return nil, err
	}

	gaIdx := 2 // GA column within goalieBasicHeader
	out := make([]goalieLine, 0, len(cleaned.rows))
	markerSeen := false
	for _, cells := range cleaned.rows {
		if cells[0] == emptyNetMarker {
			if len(out) == 0 {
				return nil, fmt.Errorf("%w: empty-net marker with no preceding goalie row", ErrDataShape)
			}
			ga, err := parseIntCell(cells[gaIdx])
			if err != nil {
				return nil, fmt.Errorf("%w: empty-net goals against: %v", ErrDataShape, err)
			}
			out[len(out)-1].emptyNet = true
			out[len(out)-1].emptyNetGA = ga
			markerSeen = true
			continue
		}
		if markerSeen {
			// Anything after the marker is noise, not an appearance.
			continue
		}
		out = append(out, goalieLine{cells: cells})
	}

	// Blank decisions mean the goalie finished without one on record.
	for idx := range out {
		if out[idx].cells[1] == "0" {
			out[idx].cells[1] = ""
		}
	}

	return out, nil
}

// normalizeTeamTotals extracts the aggregate row of one side's table: last
// row, empty cells dropped, the TOTAL label stripped, exactly want metric
// values left over.
func normalizeTeamTotals(t hockeyref.Table, want int) ([]string, error) {
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("%w: table has no rows", ErrDataShape)
	}

	last := t.Rows[len(t.Rows)-1]
	cells := make([]string, 0, len(last))
	for _, cell := range last {
		cell = strings.TrimSpace(cell)
		if cell == "" || cell == totalRowLabel {
			continue
		}
		cells = append(cells, cell)
	}
	if len(cells) != want {
		return nil, fmt.Errorf("%w: totals row has %d values, expected %d", ErrDataShape, len(cells), want)
	}

	return cells, nil
}

func isTotalRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) == totalRowLabel {
			return true
		}
	}
	return false
}

func parseIntCell(cell string) (int, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(cell)
	if err != nil {
		return 0, fmt.Errorf("parse integer cell %q: %w", cell, err)
	}
	return value, nil
}

func parseFloatCell(cell string) (float64, error) {
	cell = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(cell), "%"))
	if cell == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("parse numeric cell %q: %w", cell, err)
	}
	return value, nil
}

// parseTOICell converts the source's MM:SS time-on-ice rendering to seconds.
func parseTOICell(cell string) (int, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "0" {
		return 0, nil
	}
	minutesRaw, secondsRaw, found := strings.Cut(cell, ":")
	if !found {
		return 0, fmt.Errorf("parse time on ice %q: missing colon", cell)
	}
	minutes, err := strconv.Atoi(minutesRaw)
	if err != nil {
		return 0, fmt.Errorf("parse time on ice %q: %w", cell, err)
	}
	seconds, err := strconv.Atoi(secondsRaw)
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("parse time on ice %q: invalid seconds", cell)
	}
	return minutes*60 + seconds, nil
}
