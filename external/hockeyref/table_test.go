package hockeyref

import "testing"

const sampleHTML = `
<html><body>
<table id="scores">
  <thead><tr><th>Date</th><th>Visitor</th></tr></thead>
  <tbody>
    <tr><td>2024-01-01</td><td>Buffalo Sabres</td></tr>
    <tr class="thead"><td>Date</td><td>Visitor</td></tr>
    <tr><td>2024-01-02</td><td>Toronto Maple Leafs</td></tr>
  </tbody>
</table>
<!--
<table id="hidden_adv">
  <thead>
    <tr><th colspan="2">ALL</th></tr>
    <tr><th>Player</th><th>ICF</th></tr>
  </thead>
  <tbody><tr><th>Tage Thompson</th><td>5</td></tr></tbody>
  <tfoot><tr><th>TOTAL</th><td>40</td></tr></tfoot>
</table>
-->
</body></html>`

func TestParseTables(t *testing.T) {
	tables := parseTables(sampleHTML, "")
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables (one unwrapped from comments), got %d", len(tables))
	}

	t.Run("skips repeated header rows", func(t *testing.T) {
		if len(tables[0].Rows) != 2 {
			t.Fatalf("expected 2 body rows, got %d: %v", len(tables[0].Rows), tables[0].Rows)
		}
		if tables[0].Rows[1][1] != "Toronto Maple Leafs" {
			t.Fatalf("unexpected row content: %v", tables[0].Rows[1])
		}
	})

	t.Run("unwraps commented tables and keeps footer rows", func(t *testing.T) {
		adv := tables[1]
		if adv.ID != "hidden_adv" {
			t.Fatalf("unexpected table id: %s", adv.ID)
		}
		if len(adv.Rows) != 2 {
			t.Fatalf("expected body+footer rows, got %v", adv.Rows)
		}
		if adv.Rows[1][0] != "TOTAL" {
			t.Fatalf("expected TOTAL footer row last, got %v", adv.Rows[1])
		}
	})

	t.Run("collapses multi-level headers", func(t *testing.T) {
		header := tables[1].CollapsedHeader()
		if len(header) != 2 || header[0] != "Player" || header[1] != "ICF" {
			t.Fatalf("unexpected collapsed header: %v", header)
		}
	})
}

func TestParseTablesMatch(t *testing.T) {
	tables := parseTables(sampleHTML, "Tage Thompson")
	if len(tables) != 1 {
		t.Fatalf("expected 1 matching table, got %d", len(tables))
	}
	if tables[0].ID != "hidden_adv" {
		t.Fatalf("unexpected matched table: %s", tables[0].ID)
	}
}
