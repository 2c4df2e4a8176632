package hockeyref

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Table is one HTML table lifted off a page: header rows top to bottom
// (boxscore tables carry a situational level above the stat level) and body
// rows in page order, every cell as trimmed text. Footer totals rows are
// appended after the body rows, matching how the tables read on the page.
type Table struct {
	ID     string
	Header [][]string
	Rows   [][]string
}

// CollapsedHeader reduces a multi-level header to its innermost level.
func (t Table) CollapsedHeader() []string {
	if len(t.Header) == 0 {
		return nil
	}
	return t.Header[len(t.Header)-1]
}

func parseTables(html, match string) []Table {
	// Sports-reference ships several boxscore tables inside HTML comments so
	// they render lazily; unwrap them before parsing or the fixed per-page
	// table indices no longer line up.
	html = strings.ReplaceAll(html, "<!--", "")
	html = strings.ReplaceAll(html, "-->", "")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var tables []Table
	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		if match != "" && !strings.Contains(sel.Text(), match) {
			return
		}

		t := Table{ID: sel.AttrOr("id", "")}
		sel.Find("thead tr").Each(func(_ int, tr *goquery.Selection) {
			t.Header = append(t.Header, cellTexts(tr))
		})
		sel.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
			// Long tables repeat the header mid-body; those rows are markup,
			// not data.
			if tr.HasClass("thead") {
				return
			}
			t.Rows = append(t.Rows, cellTexts(tr))
		})
		sel.Find("tfoot tr").Each(func(_ int, tr *goquery.Selection) {
			t.Rows = append(t.Rows, cellTexts(tr))
		})

		tables = append(tables, t)
	})

	return tables
}

func cellTexts(tr *goquery.Selection) []string {
	var cells []string
	tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, strings.TrimSpace(cell.Text()))
	})
	return cells
}
