package usecase

import (
	"context"

	"github.com/pucklab/icesync/external/hockeyref"
)

// TableFetcher is the fetch capability every service depends on: GET one page
// and return its tables in page order. A non-empty match keeps only tables
// whose text contains it. Implemented by hockeyref.Client; stubbed in tests.
type TableFetcher interface {
	FetchTables(ctx context.Context, path, match string) ([]hockeyref.Table, error)
}
