package collector

import (
	"errors"
	"time"

	"LiquiditySentinel/internal/model"
)

// ErrDataUnavailable indicates a series could not be fetched: missing
// credential, non-success HTTP status, or an empty/entirely-filtered payload.
var ErrDataUnavailable = errors.New("series data unavailable")

// ErrScrape indicates the HTML scrape target could not be read or the
// expected element was absent.
var ErrScrape = errors.New("scrape failed")

// SeriesFetcher retrieves a named macro time series over an inclusive
// date range, sorted ascending by date with missing points removed.
type SeriesFetcher interface {
	FetchSeries(seriesID string, start, end time.Time) ([]model.Observation, error)
	Name() string
}
