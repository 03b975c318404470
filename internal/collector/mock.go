package collector

import (
	"fmt"
	"time"

	"LiquiditySentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string][]model.Observation
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSeries(seriesID string, start, end time.Time) ([]model.Observation, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	observations, ok := m.Series[seriesID]
	if !ok {
		return nil, fmt.Errorf("%w: mock has no series %s", ErrDataUnavailable, seriesID)
	}
	var out []model.Observation
	for _, obs := range observations {
		if obs.Date.Before(start) || obs.Date.After(end) {
			continue
		}
		out = append(out, obs)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: mock series %s empty in range", ErrDataUnavailable, seriesID)
	}
	return out, nil
}

// GenerateMockSeries produces a smooth daily series ending today, useful
// for exercising the full pipeline without credentials.
func GenerateMockSeries(base float64, days int) []model.Observation {
	observations := make([]model.Observation, days)
	for i := 0; i < days; i++ {
		observations[i] = model.Observation{
			Date:  time.Now().AddDate(0, 0, -(days - i)),
			Value: base * (1 + float64(i-days/2)*0.0005),
		}
	}
	return observations
}
