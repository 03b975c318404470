package monitor

import (
	"time"

	"LiquiditySentinel/internal/collector"
)

const (
	seriesRepoSubmitted = "RPONTSYSAD"

	repoLookback = 120
)

// RepoStats holds the raw repo-submission statistics over the fetched
// window. Stress classification lives in the strategy package.
type RepoStats struct {
	LatestDate  string
	LatestValue float64
	Avg7        float64 // mean of the last 7 observations, fewer if short
	MaxValue    float64
	MaxDate     string
}

// RepoMonitor watches overnight repo Treasury submissions.
type RepoMonitor struct {
	Fetcher collector.SeriesFetcher
}

// Snapshot fetches the recent window and derives latest value, trailing
// 7-observation average and period high.
func (m *RepoMonitor) Snapshot(now time.Time) (*RepoStats, error) {
	start := now.AddDate(0, 0, -repoLookback)
	observations, err := m.Fetcher.FetchSeries(seriesRepoSubmitted, start, now)
	if err != nil {
		return nil, err
	}

	latest := observations[len(observations)-1]

	tail := observations
	if len(tail) > 7 {
		tail = tail[len(tail)-7:]
	}
	sum := 0.0
	for _, obs := range tail {
		sum += obs.Value
	}
	avg7 := sum / float64(len(tail))

	maxObs := observations[0]
	for _, obs := range observations[1:] {
		if obs.Value > maxObs.Value {
			maxObs = obs
		}
	}

	return &RepoStats{
		LatestDate:  latest.Date.Format("2006-01-02"),
		LatestValue: latest.Value,
		Avg7:        avg7,
		MaxValue:    maxObs.Value,
		MaxDate:     maxObs.Date.Format("2006-01-02"),
	}, nil
}
