package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LiquiditySentinel/internal/collector"
	"LiquiditySentinel/internal/model"
)

func obsOn(dates []string, value float64) []model.Observation {
	out := make([]model.Observation, 0, len(dates))
	for _, d := range dates {
		out = append(out, model.Observation{Date: day(d), Value: value})
	}
	return out
}

func TestNetLiquiditySnapshotUsesCommonDatesOnly(t *testing.T) {
	now := day("2024-06-15")

	// All three series publish on 2023-06-07 and 2024-06-12; each also has
	// a later date the others lack, which must not be evaluated.
	fetcher := &collector.MockFetcher{Series: map[string][]model.Observation{
		"WALCL": obsOn([]string{"2023-06-07", "2024-06-12", "2024-06-14"}, 7000),
		"WTREGEN": append(
			obsOn([]string{"2023-06-07"}, 700),
			model.Observation{Date: day("2024-06-12"), Value: 800},
		),
		"RRPONTSYD": append(
			obsOn([]string{"2023-06-07"}, 1800),
			model.Observation{Date: day("2024-06-12"), Value: 500},
			model.Observation{Date: day("2024-06-13"), Value: 400},
		),
	}}

	m := &NetLiquidityMonitor{Fetcher: fetcher}
	res, err := m.Snapshot(now)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-12", res.LatestDate)
	assert.InDelta(t, 7000-800-500, res.LatestValue, 1e-9)
	assert.Equal(t, "2023-06-07", res.YearAgoDate)
	assert.InDelta(t, 7000-700-1800, res.YearAgoValue, 1e-9)

	require.NotNil(t, res.YoY)
	// (5700-4500)/4500*100 ≈ 26.67: well into the expansionary band.
	assert.InDelta(t, 26.6667, *res.YoY, 0.01)
	assert.Equal(t, netLiquidityComment(res.YoY), res.Comment)
}

func TestNetLiquiditySnapshotNoCommonLatestDate(t *testing.T) {
	fetcher := &collector.MockFetcher{Series: map[string][]model.Observation{
		"WALCL":     obsOn([]string{"2024-06-10"}, 7000),
		"WTREGEN":   obsOn([]string{"2024-06-11"}, 800),
		"RRPONTSYD": obsOn([]string{"2024-06-12"}, 500),
	}}

	m := &NetLiquidityMonitor{Fetcher: fetcher}
	_, err := m.Snapshot(day("2024-06-15"))
	assert.ErrorIs(t, err, ErrNoCommonDate)
}

func TestNetLiquiditySnapshotNoYearAgoCommonDate(t *testing.T) {
	dates := []string{"2024-06-05", "2024-06-12"}
	fetcher := &collector.MockFetcher{Series: map[string][]model.Observation{
		"WALCL":     obsOn(dates, 7000),
		"WTREGEN":   obsOn(dates, 800),
		"RRPONTSYD": obsOn(dates, 500),
	}}

	m := &NetLiquidityMonitor{Fetcher: fetcher}
	_, err := m.Snapshot(day("2024-06-15"))
	assert.ErrorIs(t, err, ErrNoCommonDate)
}

func TestNetLiquiditySnapshotPropagatesFetchError(t *testing.T) {
	fetcher := &collector.MockFetcher{Err: collector.ErrDataUnavailable}
	m := &NetLiquidityMonitor{Fetcher: fetcher}
	_, err := m.Snapshot(time.Now())
	assert.ErrorIs(t, err, collector.ErrDataUnavailable)
}

func TestNetLiquidityCommentBands(t *testing.T) {
	assert.Contains(t, netLiquidityComment(nil), "無法計算")
	assert.Contains(t, netLiquidityComment(fptr(8)), "偏多")
	assert.Contains(t, netLiquidityComment(fptr(0)), "中性")
	assert.Contains(t, netLiquidityComment(fptr(-8)), "偏空")
}
