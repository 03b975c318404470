package monitor

import (
	"fmt"
	"time"

	"LiquiditySentinel/internal/calculator"
	"LiquiditySentinel/internal/collector"
)

const (
	series2Y  = "DGS2"
	series10Y = "DGS10"

	yieldCurveLookback = 60
)

// YieldCurveResult holds the 2Y−10Y Treasury spread at the latest date
// published for both maturities. Positive spread means inversion has a
// conventional 2Y>10Y shape here (spread = 2Y − 10Y).
type YieldCurveResult struct {
	Date    string
	Value2Y float64
	Value10 float64
	Spread  float64
	Comment string
}

// YieldCurveMonitor watches the 2Y vs 10Y Treasury yield spread.
type YieldCurveMonitor struct {
	Fetcher collector.SeriesFetcher
}

func (m *YieldCurveMonitor) Snapshot(now time.Time) (*YieldCurveResult, error) {
	start := now.AddDate(0, 0, -yieldCurveLookback)

	obs2y, err := m.Fetcher.FetchSeries(series2Y, start, now)
	if err != nil {
		return nil, err
	}
	obs10y, err := m.Fetcher.FetchSeries(series10Y, start, now)
	if err != nil {
		return nil, err
	}

	map2y := calculator.ToDateValueMap(obs2y)
	map10y := calculator.ToDateValueMap(obs10y)
	common := calculator.CommonDates(map2y, map10y)
	if len(common) == 0 {
		return nil, fmt.Errorf("%w: yield curve", ErrNoCommonDate)
	}
	latest := common[len(common)-1]

	spread := map2y[latest] - map10y[latest]

	return &YieldCurveResult{
		Date:    latest,
		Value2Y: map2y[latest],
		Value10: map10y[latest],
		Spread:  spread,
		Comment: yieldCurveComment(spread),
	}, nil
}

func yieldCurveComment(spread float64) string {
	switch {
	case spread < -0.75:
		return "殖利率深度倒掛，衰退機率偏高（歷史特徵）。"
	case spread < 0:
		return "殖利率倒掛，市場仍有衰退疑慮。"
	case spread < 0.4:
		return "殖利率曲線剛恢復正常化，市場開始反映經濟改善。"
	default:
		return "殖利率大幅正常化，市場偏向風險資產。"
	}
}
