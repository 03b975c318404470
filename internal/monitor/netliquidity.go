package monitor

import (
	"errors"
	"fmt"
	"time"

	"LiquiditySentinel/internal/calculator"
	"LiquiditySentinel/internal/collector"
)

// ErrNoCommonDate indicates the three net-liquidity source series share
// no publication date, either at the latest point or a year back.
var ErrNoCommonDate = errors.New("no common date across series")

const (
	seriesBalanceSheet = "WALCL"
	seriesTGA          = "WTREGEN"
	seriesRRP          = "RRPONTSYD"

	netLiquidityLookback = 500
)

// NetLiquidityResult holds Net Liquidity = WALCL − TGA − RRP evaluated at
// the latest and year-ago common dates.
type NetLiquidityResult struct {
	LatestDate   string
	LatestValue  float64
	YearAgoDate  string
	YearAgoValue float64
	YoY          *float64
	Comment      string
}

// NetLiquidityMonitor derives system-wide dollar liquidity from three
// series with independent publication calendars.
type NetLiquidityMonitor struct {
	Fetcher collector.SeriesFetcher
}

// Snapshot fetches all three series and evaluates net liquidity only at
// dates present in every series.
func (m *NetLiquidityMonitor) Snapshot(now time.Time) (*NetLiquidityResult, error) {
	start := now.AddDate(0, 0, -netLiquidityLookback)

	walcl, err := m.fetchMap(seriesBalanceSheet, start, now)
	if err != nil {
		return nil, err
	}
	tga, err := m.fetchMap(seriesTGA, start, now)
	if err != nil {
		return nil, err
	}
	rrp, err := m.fetchMap(seriesRRP, start, now)
	if err != nil {
		return nil, err
	}

	common := calculator.CommonDates(walcl, tga, rrp)
	if len(common) == 0 {
		return nil, fmt.Errorf("%w: latest", ErrNoCommonDate)
	}
	latestDate := common[len(common)-1]

	latestDay, _ := time.Parse("2006-01-02", latestDate)
	yearAgoDate, ok := calculator.LatestAtOrBefore(common, latestDay.AddDate(0, 0, -365))
	if !ok {
		return nil, fmt.Errorf("%w: year ago", ErrNoCommonDate)
	}

	latestValue := walcl[latestDate] - tga[latestDate] - rrp[latestDate]
	yearAgoValue := walcl[yearAgoDate] - tga[yearAgoDate] - rrp[yearAgoDate]
	yoy := calculator.YoYPercent(latestValue, yearAgoValue)

	return &NetLiquidityResult{
		LatestDate:   latestDate,
		LatestValue:  latestValue,
		YearAgoDate:  yearAgoDate,
		YearAgoValue: yearAgoValue,
		YoY:          yoy,
		Comment:      netLiquidityComment(yoy),
	}, nil
}

func (m *NetLiquidityMonitor) fetchMap(seriesID string, start, end time.Time) (calculator.DateValueMap, error) {
	observations, err := m.Fetcher.FetchSeries(seriesID, start, end)
	if err != nil {
		return nil, err
	}
	return calculator.ToDateValueMap(observations), nil
}

func netLiquidityComment(yoy *float64) string {
	switch {
	case yoy == nil:
		return "Net Liquidity 年增率無法計算。"
	case *yoy > 5:
		return "Net Liquidity 年增率轉正且明顯上升，代表整體流動性在回補，對風險資產偏多。"
	case *yoy > -5:
		return "Net Liquidity 約持平，流動性對市場影響中性。"
	default:
		return "Net Liquidity 年增率為負，代表政策仍在抽水階段，對風險資產偏空。"
	}
}
