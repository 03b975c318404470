package monitor

import (
	"fmt"
	"time"

	"LiquiditySentinel/internal/calculator"
	"LiquiditySentinel/internal/collector"
	"LiquiditySentinel/internal/model"
)

// YoYRule is one ordered interpretation band for a series' YoY value.
// Cmp +1 matches yoy > Threshold, -1 matches yoy < Threshold; the first
// matching rule wins.
type YoYRule struct {
	Cmp       int
	Threshold float64
	Text      string
}

// SeriesSpec configures one generic YoY monitor: FRED series id, report
// title, fetch window, and the interpretation phrasing.
type SeriesSpec struct {
	ID       string
	Title    string
	Lookback int    // days
	NilText  string // comment when YoY cannot be computed
	Rules    []YoYRule
	Fallback string
}

// Comment resolves the interpretation text for a YoY value.
func (s SeriesSpec) Comment(yoy *float64) string {
	if yoy == nil {
		return s.NilText
	}
	for _, r := range s.Rules {
		if (r.Cmp > 0 && *yoy > r.Threshold) || (r.Cmp < 0 && *yoy < r.Threshold) {
			return r.Text
		}
	}
	return s.Fallback
}

// FedBalanceSheetSpec, TGASpec and RRPSpec are the three single-series
// YoY monitors. Thresholds and phrasing are fixed product copy.
var (
	FedBalanceSheetSpec = SeriesSpec{
		ID:       "WALCL",
		Title:    "🏦 *Fed 資產負債表（WALCL）*",
		Lookback: 500,
		NilText:  "Fed 資產負債表年增率無法計算。",
		Rules: []YoYRule{
			{Cmp: 1, Threshold: 5, Text: "Fed 資產負債表擴張，處於類 QE 或非常溫和的寬鬆狀態。"},
			{Cmp: 1, Threshold: -2, Text: "Fed 資產負債表大致持平，對流動性影響中性。"},
		},
		Fallback: "Fed 資產負債表縮減，QT 對市場的抽水效應仍在持續。",
	}

	TGASpec = SeriesSpec{
		ID:       "WTREGEN",
		Title:    "🏛 *TGA（Treasury General Account）*",
		Lookback: 400,
		NilText:  "TGA 年增率無法計算，需搭配其他指標觀察。",
		Rules: []YoYRule{
			{Cmp: 1, Threshold: 20, Text: "財政部大幅提高 TGA 餘額，等於從銀行體系抽走大量現金，對風險資產偏空。"},
			{Cmp: 1, Threshold: 0, Text: "TGA 較去年溫和上升，對流動性略帶壓力。"},
			{Cmp: -1, Threshold: -20, Text: "TGA 明顯下降，代表政府把現金重新打回民間，對流動性偏多。"},
		},
		Fallback: "TGA 變化有限，對整體流動性影響中性。",
	}

	RRPSpec = SeriesSpec{
		ID:       "RRPONTSYD",
		Title:    "💧 *RRP（Reverse Repo 餘額）*",
		Lookback: 400,
		NilText:  "RRP 年增率無法計算，需搭配其他指標觀察。",
		Rules: []YoYRule{
			{Cmp: -1, Threshold: -70, Text: "RRP 餘額大幅縮水，說明市場把現金從 Fed 倉庫領出，對風險資產偏多。"},
			{Cmp: -1, Threshold: 0, Text: "RRP 較去年下降，釋放部份流動性。"},
			{Cmp: 1, Threshold: 50, Text: "RRP 明顯上升，代表市場把錢停在 Fed，整體流動性偏緊。"},
		},
		Fallback: "RRP 變化有限，流動性邊際影響中性。",
	}
)

// SeriesResult is the generic monitor output: derived snapshot plus the
// resolved interpretation text.
type SeriesResult struct {
	Spec     SeriesSpec
	Snapshot model.SeriesSnapshot
	Comment  string
}

// SeriesMonitor fetches one series and computes its YoY snapshot.
type SeriesMonitor struct {
	Fetcher collector.SeriesFetcher
	Spec    SeriesSpec
}

// Snapshot fetches the configured window ending now and resolves latest,
// year-ago reference and YoY.
func (m *SeriesMonitor) Snapshot(now time.Time) (*SeriesResult, error) {
	start := now.AddDate(0, 0, -m.Spec.Lookback)
	observations, err := m.Fetcher.FetchSeries(m.Spec.ID, start, now)
	if err != nil {
		return nil, err
	}

	latest := observations[len(observations)-1]
	reference, err := calculator.FindYearAgo(observations, latest.Date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.Spec.ID, err)
	}
	yoy := calculator.YoYPercent(latest.Value, reference.Value)

	return &SeriesResult{
		Spec: m.Spec,
		Snapshot: model.SeriesSnapshot{
			SeriesID:       m.Spec.ID,
			LatestDate:     latest.Date,
			LatestValue:    latest.Value,
			ReferenceDate:  reference.Date,
			ReferenceValue: reference.Value,
			YoY:            yoy,
		},
		Comment: m.Spec.Comment(yoy),
	}, nil
}
