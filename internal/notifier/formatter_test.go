package notifier

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"LiquiditySentinel/internal/history"
	"LiquiditySentinel/internal/model"
	"LiquiditySentinel/internal/monitor"
	"LiquiditySentinel/internal/strategy"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestYoYString(t *testing.T) {
	assert.Equal(t, "N/A", yoyString(nil))
	assert.Equal(t, "+3.25%", yoyString(fptr(3.25)))
	assert.Equal(t, "-0.50%", yoyString(fptr(-0.5)))
}

func TestBillionsUsesSeparators(t *testing.T) {
	assert.Equal(t, "57,432.5", billions(57432.5))
	assert.Equal(t, "800", billions(800))
}

func TestFormatSeriesBlock(t *testing.T) {
	yoy := fptr(12.5)
	res := &monitor.SeriesResult{
		Spec: monitor.TGASpec,
		Snapshot: model.SeriesSnapshot{
			SeriesID:       "WTREGEN",
			LatestDate:     time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
			LatestValue:    8123.4,
			ReferenceDate:  time.Date(2023, 6, 7, 0, 0, 0, 0, time.UTC),
			ReferenceValue: 7221.6,
			YoY:            yoy,
		},
		Comment: monitor.TGASpec.Comment(yoy),
	}

	block := FormatSeriesBlock(res)
	assert.Contains(t, block, monitor.TGASpec.Title)
	assert.Contains(t, block, "8,123.4")
	assert.Contains(t, block, "7,221.6")
	assert.Contains(t, block, "+12.50%")
	assert.Contains(t, block, "2024-06-12")
	assert.Contains(t, block, "解讀：")
}

func TestFormatNetLiquidityBlockWithMissingYoY(t *testing.T) {
	res := &monitor.NetLiquidityResult{
		LatestDate:   "2024-06-12",
		LatestValue:  57000,
		YearAgoDate:  "2023-06-07",
		YearAgoValue: 0,
		YoY:          nil,
		Comment:      "Net Liquidity 年增率無法計算。",
	}
	block := FormatNetLiquidityBlock(res)
	assert.Contains(t, block, "WALCL − TGA − RRP")
	assert.Contains(t, block, "57,000")
	assert.Contains(t, block, "N/A")
}

func TestFormatRepoBlock(t *testing.T) {
	stats := &monitor.RepoStats{
		LatestDate:  "2024-06-14",
		LatestValue: 18.0,
		Avg7:        12.34,
		MaxValue:    25.0,
		MaxDate:     "2024-06-03",
	}
	block := FormatRepoBlock(stats, strategy.AssessRepoStress(stats.LatestValue))
	assert.Contains(t, block, "Level 3")
	assert.Contains(t, block, "系統性壓力升溫")
	assert.Contains(t, block, "12.34")
	assert.Contains(t, block, "2024-06-03")
	assert.Contains(t, block, "策略提示：")
}

func TestBuildRiskLine(t *testing.T) {
	assert.Contains(t, BuildRiskLine(nil), "N/A")

	line := BuildRiskLine(iptr(45))
	assert.Contains(t, line, "45/100")
	assert.Contains(t, line, "中性風險")
}

func TestBuildBriefMessageAssembly(t *testing.T) {
	trend := history.TrendSections{
		Week:       []string{"📉 *指標趨勢（過去 7 天）*", "• 流動性 YoY：持平（→）"},
		Month:      []string{"📆 *指標趨勢（過去 30 天）*"},
		CycleShift: "🔄 *週期變化* — 歷史資料不足，尚無明確比較。",
	}
	msg := BuildBriefMessage("summary-line", "cycle-line", "escape-line", "risk-line", "position-line", trend)

	assert.True(t, strings.HasPrefix(msg, "📌【短版摘要】"))
	for _, part := range []string{"summary-line", "cycle-line", "escape-line", "risk-line", "position-line"} {
		assert.Contains(t, msg, part)
	}
	// Headline block precedes the trend blocks.
	assert.Less(t, strings.Index(msg, "position-line"), strings.Index(msg, "過去 7 天"))
	assert.Less(t, strings.Index(msg, "過去 7 天"), strings.Index(msg, "過去 30 天"))
	assert.Less(t, strings.Index(msg, "過去 30 天"), strings.Index(msg, "週期變化"))
}
