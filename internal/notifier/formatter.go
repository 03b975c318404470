package notifier

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"LiquiditySentinel/internal/history"
	"LiquiditySentinel/internal/model"
	"LiquiditySentinel/internal/monitor"
	"LiquiditySentinel/internal/strategy"
)

func yoyString(yoy *float64) string {
	if yoy == nil {
		return "N/A"
	}
	return fmt.Sprintf("%+.2f%%", *yoy)
}

// billions formats a billions-USD value with thousands separators.
func billions(v float64) string {
	return humanize.CommafWithDigits(v, 1)
}

// FormatSeriesBlock renders the detailed block for a generic YoY monitor.
func FormatSeriesBlock(res *monitor.SeriesResult) string {
	snap := res.Snapshot
	var b strings.Builder
	b.WriteString(res.Spec.Title + "\n")
	b.WriteString(fmt.Sprintf("最新值：*%s* 億美元（%s）\n", billions(snap.LatestValue), snap.LatestDate.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("一年前：`%s` 億美元（%s）\n", billions(snap.ReferenceValue), snap.ReferenceDate.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("年增率 YoY：*%s*\n", yoyString(snap.YoY)))
	b.WriteString("解讀：" + res.Comment)
	return b.String()
}

// FormatNetLiquidityBlock renders the Net Liquidity dashboard block.
func FormatNetLiquidityBlock(res *monitor.NetLiquidityResult) string {
	var b strings.Builder
	b.WriteString("🌊 *Net Liquidity（WALCL − TGA − RRP）*\n")
	b.WriteString(fmt.Sprintf("最新值：*%s* 億美元（%s）\n", billions(res.LatestValue), res.LatestDate))
	b.WriteString(fmt.Sprintf("一年前：`%s` 億美元（%s）\n", billions(res.YearAgoValue), res.YearAgoDate))
	b.WriteString(fmt.Sprintf("年增率 YoY：*%s*\n", yoyString(res.YoY)))
	b.WriteString("總體解讀：" + res.Comment)
	return b.String()
}

// FormatRepoBlock renders the repo stress radar block from raw stats and
// the classified stress banding.
func FormatRepoBlock(stats *monitor.RepoStats, stress strategy.RepoStress) string {
	var b strings.Builder
	b.WriteString("📊 *美國 Repo 壓力雷達*（RPONTSYSAD）\n")
	b.WriteString(fmt.Sprintf("日期：`%s`\n", stats.LatestDate))
	b.WriteString(fmt.Sprintf("當日國債提交額：*%.1f* 億美元\n", stats.LatestValue))
	b.WriteString(fmt.Sprintf("近 7 筆平均值：`%.2f` 億美元\n", stats.Avg7))
	b.WriteString(fmt.Sprintf("最近波段高點：`%s` = `%.1f` 億美元\n\n", stats.MaxDate, stats.MaxValue))
	b.WriteString(fmt.Sprintf("壓力等級：*Level %d – %s*\n", stress.Level, stress.Label))
	b.WriteString("解讀：" + stress.Comment + "\n\n")
	b.WriteString("策略提示：" + stress.Hint)
	return b.String()
}

// FormatYieldCurveBlock renders the 2Y−10Y spread block.
func FormatYieldCurveBlock(res *monitor.YieldCurveResult) string {
	var b strings.Builder
	b.WriteString("📉 *Yield Curve（2Y - 10Y 利差）*\n")
	b.WriteString(fmt.Sprintf("日期：`%s`\n", res.Date))
	b.WriteString(fmt.Sprintf("2Y：%.2f%%\n", res.Value2Y))
	b.WriteString(fmt.Sprintf("10Y：%.2f%%\n", res.Value10))
	b.WriteString(fmt.Sprintf("利差（2Y–10Y）：*%+.2f%%*\n", res.Spread))
	b.WriteString("解讀：" + res.Comment)
	return b.String()
}

// YieldCurvePlaceholder replaces the spread block when the optional fetch
// fails.
const YieldCurvePlaceholder = "📉 *Yield Curve（2Y–10Y）*：資料取得失敗"

// FormatCDSBlock renders the sovereign CDS block.
func FormatCDSBlock(res *monitor.CDSResult) string {
	return fmt.Sprintf("🛡️ *美國 5Y CDS（主權違約風險）*\n最新數值：*%.1f* bps\n解讀：%s", res.Value, res.Comment)
}

// BuildCycleLine renders the headline cycle classification line.
func BuildCycleLine(info model.CycleClassification) string {
	return fmt.Sprintf("📊 *加密週期：%s* — %s", info.Label, info.Short)
}

// BuildPositionLine renders the position-sizing advice line.
func BuildPositionLine(info model.CycleClassification) string {
	return "🧭 *倉位建議* — " + info.Position
}

// BuildRiskLine renders the 0–100 market risk score line, degrading to
// N/A when the score is absent.
func BuildRiskLine(score *int) string {
	if score == nil {
		return "⚠️ *市場風險分數：N/A* — 關鍵指標不足，暫不給定整體風險評級。"
	}
	label, comment := strategy.RiskLevel(*score)
	return fmt.Sprintf("⚠️ *市場風險分數：%d/100（%s）* — %s", *score, label, comment)
}

// BuildBriefMessage assembles the short summary: headline classifications
// plus the trend blocks.
func BuildBriefMessage(summary, cycleLine, escapeLine, riskLine, positionLine string, trend history.TrendSections) string {
	lines := []string{"📌【短版摘要】", ""}
	lines = append(lines, summary, cycleLine, escapeLine, riskLine, positionLine, "")
	lines = append(lines, trend.Week...)
	lines = append(lines, "")
	lines = append(lines, trend.Month...)
	lines = append(lines, "", trend.CycleShift)
	return strings.Join(lines, "\n")
}
