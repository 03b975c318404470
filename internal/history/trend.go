package history

import (
	"fmt"
	"time"

	"LiquiditySentinel/internal/model"
)

// Epsilon thresholds for calling a 7-day metric delta flat.
const (
	liquidityEpsilon = 0.1
	spreadEpsilon    = 0.02
)

// TrendSections holds the rendered 7-day and 30-day trend blocks plus the
// cycle-shift line.
type TrendSections struct {
	Week       []string
	Month      []string
	CycleShift string
}

// FindReference locates the history entry whose date is closest to
// today − lookbackDays by absolute day difference, first found winning
// ties. Malformed entries are skipped, never errors.
func FindReference(records []model.DailyRecord, today time.Time, lookbackDays int) *model.DailyRecord {
	target := today.AddDate(0, 0, -lookbackDays)

	var best *model.DailyRecord
	bestDiff := 0
	for i := range records {
		d, err := time.Parse("2006-01-02", records[i].Date)
		if err != nil {
			continue
		}
		diff := int(d.Sub(target).Hours() / 24)
		if diff < 0 {
			diff = -diff
		}
		if best == nil || diff < bestDiff {
			best = &records[i]
			bestDiff = diff
		}
	}
	return best
}

// BuildTrendSections renders the 7/30-day trend blocks for today's
// snapshot against the persisted history.
func BuildTrendSections(today model.DailyRecord, records []model.DailyRecord) TrendSections {
	var out TrendSections

	todayDate, err := time.Parse("2006-01-02", today.Date)
	if err != nil {
		todayDate = time.Now().UTC()
	}

	ref7 := FindReference(records, todayDate, 7)
	ref30 := FindReference(records, todayDate, 30)

	if ref7 == nil {
		out.Week = append(out.Week, "📉 *指標趨勢（過去 7 天）*：歷史資料不足。")
	} else {
		out.Week = append(out.Week, "📉 *指標趨勢（過去 7 天）*")

		var nlText string
		switch dNL := floatDelta(today.NLYoY, ref7.NLYoY); {
		case dNL > liquidityEpsilon:
			nlText = "改善（↑）"
		case dNL < -liquidityEpsilon:
			nlText = "惡化（↓）"
		default:
			nlText = "持平（→）"
		}

		var repoText string
		switch dRepo := intDelta(today.RepoLevel, ref7.RepoLevel); {
		case dRepo < 0:
			repoText = "壓力下降（↓）"
		case dRepo > 0:
			repoText = "壓力上升（↑）"
		default:
			repoText = "持平（→）"
		}

		var ycText string
		switch dYC := floatDelta(today.YCSpread, ref7.YCSpread); {
		case dYC > spreadEpsilon:
			ycText = "倒掛縮小（↑）"
		case dYC < -spreadEpsilon:
			ycText = "倒掛擴大（↓）"
		default:
			ycText = "持平（→）"
		}

		out.Week = append(out.Week,
			"• 流動性 YoY："+nlText,
			"• Repo 壓力："+repoText,
			"• 殖利率曲線："+ycText,
		)
	}

	if ref30 == nil {
		out.Month = append(out.Month, "📆 *指標趨勢（過去 30 天）*：歷史資料不足。")
	} else {
		out.Month = append(out.Month, "📆 *指標趨勢（過去 30 天）*")
		if ref30.NLYoY != nil && today.NLYoY != nil {
			out.Month = append(out.Month,
				fmt.Sprintf("• 流動性 YoY：由 %.2f%% → %.2f%%", *ref30.NLYoY, *today.NLYoY))
		}
		if ref30.RepoLevel != nil && today.RepoLevel != nil {
			out.Month = append(out.Month,
				fmt.Sprintf("• Repo：Level %d → Level %d", *ref30.RepoLevel, *today.RepoLevel))
		}
		if ref30.YCSpread != nil && today.YCSpread != nil {
			out.Month = append(out.Month,
				fmt.Sprintf("• 殖利率曲線：%.2f%% → %.2f%%", *ref30.YCSpread, *today.YCSpread))
		}
	}

	out.CycleShift = buildCycleShift(today, ref30, ref7)
	return out
}

// buildCycleShift compares today's stage against the 30-day reference
// (7-day as fallback) using the ordered stage rank.
func buildCycleShift(today model.DailyRecord, ref30, ref7 *model.DailyRecord) string {
	prev := ref30
	if prev == nil {
		prev = ref7
	}
	if prev == nil || today.Label == "" {
		return "🔄 *週期變化* — 歷史資料不足，尚無明確比較。"
	}

	prevLabel := prev.Label
	if prevLabel == "" {
		prevLabel = "未知"
	}

	arrow := "➝"
	rPrev, okPrev := model.StageRank(model.CycleStage(prev.Stage))
	rCurr, okCurr := model.StageRank(model.CycleStage(today.Stage))
	if okPrev && okCurr {
		switch {
		case rCurr > rPrev:
			arrow = "🔼"
		case rCurr < rPrev:
			arrow = "🔽"
		default:
			arrow = "➡️"
		}
	}

	return fmt.Sprintf("🔄 *週期變化* — 從「%s」%s「%s」", prevLabel, arrow, today.Label)
}

// floatDelta computes today − reference, treating a missing side as no
// change so absent history never shows a false move.
func floatDelta(today, ref *float64) float64 {
	if today == nil || ref == nil {
		return 0
	}
	return *today - *ref
}

func intDelta(today, ref *int) int {
	if today == nil || ref == nil {
		return 0
	}
	return *today - *ref
}
