package strategy

import (
	"fmt"

	"LiquiditySentinel/internal/model"
)

// BuildBTCETHSection renders the BTC/ETH macro-strategy block from the
// aggregated context. Pure macro rules; technical models can be appended
// below this block later.
func BuildBTCETHSection(ctx model.MacroContext) []string {
	arrow := cycleArrow(ctx.CycleStage)
	btcWeight, ethWeight := btcEthWeights(ctx.CycleStage, ctx.RiskScore)
	exposure := overallExposureAdvice(ctx.CycleStage, ctx.RiskScore)

	lines := []string{"——— 🪙 *BTC / ETH 策略區（結合宏觀流動性）* ———"}

	if ctx.CycleLabel != "" {
		lines = append(lines, fmt.Sprintf("📊 *加密大週期*：%s %s", ctx.CycleLabel, arrow))
	} else {
		lines = append(lines, "📊 *加密大週期*：資料不足，暫無法判斷。")
	}

	if ctx.RiskScore != nil {
		label, _ := RiskLevel(*ctx.RiskScore)
		lines = append(lines, fmt.Sprintf("⚠️ *宏觀風險評級*：%d/100（%s）", *ctx.RiskScore, label))
	} else {
		lines = append(lines, "⚠️ *宏觀風險評級*：N/A（資料不足）")
	}

	if ctx.EscapeComment != "" {
		lines = append(lines, ctx.EscapeComment)
	}

	lines = append(lines, "", fmt.Sprintf("📦 *整體加密曝險建議* — %s", exposure))
	lines = append(lines, "", "₿ *BTC 配置建議* — "+btcWeight, "Ξ *ETH 配置建議* — "+ethWeight)
	lines = append(lines,
		"",
		"📌 *說明*：以上為「宏觀層級」給出的 BTC / ETH 大方向建議，",
		"後續可以在這一區塊下方，接上 BTC / ETH 的技術指標模型輸出，形成完整可交易訊號。",
	)
	return lines
}

func cycleArrow(stage model.CycleStage) string {
	switch stage {
	case model.StageCapitulationBear, model.StageEarlyMidBear:
		return "🔽"
	case model.StageStressTransition, model.StageTransition, model.StageLateTransition,
		model.StageEarlyBull, model.StageMidBull, model.StageVolatileBull, model.StageLateBull:
		return "🔼"
	default:
		return "➡️"
	}
}

func btcEthWeights(stage model.CycleStage, riskScore *int) (btc, eth string) {
	if stage == model.StageUnknown || stage == "" || riskScore == nil {
		return "BTC / ETH 均衡", "BTC / ETH 均衡"
	}

	switch {
	case stage == model.StageLateBull || *riskScore >= 80:
		return "偏重 BTC（防禦）", "保守配置 ETH"
	case (stage == model.StageMidBull || stage == model.StageVolatileBull) && *riskScore < 70:
		return "BTC / ETH 均衡略偏 BTC", "略偏重 ETH（進攻）"
	case stage == model.StageEarlyBull || stage == model.StageTransition ||
		stage == model.StageLateTransition || stage == model.StageStressTransition:
		return "偏重 BTC（打底）", "中性配置 ETH"
	case stage == model.StageCapitulationBear || stage == model.StageEarlyMidBear:
		return "低配 BTC（防守）", "更低配 ETH"
	default:
		return "BTC / ETH 均衡", "BTC / ETH 均衡"
	}
}

func overallExposureAdvice(stage model.CycleStage, riskScore *int) string {
	if stage == model.StageUnknown || stage == "" || riskScore == nil {
		return "整體加密曝險建議維持在 30–50%，以 BTC / ETH 為主，避免高槓桿。"
	}

	switch {
	case stage == model.StageCapitulationBear || stage == model.StageEarlyMidBear:
		return "整體加密曝險建議 10–30%，以 BTC / ETH 為核心，避免槓桿與高風險山寨。"
	case stage == model.StageStressTransition:
		return "整體加密曝險建議 20–40%，逢極端恐慌再分批加碼 BTC / ETH。"
	case stage == model.StageTransition || stage == model.StageLateTransition:
		return "整體加密曝險建議 30–50%，以分批佈局 BTC / ETH 為主，保留 50% 左右現金 / 穩定幣。"
	case stage == model.StageEarlyBull:
		return "整體加密曝險建議 50–70%，BTC / ETH 為主體，山寨控制在 10–30%。"
	case (stage == model.StageMidBull || stage == model.StageVolatileBull) && *riskScore < 70:
		return "整體加密曝險建議 70–90%，視個人風險偏好調整，但需搭配嚴格風險控管。"
	case stage == model.StageLateBull || *riskScore >= 70:
		return "整體加密曝險建議逐步降至 40–60%，以分批獲利了結、提高現金 / 穩定幣比重為主。"
	default:
		return "整體加密曝險建議維持在 40–60%，以 BTC / ETH 為主，視價格結構決定是否加減碼。"
	}
}
