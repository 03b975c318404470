package strategy

import "LiquiditySentinel/internal/model"

// ClassifyCryptoCycle maps (liquidity YoY, repo stress level, yield spread)
// to one of nine named cycle stages. A pure decision table: identical inputs
// always produce identical output, and any absent input short-circuits to
// Unknown.
func ClassifyCryptoCycle(nlYoY *float64, repoLevel *int, ycSpread *float64) model.CycleClassification {
	if nlYoY == nil || repoLevel == nil || ycSpread == nil {
		return model.CycleClassification{
			Stage:    model.StageUnknown,
			Label:    "週期不明",
			Short:    "關鍵指標不足，暫不對加密週期下結論。",
			Position: "倉位建議：維持中性曝險，重點放在風險控管與現金流，而非加槓桿博弈。",
		}
	}

	yoy := *nlYoY
	repo := *repoLevel
	spread := *ycSpread

	// Bear / capitulation.
	if yoy <= -5 {
		if repo >= 3 {
			return model.CycleClassification{
				Stage:    model.StageCapitulationBear,
				Label:    "崩盤式熊市",
				Short:    "流動性急凍、金融壓力偏高，市場處於恐慌與被動砍倉階段。",
				Position: "倉位建議：總體加密曝險控制在 10–30%，以 BTC/ETH 為主，避免槓桿與高風險山寨，現金與穩定幣應維持 70% 以上。",
			}
		}
		return model.CycleClassification{
			Stage:    model.StageEarlyMidBear,
			Label:    "熊市階段",
			Short:    "流動性持續收縮，反彈多為技術性，整體仍偏空。",
			Position: "倉位建議：總體加密曝險約 20–40%，核心持倉以 BTC/ETH 為主，山寨僅少量試單，重心放在風險控制與資本保全。",
		}
	}

	// Transition / bottoming.
	if yoy <= 0 {
		if repo <= 2 {
			return model.CycleClassification{
				Stage:    model.StageTransition,
				Label:    "轉折期（築底）",
				Short:    "流動性收縮趨緩，市場進入築底與換手階段。",
				Position: "倉位建議：總體加密曝險 30–50%，分批買入 BTC/ETH，採用『慢慢買、不要一次梭哈』的節奏，保留 50% 左右現金 / 穩定幣。",
			}
		}
		return model.CycleClassification{
			Stage:    model.StageStressTransition,
			Label:    "壓力型轉折期",
			Short:    "流動性接近谷底但金融壓力偏高，易出現最後一殺後 V 型反轉。",
			Position: "倉位建議：總體加密曝險 20–40%，耐心等待極端恐慌時分批進場，避免追高反彈，優先鎖定 BTC/ETH 而非高風險題材幣。",
		}
	}

	// Early bull.
	if yoy <= 5 {
		if spread < 0 {
			return model.CycleClassification{
				Stage:    model.StageEarlyBull,
				Label:    "早期牛市",
				Short:    "流動性由負轉正，景氣仍偏弱，但資金已開始回流風險資產。",
				Position: "倉位建議：總體加密曝險 50–70%，其中 BTC+ETH 佔 70–90%，山寨幣控制在 10–30%，以主流與高品質題材為主。",
			}
		}
		return model.CycleClassification{
			Stage:    model.StageLateTransition,
			Label:    "轉牛前夕",
			Short:    "流動性微增、景氣開始修復，牛市起跑線已接近。",
			Position: "倉位建議：總體加密曝險 40–60%，逐步提高 BTC/ETH 比重，等確定放量與趨勢形成後，再增加山寨曝險。",
		}
	}

	// Main bull leg.
	if yoy <= 15 {
		if repo <= 2 {
			return model.CycleClassification{
				Stage:    model.StageMidBull,
				Label:    "主升段牛市",
				Short:    "流動性充沛、金融壓力低，風險資產處於順風期。",
				Position: "倉位建議：總體加密曝險 70–100%（視個人風險承受度），BTC/ETH 約佔 50–70%，其餘配置於高品質主題幣（如 L2、AI、公鏈）。",
			}
		}
		return model.CycleClassification{
			Stage:    model.StageVolatileBull,
			Label:    "震盪型牛市",
			Short:    "流動性強但偶有壓力升溫，波動加大但中期仍偏多。",
			Position: "倉位建議：總體加密曝險 60–80%，搭配嚴格風險控管，逢急漲減碼、急跌再接，避免滿倉硬扛全程震盪。",
		}
	}

	// Overheated late bull: fires on liquidity alone.
	return model.CycleClassification{
		Stage:    model.StageLateBull,
		Label:    "末升段牛市",
		Short:    "流動性過熱且動能可能鈍化，市場易進入瘋狂與分配階段。",
		Position: "倉位建議：總體加密曝險逐步降到 40–60%，提高穩定幣與現金比重，針對高估標的分批獲利了結，準備下一輪週期的子彈。",
	}
}
