package strategy

// EscapeTopSignal counts four independent top-risk flags and renders the
// verdict line. The yoy>10 and yoy<2 flags cannot co-occur, so at most
// three flags are effectively independent; the counting is kept as-is
// because the 2-flag threshold was tuned with the full set.
func EscapeTopSignal(nlYoY *float64, repoLevel *int, ycSpread *float64) string {
	if nlYoY == nil || repoLevel == nil || ycSpread == nil {
		return "🟨 *逃頂判斷：訊號不足* — 關鍵指標不完整，暫不啟動逃頂策略，只建議維持中性風險。"
	}

	flags := 0
	if *nlYoY > 10 { // liquidity overheated
		flags++
	}
	if *repoLevel >= 3 { // repo stress rising
		flags++
	}
	if *ycSpread > -0.1 { // curve near or past re-steepening
		flags++
	}
	if *nlYoY < 2 { // liquidity tap closing from the top
		flags++
	}

	if flags >= 2 {
		return "🟥 *逃頂判斷：建議啟動逃頂策略* — 流動性過熱或下彎、金融壓力升溫或景氣接近轉折，風險資產可能進入末升段與分配期。"
	}
	if flags == 1 {
		return "🟨 *逃頂判斷：觀察高峰風險* — 出現單一高風險訊號，建議收斂槓桿、提高嚴格停損與分批獲利，留意後續是否出現更多壓力訊號。"
	}
	return "🟩 *逃頂判斷：不建議逃頂* — 流動性仍健康、金融壓力有限、景氣尚未進入明確晚周期，較適合順勢持有而非大幅撤退。"
}
