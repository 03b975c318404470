package strategy

import "math"

// ComputeMarketRiskScore blends liquidity, repo and yield-curve sub-scores
// into a 0–100 composite. Returns nil when any input is absent, no partial
// scoring. The liquidity leg is deliberately non-monotonic: risk falls as
// YoY rises from negative to moderately positive, then jumps back up above
// +15 to model overheating.
func ComputeMarketRiskScore(nlYoY *float64, repoLevel *int, ycSpread *float64) *int {
	if nlYoY == nil || repoLevel == nil || ycSpread == nil {
		return nil
	}

	var riskNL float64
	switch yoy := *nlYoY; {
	case yoy <= -10:
		riskNL = 80
	case yoy <= -5:
		riskNL = 65
	case yoy <= 0:
		riskNL = 55
	case yoy <= 5:
		riskNL = 40
	case yoy <= 15:
		riskNL = 30
	default:
		riskNL = 60
	}

	var riskRepo float64
	switch level := *repoLevel; {
	case level <= 0:
		riskRepo = 20
	case level == 1:
		riskRepo = 30
	case level == 2:
		riskRepo = 45
	case level == 3:
		riskRepo = 65
	default:
		riskRepo = 80
	}

	var riskYC float64
	switch spread := *ycSpread; {
	case spread < -0.5:
		riskYC = 50
	case spread < 0:
		riskYC = 55
	case spread < 0.5:
		riskYC = 65
	default:
		riskYC = 75
	}

	score := int(math.Round((riskNL + riskRepo + riskYC) / 3))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return &score
}

// RiskLevel maps a composite score to its band label and comment.
func RiskLevel(score int) (label, comment string) {
	switch {
	case score < 35:
		return "低風險（偏安全）", "流動性良好且壓力有限，市場整體風險偏低。"
	case score < 60:
		return "中性風險", "部分指標出現雜訊，但尚未形成系統性壓力。"
	case score < 80:
		return "偏高風險", "流動性或金融壓力指標有明顯緊縮跡象，需嚴控槓桿與倉位。"
	default:
		return "極高風險", "多項指標同時偏向緊縮或晚周期，需高度警戒可能的劇烈修正。"
	}
}
