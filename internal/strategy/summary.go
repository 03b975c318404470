package strategy

import "fmt"

// BuildDynamicSummary composes the one-line market summary from the three
// headline inputs. Each input degrades independently to an "unclear" phrase
// when absent.
func BuildDynamicSummary(nlYoY *float64, repoLevel *int, ycSpread *float64) string {
	var liqPhrase string
	switch {
	case nlYoY == nil:
		liqPhrase = "流動性訊號不明"
	case *nlYoY > 5:
		liqPhrase = "流動性偏多"
	case *nlYoY > -5:
		liqPhrase = "流動性中性"
	default:
		liqPhrase = "流動性偏緊"
	}

	// The level==2 phrase is kept even though AssessRepoStress never emits
	// level 2; historical records can still carry it.
	var repoPhrase string
	switch {
	case repoLevel == nil:
		repoPhrase = "金融壓力不明"
	case *repoLevel <= 1:
		repoPhrase = "金融壓力低"
	case *repoLevel == 2:
		repoPhrase = "金融壓力略升"
	case *repoLevel == 3:
		repoPhrase = "金融壓力升溫"
	default:
		repoPhrase = "金融壓力偏高"
	}

	var cyclePhrase string
	switch {
	case ycSpread == nil:
		cyclePhrase = "景氣訊號不明"
	case *ycSpread < -0.5:
		cyclePhrase = "景氣風險偏高（深度倒掛）"
	case *ycSpread < 0:
		cyclePhrase = "景氣偏弱（倒掛）"
	case *ycSpread < 0.5:
		cyclePhrase = "景氣修復中"
	default:
		cyclePhrase = "景氣偏強"
	}

	return fmt.Sprintf("📌 *總結：%s、%s、%s。*", liqPhrase, repoPhrase, cyclePhrase)
}
