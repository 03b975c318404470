package strategy

// RepoStress is the classified repo market strain for a single submission
// value: ordinal level 0–5 with fixed label, interpretation and hint text.
type RepoStress struct {
	Level   int
	Label   string
	Comment string
	Hint    string
}

// AssessRepoStress bands the daily Treasury submission value (billions USD)
// into a stress level. The banding intentionally skips level 2: the gap
// between the <15 and <30 breakpoints is long-standing product behavior
// and the 2-flag escape threshold was tuned against it.
func AssessRepoStress(value float64) RepoStress {
	var s RepoStress
	switch {
	case value < 5:
		s = RepoStress{
			Level:   0,
			Label:   "正常",
			Comment: "銀行間資金充裕，尚未出現明顯流動性壓力。",
		}
	case value < 15:
		s = RepoStress{
			Level:   1,
			Label:   "輕微偏緊",
			Comment: "短端美元略為吃緊，屬可控範圍，需持續觀察。",
		}
	case value < 30:
		s = RepoStress{
			Level:   3,
			Label:   "系統性壓力升溫",
			Comment: "銀行體系明顯倚賴 Fed 提供流動性，類似 2019 年前期跡象。",
		}
	case value < 50:
		s = RepoStress{
			Level:   4,
			Label:   "高壓狀態",
			Comment: "短端融資市場信用減弱，Fed 如持續忽略，QT 可能被迫提前結束。",
		}
	default:
		s = RepoStress{
			Level:   5,
			Label:   "危險區",
			Comment: "流動性已接近凍結狀態，極有可能觸發緊急操作或類 QE。",
		}
	}
	s.Hint = repoStrategyHint(s.Level)
	return s
}

func repoStrategyHint(level int) string {
	switch {
	case level <= 1:
		return "市場處於相對健康狀態，流動性尚未成為主導因子，風險資產走勢更多取決於情緒與基本面。"
	case level <= 3:
		return "流動性開始約束銀行資產負債表，若壓力持續升高，通常會促使 Fed 放緩或終止 QT，對債券與黃金偏多。"
	case level <= 4:
		return "短端美元市場已處於高壓狀態，任何政策轉向（結束 QT、溫和 QE）都可能帶來債券與黃金的劇烈反彈，同時為 BTC 創造中期利多。"
	default:
		return "壓力突破危險區，若搭配股市大幅回檔或信用利差擴大，通常意味著系統性風險事件逼近，隨後往往是強力寬鬆政策。"
	}
}
