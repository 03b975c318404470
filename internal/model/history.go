package model

// DailyRecord is one persisted history entry, keyed by date ("2006-01-02").
// Field names match the on-disk JSON so existing history files keep working.
type DailyRecord struct {
	Date      string   `json:"date"`
	NLYoY     *float64 `json:"nl_yoy"`
	RepoLevel *int     `json:"repo_level"`
	YCSpread  *float64 `json:"yc_spread"`
	Stage     string   `json:"stage"`
	Label     string   `json:"label"`
}
