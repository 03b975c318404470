package model

// MacroContext aggregates the current run's classified state for the
// BTC/ETH strategy section. Transient; never persisted.
type MacroContext struct {
	NLYoY         *float64
	RepoLevel     *int
	YCSpread      *float64
	CycleStage    CycleStage
	CycleLabel    string
	RiskScore     *int
	EscapeComment string
}
