package monitor

import (
	"LiquiditySentinel/internal/collector"
)

// CDSResult holds the scraped US 5Y sovereign CDS value in bps with its
// interpretation.
type CDSResult struct {
	Value   float64
	Comment string
}

// CDSMonitor wraps the MacroMicro page scraper. The whole monitor is
// optional; any failure drops the CDS section from the report.
type CDSMonitor struct {
	Scraper *collector.CDSScraper
}

func (m *CDSMonitor) Snapshot() (*CDSResult, error) {
	value, err := m.Scraper.FetchValue()
	if err != nil {
		return nil, err
	}
	return &CDSResult{Value: value, Comment: interpretCDS(value)}, nil
}

func interpretCDS(value float64) string {
	switch {
	case value > 80:
		return "⚠️ 美國主權違約風險升高（CDS 達危險區）。"
	case value > 60:
		return "美國 CDS 高於歷史常態，需注意債務上限或財政壓力。"
	case value > 40:
		return "CDS 稍高，市場對主權風險有輕微擔憂。"
	default:
		return "CDS 正常，主權風險可控。"
	}
}
