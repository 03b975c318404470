package chart

import (
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
)

// GenerateLiquiditySnapshot renders the three headline values as a bar
// chart PNG at path, overwriting any previous run's image.
func GenerateLiquiditySnapshot(path string, netLiquidity, repoSubmitted, yieldSpread float64) error {
	graph := chart.BarChart{
		Title:    "US Liquidity Snapshot – NetLiq / Repo / Yield Curve",
		Height:   600,
		Width:    900,
		BarWidth: 160,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Bottom: 30},
		},
		XAxis: chart.Style{FontSize: 9},
		Bars: []chart.Value{
			{Value: netLiquidity, Label: fmt.Sprintf("Net Liquidity (bn USD)\n%.1f", netLiquidity)},
			{Value: repoSubmitted, Label: fmt.Sprintf("Repo Submitted (bn USD)\n%.1f", repoSubmitted)},
			{Value: yieldSpread, Label: fmt.Sprintf("2Y-10Y Spread (%%)\n%.2f", yieldSpread)},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
