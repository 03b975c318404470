package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"LiquiditySentinel/internal/model"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestClassifyCryptoCycleTable(t *testing.T) {
	tests := []struct {
		name   string
		nlYoY  *float64
		repo   *int
		spread *float64
		want   model.CycleStage
	}{
		{"deep contraction with stress", fptr(-8), iptr(3), fptr(0.1), model.StageCapitulationBear},
		{"deep contraction with stress level 5", fptr(-20), iptr(5), fptr(-1), model.StageCapitulationBear},
		{"deep contraction calm repo", fptr(-8), iptr(1), fptr(0.1), model.StageEarlyMidBear},
		{"boundary yoy -5 goes bear", fptr(-5), iptr(0), fptr(0), model.StageEarlyMidBear},
		{"mild contraction calm repo", fptr(-2), iptr(0), fptr(-0.3), model.StageTransition},
		{"boundary yoy 0 transition", fptr(0), iptr(2), fptr(0.3), model.StageTransition},
		{"mild contraction stressed repo", fptr(-2), iptr(3), fptr(-0.3), model.StageStressTransition},
		{"small expansion inverted curve", fptr(3), iptr(1), fptr(-0.2), model.StageEarlyBull},
		{"small expansion normal curve", fptr(3), iptr(1), fptr(0.2), model.StageLateTransition},
		{"boundary yoy 5 spread zero", fptr(5), iptr(0), fptr(0), model.StageLateTransition},
		{"strong expansion calm repo", fptr(10), iptr(1), fptr(0.5), model.StageMidBull},
		{"boundary yoy 15 calm repo", fptr(15), iptr(2), fptr(-1), model.StageMidBull},
		{"strong expansion stressed repo", fptr(10), iptr(3), fptr(0.5), model.StageVolatileBull},
		{"overheated ignores repo and curve", fptr(20), iptr(0), fptr(-2), model.StageLateBull},
		{"overheated high stress", fptr(16), iptr(5), fptr(1), model.StageLateBull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyCryptoCycle(tt.nlYoY, tt.repo, tt.spread)
			assert.Equal(t, tt.want, got.Stage)
			assert.NotEmpty(t, got.Label)
			assert.NotEmpty(t, got.Short)
			assert.Contains(t, got.Position, "倉位建議")
		})
	}
}

func TestClassifyCryptoCycleMissingInputs(t *testing.T) {
	cases := []struct {
		name   string
		nlYoY  *float64
		repo   *int
		spread *float64
	}{
		{"no liquidity", nil, iptr(1), fptr(0.2)},
		{"no repo", fptr(3), nil, fptr(0.2)},
		{"no spread", fptr(3), iptr(1), nil},
		{"nothing", nil, nil, nil},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyCryptoCycle(tt.nlYoY, tt.repo, tt.spread)
			assert.Equal(t, model.StageUnknown, got.Stage)
			assert.Equal(t, "週期不明", got.Label)
		})
	}
}

func TestClassifyCryptoCycleIsPure(t *testing.T) {
	a := ClassifyCryptoCycle(fptr(7.5), iptr(1), fptr(0.3))
	b := ClassifyCryptoCycle(fptr(7.5), iptr(1), fptr(0.3))
	assert.Equal(t, a, b)
}

func TestStageRankOrdering(t *testing.T) {
	bear, ok := model.StageRank(model.StageCapitulationBear)
	assert.True(t, ok)
	bull, ok := model.StageRank(model.StageLateBull)
	assert.True(t, ok)
	assert.Less(t, bear, bull)

	_, ok = model.StageRank(model.StageUnknown)
	assert.False(t, ok)
}
