package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessRepoStressBands(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		level int
		label string
	}{
		{"zero", 0, 0, "正常"},
		{"just below first band", 4.9, 0, "正常"},
		{"first boundary", 5.0, 1, "輕微偏緊"},
		{"upper edge of mild", 14.9, 1, "輕微偏緊"},
		{"second boundary skips level 2", 15.0, 3, "系統性壓力升溫"},
		{"upper edge of systemic", 29.9, 3, "系統性壓力升溫"},
		{"third boundary", 30.0, 4, "高壓狀態"},
		{"upper edge of high pressure", 49.9, 4, "高壓狀態"},
		{"danger zone", 50.0, 5, "危險區"},
		{"extreme", 500, 5, "危險區"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := AssessRepoStress(tt.value)
			assert.Equal(t, tt.level, s.Level)
			assert.Equal(t, tt.label, s.Label)
			assert.NotEmpty(t, s.Comment)
			assert.NotEmpty(t, s.Hint)
		})
	}
}

func TestAssessRepoStressNeverEmitsLevelTwo(t *testing.T) {
	for v := 0.0; v < 120; v += 0.5 {
		assert.NotEqual(t, 2, AssessRepoStress(v).Level, "value %.1f", v)
	}
}

func TestRepoStrategyHintEscalates(t *testing.T) {
	assert.Equal(t, repoStrategyHint(0), repoStrategyHint(1))
	assert.Equal(t, repoStrategyHint(3), AssessRepoStress(20).Hint)
	assert.NotEqual(t, repoStrategyHint(1), repoStrategyHint(3))
	assert.NotEqual(t, repoStrategyHint(4), repoStrategyHint(5))
}
