package model

// CycleStage is one of the nine ordered crypto market cycle stages.
type CycleStage string

const (
	StageCapitulationBear CycleStage = "Capitulation Bear"
	StageEarlyMidBear     CycleStage = "Early/Mid Bear"
	StageStressTransition CycleStage = "Stress Transition"
	StageTransition       CycleStage = "Transition"
	StageLateTransition   CycleStage = "Late Transition"
	StageEarlyBull        CycleStage = "Early Bull"
	StageMidBull          CycleStage = "Mid Bull"
	StageVolatileBull     CycleStage = "Volatile Bull"
	StageLateBull         CycleStage = "Late Bull"
	StageUnknown          CycleStage = "Unknown"
)

// stageOrder ranks stages along the bear → transition → bull progression.
// Used for directional arrows when comparing two points in time.
var stageOrder = []CycleStage{
	StageCapitulationBear,
	StageEarlyMidBear,
	StageStressTransition,
	StageTransition,
	StageLateTransition,
	StageEarlyBull,
	StageMidBull,
	StageVolatileBull,
	StageLateBull,
}

// StageRank returns the ordinal position of a stage, or false for
// Unknown or any unrecognized stage string.
func StageRank(stage CycleStage) (int, bool) {
	for i, s := range stageOrder {
		if s == stage {
			return i, true
		}
	}
	return 0, false
}

// CycleClassification is the full output of the cycle classifier.
// All fields are fixed strings selected by the decision table.
type CycleClassification struct {
	Stage    CycleStage
	Label    string // localized stage name
	Short    string // one-line rationale
	Position string // position-sizing narrative
}
