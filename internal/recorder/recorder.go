package recorder

// RunSnapshot holds the classified state of one dashboard run.
type RunSnapshot struct {
	RunID     string
	NLYoY     *float64
	RepoLevel *int
	YCSpread  *float64
	Stage     string
	Label     string
	RiskScore *int
	Delivered bool
}

// DeliveryEvent records the outcome of one outbound delivery call.
type DeliveryEvent struct {
	RunID  string
	Kind   string // "brief", "full", "photo", "document"
	OK     bool
	Detail string
}

// Recorder persists run telemetry for later analysis. Failures are
// logged by callers and never abort a run.
type Recorder interface {
	RecordRun(snap *RunSnapshot) error
	RecordDelivery(evt *DeliveryEvent) error
	Close() error
}
