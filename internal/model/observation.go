package model

import "time"

// Observation is a single dated point of a macro time series.
type Observation struct {
	Date  time.Time
	Value float64
}

// SeriesSnapshot holds the derived state of one monitored series:
// the latest observation, the reference point roughly one year earlier,
// and the year-over-year change between them.
type SeriesSnapshot struct {
	SeriesID       string
	LatestDate     time.Time
	LatestValue    float64
	ReferenceDate  time.Time
	ReferenceValue float64
	YoY            *float64 // nil when the reference value is exactly zero
}
