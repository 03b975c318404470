package calculator

import (
	"errors"
	"time"

	"LiquiditySentinel/internal/model"
)

// ErrReferenceNotFound indicates the series has no observation old enough
// to serve as a year-ago reference point.
var ErrReferenceNotFound = errors.New("no reference observation found")

// FindYearAgo returns the observation with the greatest date that is at or
// before latest minus 365 days. Observations must be sorted ascending by
// date, so a forward scan stopping at the first date past the target is valid.
func FindYearAgo(observations []model.Observation, latest time.Time) (model.Observation, error) {
	target := latest.AddDate(0, 0, -365)

	var candidate *model.Observation
	for i := range observations {
		if observations[i].Date.After(target) {
			break
		}
		candidate = &observations[i]
	}
	if candidate == nil {
		return model.Observation{}, ErrReferenceNotFound
	}
	return *candidate, nil
}

// YoYPercent computes the year-over-year percentage change. Returns nil
// when the reference value is exactly zero, never a division error.
func YoYPercent(latest, reference float64) *float64 {
	if reference == 0 {
		return nil
	}
	yoy := (latest - reference) / reference * 100.0
	return &yoy
}
