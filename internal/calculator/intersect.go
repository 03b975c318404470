package calculator

import (
	"sort"
	"time"

	"LiquiditySentinel/internal/model"
)

// DateValueMap indexes a series by ISO date string ("2006-01-02").
// The three net-liquidity source series publish on independent calendars,
// so alignment works on date intersections rather than positions.
type DateValueMap map[string]float64

// ToDateValueMap converts a sorted observation list into a date-keyed map.
// Duplicate dates keep the last value seen.
func ToDateValueMap(observations []model.Observation) DateValueMap {
	m := make(DateValueMap, len(observations))
	for _, obs := range observations {
		m[obs.Date.Format("2006-01-02")] = obs.Value
	}
	return m
}

// CommonDates returns the sorted ascending intersection of the dates
// present in every given series.
func CommonDates(series ...DateValueMap) []string {
	if len(series) == 0 {
		return nil
	}
	var common []string
	for date := range series[0] {
		inAll := true
		for _, s := range series[1:] {
			if _, ok := s[date]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			common = append(common, date)
		}
	}
	sort.Strings(common)
	return common
}

// LatestAtOrBefore returns the greatest date in the sorted list not
// exceeding the cutoff, or false when none qualifies. ISO date strings
// compare correctly as plain strings.
func LatestAtOrBefore(dates []string, cutoff time.Time) (string, bool) {
	limit := cutoff.Format("2006-01-02")
	var best string
	for _, d := range dates {
		if d > limit {
			break
		}
		best = d
	}
	return best, best != ""
}
