// Package timerange maps the symbolic range tokens accepted by the
// readings endpoint to a concrete query start boundary.
package timerange

import "time"

const (
	Day   = "24h"
	Week  = "7d"
	Month = "30d"
)

// StartBoundary computes the inclusive lower bound of the window ending
// at now. Unrecognized or empty tokens fall back to the 24h window; a
// bad token is not an error.
func StartBoundary(now time.Time, token string) time.Time {
	switch token {
	case Week:
		return now.AddDate(0, 0, -7)
	case Month:
		return now.AddDate(0, 0, -30)
	default:
		return now.AddDate(0, 0, -1)
	}
}
