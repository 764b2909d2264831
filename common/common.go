package common

import (
	"errors"
	"math"
)

const (
	// Base10 decimal base
	Base10 = 10

	microsecondsPerHour = 3600 * 1_000_000
)

// ErrNonPositiveHours is returned when the hours value to convert is zero or negative
var ErrNonPositiveHours = errors.New("hours must be positive")

// HoursToMicroseconds converts a decimal hours value into an integer number of
// microseconds, truncating any sub-microsecond fraction. The result is meant
// to be fed into a Solidity uint256 config field, so it must be an integer.
func HoursToMicroseconds(hours float64) (int64, error) {
	if hours <= 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, ErrNonPositiveHours
	}
	return int64(hours * microsecondsPerHour), nil
}
