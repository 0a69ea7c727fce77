package geo

import (
	"errors"
	"math"
)

// DefaultCruiseSpeedKMH substitutes for a missing or zero speed sample when
// estimating arrival times.
const DefaultCruiseSpeedKMH = 30.0

var ErrInvalidDistance = errors.New("invalid distance")

// ETAMinutes estimates travel time in whole minutes for distanceKM at
// speedKMH. A speed of zero or less falls back to DefaultCruiseSpeedKMH.
// Negative distances are a caller contract violation.
func ETAMinutes(distanceKM, speedKMH float64) (int, error) {
	if distanceKM < 0 || math.IsNaN(distanceKM) || math.IsInf(distanceKM, 0) {
		return 0, ErrInvalidDistance
	}
	v := speedKMH
	if v <= 0 || math.IsNaN(v) {
		v = DefaultCruiseSpeedKMH
	}
	return int(math.Round(distanceKM / v * 60)), nil
}
