package domain

import (
	"math"
	"time"
)

// BillableHours rounds a duration up to whole hours
func BillableHours(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours()))
}

// Price returns ceil(hours) * hourlyRate
func Price(interval Interval, hourlyRate float64) float64 {
	return float64(BillableHours(interval.Duration())) * hourlyRate
}
