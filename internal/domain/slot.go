package domain

import "time"

// AvailableSlot represents one grid cell of a booking day
type AvailableSlot struct {
	Start     time.Time
	End       time.Time
	Available bool
}

// Interval returns the time range of the slot
func (s *AvailableSlot) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}
