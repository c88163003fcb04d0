package domain

import "time"

// Flow identifies who proposes a booking
type Flow string

const (
	FlowPublic Flow = "public"
	FlowAdmin  Flow = "admin"
)

// Policy is the time window a booking must fit into
type Policy struct {
	OpenHour        int           // first bookable hour of the day
	CloseHour       int           // an interval may end at this hour but not later
	ClosedWeekday   *time.Weekday // nil = open every day
	SlotGranularity time.Duration
	Location        *time.Location // wall-clock zone; nil keeps the instant's own zone
}

// Local converts t into the policy's wall-clock zone
func (p Policy) Local(t time.Time) time.Time {
	if p.Location == nil {
		return t
	}
	return t.In(p.Location)
}

// IsClosedOn returns true if the given instant falls on the closed weekday
func (p Policy) IsClosedOn(t time.Time) bool {
	return p.ClosedWeekday != nil && p.Local(t).Weekday() == *p.ClosedWeekday
}

// Granularity returns the slot size, falling back to one hour
func (p Policy) Granularity() time.Duration {
	if p.SlotGranularity <= 0 {
		return DefaultSlotGranularity
	}
	return p.SlotGranularity
}
