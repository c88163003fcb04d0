package domain

import "time"

// Default configuration values
const (
	DefaultHourlyRate      = 18.0
	DefaultSlotGranularity = time.Hour

	DefaultPublicOpenHour  = 8
	DefaultPublicCloseHour = 20
	DefaultAdminOpenHour   = 6
	DefaultAdminCloseHour  = 22
)

// Record encoding of administrative holds, kept for compatibility with existing store data
const (
	HoldRecordName  = "ADMIN-BLOCK"
	HoldRecordEmail = "admin@example.com"
	HoldRecordPhone = "0000"
)

// Field length limits
const (
	MaxNameLength  = 200
	MaxEmailLength = 254
	MaxPhoneLength = 40
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
