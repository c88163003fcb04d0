package slotvalidator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

// 2024-06-03 понедельник, 2024-06-08 суббота, 2024-06-09 воскресенье
func at(day, hour int) time.Time {
	return time.Date(2024, 6, day, hour, 0, 0, 0, time.UTC)
}

func interval(day, from, to int) domain.Interval {
	return domain.Interval{Start: at(day, from), End: at(day, to)}
}

func adminPolicy() domain.Policy {
	sunday := time.Sunday
	return domain.Policy{
		OpenHour:        6,
		CloseHour:       22,
		ClosedWeekday:   &sunday,
		SlotGranularity: time.Hour,
	}
}

func publicPolicy() domain.Policy {
	return domain.Policy{OpenHour: 8, CloseHour: 20, SlotGranularity: time.Hour}
}

func booking(day, from, to int) *domain.Booking {
	return &domain.Booking{ID: "rec1", Start: at(day, from), End: at(day, to), Kind: domain.KindReservation}
}

func TestValidate_Scenarios(t *testing.T) {
	longAgo := at(1, 0)

	tests := []struct {
		name      string
		candidate domain.Interval
		existing  []*domain.Booking
		policy    domain.Policy
		now       time.Time
		flow      domain.Flow
		wantErr   error
	}{
		{
			name:      "saturday morning is bookable",
			candidate: interval(8, 9, 10),
			policy:    adminPolicy(),
			now:       longAgo,
			flow:      domain.FlowPublic,
		},
		{
			name:      "sunday is closed",
			candidate: interval(9, 9, 10),
			policy:    adminPolicy(),
			now:       longAgo,
			flow:      domain.FlowPublic,
			wantErr:   ErrClosedDay,
		},
		{
			name:      "partial overlap",
			candidate: interval(3, 11, 13),
			existing:  []*domain.Booking{booking(3, 10, 12)},
			policy:    adminPolicy(),
			now:       longAgo,
			flow:      domain.FlowPublic,
			wantErr:   ErrOverlapping,
		},
		{
			name:      "adjacent booking does not overlap",
			candidate: interval(3, 11, 12),
			existing:  []*domain.Booking{booking(3, 10, 11)},
			policy:    adminPolicy(),
			now:       longAgo,
			flow:      domain.FlowPublic,
		},
		{
			name:      "past start rejected in public flow",
			candidate: interval(3, 9, 10),
			policy:    adminPolicy(),
			now:       at(3, 12),
			flow:      domain.FlowPublic,
			wantErr:   ErrInThePast,
		},
		{
			name:      "past start allowed in admin flow",
			candidate: interval(3, 9, 10),
			policy:    adminPolicy(),
			now:       at(3, 12),
			flow:      domain.FlowAdmin,
		},
		{
			name:      "containment overlap",
			candidate: interval(3, 9, 15),
			existing:  []*domain.Booking{booking(3, 10, 11)},
			policy:    adminPolicy(),
			now:       longAgo,
			flow:      domain.FlowAdmin,
			wantErr:   ErrOverlapping,
		},
		{
			name:      "starts before opening",
			candidate: interval(3, 5, 7),
			policy:    adminPolicy(),
			now:       longAgo,
			flow:      domain.FlowAdmin,
			wantErr:   ErrOutsideBusinessHours,
		},
		{
			name:      "ends exactly at closing",
			candidate: interval(3, 19, 20),
			policy:    publicPolicy(),
			now:       longAgo,
			flow:      domain.FlowPublic,
		},
		{
			name:      "ends after closing",
			candidate: interval(3, 19, 21),
			policy:    publicPolicy(),
			now:       longAgo,
			flow:      domain.FlowPublic,
			wantErr:   ErrOutsideBusinessHours,
		},
		{
			name:      "public policy has no closed day",
			candidate: interval(9, 9, 10),
			policy:    publicPolicy(),
			now:       longAgo,
			flow:      domain.FlowPublic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.candidate, tt.existing, tt.policy, tt.now, tt.flow)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_InvalidOrderWinsOverEverything(t *testing.T) {
	existing := []*domain.Booking{booking(9, 9, 12)}

	for _, c := range []domain.Interval{
		interval(3, 10, 10),
		interval(3, 12, 10),
		interval(9, 23, 5), // sunday, outside hours, overlapping
	} {
		err := Validate(c, existing, adminPolicy(), at(30, 0), domain.FlowPublic)
		assert.ErrorIs(t, err, ErrInvalidOrder)
	}
}

func TestValidate_OrderOfChecks(t *testing.T) {
	// воскресенье вне рабочих часов: часы проверяются раньше выходного дня
	err := Validate(interval(9, 4, 5), nil, adminPolicy(), at(1, 0), domain.FlowPublic)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	// воскресенье в прошлом: выходной проверяется раньше прошлого
	err = Validate(interval(9, 9, 10), nil, adminPolicy(), at(30, 0), domain.FlowPublic)
	assert.ErrorIs(t, err, ErrClosedDay)

	// прошлое и пересечение: прошлое проверяется раньше
	err = Validate(interval(3, 10, 11), []*domain.Booking{booking(3, 10, 11)}, adminPolicy(), at(30, 0), domain.FlowPublic)
	assert.ErrorIs(t, err, ErrInThePast)
}

func TestValidate_EveryHourInsidePolicyIsBookable(t *testing.T) {
	policy := adminPolicy()

	for day := 3; day <= 8; day++ {
		for start := policy.OpenHour; start < policy.CloseHour; start++ {
			for end := start + 1; end <= policy.CloseHour; end++ {
				err := Validate(interval(day, start, end), nil, policy, at(1, 0), domain.FlowPublic)
				assert.NoError(t, err, "day=%d %02d-%02d", day, start, end)
			}
		}
	}
}

func TestValidate_UsesPolicyLocation(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*60*60)
	policy := publicPolicy()
	policy.Location = berlin

	// 06:00-07:00 UTC = 08:00-09:00 в Берлине
	c := domain.Interval{Start: at(3, 6), End: at(3, 7)}
	assert.NoError(t, Validate(c, nil, policy, at(1, 0), domain.FlowPublic))

	policy.Location = nil
	assert.ErrorIs(t, Validate(c, nil, policy, at(1, 0), domain.FlowPublic), ErrOutsideBusinessHours)
}

func TestFindOverlap(t *testing.T) {
	existing := []*domain.Booking{nil, booking(3, 8, 9), booking(3, 10, 12)}

	got := FindOverlap(interval(3, 11, 13), existing)
	if assert.NotNil(t, got) {
		assert.Equal(t, at(3, 10), got.Start)
	}

	assert.Nil(t, FindOverlap(interval(3, 12, 13), existing))
}

func TestReason(t *testing.T) {
	assert.Equal(t, "closed_day", Reason(ErrClosedDay))
	assert.Equal(t, "overlapping", Reason(ErrOverlapping))
	assert.Equal(t, "other", Reason(assert.AnError))
}

func TestValidate_IntervalMustStayWithinOneDay(t *testing.T) {
	policy := adminPolicy()

	overnight := domain.Interval{Start: at(3, 21), End: at(4, 0)}
	assert.ErrorIs(t, Validate(overnight, nil, policy, at(1, 0), domain.FlowAdmin), ErrOutsideBusinessHours)

	twoDays := domain.Interval{Start: at(3, 9), End: at(4, 10)}
	assert.ErrorIs(t, Validate(twoDays, nil, policy, at(1, 0), domain.FlowAdmin), ErrOutsideBusinessHours)

	policy.CloseHour = 24
	assert.NoError(t, Validate(overnight, nil, policy, at(1, 0), domain.FlowAdmin))
}
