package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"parking-zone-gateway/internal/upstream"
)

func TestBookingProgress(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entry := now.Add(-2 * time.Hour)
	exit := now.Add(-1 * time.Hour)
	oldBooking := now.Add(-25 * time.Hour)

	testCases := []struct {
		name     string
		booking  upstream.Booking
		expected Progress
	}{
		{
			name:     "Fresh booking is step 1 active",
			booking:  upstream.Booking{BookingTime: now},
			expected: Progress{Step: 1, Status: StatusActive},
		},
		{
			name:     "Booking just inside the entry window stays active",
			booking:  upstream.Booking{BookingTime: now.Add(-EntryWindow)},
			expected: Progress{Step: 1, Status: StatusActive},
		},
		{
			name:     "Booking 25 hours old without entry is expired",
			booking:  upstream.Booking{BookingTime: oldBooking},
			expected: Progress{Step: 1, Status: StatusExpired},
		},
		{
			name:     "Entry time pins step 2 regardless of booking age",
			booking:  upstream.Booking{BookingTime: oldBooking, EntryTime: &entry},
			expected: Progress{Step: 2, Status: StatusActive},
		},
		{
			name:     "Exit time pins step 3 regardless of other fields",
			booking:  upstream.Booking{BookingTime: oldBooking, EntryTime: &entry, ExitTime: &exit},
			expected: Progress{Step: 3, Status: StatusCompleted},
		},
		{
			name:     "Exit time alone is still completed",
			booking:  upstream.Booking{ExitTime: &exit},
			expected: Progress{Step: 3, Status: StatusCompleted},
		},
		{
			name:     "No timestamps at all is step 0 pending",
			booking:  upstream.Booking{},
			expected: Progress{Step: 0, Status: StatusPending},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, BookingProgress(&tc.booking, now))
		})
	}
}

func TestBookingProgress_Deterministic(t *testing.T) {
	// Same record, same now, same answer.
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	b := upstream.Booking{BookingTime: now.Add(-30 * time.Minute)}
	first := BookingProgress(&b, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BookingProgress(&b, now))
	}
}

func TestStepStatus(t *testing.T) {
	t.Run("active at step 2", func(t *testing.T) {
		p := Progress{Step: 2, Status: StatusActive}
		assert.Equal(t, StatusCompleted, StepStatus(1, p))
		assert.Equal(t, StatusActive, StepStatus(2, p))
		assert.Equal(t, StatusPending, StepStatus(3, p))
	})

	t.Run("expired paints every step", func(t *testing.T) {
		p := Progress{Step: 1, Status: StatusExpired}
		for step := 1; step <= 3; step++ {
			assert.Equal(t, StatusExpired, StepStatus(step, p))
		}
	})

	t.Run("completed booking", func(t *testing.T) {
		p := Progress{Step: 3, Status: StatusCompleted}
		assert.Equal(t, StatusCompleted, StepStatus(1, p))
		assert.Equal(t, StatusCompleted, StepStatus(2, p))
		assert.Equal(t, StatusActive, StepStatus(3, p))
	})
}
