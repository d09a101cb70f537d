package display

import (
	"time"

	"parking-zone-gateway/internal/upstream"
)

// Status is the rendered state of a booking or of one progress step.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCompleted Status = "completed"
)

// EntryWindow is how long a booking waits for vehicle entry before it is
// shown as expired.
const EntryWindow = 24 * time.Hour

// Progress is the position of a booking on the three-step indicator
// (booked, entered, exited).
type Progress struct {
	Step   int    `json:"step"`
	Status Status `json:"status"`
}

// BookingProgress derives the progress of a booking from its timestamps.
// Field presence wins over age: an entry or exit timestamp pins the step no
// matter how old the booking is. Pure function of the record and now.
func BookingProgress(b *upstream.Booking, now time.Time) Progress {
	switch {
	case b.ExitTime != nil:
		return Progress{Step: 3, Status: StatusCompleted}
	case b.EntryTime != nil:
		return Progress{Step: 2, Status: StatusActive}
	case !b.BookingTime.IsZero():
		if now.Sub(b.BookingTime) > EntryWindow {
			return Progress{Step: 1, Status: StatusExpired}
		}
		return Progress{Step: 1, Status: StatusActive}
	default:
		return Progress{Step: 0, Status: StatusPending}
	}
}

// StepStatus renders one step of the indicator against the overall progress.
// An expired booking paints every step expired.
func StepStatus(step int, p Progress) Status {
	switch {
	case p.Status == StatusExpired:
		return StatusExpired
	case step == p.Step:
		return StatusActive
	case step < p.Step:
		return StatusCompleted
	default:
		return StatusPending
	}
}
