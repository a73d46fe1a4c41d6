package domain

import "time"

// Appointment is a scheduled donation slot owned by a donor.
type Appointment struct {
	ID          string    `json:"id"`
	DonorID     string    `json:"donor_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Center      string    `json:"center,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsUpcoming reports whether the appointment is scheduled strictly after the
// reference instant.
func (a *Appointment) IsUpcoming(reference time.Time) bool {
	if a == nil {
		return false
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return a.ScheduledAt.After(reference)
}
