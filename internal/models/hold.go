package models

import "time"

// Hold is a time-boxed exclusive claim on a set of seats within one
// schedule. A seat belongs to at most one active hold at a time. Holds
// are ephemeral: they live in memory and disappear on expiry, explicit
// release, or promotion into a Booking.
type Hold struct {
	ID          string    `json:"holdId"`
	ScheduleID  int64     `json:"scheduleId"`
	HolderID    string    `json:"-"`
	SeatNumbers []string  `json:"seatNumbers"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func (h *Hold) Active(now time.Time) bool {
	return now.Before(h.ExpiresAt)
}
