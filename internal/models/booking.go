package models

import "time"

type BookingStatus string

const (
	BookingReserved  BookingStatus = "reserved"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// transitions lists every legal booking status change. cancelled and
// completed are terminal.
var transitions = map[BookingStatus][]BookingStatus{
	BookingReserved:  {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Cancellable reports whether a booking in this status may still be
// cancelled by its owner.
func (s BookingStatus) Cancellable() bool {
	return s == BookingReserved || s == BookingConfirmed
}

type Passenger struct {
	FullName   string `json:"fullName"`
	SeatNumber string `json:"seatNumber"`
	IDNumber   string `json:"idNumber,omitempty"`
}

type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Booking struct {
	ID              int64         `json:"-"`
	Reference       string        `json:"bookingReference"`
	ScheduleID      int64         `json:"scheduleId"`
	Status          BookingStatus `json:"bookingStatus"`
	DepartureStop   int64         `json:"departureStop"`
	ArrivalStop     int64         `json:"arrivalStop"`
	Passengers      []Passenger   `json:"passengers"`
	Contact         ContactInfo   `json:"contactInfo"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	TotalAmount     float64       `json:"totalAmount"`
	BookedAt        time.Time     `json:"bookedAt"`
	CancelledAt     *time.Time    `json:"cancelledAt,omitempty"`
}

// SeatNumbers collects the booking's seat set from its passenger list.
func (b *Booking) SeatNumbers() []string {
	seats := make([]string, 0, len(b.Passengers))
	for _, p := range b.Passengers {
		seats = append(seats, p.SeatNumber)
	}
	return seats
}

// CancellationSummary is returned by cancel-by-reference.
type CancellationSummary struct {
	BookingReference string        `json:"bookingReference"`
	BookingStatus    BookingStatus `json:"bookingStatus"`
	CancelledAt      time.Time     `json:"cancelledAt"`
	NumberOfSeats    int           `json:"numberOfSeats"`
	TotalAmount      float64       `json:"totalAmount"`
}
