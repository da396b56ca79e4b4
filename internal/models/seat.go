package models

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatHeld      SeatStatus = "held"
	SeatBooked    SeatStatus = "booked"
)

type Seat struct {
	Number string     `json:"seatNumber"`
	Type   string     `json:"seatType"`
	Status SeatStatus `json:"status"`
}

// SeatMap is the seat-map payload served to clients. It is a snapshot:
// the statuses are consistent with each other at the moment of the read.
type SeatMap struct {
	ScheduleID     int64      `json:"scheduleId"`
	TotalSeats     int        `json:"totalSeats"`
	AvailableSeats int        `json:"availableSeats"`
	Seats          []SeatView `json:"seats"`
}

type SeatView struct {
	SeatNumber    string     `json:"seatNumber"`
	SeatType      string     `json:"seatType"`
	IsAvailable   bool       `json:"isAvailable"`
	BookingStatus SeatStatus `json:"bookingStatus"`
}
