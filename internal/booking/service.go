// Package booking drives a booking through its life:
// reserved -> confirmed -> completed, with cancellation allowed from
// reserved and confirmed. A booking is only ever created from a live
// hold, and its side effects come in pairs: no seat is marked booked
// without a booking row, and a failed write puts the seats back under
// the hold.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/hold"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/logger/sl"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/models"
	"github.com/google/uuid"
)

var (
	ErrHoldExpired       = errors.New("hold expired or not found")
	ErrSeatMismatch      = errors.New("passengers do not match held seats")
	ErrMissingContact    = errors.New("contact email is required")
	ErrUnknownStop       = errors.New("stop is not on the schedule's route")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrInvalidState      = errors.New("operation not allowed in current booking status")
	ErrEmailMismatch     = errors.New("email does not match booking contact")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	Schedule(ctx context.Context, id int64) (*models.Schedule, error)
	RouteServesStops(ctx context.Context, scheduleID, departureStop, arrivalStop int64) (bool, error)
	SaveBooking(ctx context.Context, b *models.Booking) error
	BookingByReference(ctx context.Context, reference string) (*models.Booking, error)
	TransitionBooking(ctx context.Context, reference string, from, to models.BookingStatus) error
	CancelBooking(ctx context.Context, reference string, at time.Time) error
	CompleteDeparted(ctx context.Context, now time.Time) (int64, error)
}

// Inventory is the slice of the seat inventory the state machine uses.
type Inventory interface {
	MarkBooked(scheduleID int64, seatNumbers []string, holdID string) error
	RestoreHold(scheduleID int64, seatNumbers []string, holdID string) error
	Release(scheduleID int64, seatNumbers []string) error
}

// HoldSource resolves and consumes the caller's hold.
type HoldSource interface {
	ActiveFor(holderID string, scheduleID int64) (*models.Hold, error)
	Consume(holdID string) (*models.Hold, error)
	Restore(h *models.Hold)
}

type Service struct {
	log     *slog.Logger
	storage Storage
	seats   Inventory
	holds   HoldSource
	now     func() time.Time
}

func NewService(log *slog.Logger, storage Storage, seats Inventory, holds HoldSource) *Service {
	return &Service{
		log:     log,
		storage: storage,
		seats:   seats,
		holds:   holds,
		now:     time.Now,
	}
}

type CreateRequest struct {
	ScheduleID      int64
	HolderID        string
	DepartureStop   int64
	ArrivalStop     int64
	Passengers      []models.Passenger
	Contact         models.ContactInfo
	SpecialRequests string
}

// CreateBooking promotes the holder's live hold on the schedule into a
// reserved booking. The observed booking request carries no hold ID,
// so the hold is resolved from the holder identity. A lapsed or absent
// hold fails with ErrHoldExpired and the client must reselect seats.
func (s *Service) CreateBooking(ctx context.Context, req CreateRequest) (*models.Booking, error) {
	const op = "booking.CreateBooking"

	h, err := s.holds.ActiveFor(req.HolderID, req.ScheduleID)
	if err != nil {
		if errors.Is(err, hold.ErrHoldNotFound) || errors.Is(err, hold.ErrHoldExpired) {
			return nil, ErrHoldExpired
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = validatePassengers(req.Passengers, h.SeatNumbers); err != nil {
		return nil, err
	}

	if req.Contact.Email == "" {
		return nil, ErrMissingContact
	}

	sched, err := s.storage.Schedule(ctx, req.ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	served, err := s.storage.RouteServesStops(ctx, req.ScheduleID, req.DepartureStop, req.ArrivalStop)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !served {
		return nil, ErrUnknownStop
	}

	consumed, err := s.holds.Consume(h.ID)
	if err != nil {
		if errors.Is(err, hold.ErrHoldNotFound) || errors.Is(err, hold.ErrHoldExpired) {
			return nil, ErrHoldExpired
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.seats.MarkBooked(consumed.ScheduleID, consumed.SeatNumbers, consumed.ID); err != nil {
		s.holds.Restore(consumed)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b := &models.Booking{
		Reference:       newReference(),
		ScheduleID:      consumed.ScheduleID,
		Status:          models.BookingReserved,
		DepartureStop:   req.DepartureStop,
		ArrivalStop:     req.ArrivalStop,
		Passengers:      req.Passengers,
		Contact:         req.Contact,
		SpecialRequests: req.SpecialRequests,
		TotalAmount:     sched.BasePrice * float64(len(consumed.SeatNumbers)),
		BookedAt:        s.now(),
	}

	if err = s.storage.SaveBooking(ctx, b); err != nil {
		// Put the seats back under the hold so the claim survives a
		// storage outage without partial mutation.
		if restoreErr := s.seats.RestoreHold(consumed.ScheduleID, consumed.SeatNumbers, consumed.ID); restoreErr != nil {
			s.log.Error("failed to restore seats after storage failure", sl.Err(restoreErr))
		}
		s.holds.Restore(consumed)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

// ConfirmPayment moves a reserved booking to confirmed on a successful
// payment callback.
func (s *Service) ConfirmPayment(ctx context.Context, reference string) (*models.Booking, error) {
	return s.transition(ctx, reference, models.BookingReserved, models.BookingConfirmed)
}

// Complete moves a confirmed booking to completed after the trip has
// departed. Administrative operation, normally driven by the batch.
func (s *Service) Complete(ctx context.Context, reference string) (*models.Booking, error) {
	return s.transition(ctx, reference, models.BookingConfirmed, models.BookingCompleted)
}

// CompleteDeparted marks every confirmed booking whose schedule has
// already departed as completed, and reports how many it moved.
func (s *Service) CompleteDeparted(ctx context.Context) (int64, error) {
	return s.storage.CompleteDeparted(ctx, s.now())
}

func (s *Service) transition(ctx context.Context, reference string, from, to models.BookingStatus) (*models.Booking, error) {
	const op = "booking.transition"

	b, err := s.storage.BookingByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if b.Status != from || !b.Status.CanTransitionTo(to) {
		return nil, ErrInvalidTransition
	}

	if err = s.storage.TransitionBooking(ctx, reference, from, to); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b.Status = to

	return b, nil
}

// validatePassengers enforces the one-passenger-per-held-seat rule.
func validatePassengers(passengers []models.Passenger, heldSeats []string) error {
	if len(passengers) != len(heldSeats) {
		return ErrSeatMismatch
	}

	held := make(map[string]bool, len(heldSeats))
	for _, n := range heldSeats {
		held[n] = true
	}

	assigned := make(map[string]bool, len(passengers))
	for _, p := range passengers {
		if p.FullName == "" {
			return ErrSeatMismatch
		}
		if !held[p.SeatNumber] {
			return ErrSeatMismatch
		}
		if assigned[p.SeatNumber] {
			return ErrSeatMismatch
		}
		assigned[p.SeatNumber] = true
	}

	return nil
}

// newReference builds an externally presentable booking reference,
// e.g. VT-4F9A2C01BD.
func newReference() string {
	id := uuid.New()
	return fmt.Sprintf("VT-%X", id[:5])
}
