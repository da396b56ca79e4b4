// Package inventory is the single source of truth for per-schedule seat
// state. Every status transition for a schedule runs under that
// schedule's lock, so two concurrent holds can never both claim the
// same seat. Seat-map reads take the read lock and return a copy.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/models"
)

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrUnknownSeat      = errors.New("unknown seat")
	ErrSeatNotHeld      = errors.New("seat is not held by this hold")
)

// SeatUnavailableError reports a failed hold attempt together with
// every requested seat that was not available, so the client can
// re-render the seat map and let the user reselect.
type SeatUnavailableError struct {
	SeatNumbers []string
}

func (e *SeatUnavailableError) Error() string {
	return fmt.Sprintf("seats unavailable: %s", strings.Join(e.SeatNumbers, ", "))
}

type seatState struct {
	seatType string
	status   models.SeatStatus
	holdID   string // owning hold while status == SeatHeld
}

type scheduleSeats struct {
	mu    sync.RWMutex
	seats map[string]*seatState
	order []string // registration order, keeps seat maps stable
}

type SeatInventory struct {
	mu        sync.RWMutex
	schedules map[int64]*scheduleSeats
}

func New() *SeatInventory {
	return &SeatInventory{
		schedules: make(map[int64]*scheduleSeats),
	}
}

// ScheduleSource supplies the persisted seat layout and the seats of
// still-active bookings, used to rebuild the inventory on startup.
type ScheduleSource interface {
	ListSchedules(ctx context.Context) ([]models.Schedule, error)
	ScheduleSeats(ctx context.Context, scheduleID int64) ([]models.Seat, error)
	ActiveSeatNumbers(ctx context.Context, scheduleID int64) ([]string, error)
}

// Load hydrates a fresh inventory from storage. Seats belonging to
// reserved or confirmed bookings come back as booked, so a restart
// never resurrects sold seats. Holds are ephemeral and start empty.
func Load(ctx context.Context, src ScheduleSource) (*SeatInventory, error) {
	inv := New()

	schedules, err := src.ListSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	for _, sched := range schedules {
		seats, err := src.ScheduleSeats(ctx, sched.ID)
		if err != nil {
			return nil, fmt.Errorf("seats for schedule %d: %w", sched.ID, err)
		}

		booked, err := src.ActiveSeatNumbers(ctx, sched.ID)
		if err != nil {
			return nil, fmt.Errorf("active seats for schedule %d: %w", sched.ID, err)
		}

		taken := make(map[string]bool, len(booked))
		for _, n := range booked {
			taken[n] = true
		}

		for i := range seats {
			if taken[seats[i].Number] {
				seats[i].Status = models.SeatBooked
			} else {
				seats[i].Status = models.SeatAvailable
			}
		}

		inv.AddSchedule(sched.ID, seats)
	}

	return inv, nil
}

// AddSchedule registers a schedule's seat layout. Re-registering a
// schedule replaces its table.
func (inv *SeatInventory) AddSchedule(scheduleID int64, seats []models.Seat) {
	table := &scheduleSeats{
		seats: make(map[string]*seatState, len(seats)),
		order: make([]string, 0, len(seats)),
	}

	for _, seat := range seats {
		if _, ok := table.seats[seat.Number]; ok {
			continue
		}

		status := seat.Status
		if status == "" {
			status = models.SeatAvailable
		}

		table.seats[seat.Number] = &seatState{
			seatType: seat.Type,
			status:   status,
		}
		table.order = append(table.order, seat.Number)
	}

	inv.mu.Lock()
	inv.schedules[scheduleID] = table
	inv.mu.Unlock()
}

func (inv *SeatInventory) schedule(scheduleID int64) (*scheduleSeats, error) {
	inv.mu.RLock()
	table, ok := inv.schedules[scheduleID]
	inv.mu.RUnlock()

	if !ok {
		return nil, ErrScheduleNotFound
	}

	return table, nil
}

// SeatMap returns a consistent snapshot of a schedule's seats.
func (inv *SeatInventory) SeatMap(scheduleID int64) (*models.SeatMap, error) {
	table, err := inv.schedule(scheduleID)
	if err != nil {
		return nil, err
	}

	table.mu.RLock()
	defer table.mu.RUnlock()

	seatMap := &models.SeatMap{
		ScheduleID: scheduleID,
		TotalSeats: len(table.order),
		Seats:      make([]models.SeatView, 0, len(table.order)),
	}

	for _, number := range table.order {
		state := table.seats[number]

		if state.status == models.SeatAvailable {
			seatMap.AvailableSeats++
		}

		seatMap.Seats = append(seatMap.Seats, models.SeatView{
			SeatNumber:    number,
			SeatType:      state.seatType,
			IsAvailable:   state.status == models.SeatAvailable,
			BookingStatus: state.status,
		})
	}

	return seatMap, nil
}

// HoldSeats transitions the requested seats from available to held,
// all-or-nothing: if any seat is taken, no seat is touched and the
// error names every conflicting seat.
func (inv *SeatInventory) HoldSeats(scheduleID int64, seatNumbers []string, holdID string) error {
	table, err := inv.schedule(scheduleID)
	if err != nil {
		return err
	}

	table.mu.Lock()
	defer table.mu.Unlock()

	var conflicts []string
	for _, number := range seatNumbers {
		state, ok := table.seats[number]
		if !ok {
			return fmt.Errorf("seat %s: %w", number, ErrUnknownSeat)
		}
		if state.status != models.SeatAvailable {
			conflicts = append(conflicts, number)
		}
	}

	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		return &SeatUnavailableError{SeatNumbers: conflicts}
	}

	for _, number := range seatNumbers {
		state := table.seats[number]
		state.status = models.SeatHeld
		state.holdID = holdID
	}

	return nil
}

// MarkBooked transitions seats from held to booked. Every seat must
// currently be held by the given hold; otherwise nothing is changed.
func (inv *SeatInventory) MarkBooked(scheduleID int64, seatNumbers []string, holdID string) error {
	table, err := inv.schedule(scheduleID)
	if err != nil {
		return err
	}

	table.mu.Lock()
	defer table.mu.Unlock()

	for _, number := range seatNumbers {
		state, ok := table.seats[number]
		if !ok {
			return fmt.Errorf("seat %s: %w", number, ErrUnknownSeat)
		}
		if state.status != models.SeatHeld || state.holdID != holdID {
			return fmt.Errorf("seat %s: %w", number, ErrSeatNotHeld)
		}
	}

	for _, number := range seatNumbers {
		state := table.seats[number]
		state.status = models.SeatBooked
		state.holdID = ""
	}

	return nil
}

// ReleaseHold frees seats held by the given hold. Seats no longer held
// by it (expired and re-claimed, already booked) are left alone, which
// makes the expiry sweep safe to race with booking promotion.
func (inv *SeatInventory) ReleaseHold(scheduleID int64, seatNumbers []string, holdID string) error {
	table, err := inv.schedule(scheduleID)
	if err != nil {
		return err
	}

	table.mu.Lock()
	defer table.mu.Unlock()

	for _, number := range seatNumbers {
		state, ok := table.seats[number]
		if !ok {
			return fmt.Errorf("seat %s: %w", number, ErrUnknownSeat)
		}
		if state.status == models.SeatHeld && state.holdID == holdID {
			state.status = models.SeatAvailable
			state.holdID = ""
		}
	}

	return nil
}

// RestoreHold moves seats from booked back to held under the given
// hold. It is the compensation for a booking write that failed after
// MarkBooked: the claim survives, nothing is half-released.
func (inv *SeatInventory) RestoreHold(scheduleID int64, seatNumbers []string, holdID string) error {
	table, err := inv.schedule(scheduleID)
	if err != nil {
		return err
	}

	table.mu.Lock()
	defer table.mu.Unlock()

	for _, number := range seatNumbers {
		state, ok := table.seats[number]
		if !ok {
			return fmt.Errorf("seat %s: %w", number, ErrUnknownSeat)
		}
		state.status = models.SeatHeld
		state.holdID = holdID
	}

	return nil
}

// Release returns seats to available regardless of current status.
// Releasing an already-available seat is a no-op, not an error, so the
// cancellation path is idempotent.
func (inv *SeatInventory) Release(scheduleID int64, seatNumbers []string) error {
	table, err := inv.schedule(scheduleID)
	if err != nil {
		return err
	}

	table.mu.Lock()
	defer table.mu.Unlock()

	for _, number := range seatNumbers {
		state, ok := table.seats[number]
		if !ok {
			return fmt.Errorf("seat %s: %w", number, ErrUnknownSeat)
		}
		state.status = models.SeatAvailable
		state.holdID = ""
	}

	return nil
}
