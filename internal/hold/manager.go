// Package hold turns a seat selection into a time-boxed exclusive
// claim. A hold keeps its seats out of everyone else's reach while the
// passenger form is filled in; it dies by TTL, by explicit release, or
// by promotion into a booking.
package hold

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/models"
	"github.com/google/uuid"
)

var (
	ErrHoldNotFound = errors.New("hold not found")
	ErrHoldExpired  = errors.New("hold expired")
	ErrNoSeats      = errors.New("no seats requested")
)

// SeatHolder is the slice of the inventory the manager drives.
type SeatHolder interface {
	HoldSeats(scheduleID int64, seatNumbers []string, holdID string) error
	ReleaseHold(scheduleID int64, seatNumbers []string, holdID string) error
}

type Manager struct {
	seats SeatHolder
	ttl   time.Duration
	now   func() time.Time

	mu    sync.Mutex
	holds map[string]*models.Hold
}

func NewManager(seats SeatHolder, ttl time.Duration) *Manager {
	return &Manager{
		seats: seats,
		ttl:   ttl,
		now:   time.Now,
		holds: make(map[string]*models.Hold),
	}
}

// Place claims the requested seats for the holder, all-or-nothing. A
// conflict is returned unchanged from the inventory so it still names
// the unavailable seats.
func (m *Manager) Place(scheduleID int64, seatNumbers []string, holderID string) (*models.Hold, error) {
	if len(seatNumbers) == 0 {
		return nil, ErrNoSeats
	}

	h := &models.Hold{
		ID:          uuid.New().String(),
		ScheduleID:  scheduleID,
		HolderID:    holderID,
		SeatNumbers: append([]string(nil), seatNumbers...),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.seats.HoldSeats(scheduleID, h.SeatNumbers, h.ID); err != nil {
		return nil, err
	}

	now := m.now()
	h.CreatedAt = now
	h.ExpiresAt = now.Add(m.ttl)
	m.holds[h.ID] = h

	return copyHold(h), nil
}

// Extend pushes the hold's expiry out by one full TTL.
func (m *Manager) Extend(holdID string) (*models.Hold, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, err := m.activeLocked(holdID)
	if err != nil {
		return nil, err
	}

	h.ExpiresAt = m.now().Add(m.ttl)

	return copyHold(h), nil
}

// Release frees the hold's seats early. Unknown hold IDs are a no-op:
// the hold may already have expired, which is the same outcome.
func (m *Manager) Release(holdID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.holds[holdID]
	if !ok {
		return nil
	}

	delete(m.holds, holdID)

	return m.seats.ReleaseHold(h.ScheduleID, h.SeatNumbers, h.ID)
}

// Consume removes a live hold without freeing its seats, handing them
// over to booking promotion. The seats stay in held state under the
// hold's ID until the caller marks them booked.
func (m *Manager) Consume(holdID string) (*models.Hold, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, err := m.activeLocked(holdID)
	if err != nil {
		return nil, err
	}

	delete(m.holds, holdID)

	return copyHold(h), nil
}

// Restore puts a consumed hold back, used when the booking write fails
// downstream and the seats must go back to a plain held claim.
func (m *Manager) Restore(h *models.Hold) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.holds[h.ID] = copyHold(h)
}

// ActiveFor finds the holder's live hold on a schedule. The booking
// request body carries no hold ID, so promotion resolves the hold from
// the holder identity instead.
func (m *Manager) ActiveFor(holderID string, scheduleID int64) (*models.Hold, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for _, h := range m.holds {
		if h.HolderID != holderID || h.ScheduleID != scheduleID {
			continue
		}
		if !h.Active(now) {
			continue
		}
		return copyHold(h), nil
	}

	return nil, ErrHoldNotFound
}

// ReleaseExpired sweeps out every lapsed hold and returns the seats to
// available. Called from a ticker; expiry is also enforced lazily on
// every access, so the sweep only bounds how long dead holds linger.
func (m *Manager) ReleaseExpired() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	released := 0

	var errs error
	for id, h := range m.holds {
		if h.Active(now) {
			continue
		}

		delete(m.holds, id)
		released++

		if err := m.seats.ReleaseHold(h.ScheduleID, h.SeatNumbers, h.ID); err != nil {
			errs = errors.Join(errs, fmt.Errorf("hold %s: %w", id, err))
		}
	}

	return released, errs
}

// activeLocked looks up a hold and enforces expiry lazily: a lapsed
// hold is released on the spot and reported as expired, never handed
// out. Caller must hold m.mu.
func (m *Manager) activeLocked(holdID string) (*models.Hold, error) {
	h, ok := m.holds[holdID]
	if !ok {
		return nil, ErrHoldNotFound
	}

	if !h.Active(m.now()) {
		delete(m.holds, holdID)
		if err := m.seats.ReleaseHold(h.ScheduleID, h.SeatNumbers, h.ID); err != nil {
			return nil, err
		}
		return nil, ErrHoldExpired
	}

	return h, nil
}

func copyHold(h *models.Hold) *models.Hold {
	c := *h
	c.SeatNumbers = append([]string(nil), h.SeatNumbers...)
	return &c
}
