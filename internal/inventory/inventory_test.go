package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInventory(t *testing.T, scheduleID int64, seatNumbers ...string) *SeatInventory {
	t.Helper()

	seats := make([]models.Seat, 0, len(seatNumbers))
	for _, n := range seatNumbers {
		seats = append(seats, models.Seat{Number: n, Type: "standard"})
	}

	inv := New()
	inv.AddSchedule(scheduleID, seats)

	return inv
}

func TestSeatMapUnknownSchedule(t *testing.T) {
	t.Parallel()

	inv := New()

	_, err := inv.SeatMap(42)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestSeatMapCounts(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, 1, "1", "2", "3")

	require.NoError(t, inv.HoldSeats(1, []string{"2"}, "hold-a"))
	require.NoError(t, inv.MarkBooked(1, []string{"2"}, "hold-a"))
	require.NoError(t, inv.HoldSeats(1, []string{"3"}, "hold-b"))

	seatMap, err := inv.SeatMap(1)
	require.NoError(t, err)

	assert.Equal(t, 3, seatMap.TotalSeats)
	assert.Equal(t, 1, seatMap.AvailableSeats)

	statuses := make(map[string]models.SeatStatus)
	for _, s := range seatMap.Seats {
		statuses[s.SeatNumber] = s.BookingStatus
	}

	assert.Equal(t, models.SeatAvailable, statuses["1"])
	assert.Equal(t, models.SeatBooked, statuses["2"])
	assert.Equal(t, models.SeatHeld, statuses["3"])
}

func TestHoldSeatsAllOrNothing(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, 1, "1", "2", "3")

	require.NoError(t, inv.HoldSeats(1, []string{"1", "2"}, "hold-a"))

	err := inv.HoldSeats(1, []string{"2", "3"}, "hold-b")

	var unavailable *SeatUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, []string{"2"}, unavailable.SeatNumbers)

	// Seat 3 must be untouched by the failed attempt.
	seatMap, err := inv.SeatMap(1)
	require.NoError(t, err)
	for _, s := range seatMap.Seats {
		if s.SeatNumber == "3" {
			assert.True(t, s.IsAvailable)
		}
	}

	// And a retry on the free seat alone succeeds.
	assert.NoError(t, inv.HoldSeats(1, []string{"3"}, "hold-b"))
}

func TestHoldSeatsUnknownSeat(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, 1, "1")

	err := inv.HoldSeats(1, []string{"99"}, "hold-a")
	assert.ErrorIs(t, err, ErrUnknownSeat)
}

func TestConcurrentOverlappingHolds(t *testing.T) {
	t.Parallel()

	// Two goroutines fight for overlapping seat sets; exactly one may
	// win each round.
	for i := 0; i < 200; i++ {
		inv := newTestInventory(t, 1, "1", "2", "3")

		var wg sync.WaitGroup
		errs := make([]error, 2)

		wg.Add(2)
		go func() {
			defer wg.Done()
			errs[0] = inv.HoldSeats(1, []string{"1", "2"}, "hold-a")
		}()
		go func() {
			defer wg.Done()
			errs[1] = inv.HoldSeats(1, []string{"2", "3"}, "hold-b")
		}()
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++
			} else {
				var unavailable *SeatUnavailableError
				require.ErrorAs(t, err, &unavailable)
				assert.Contains(t, unavailable.SeatNumbers, "2")
			}
		}

		require.Equal(t, 1, winners, "exactly one overlapping hold must win")
	}
}

func TestHeldAndBookedNeverOverlap(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, 1, "1", "2", "3", "4", "5", "6")

	var wg sync.WaitGroup
	seatSets := [][]string{{"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "5"}, {"5", "6"}, {"6", "1"}}

	for i, set := range seatSets {
		wg.Add(1)
		go func(holdID string, seats []string) {
			defer wg.Done()
			if err := inv.HoldSeats(1, seats, holdID); err == nil {
				_ = inv.MarkBooked(1, seats, holdID)
			}
		}(string(rune('a'+i)), set)
	}
	wg.Wait()

	seatMap, err := inv.SeatMap(1)
	require.NoError(t, err)

	booked := 0
	for _, s := range seatMap.Seats {
		if s.BookingStatus == models.SeatBooked {
			booked++
		}
		assert.NotEqual(t, models.SeatHeld, s.BookingStatus, "no hold should survive booking")
	}

	assert.Equal(t, seatMap.TotalSeats-booked, seatMap.AvailableSeats)
}

func TestMarkBookedRequiresOwnership(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, 1, "1", "2")

	require.NoError(t, inv.HoldSeats(1, []string{"1"}, "hold-a"))

	assert.ErrorIs(t, inv.MarkBooked(1, []string{"1"}, "hold-b"), ErrSeatNotHeld)
	assert.ErrorIs(t, inv.MarkBooked(1, []string{"2"}, "hold-a"), ErrSeatNotHeld)

	assert.NoError(t, inv.MarkBooked(1, []string{"1"}, "hold-a"))
}

func TestReleaseHoldOnlyFreesOwnSeats(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, 1, "1", "2")

	require.NoError(t, inv.HoldSeats(1, []string{"1"}, "hold-a"))
	require.NoError(t, inv.HoldSeats(1, []string{"2"}, "hold-b"))

	require.NoError(t, inv.ReleaseHold(1, []string{"1", "2"}, "hold-a"))

	seatMap, err := inv.SeatMap(1)
	require.NoError(t, err)

	for _, s := range seatMap.Seats {
		switch s.SeatNumber {
		case "1":
			assert.True(t, s.IsAvailable)
		case "2":
			assert.Equal(t, models.SeatHeld, s.BookingStatus)
		}
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, 1, "1")

	require.NoError(t, inv.HoldSeats(1, []string{"1"}, "hold-a"))
	require.NoError(t, inv.MarkBooked(1, []string{"1"}, "hold-a"))

	require.NoError(t, inv.Release(1, []string{"1"}))
	require.NoError(t, inv.Release(1, []string{"1"}))

	seatMap, err := inv.SeatMap(1)
	require.NoError(t, err)
	assert.Equal(t, 1, seatMap.AvailableSeats)
}

func TestRestoreHoldReclaimsBookedSeats(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, 1, "1", "2")

	require.NoError(t, inv.HoldSeats(1, []string{"1", "2"}, "hold-a"))
	require.NoError(t, inv.MarkBooked(1, []string{"1", "2"}, "hold-a"))

	require.NoError(t, inv.RestoreHold(1, []string{"1", "2"}, "hold-a"))

	// Seats are claimable again by the original hold only.
	assert.ErrorIs(t, inv.MarkBooked(1, []string{"1", "2"}, "hold-b"), ErrSeatNotHeld)
	assert.NoError(t, inv.MarkBooked(1, []string{"1", "2"}, "hold-a"))
}

type stubSource struct {
	schedules []models.Schedule
	seats     map[int64][]models.Seat
	active    map[int64][]string
	err       error
}

func (s *stubSource) ListSchedules(_ context.Context) ([]models.Schedule, error) {
	return s.schedules, s.err
}

func (s *stubSource) ScheduleSeats(_ context.Context, scheduleID int64) ([]models.Seat, error) {
	return s.seats[scheduleID], nil
}

func (s *stubSource) ActiveSeatNumbers(_ context.Context, scheduleID int64) ([]string, error) {
	return s.active[scheduleID], nil
}

func TestLoadMarksActiveSeatsBooked(t *testing.T) {
	t.Parallel()

	src := &stubSource{
		schedules: []models.Schedule{{ID: 7}},
		seats: map[int64][]models.Seat{
			7: {{Number: "1"}, {Number: "2"}, {Number: "3"}},
		},
		active: map[int64][]string{
			7: {"2"},
		},
	}

	inv, err := Load(context.Background(), src)
	require.NoError(t, err)

	seatMap, err := inv.SeatMap(7)
	require.NoError(t, err)

	assert.Equal(t, 3, seatMap.TotalSeats)
	assert.Equal(t, 2, seatMap.AvailableSeats)

	for _, s := range seatMap.Seats {
		if s.SeatNumber == "2" {
			assert.Equal(t, models.SeatBooked, s.BookingStatus)
		}
	}
}

func TestLoadPropagatesStorageFailure(t *testing.T) {
	t.Parallel()

	src := &stubSource{err: errors.New("db down")}

	_, err := Load(context.Background(), src)
	assert.Error(t, err)
}
