package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/models"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Storage{DB: db}, mock
}

func TestSchedule(t *testing.T) {
	s, mock := newMockStorage(t)

	dep := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	arr := dep.Add(4 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, route_id, bus_number, departure_at, arrival_at, base_price")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "route_id", "bus_number", "departure_at", "arrival_at", "base_price"}).
			AddRow(1, 10, "29B-123.45", dep, arr, 150.0))

	sched, err := s.Schedule(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(10), sched.RouteID)
	assert.Equal(t, "29B-123.45", sched.BusNumber)
	assert.Equal(t, 150.0, sched.BasePrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleNotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, route_id, bus_number, departure_at, arrival_at, base_price")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "route_id", "bus_number", "departure_at", "arrival_at", "base_price"}))

	_, err := s.Schedule(context.Background(), 99)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouteServesStops(t *testing.T) {
	testCases := []struct {
		name   string
		served bool
	}{
		{name: "stops in order", served: true},
		{name: "stops reversed or missing", served: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newMockStorage(t)

			mock.ExpectQuery("SELECT EXISTS").
				WithArgs(int64(1), int64(101), int64(102)).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tc.served))

			served, err := s.RouteServesStops(context.Background(), 1, 101, 102)
			require.NoError(t, err)
			assert.Equal(t, tc.served, served)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSaveBooking(t *testing.T) {
	s, mock := newMockStorage(t)

	b := &models.Booking{
		Reference:     "VT-ABC",
		ScheduleID:    1,
		Status:        models.BookingReserved,
		DepartureStop: 101,
		ArrivalStop:   102,
		Passengers: []models.Passenger{
			{FullName: "Alice", SeatNumber: "1", IDNumber: "079123456789"},
			{FullName: "Bob", SeatNumber: "2"},
		},
		Contact:     models.ContactInfo{Email: "a@b.com", Phone: "0123456789"},
		TotalAmount: 300,
		BookedAt:    time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(b.Reference, b.ScheduleID, b.Status, b.DepartureStop, b.ArrivalStop,
			b.Contact.Email, b.Contact.Phone, b.SpecialRequests, b.TotalAmount, b.BookedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO booking_passengers")).
		WithArgs(int64(42), "Alice", "1", "079123456789").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO booking_passengers")).
		WithArgs(int64(42), "Bob", "2", "").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := s.SaveBooking(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, int64(42), b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveBookingRollsBackOnPassengerFailure(t *testing.T) {
	s, mock := newMockStorage(t)

	b := &models.Booking{
		Reference:  "VT-ABC",
		ScheduleID: 1,
		Status:     models.BookingReserved,
		Passengers: []models.Passenger{{FullName: "Alice", SeatNumber: "1"}},
		BookedAt:   time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO booking_passengers")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := s.SaveBooking(context.Background(), b)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingByReference(t *testing.T) {
	s, mock := newMockStorage(t)

	bookedAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).
		WithArgs("VT-ABC").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "reference", "schedule_id", "status", "departure_stop", "arrival_stop",
			"email", "phone", "special_requests", "total_amount", "booked_at", "cancelled_at",
		}).AddRow(42, "VT-ABC", 1, "confirmed", 101, 102, "a@b.com", "0123456789", "", 300.0, bookedAt, nil))
	mock.ExpectQuery(regexp.QuoteMeta("FROM booking_passengers")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"full_name", "seat_number", "id_number"}).
			AddRow("Alice", "1", "").
			AddRow("Bob", "2", ""))

	b, err := s.BookingByReference(context.Background(), "VT-ABC")
	require.NoError(t, err)

	assert.Equal(t, models.BookingConfirmed, b.Status)
	assert.Nil(t, b.CancelledAt)
	assert.Equal(t, []string{"1", "2"}, b.SeatNumbers())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingByReferenceNotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).
		WithArgs("VT-NOPE").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.BookingByReference(context.Background(), "VT-NOPE")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionBooking(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs("VT-ABC", models.BookingReserved, models.BookingConfirmed).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.TransitionBooking(context.Background(), "VT-ABC", models.BookingReserved, models.BookingConfirmed)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionBookingConflict(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs("VT-ABC", models.BookingReserved, models.BookingConfirmed).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.TransitionBooking(context.Background(), "VT-ABC", models.BookingReserved, models.BookingConfirmed)
	assert.ErrorIs(t, err, storage.ErrStatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBooking(t *testing.T) {
	s, mock := newMockStorage(t)

	at := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'cancelled'")).
		WithArgs("VT-ABC", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.CancelBooking(context.Background(), "VT-ABC", at)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingConflict(t *testing.T) {
	s, mock := newMockStorage(t)

	at := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'cancelled'")).
		WithArgs("VT-ABC", at).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.CancelBooking(context.Background(), "VT-ABC", at)
	assert.ErrorIs(t, err, storage.ErrStatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteDeparted(t *testing.T) {
	s, mock := newMockStorage(t)

	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'completed'")).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	moved, err := s.CompleteDeparted(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), moved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveSeatNumbers(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM booking_passengers")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"seat_number"}).AddRow("1").AddRow("2"))

	seats, err := s.ActiveSeatNumbers(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, seats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStationsByCity(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM stations")).
		WithArgs("Da Nang").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city"}).
			AddRow(5, "Da Nang Central", "Da Nang"))

	stations, err := s.StationsByCity(context.Background(), "Da Nang")
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "Da Nang Central", stations[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
