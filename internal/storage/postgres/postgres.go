package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/config"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/models"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/storage"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

// Migrate applies the embedded goose migrations.
func (s *Storage) Migrate(ctx context.Context) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, s.DB, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) ListRoutes(ctx context.Context) ([]models.Route, error) {
	query := `
		SELECT id, name, origin_city, destination_city
		FROM routes
		ORDER BY id`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get routes: %w", err)
	}
	defer rows.Close()

	var routes []models.Route
	for rows.Next() {
		var route models.Route
		err = rows.Scan(
			&route.ID,
			&route.Name,
			&route.OriginCity,
			&route.DestinationCity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		routes = append(routes, route)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating routes: %w", err)
	}

	return routes, nil
}

func (s *Storage) StationsByCity(ctx context.Context, city string) ([]models.Station, error) {
	query := `
		SELECT id, name, city
		FROM stations
		WHERE LOWER(city) = LOWER($1)
		ORDER BY name`

	rows, err := s.DB.QueryContext(ctx, query, city)
	if err != nil {
		return nil, fmt.Errorf("failed to get stations: %w", err)
	}
	defer rows.Close()

	var stations []models.Station
	for rows.Next() {
		var station models.Station
		if err = rows.Scan(&station.ID, &station.Name, &station.City); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, station)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stations: %w", err)
	}

	return stations, nil
}

func (s *Storage) Schedule(ctx context.Context, id int64) (*models.Schedule, error) {
	query := `
		SELECT id, route_id, bus_number, departure_at, arrival_at, base_price
		FROM schedules
		WHERE id = $1`

	var sched models.Schedule
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&sched.ID,
		&sched.RouteID,
		&sched.BusNumber,
		&sched.DepartureAt,
		&sched.ArrivalAt,
		&sched.BasePrice,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	return &sched, nil
}

func (s *Storage) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	query := `
		SELECT id, route_id, bus_number, departure_at, arrival_at, base_price
		FROM schedules
		ORDER BY departure_at`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedules: %w", err)
	}
	defer rows.Close()

	var schedules []models.Schedule
	for rows.Next() {
		var sched models.Schedule
		err = rows.Scan(
			&sched.ID,
			&sched.RouteID,
			&sched.BusNumber,
			&sched.DepartureAt,
			&sched.ArrivalAt,
			&sched.BasePrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, sched)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedules: %w", err)
	}

	return schedules, nil
}

func (s *Storage) ScheduleSeats(ctx context.Context, scheduleID int64) ([]models.Seat, error) {
	query := `
		SELECT seat_number, seat_type
		FROM schedule_seats
		WHERE schedule_id = $1
		ORDER BY seat_number`

	rows, err := s.DB.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule seats: %w", err)
	}
	defer rows.Close()

	var seats []models.Seat
	for rows.Next() {
		var seat models.Seat
		if err = rows.Scan(&seat.Number, &seat.Type); err != nil {
			return nil, fmt.Errorf("failed to scan seat: %w", err)
		}
		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating seats: %w", err)
	}

	return seats, nil
}

// ActiveSeatNumbers returns the seats taken by reserved or confirmed
// bookings on a schedule, used to rebuild the in-memory inventory.
func (s *Storage) ActiveSeatNumbers(ctx context.Context, scheduleID int64) ([]string, error) {
	query := `
		SELECT p.seat_number
		FROM booking_passengers p
		JOIN bookings b ON b.id = p.booking_id
		WHERE b.schedule_id = $1 AND b.status IN ('reserved', 'confirmed')`

	rows, err := s.DB.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active seats: %w", err)
	}
	defer rows.Close()

	var seats []string
	for rows.Next() {
		var number string
		if err = rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("failed to scan seat number: %w", err)
		}
		seats = append(seats, number)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating active seats: %w", err)
	}

	return seats, nil
}

// RouteServesStops reports whether the schedule's route passes the
// departure stop and later the arrival stop.
func (s *Storage) RouteServesStops(ctx context.Context, scheduleID, departureStop, arrivalStop int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM schedules s
			JOIN route_stops d ON d.route_id = s.route_id AND d.station_id = $2
			JOIN route_stops a ON a.route_id = s.route_id AND a.station_id = $3
			WHERE s.id = $1 AND d.position < a.position
		)`

	var served bool
	err := s.DB.QueryRowContext(ctx, query, scheduleID, departureStop, arrivalStop).Scan(&served)
	if err != nil {
		return false, fmt.Errorf("failed to check route stops: %w", err)
	}

	return served, nil
}

// SaveBooking inserts the booking and its passengers in one
// transaction and fills in the generated ID.
func (s *Storage) SaveBooking(ctx context.Context, b *models.Booking) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO bookings (reference, schedule_id, status, departure_stop, arrival_stop,
		                      email, phone, special_requests, total_amount, booked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	err = tx.QueryRowContext(ctx, insertQuery,
		b.Reference,
		b.ScheduleID,
		b.Status,
		b.DepartureStop,
		b.ArrivalStop,
		b.Contact.Email,
		b.Contact.Phone,
		b.SpecialRequests,
		b.TotalAmount,
		b.BookedAt,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	passengerQuery := `
		INSERT INTO booking_passengers (booking_id, full_name, seat_number, id_number)
		VALUES ($1, $2, $3, $4)`

	for _, p := range b.Passengers {
		if _, err = tx.ExecContext(ctx, passengerQuery, b.ID, p.FullName, p.SeatNumber, p.IDNumber); err != nil {
			return fmt.Errorf("failed to create passenger: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Storage) BookingByReference(ctx context.Context, reference string) (*models.Booking, error) {
	query := `
		SELECT id, reference, schedule_id, status, departure_stop, arrival_stop,
		       email, phone, special_requests, total_amount, booked_at, cancelled_at
		FROM bookings
		WHERE reference = $1`

	var b models.Booking
	var cancelledAt sql.NullTime
	err := s.DB.QueryRowContext(ctx, query, reference).Scan(
		&b.ID,
		&b.Reference,
		&b.ScheduleID,
		&b.Status,
		&b.DepartureStop,
		&b.ArrivalStop,
		&b.Contact.Email,
		&b.Contact.Phone,
		&b.SpecialRequests,
		&b.TotalAmount,
		&b.BookedAt,
		&cancelledAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if cancelledAt.Valid {
		b.CancelledAt = &cancelledAt.Time
	}

	passengerQuery := `
		SELECT full_name, seat_number, id_number
		FROM booking_passengers
		WHERE booking_id = $1
		ORDER BY id`

	rows, err := s.DB.QueryContext(ctx, passengerQuery, b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get passengers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Passenger
		if err = rows.Scan(&p.FullName, &p.SeatNumber, &p.IDNumber); err != nil {
			return nil, fmt.Errorf("failed to scan passenger: %w", err)
		}
		b.Passengers = append(b.Passengers, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating passengers: %w", err)
	}

	return &b, nil
}

// TransitionBooking performs a compare-and-set status update. Matching
// no row means the booking either does not exist or moved to another
// status concurrently.
func (s *Storage) TransitionBooking(ctx context.Context, reference string, from, to models.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $3
		WHERE reference = $1 AND status = $2`

	result, err := s.DB.ExecContext(ctx, query, reference, from, to)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrStatusConflict
	}

	return nil
}

// CancelBooking moves a reserved or confirmed booking to cancelled,
// guarded the same way as TransitionBooking.
func (s *Storage) CancelBooking(ctx context.Context, reference string, at time.Time) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled', cancelled_at = $2
		WHERE reference = $1 AND status IN ('reserved', 'confirmed')`

	result, err := s.DB.ExecContext(ctx, query, reference, at)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrStatusConflict
	}

	return nil
}

// CompleteDeparted marks confirmed bookings on departed schedules as
// completed and returns how many rows it moved.
func (s *Storage) CompleteDeparted(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE bookings
		SET status = 'completed'
		FROM schedules s
		WHERE bookings.schedule_id = s.id
		  AND bookings.status = 'confirmed'
		  AND s.departure_at < $1`

	result, err := s.DB.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to complete departed bookings: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected, nil
}
