package createBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/booking"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/api/bearer"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/api/response"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/logger/sl"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/models"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/storage"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type PassengerRequest struct {
	FullName   string `json:"fullName" validate:"required"`
	SeatNumber string `json:"seatNumber" validate:"required"`
	IDNumber   string `json:"idNumber"`
}

type ContactRequest struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type BookingRequest struct {
	ScheduleID      int64              `json:"scheduleId" validate:"required"`
	DepartureStop   int64              `json:"departureStop" validate:"required"`
	ArrivalStop     int64              `json:"arrivalStop" validate:"required"`
	Passengers      []PassengerRequest `json:"passengers" validate:"required,min=1,dive"`
	ContactInfo     ContactRequest     `json:"contactInfo" validate:"required"`
	SpecialRequests string             `json:"specialRequests"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(ctx context.Context, req booking.CreateRequest) (*models.Booking, error)
}

func New(log *slog.Logger, bookings BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		holderID := bearer.Token(r)
		if holderID == "" {
			log.Error("missing bearer token")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Int64("schedule_id", req.ScheduleID))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		passengers := make([]models.Passenger, 0, len(req.Passengers))
		for _, p := range req.Passengers {
			passengers = append(passengers, models.Passenger{
				FullName:   p.FullName,
				SeatNumber: p.SeatNumber,
				IDNumber:   p.IDNumber,
			})
		}

		b, err := bookings.CreateBooking(r.Context(), booking.CreateRequest{
			ScheduleID:    req.ScheduleID,
			HolderID:      holderID,
			DepartureStop: req.DepartureStop,
			ArrivalStop:   req.ArrivalStop,
			Passengers:    passengers,
			Contact: models.ContactInfo{
				Email: req.ContactInfo.Email,
				Phone: req.ContactInfo.Phone,
			},
			SpecialRequests: req.SpecialRequests,
		})
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrHoldExpired):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("hold expired, please reselect seats"))
			case errors.Is(err, booking.ErrSeatMismatch):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("passengers do not match held seats"))
			case errors.Is(err, booking.ErrMissingContact):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("contact email is required"))
			case errors.Is(err, booking.ErrUnknownStop):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("stop is not on the schedule's route"))
			case errors.Is(err, storage.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("schedule not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created",
			slog.String("reference", b.Reference),
			slog.Int("seats", len(b.Passengers)),
		)

		responseOK(w, r, b)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, b *models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  b,
	})
}
