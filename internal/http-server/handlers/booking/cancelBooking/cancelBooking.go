package cancelBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/booking"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/api/response"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/logger/sl"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/models"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/storage"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type CancelRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

type CancelResponse struct {
	response.Response
	Message string                      `json:"message,omitempty"`
	Booking *models.CancellationSummary `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceller
type BookingCanceller interface {
	CancelByReference(ctx context.Context, reference, email string) (*models.CancellationSummary, error)
}

func New(log *slog.Logger, bookings BookingCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelBooking.New"

		log = log.With(slog.String("op", op))

		var req CancelRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("booking_id", req.BookingID))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		summary, err := bookings.CancelByReference(r.Context(), req.BookingID, req.Email)
		if err != nil {
			log.Error("failed to cancel booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrEmailMismatch):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("email does not match booking contact"))
			case errors.Is(err, booking.ErrInvalidState):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking can no longer be cancelled"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to cancel booking"))
			}
			return
		}

		log.Info("booking cancelled",
			slog.String("reference", summary.BookingReference),
			slog.Int("seats", summary.NumberOfSeats),
		)

		responseOK(w, r, summary)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, summary *models.CancellationSummary) {
	render.JSON(w, r, CancelResponse{
		Response: response.OK(),
		Message:  "booking cancelled successfully",
		Booking:  summary,
	})
}
