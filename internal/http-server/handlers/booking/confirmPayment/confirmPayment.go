package confirmPayment

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
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ConfirmResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentConfirmer
type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, reference string) (*models.Booking, error)
}

func New(log *slog.Logger, bookings PaymentConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.confirmPayment.New"

		log = log.With(slog.String("op", op))

		reference := chi.URLParam(r, "reference")
		if reference == "" {
			log.Error("booking reference is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking reference is required"))
			return
		}

		log = log.With(slog.String("reference", reference))

		b, err := bookings.ConfirmPayment(r.Context(), reference)
		if err != nil {
			log.Error("failed to confirm payment", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrInvalidTransition):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking is not awaiting payment"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to confirm payment"))
			}
			return
		}

		log.Info("payment confirmed", slog.String("status", string(b.Status)))

		render.JSON(w, r, ConfirmResponse{
			Response: response.OK(),
			Booking:  b,
		})
	}
}
