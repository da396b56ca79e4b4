package placeHold

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/inventory"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/api/bearer"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/api/response"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/logger/sl"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type HoldRequest struct {
	SeatNumbers []string `json:"seatNumbers" validate:"required,min=1"`
}

type HoldResponse struct {
	response.Response
	Hold             *models.Hold `json:"hold,omitempty"`
	ConflictingSeats []string     `json:"conflictingSeats,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HoldPlacer
type HoldPlacer interface {
	Place(scheduleID int64, seatNumbers []string, holderID string) (*models.Hold, error)
}

func New(log *slog.Logger, holds HoldPlacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hold.placeHold.New"

		log = log.With(slog.String("op", op))

		holderID := bearer.Token(r)
		if holderID == "" {
			log.Error("missing bearer token")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		scheduleIdStr := chi.URLParam(r, "id")
		if scheduleIdStr == "" {
			log.Error("schedule id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("schedule id is required"))
			return
		}

		scheduleID, err := strconv.ParseInt(scheduleIdStr, 10, 64)
		if err != nil {
			log.Error("invalid schedule id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid schedule id format"))
			return
		}

		log = log.With(slog.Int64("schedule_id", scheduleID))

		var req HoldRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		h, err := holds.Place(scheduleID, req.SeatNumbers, holderID)
		if err != nil {
			log.Error("failed to place hold", sl.Err(err))

			var unavailable *inventory.SeatUnavailableError
			switch {
			case errors.As(err, &unavailable):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, HoldResponse{
					Response:         response.Error("seats unavailable"),
					ConflictingSeats: unavailable.SeatNumbers,
				})
			case errors.Is(err, inventory.ErrScheduleNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("schedule not found"))
			case errors.Is(err, inventory.ErrUnknownSeat):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown seat requested"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to place hold"))
			}
			return
		}

		log.Info("hold placed",
			slog.String("hold_id", h.ID),
			slog.Any("seats", h.SeatNumbers),
		)

		responseOK(w, r, h)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, h *models.Hold) {
	render.JSON(w, r, HoldResponse{
		Response: response.OK(),
		Hold:     h,
	})
}
