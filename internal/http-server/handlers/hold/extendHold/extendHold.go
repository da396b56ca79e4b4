package extendHold

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/hold"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/api/response"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/logger/sl"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ExtendResponse struct {
	response.Response
	Hold *models.Hold `json:"hold,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HoldExtender
type HoldExtender interface {
	Extend(holdID string) (*models.Hold, error)
}

func New(log *slog.Logger, holds HoldExtender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hold.extendHold.New"

		log = log.With(slog.String("op", op))

		holdID := chi.URLParam(r, "id")
		if holdID == "" {
			log.Error("hold id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("hold id is required"))
			return
		}

		log = log.With(slog.String("hold_id", holdID))

		h, err := holds.Extend(holdID)
		if err != nil {
			log.Error("failed to extend hold", sl.Err(err))

			switch {
			case errors.Is(err, hold.ErrHoldNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("hold not found"))
			case errors.Is(err, hold.ErrHoldExpired):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("hold expired"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to extend hold"))
			}
			return
		}

		log.Info("hold extended", slog.Time("expires_at", h.ExpiresAt))

		render.JSON(w, r, ExtendResponse{
			Response: response.OK(),
			Hold:     h,
		})
	}
}
