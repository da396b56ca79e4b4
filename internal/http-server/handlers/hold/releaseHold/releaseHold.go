package releaseHold

import (
	"log/slog"
	"net/http"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/api/response"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/logger/sl"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HoldReleaser
type HoldReleaser interface {
	Release(holdID string) error
}

func New(log *slog.Logger, holds HoldReleaser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hold.releaseHold.New"

		log = log.With(slog.String("op", op))

		holdID := chi.URLParam(r, "id")
		if holdID == "" {
			log.Error("hold id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("hold id is required"))
			return
		}

		log = log.With(slog.String("hold_id", holdID))

		// Releasing an unknown hold succeeds: it may simply have
		// expired already, which is the same outcome for the caller.
		if err := holds.Release(holdID); err != nil {
			log.Error("failed to release hold", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to release hold"))
			return
		}

		log.Info("hold released")

		render.JSON(w, r, response.OK())
	}
}
