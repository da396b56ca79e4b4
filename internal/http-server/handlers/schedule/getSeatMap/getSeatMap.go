package getSeatMap

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/inventory"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/api/response"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/logger/sl"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type SeatMapResponse struct {
	response.Response
	models.SeatMap
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SeatMapProvider
type SeatMapProvider interface {
	SeatMap(scheduleID int64) (*models.SeatMap, error)
}

func New(log *slog.Logger, seats SeatMapProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.getSeatMap.New"

		log = log.With(slog.String("op", op))

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

		seatMap, err := seats.SeatMap(scheduleID)
		if err != nil {
			log.Error("failed to get seat map", sl.Err(err))

			if errors.Is(err, inventory.ErrScheduleNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("schedule not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get seat map"))
			return
		}

		log.Info("seat map retrieved", slog.Int("available", seatMap.AvailableSeats))

		responseOK(w, r, seatMap)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, seatMap *models.SeatMap) {
	render.JSON(w, r, SeatMapResponse{
		Response: response.OK(),
		SeatMap:  *seatMap,
	})
}
