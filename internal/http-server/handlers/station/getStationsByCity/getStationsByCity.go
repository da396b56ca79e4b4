package getStationsByCity

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/api/response"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/logger/sl"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type StationsResponse struct {
	response.Response
	Stations []models.Station `json:"stations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StationFinder
type StationFinder interface {
	StationsByCity(ctx context.Context, city string) ([]models.Station, error)
}

func New(log *slog.Logger, stations StationFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.station.getStationsByCity.New"

		log = log.With(slog.String("op", op))

		city := chi.URLParam(r, "city")
		if city == "" {
			log.Error("city is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("city is required"))
			return
		}

		log = log.With(slog.String("city", city))

		list, err := stations.StationsByCity(r.Context(), city)
		if err != nil {
			log.Error("failed to get stations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get stations"))
			return
		}

		log.Info("stations retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, StationsResponse{
			Response: response.OK(),
			Stations: list,
		})
	}
}
