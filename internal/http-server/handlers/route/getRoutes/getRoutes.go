package getRoutes

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/api/response"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/logger/sl"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/models"
	"github.com/go-chi/render"
)

type RoutesResponse struct {
	response.Response
	Routes []models.Route `json:"routes"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RouteLister
type RouteLister interface {
	ListRoutes(ctx context.Context) ([]models.Route, error)
}

func New(log *slog.Logger, routes RouteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.route.getRoutes.New"

		log = log.With(slog.String("op", op))

		list, err := routes.ListRoutes(r.Context())
		if err != nil {
			log.Error("failed to get routes", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get routes"))
			return
		}

		log.Info("routes retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, RoutesResponse{
			Response: response.OK(),
			Routes:   list,
		})
	}
}
