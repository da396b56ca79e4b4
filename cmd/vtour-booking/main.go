package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/booking"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/config"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/hold"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/http-server/handlers/booking/cancelBooking"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/http-server/handlers/booking/confirmPayment"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/http-server/handlers/booking/createBooking"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/http-server/handlers/hold/extendHold"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/http-server/handlers/hold/placeHold"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/http-server/handlers/hold/releaseHold"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/http-server/handlers/route/getRoutes"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/http-server/handlers/schedule/getSeatMap"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/http-server/handlers/station/getStationsByCity"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/http-server/middleware/mwlogger"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/inventory"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/logger/handlers/slogpretty"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/logger/sl"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/storage/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const completeDepartedInterval = 10 * time.Minute

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting vtour booking service", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if err = storage.Migrate(context.Background()); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	inv, err := inventory.Load(context.Background(), storage)
	if err != nil {
		log.Error("failed to load seat inventory", sl.Err(err))
		os.Exit(1)
	}

	holds := hold.NewManager(inv, cfg.Holds.TTL)
	bookings := booking.NewService(log, storage, inv, holds)
	canceller := booking.NewCancellationProcessor(log, storage, inv, nil)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/api", func(r chi.Router) {
		r.Get("/schedules/{id}/seats", getSeatMap.New(log, inv))
		r.Post("/schedules/{id}/holds", placeHold.New(log, holds))
		r.Post("/holds/{id}/extend", extendHold.New(log, holds))
		r.Delete("/holds/{id}", releaseHold.New(log, holds))
		r.Post("/bookings", createBooking.New(log, bookings))
		r.Post("/bookings/{reference}/confirm", confirmPayment.New(log, bookings))
		r.Patch("/bookings/cancel-by-reference", cancelBooking.New(log, canceller))
		r.Get("/routes", getRoutes.New(log, storage))
		r.Get("/stations/by-city/{city}", getStationsByCity.New(log, storage))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	done := make(chan struct{})

	go func() {
		sweep := time.NewTicker(cfg.Holds.SweepInterval)
		defer sweep.Stop()

		complete := time.NewTicker(completeDepartedInterval)
		defer complete.Stop()

		for {
			select {
			case <-sweep.C:
				released, err := holds.ReleaseExpired()
				if err != nil {
					log.Error("failed to release expired holds", sl.Err(err))
				}
				if released > 0 {
					log.Info("released expired holds", slog.Int("count", released))
				}
			case <-complete.C:
				moved, err := bookings.CompleteDeparted(context.Background())
				if err != nil {
					log.Error("failed to complete departed bookings", sl.Err(err))
				}
				if moved > 0 {
					log.Info("completed departed bookings", slog.Int64("count", moved))
				}
			case <-done:
				return
			}
		}
	}()

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop
	close(done)

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
