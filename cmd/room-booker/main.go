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

	"roomBooker/internal/calendar"
	"roomBooker/internal/catalog"
	"roomBooker/internal/config"
	"roomBooker/internal/http-server/handlers/calendar/getWeek"
	"roomBooker/internal/http-server/handlers/reservation/checkAvailability"
	"roomBooker/internal/http-server/handlers/reservation/createReservation"
	"roomBooker/internal/http-server/handlers/reservation/deleteReservation"
	"roomBooker/internal/http-server/handlers/reservation/listReservations"
	"roomBooker/internal/http-server/handlers/reservation/updateReservation"
	"roomBooker/internal/http-server/handlers/room/createRoom"
	"roomBooker/internal/http-server/handlers/room/getRoom"
	"roomBooker/internal/http-server/handlers/room/listEquipment"
	"roomBooker/internal/http-server/handlers/room/listRooms"
	"roomBooker/internal/http-server/middleware/mwlogger"
	"roomBooker/internal/lib/datetime"
	"roomBooker/internal/lib/logger/handlers/slogpretty"
	"roomBooker/internal/lib/logger/handlers/slogzap"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/storage"
	"roomBooker/internal/storage/memory"
	"roomBooker/internal/storage/postgres"
	redisstore "roomBooker/internal/storage/redis"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting room booker", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))
	log.Debug("Debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, os.Interrupt)
	defer stop()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	clock := datetime.RealClock{}

	if cfg.Storage.Seed {
		n, err := storage.Seed(ctx, store, clock.Now())
		if err != nil {
			log.Error("failed to seed storage", sl.Err(err))
		} else {
			log.Info("storage seeded", slog.Int("reservations", n))
		}
	}

	hours := cfg.Calendar.Hours()
	router := newRouter(log, cfg, store, catalog.Default(), clock, hours)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if cfg.Retention.Days > 0 {
		go runRetention(ctx, log, store, cfg.Retention, clock)
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("application stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		s, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverRedis:
		s, err := redisstore.New(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return memory.New(), nil
	}
}

func newRouter(
	log *slog.Logger,
	cfg *config.Config,
	store storage.Store,
	rooms *catalog.Catalog,
	clock datetime.Clock,
	hours calendar.Hours,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "ok")
	})

	router.Route("/rooms", func(r chi.Router) {
		r.Get("/", listRooms.New(log, rooms, store, hours))
		r.Post("/", createRoom.New(log, rooms))
		r.Get("/{id}", getRoom.New(log, rooms))
	})
	router.Get("/equipment", listEquipment.New(log, rooms))

	router.Route("/reservations", func(r chi.Router) {
		r.Get("/", listReservations.New(log, store, clock))
		r.Post("/", createReservation.New(log, store, rooms, clock))
		r.Post("/check", checkAvailability.New(log, store, clock))
		r.Put("/{id}", updateReservation.New(log, store, rooms, clock))
		r.Delete("/{id}", deleteReservation.New(log, store))
	})

	router.Get("/calendar", getWeek.New(log, store, clock, hours))

	return router
}

// runRetention deletes reservations older than the configured number of days
// until ctx is cancelled.
func runRetention(ctx context.Context, log *slog.Logger, store storage.Store, cfg config.Retention, clock datetime.Clock) {
	log = log.With(slog.String("component", "retention"))

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			purgeExpired(ctx, log, store, cfg.Days, clock.Now())
		case <-ctx.Done():
			return
		}
	}
}

func purgeExpired(ctx context.Context, log *slog.Logger, store storage.Store, days int, now time.Time) {
	cutoff := datetime.FormatDate(datetime.AddDays(datetime.Today(now), -days))

	n, err := store.PurgeBefore(ctx, cutoff)
	if err != nil {
		log.Error("failed to purge expired reservations", sl.Err(err))
		return
	}

	if n > 0 {
		log.Info("expired reservations purged", slog.Int("count", n), slog.String("before", cutoff))
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slogzap.NewHandler(os.Stdout, slogzap.Options{Level: slog.LevelInfo}))
	default:
		log = setupPrettySlog()
	}

	return log.With(slog.String("instance_id", instanceID()))
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

func instanceID() string {
	hn, _ := os.Hostname()
	return hn + "-" + uuid.New().String()[:8]
}
