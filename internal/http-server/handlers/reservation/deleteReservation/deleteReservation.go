package deleteReservation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"roomBooker/internal/booking"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationDeleter
type ReservationDeleter interface {
	DeleteReservation(ctx context.Context, id int) error
}

func New(log *slog.Logger, deleter ReservationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.deleteReservation.New"

		log := log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("reservation id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("reservation id is required"))
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			log.Error("invalid reservation id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid reservation id format"))
			return
		}

		log = log.With(slog.Int("reservation_id", id))

		if err = deleter.DeleteReservation(r.Context(), id); err != nil {
			log.Error("failed to delete reservation", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrReservationNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("reservation not found"))
			case errors.Is(err, booking.ErrStoreUnavailable):
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("reservation store unavailable"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete reservation"))
			}
			return
		}

		log.Info("reservation deleted")

		render.JSON(w, r, response.OK())
	}
}
