package listReservations

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"roomBooker/internal/booking"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/datetime"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Upcoming []models.Reservation `json:"upcoming"`
	Past     []models.Reservation `json:"past"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationsLister
type ReservationsLister interface {
	ListReservations(ctx context.Context) ([]models.Reservation, error)
}

// New lists reservations, optionally narrowed by ?room_id= and ?date=, split
// into upcoming and past and ordered by start.
func New(log *slog.Logger, lister ReservationsLister, clock datetime.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.listReservations.New"

		log := log.With(slog.String("op", op))

		roomID := 0
		if s := r.URL.Query().Get("room_id"); s != "" {
			id, err := strconv.Atoi(s)
			if err != nil || id <= 0 {
				log.Error("invalid room id", slog.String("room_id", s))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid room id format"))
				return
			}
			roomID = id
		}

		date := r.URL.Query().Get("date")
		if date != "" {
			if _, err := datetime.ParseDate(date); err != nil {
				log.Error("invalid date", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("date must be formatted as YYYY-MM-DD"))
				return
			}
		}

		reservations, err := lister.ListReservations(r.Context())
		if err != nil {
			log.Error("failed to get reservations", sl.Err(err))

			if errors.Is(err, booking.ErrStoreUnavailable) {
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("reservation store unavailable"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get reservations"))
			return
		}

		selected := booking.Filter(reservations, roomID, date)
		booking.SortByStart(selected)
		upcoming, past := booking.Split(selected, clock.Now())

		log.Info("reservations retrieved", slog.Int("upcoming", len(upcoming)), slog.Int("past", len(past)))

		responseOK(w, r, upcoming, past)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, upcoming, past []models.Reservation) {
	render.JSON(w, r, Response{
		Response: response.OK(),
		Upcoming: upcoming,
		Past:     past,
	})
}
