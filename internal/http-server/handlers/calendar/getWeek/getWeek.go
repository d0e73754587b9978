package getWeek

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"roomBooker/internal/booking"
	"roomBooker/internal/calendar"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/datetime"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Week calendar.Week `json:"week"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationsLister
type ReservationsLister interface {
	ListReservations(ctx context.Context) ([]models.Reservation, error)
}

// New renders the week containing ?date= (today by default), optionally for
// a single ?room_id=. ?start_hour= and ?end_hour= override the configured hours.
func New(log *slog.Logger, lister ReservationsLister, clock datetime.Clock, hours calendar.Hours) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calendar.getWeek.New"

		log := log.With(slog.String("op", op))

		query := r.URL.Query()

		view := calendar.View{
			Anchor: datetime.Today(clock.Now()),
			Hours:  hours,
		}

		if s := query.Get("date"); s != "" {
			anchor, err := datetime.ParseDate(s)
			if err != nil {
				log.Error("invalid date", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("date must be formatted as YYYY-MM-DD"))
				return
			}
			view.Anchor = anchor
		}

		var ok bool
		if view.RoomID, ok = intParam(query.Get("room_id"), 0); !ok || view.RoomID < 0 {
			log.Error("invalid room id", slog.String("room_id", query.Get("room_id")))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid room id format"))
			return
		}

		startHour, okStart := intParam(query.Get("start_hour"), hours.Start)
		endHour, okEnd := intParam(query.Get("end_hour"), hours.End)
		view.Hours = calendar.Hours{Start: startHour, End: endHour}
		if !okStart || !okEnd || view.Hours.Validate() != nil {
			log.Error("invalid hours", slog.Int("start_hour", startHour), slog.Int("end_hour", endHour))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("hours must satisfy 0 <= start_hour < end_hour <= 24"))
			return
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

		week := view.Render(reservations)

		log.Debug("week rendered", slog.String("label", week.Label), slog.Int("room_id", view.RoomID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Week:     week,
		})
	}
}

func intParam(s string, def int) (int, bool) {
	if s == "" {
		return def, true
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return def, false
	}

	return v, true
}
