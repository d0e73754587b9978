package listRooms

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"roomBooker/internal/booking"
	"roomBooker/internal/calendar"
	"roomBooker/internal/catalog"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/datetime"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Rooms []models.Room `json:"rooms"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomsLister
type RoomsLister interface {
	Rooms() []models.Room
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationsLister
type ReservationsLister interface {
	ListReservations(ctx context.Context) ([]models.Reservation, error)
}

// New lists rooms filtered by ?min_capacity=, ?equipment=1,2 and ?date=. With
// a date, rooms whose business hours are fully booked that day are left out.
func New(log *slog.Logger, rooms RoomsLister, lister ReservationsLister, hours calendar.Hours) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.listRooms.New"

		log := log.With(slog.String("op", op))

		filter, err := parseFilter(r)
		if err != nil {
			log.Error("invalid filter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		var reservations []models.Reservation
		if filter.Date != "" {
			reservations, err = lister.ListReservations(r.Context())
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
		}

		result := catalog.FilterRooms(rooms.Rooms(), filter, reservations, hours.Window())

		log.Info("rooms retrieved", slog.Int("count", len(result)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Rooms:    result,
		})
	}
}

func parseFilter(r *http.Request) (catalog.Filter, error) {
	query := r.URL.Query()

	var f catalog.Filter

	if s := query.Get("min_capacity"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return catalog.Filter{}, errors.New("min_capacity must be a non-negative integer")
		}
		f.MinCapacity = n
	}

	if s := query.Get("date"); s != "" {
		if _, err := datetime.ParseDate(s); err != nil {
			return catalog.Filter{}, errors.New("date must be formatted as YYYY-MM-DD")
		}
		f.Date = s
	}

	if s := query.Get("equipment"); s != "" {
		for _, part := range strings.Split(s, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return catalog.Filter{}, errors.New("equipment must be a comma separated list of ids")
			}
			f.EquipmentIDs = append(f.EquipmentIDs, id)
		}
	}

	return f, nil
}
