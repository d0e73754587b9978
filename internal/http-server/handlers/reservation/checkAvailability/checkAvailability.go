package checkAvailability

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"roomBooker/internal/booking"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/datetime"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Request is a candidate reservation. ID is set when an existing reservation
// is being edited so that it is not compared against itself.
type Request struct {
	ID        int    `json:"id,omitempty" validate:"gte=0"`
	RoomID    int    `json:"room_id" validate:"required,gt=0"`
	UserName  string `json:"user_name" validate:"required"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type Response struct {
	response.Response
	Available bool                 `json:"available"`
	Conflicts []models.Reservation `json:"conflicts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationsLister
type ReservationsLister interface {
	ListReservations(ctx context.Context) ([]models.Reservation, error)
}

func New(log *slog.Logger, lister ReservationsLister, clock datetime.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.checkAvailability.New"

		log := log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		candidate := models.Reservation{
			ID:        req.ID,
			RoomID:    req.RoomID,
			UserName:  req.UserName,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		}

		if err = booking.ValidateStructure(candidate, clock.Now()); err != nil {
			log.Info("candidate rejected", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		existing, err := lister.ListReservations(r.Context())
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

		conflicts := booking.Conflicts(candidate, existing)
		if conflicts == nil {
			conflicts = []models.Reservation{}
		}

		log.Info("availability checked",
			slog.Int("room_id", candidate.RoomID),
			slog.String("date", candidate.Date),
			slog.Int("conflicts", len(conflicts)),
		)

		render.JSON(w, r, Response{
			Response:  response.OK(),
			Available: len(conflicts) == 0,
			Conflicts: conflicts,
		})
	}
}
