package updateReservation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"roomBooker/internal/booking"
	"roomBooker/internal/catalog"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/datetime"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	RoomID      int    `json:"room_id" validate:"required,gt=0"`
	UserName    string `json:"user_name" validate:"required"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required"`
}

type Response struct {
	response.Response
	Reservation models.Reservation `json:"reservation"`
	TotalPrice  float64            `json:"total_price"`
}

type ConflictResponse struct {
	response.Response
	Conflicts []models.Reservation `json:"conflicts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationUpdater
type ReservationUpdater interface {
	UpdateReservation(ctx context.Context, id int, r models.Reservation) (models.Reservation, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomGetter
type RoomGetter interface {
	Room(id int) (models.Room, error)
}

func New(log *slog.Logger, updater ReservationUpdater, rooms RoomGetter, clock datetime.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.updateReservation.New"

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

		var req Request

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		reservation := models.Reservation{
			ID:          id,
			RoomID:      req.RoomID,
			UserName:    req.UserName,
			PhoneNumber: req.PhoneNumber,
			Date:        req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
		}

		if err = booking.ValidateStructure(reservation, clock.Now()); err != nil {
			log.Error("invalid reservation", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		room, err := rooms.Room(req.RoomID)
		if err != nil {
			log.Error("failed to get room", sl.Err(err))

			if errors.Is(err, catalog.ErrRoomNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("room not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get room"))
			return
		}

		updated, err := updater.UpdateReservation(r.Context(), id, reservation)
		if err != nil {
			log.Error("failed to update reservation", sl.Err(err))

			var conflictErr *booking.ConflictError
			switch {
			case errors.Is(err, storage.ErrReservationNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("reservation not found"))
			case errors.As(err, &conflictErr):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, ConflictResponse{
					Response:  response.Error(conflictErr.Error()),
					Conflicts: conflictErr.Conflicts,
				})
			case errors.Is(err, booking.ErrInvalidReservation):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, booking.ErrStoreUnavailable):
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("reservation store unavailable"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update reservation"))
			}
			return
		}

		price, err := catalog.Price(room, updated.StartTime, updated.EndTime)
		if err != nil {
			log.Warn("failed to price reservation", sl.Err(err))
		}

		log.Info("reservation updated")

		responseOK(w, r, updated, price)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, reservation models.Reservation, price float64) {
	render.JSON(w, r, Response{
		Response:    response.OK(),
		Reservation: reservation,
		TotalPrice:  price,
	})
}
