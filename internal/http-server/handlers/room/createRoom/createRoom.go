package createRoom

import (
	"errors"
	"log/slog"
	"net/http"

	"roomBooker/internal/catalog"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Name         string `json:"name" validate:"required"`
	Capacity     int    `json:"capacity" validate:"required,gt=0"`
	EquipmentIDs []int  `json:"equipment_ids"`
	Image        string `json:"image,omitempty" validate:"omitempty,url"`
	Description  string `json:"description,omitempty"`
	PricePerHour int    `json:"price_per_hour" validate:"gte=0"`
}

type Response struct {
	response.Response
	Room models.Room `json:"room"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomCreator
type RoomCreator interface {
	AddRoom(room models.Room) (models.Room, error)
}

func New(log *slog.Logger, creator RoomCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.createRoom.New"

		log := log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
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

		room, err := creator.AddRoom(models.Room{
			Name:         req.Name,
			Capacity:     req.Capacity,
			EquipmentIDs: req.EquipmentIDs,
			Image:        req.Image,
			Description:  req.Description,
			PricePerHour: req.PricePerHour,
		})
		if err != nil {
			log.Error("failed to create room", sl.Err(err))

			if errors.Is(err, catalog.ErrEquipmentNotFound) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create room"))
			return
		}

		log.Info("room created", slog.Int("id", room.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Room:     room,
		})
	}
}
