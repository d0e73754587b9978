package getRoom

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"roomBooker/internal/catalog"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Room      models.Room        `json:"room"`
	Equipment []models.Equipment `json:"equipment"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomProvider
type RoomProvider interface {
	Room(id int) (models.Room, error)
	RoomEquipment(room models.Room) ([]models.Equipment, error)
}

func New(log *slog.Logger, provider RoomProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.getRoom.New"

		log := log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("room id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("room id is required"))
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			log.Error("invalid room id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid room id format"))
			return
		}

		log = log.With(slog.Int("room_id", id))

		room, err := provider.Room(id)
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

		equipment, err := provider.RoomEquipment(room)
		if err != nil {
			log.Error("failed to resolve room equipment", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get room equipment"))
			return
		}

		log.Info("room retrieved")

		responseOK(w, r, room, equipment)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, room models.Room, equipment []models.Equipment) {
	render.JSON(w, r, Response{
		Response:  response.OK(),
		Room:      room,
		Equipment: equipment,
	})
}
