package listEquipment

import (
	"log/slog"
	"net/http"

	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Equipment []models.Equipment `json:"equipment"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EquipmentLister
type EquipmentLister interface {
	Equipment() []models.Equipment
}

func New(log *slog.Logger, lister EquipmentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.listEquipment.New"

		log := log.With(slog.String("op", op))

		equipment := lister.Equipment()
		if equipment == nil {
			equipment = []models.Equipment{}
		}

		log.Debug("equipment retrieved", slog.Int("count", len(equipment)))

		render.JSON(w, r, Response{
			Response:  response.OK(),
			Equipment: equipment,
		})
	}
}
