package createRoom

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"roomBooker/internal/catalog"
	"roomBooker/internal/http-server/handlers/room/createRoom/mocks"
	"roomBooker/internal/lib/logger/handlers/slogdiscard"
	"roomBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoomHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	omega := models.Room{Name: "Omega", Capacity: 6, EquipmentIDs: []int{1, 2}, PricePerHour: 40}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.RoomCreator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"name": "Omega", "capacity": 6, "equipment_ids": [1, 2], "price_per_hour": 40}`,
			mockSetup: func(m *mocks.RoomCreator) {
				created := omega
				created.ID = 7
				m.On("AddRoom", omega).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","room":{"id":7,"name":"Omega","capacity":6,"equipment_ids":[1,2],"price_per_hour":40}}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `[]`,
			mockSetup:      func(m *mocks.RoomCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing name",
			requestBody:    `{"capacity": 6}`,
			mockSetup:      func(m *mocks.RoomCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Name is a required field"}`,
		},
		{
			name:           "Negative price",
			requestBody:    `{"name": "Omega", "capacity": 6, "price_per_hour": -1}`,
			mockSetup:      func(m *mocks.RoomCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field PricePerHour must be at least 0"}`,
		},
		{
			name:        "Unknown equipment",
			requestBody: `{"name": "Omega", "capacity": 6, "equipment_ids": [1, 2], "price_per_hour": 40}`,
			mockSetup: func(m *mocks.RoomCreator) {
				m.On("AddRoom", omega).Return(models.Room{}, fmt.Errorf("%w: %d", catalog.ErrEquipmentNotFound, 2))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"equipment not found: 2"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"name": "Omega", "capacity": 6, "equipment_ids": [1, 2], "price_per_hour": 40}`,
			mockSetup: func(m *mocks.RoomCreator) {
				m.On("AddRoom", omega).Return(models.Room{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create room"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewRoomCreator(t)
			tc.mockSetup(creator)

			req, err := http.NewRequest(http.MethodPost, "/rooms", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Post("/rooms", New(logger, creator))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestCreateRoomWithCatalog(t *testing.T) {
	t.Parallel()

	c := catalog.Default()
	before := len(c.Rooms())

	router := chi.NewRouter()
	router.Post("/rooms", New(slogdiscard.NewDiscardLogger(), c))

	req, err := http.NewRequest(http.MethodPost, "/rooms", bytes.NewBufferString(`{"name": "Omega", "capacity": 6, "equipment_ids": [99]}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Len(t, c.Rooms(), before)
}
