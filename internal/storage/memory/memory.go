package memory

import (
	"context"
	"slices"
	"sync"

	"roomBooker/internal/models"
	"roomBooker/internal/storage"
)

// Storage keeps reservations in process memory. It is meant for local runs and tests.
type Storage struct {
	mu           sync.Mutex
	reservations []models.Reservation
}

func New() *Storage {
	return &Storage{}
}

func (s *Storage) ListReservations(_ context.Context) ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.reservations), nil
}

func (s *Storage) CreateReservation(_ context.Context, r models.Reservation) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, created, err := storage.Insert(s.reservations, r)
	if err != nil {
		return models.Reservation{}, err
	}
	s.reservations = next

	return created, nil
}

func (s *Storage) UpdateReservation(_ context.Context, id int, r models.Reservation) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, updated, err := storage.Replace(s.reservations, id, r)
	if err != nil {
		return models.Reservation{}, err
	}
	s.reservations = next

	return updated, nil
}

func (s *Storage) DeleteReservation(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := storage.Remove(s.reservations, id)
	if err != nil {
		return err
	}
	s.reservations = next

	return nil
}

func (s *Storage) PurgeBefore(_ context.Context, date string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept, removed := storage.Before(s.reservations, date)
	s.reservations = kept

	return removed, nil
}

func (s *Storage) Close() error {
	return nil
}
