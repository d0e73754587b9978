// Package storage defines the reservation record store and the helpers shared
// by the backends that keep the whole collection as one value (memory, redis).
//
// Every backend runs the conflict test and the write as one atomic step, so
// two concurrent bookings of the same slot cannot both succeed.
package storage

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"roomBooker/internal/booking"
	"roomBooker/internal/lib/datetime"
	"roomBooker/internal/models"
)

var ErrReservationNotFound = errors.New("reservation not found")

type Store interface {
	ListReservations(ctx context.Context) ([]models.Reservation, error)
	CreateReservation(ctx context.Context, r models.Reservation) (models.Reservation, error)
	UpdateReservation(ctx context.Context, id int, r models.Reservation) (models.Reservation, error)
	DeleteReservation(ctx context.Context, id int) error
	PurgeBefore(ctx context.Context, date string) (int, error)
	Close() error
}

// Unavailable marks err as a failure of the store itself.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, booking.ErrStoreUnavailable, err)
}

// Insert appends r under the next free id unless it overlaps a reservation in all.
// all is never modified.
func Insert(all []models.Reservation, r models.Reservation) ([]models.Reservation, models.Reservation, error) {
	r.ID = 0
	if conflicts := booking.Conflicts(r, all); len(conflicts) > 0 {
		return nil, models.Reservation{}, &booking.ConflictError{Conflicts: conflicts}
	}

	r.ID = booking.NextID(all)
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	next := make([]models.Reservation, 0, len(all)+1)
	next = append(next, all...)
	next = append(next, r)

	return next, r, nil
}

// Replace swaps the reservation with the given id for r. The original
// creation time is kept.
func Replace(all []models.Reservation, id int, r models.Reservation) ([]models.Reservation, models.Reservation, error) {
	i := slices.IndexFunc(all, func(x models.Reservation) bool { return x.ID == id })
	if i < 0 {
		return nil, models.Reservation{}, fmt.Errorf("%w: %d", ErrReservationNotFound, id)
	}

	r.ID = id
	r.CreatedAt = all[i].CreatedAt

	if conflicts := booking.Conflicts(r, all); len(conflicts) > 0 {
		return nil, models.Reservation{}, &booking.ConflictError{Conflicts: conflicts}
	}

	next := slices.Clone(all)
	next[i] = r

	return next, r, nil
}

func Remove(all []models.Reservation, id int) ([]models.Reservation, error) {
	i := slices.IndexFunc(all, func(x models.Reservation) bool { return x.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", ErrReservationNotFound, id)
	}

	return slices.Delete(slices.Clone(all), i, i+1), nil
}

// Before drops every reservation dated strictly before date and reports how many went.
func Before(all []models.Reservation, date string) ([]models.Reservation, int) {
	kept := make([]models.Reservation, 0, len(all))
	for _, r := range all {
		if r.Date < date {
			continue
		}
		kept = append(kept, r)
	}

	return kept, len(all) - len(kept)
}

// SampleReservations mirrors the demo data of the front end, moved to the week of now.
func SampleReservations(now time.Time) []models.Reservation {
	monday := datetime.WeekDatesOf(now)[0]
	day := func(offset int) string {
		return datetime.FormatDate(datetime.AddDays(monday, offset))
	}

	return []models.Reservation{
		{RoomID: 1, UserName: "Jean Dupont", Date: day(5), StartTime: "09:00", EndTime: "11:00"},
		{RoomID: 2, UserName: "Marie Martin", Date: day(5), StartTime: "14:00", EndTime: "16:00"},
		{RoomID: 3, UserName: "Pierre Leclerc", Date: day(6), StartTime: "10:00", EndTime: "12:00"},
	}
}

// Seed fills an empty store with SampleReservations. It returns how many were created.
func Seed(ctx context.Context, s Store, now time.Time) (int, error) {
	const op = "storage.Seed"

	existing, err := s.ListReservations(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	created := 0
	for _, r := range SampleReservations(now) {
		r.CreatedAt = now.UTC()
		if _, err := s.CreateReservation(ctx, r); err != nil {
			return created, fmt.Errorf("%s: %w", op, err)
		}
		created++
	}

	return created, nil
}
