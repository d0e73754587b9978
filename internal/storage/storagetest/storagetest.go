// Package storagetest holds the behaviour every storage.Store backend must share.
package storagetest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"roomBooker/internal/booking"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservation(roomID int, user, date, start, end string) models.Reservation {
	return models.Reservation{
		RoomID:    roomID,
		UserName:  user,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
}

// Run exercises a fresh store from newStore for every case.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Run("empty", func(t *testing.T) {
		s := newStore(t)

		rs, err := s.ListReservations(context.Background())
		require.NoError(t, err)
		assert.Empty(t, rs)
	})

	t.Run("create and list", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		first, err := s.CreateReservation(ctx, reservation(1, "Alice", "2025-03-15", "09:00", "10:00"))
		require.NoError(t, err)
		second, err := s.CreateReservation(ctx, reservation(1, "Bob", "2025-03-15", "10:00", "11:00"))
		require.NoError(t, err)

		assert.Equal(t, 1, first.ID)
		assert.Equal(t, 2, second.ID)
		assert.False(t, first.CreatedAt.IsZero())

		rs, err := s.ListReservations(ctx)
		require.NoError(t, err)
		require.Len(t, rs, 2)
		assert.Equal(t, "Alice", rs[0].UserName)
		assert.Equal(t, "Bob", rs[1].UserName)
	})

	t.Run("create conflict", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		existing, err := s.CreateReservation(ctx, reservation(1, "Alice", "2025-03-15", "09:00", "11:00"))
		require.NoError(t, err)

		_, err = s.CreateReservation(ctx, reservation(1, "Bob", "2025-03-15", "10:00", "12:00"))
		require.ErrorIs(t, err, booking.ErrConflictDetected)

		var conflictErr *booking.ConflictError
		require.True(t, errors.As(err, &conflictErr))
		require.Len(t, conflictErr.Conflicts, 1)
		assert.Equal(t, existing.ID, conflictErr.Conflicts[0].ID)

		// Other rooms and other days stay free.
		_, err = s.CreateReservation(ctx, reservation(2, "Bob", "2025-03-15", "10:00", "12:00"))
		assert.NoError(t, err)
		_, err = s.CreateReservation(ctx, reservation(1, "Bob", "2025-03-16", "10:00", "12:00"))
		assert.NoError(t, err)
	})

	t.Run("update", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		a, err := s.CreateReservation(ctx, reservation(1, "Alice", "2025-03-15", "09:00", "10:00"))
		require.NoError(t, err)
		_, err = s.CreateReservation(ctx, reservation(1, "Bob", "2025-03-15", "11:00", "12:00"))
		require.NoError(t, err)

		updated, err := s.UpdateReservation(ctx, a.ID, reservation(1, "Alice", "2025-03-15", "09:30", "11:00"))
		require.NoError(t, err)
		assert.Equal(t, a.ID, updated.ID)
		assert.Equal(t, "09:30", updated.StartTime)

		_, err = s.UpdateReservation(ctx, a.ID, reservation(1, "Alice", "2025-03-15", "10:30", "11:30"))
		assert.ErrorIs(t, err, booking.ErrConflictDetected)

		_, err = s.UpdateReservation(ctx, 99, reservation(1, "Alice", "2025-03-15", "15:00", "16:00"))
		assert.ErrorIs(t, err, storage.ErrReservationNotFound)

		rs, err := s.ListReservations(ctx)
		require.NoError(t, err)
		require.Len(t, rs, 2)
		assert.Equal(t, "09:30", rs[0].StartTime)
	})

	t.Run("delete", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		a, err := s.CreateReservation(ctx, reservation(1, "Alice", "2025-03-15", "09:00", "10:00"))
		require.NoError(t, err)

		require.NoError(t, s.DeleteReservation(ctx, a.ID))
		assert.ErrorIs(t, s.DeleteReservation(ctx, a.ID), storage.ErrReservationNotFound)

		// The freed slot can be booked again.
		_, err = s.CreateReservation(ctx, reservation(1, "Bob", "2025-03-15", "09:00", "10:00"))
		assert.NoError(t, err)
	})

	t.Run("purge before", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		for _, date := range []string{"2025-03-01", "2025-03-09", "2025-03-10", "2025-03-20"} {
			_, err := s.CreateReservation(ctx, reservation(1, "Alice", date, "09:00", "10:00"))
			require.NoError(t, err)
		}

		n, err := s.PurgeBefore(ctx, "2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		rs, err := s.ListReservations(ctx)
		require.NoError(t, err)
		require.Len(t, rs, 2)
		assert.Equal(t, "2025-03-10", rs[0].Date)
	})

	t.Run("concurrent booking of one slot", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		const writers = 8

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			conflicts int
		)

		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				_, err := s.CreateReservation(ctx, reservation(1, "Writer", "2025-03-15", "09:00", "10:00"))

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case errors.Is(err, booking.ErrConflictDetected):
					conflicts++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, writers-1, conflicts)

		rs, err := s.ListReservations(ctx)
		require.NoError(t, err)
		assert.Len(t, rs, 1)
	})
}
