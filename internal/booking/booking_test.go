package booking

import (
	"errors"
	"testing"
	"time"

	"roomBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

func reservation(id, room int, date, start, end string) models.Reservation {
	return models.Reservation{
		ID:        id,
		RoomID:    room,
		UserName:  "Jean Dupont",
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
}

func TestInterval_Overlaps(t *testing.T) {
	t.Parallel()

	nine, ten, eleven, twelve := 540, 600, 660, 720

	testCases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"adjacent after", Interval{nine, ten}, Interval{ten, eleven}, false},
		{"adjacent before", Interval{ten, eleven}, Interval{nine, ten}, false},
		{"disjoint", Interval{nine, ten}, Interval{eleven, twelve}, false},
		{"starts inside", Interval{nine + 30, ten + 30}, Interval{nine, ten}, true},
		{"ends inside", Interval{nine - 30, nine + 30}, Interval{nine, ten}, true},
		{"contains", Interval{nine, twelve}, Interval{ten, eleven}, true},
		{"contained", Interval{ten, eleven}, Interval{nine, twelve}, true},
		{"identical", Interval{nine, ten}, Interval{nine, ten}, true},
		{"same start", Interval{nine, ten}, Interval{nine, eleven}, true},
		{"same end", Interval{ten, eleven}, Interval{nine, eleven}, true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.a.Overlaps(tc.b), tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestInterval_OverlapsItself(t *testing.T) {
	t.Parallel()

	for start := 0; start < 24*60; start += 37 {
		iv := Interval{Start: start, End: start + 1}
		assert.True(t, iv.Overlaps(iv), "%+v", iv)
	}
}

func TestValidateStructure(t *testing.T) {
	t.Parallel()

	valid := reservation(0, 1, "2025-03-15", "09:00", "10:00")

	testCases := []struct {
		name   string
		mutate func(r *models.Reservation)
		field  string
	}{
		{"missing room", func(r *models.Reservation) { r.RoomID = 0 }, "room_id"},
		{"blank user name", func(r *models.Reservation) { r.UserName = "   " }, "user_name"},
		{"missing date", func(r *models.Reservation) { r.Date = "" }, "date"},
		{"missing start", func(r *models.Reservation) { r.StartTime = "" }, "start_time"},
		{"missing end", func(r *models.Reservation) { r.EndTime = "" }, "end_time"},
		{"malformed date", func(r *models.Reservation) { r.Date = "15/03/2025" }, "date"},
		{"malformed start", func(r *models.Reservation) { r.StartTime = "9h" }, "start_time"},
		{"malformed end", func(r *models.Reservation) { r.EndTime = "25:00" }, "end_time"},
		{"start at end of day", func(r *models.Reservation) { r.StartTime, r.EndTime = "24:00", "24:00" }, "start_time"},
		{"end before start", func(r *models.Reservation) { r.StartTime, r.EndTime = "14:00", "13:00" }, ""},
		{"empty interval", func(r *models.Reservation) { r.StartTime, r.EndTime = "14:00", "14:00" }, ""},
		{"past date", func(r *models.Reservation) { r.Date = "2025-03-09" }, "date"},
	}

	require.NoError(t, ValidateStructure(valid, testNow))

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := valid
			tc.mutate(&r)

			err := ValidateStructure(r, testNow)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidReservation)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestValidateStructure_EndsAtMidnight(t *testing.T) {
	t.Parallel()

	r := reservation(0, 1, "2025-03-15", "22:00", "24:00")
	require.NoError(t, ValidateStructure(r, testNow))

	iv, err := IntervalOf(r)
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: 1320, End: 1440}, iv)
}

func TestValidateStructure_TodayIsBookable(t *testing.T) {
	t.Parallel()

	lateEvening := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	r := reservation(0, 1, "2025-03-10", "08:00", "09:00")

	assert.NoError(t, ValidateStructure(r, lateEvening))
}

func TestConflicts(t *testing.T) {
	t.Parallel()

	existing := []models.Reservation{
		reservation(1, 1, "2025-03-15", "09:00", "11:00"),
		reservation(2, 2, "2025-03-15", "14:00", "16:00"),
		reservation(3, 3, "2025-03-16", "10:00", "12:00"),
		reservation(4, 1, "2025-03-15", "13:00", "14:00"),
	}

	testCases := []struct {
		name      string
		candidate models.Reservation
		wantIDs   []int
	}{
		{"starts inside existing", reservation(0, 1, "2025-03-15", "10:30", "12:00"), []int{1}},
		{"adjacent boundary", reservation(0, 1, "2025-03-15", "11:00", "12:00"), nil},
		{"ends at existing start", reservation(0, 1, "2025-03-15", "08:00", "09:00"), nil},
		{"spans two bookings", reservation(0, 1, "2025-03-15", "10:00", "13:30"), []int{1, 4}},
		{"other room same time", reservation(0, 3, "2025-03-15", "09:00", "11:00"), nil},
		{"same room other date", reservation(0, 1, "2025-03-16", "09:00", "11:00"), nil},
		{"edit keeps own slot", reservation(1, 1, "2025-03-15", "09:00", "11:00"), nil},
		{"edit moves onto another", reservation(1, 1, "2025-03-15", "13:30", "15:00"), []int{4}},
		{"exact duplicate", reservation(0, 2, "2025-03-15", "14:00", "16:00"), []int{2}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Conflicts(tc.candidate, existing)

			var ids []int
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, len(tc.wantIDs) > 0, HasConflict(tc.candidate, existing))
		})
	}
}

func TestConflicts_SkipsMalformedRecords(t *testing.T) {
	t.Parallel()

	existing := []models.Reservation{reservation(1, 1, "2025-03-15", "nine", "ten")}

	assert.False(t, HasConflict(reservation(0, 1, "2025-03-15", "09:00", "10:00"), existing))
}

func TestCheck(t *testing.T) {
	t.Parallel()

	existing := []models.Reservation{reservation(1, 1, "2025-03-15", "09:00", "11:00")}

	t.Run("conflict", func(t *testing.T) {
		err := Check(reservation(0, 1, "2025-03-15", "10:30", "12:00"), existing, testNow)
		require.ErrorIs(t, err, ErrConflictDetected)

		var cErr *ConflictError
		require.True(t, errors.As(err, &cErr))
		require.Len(t, cErr.Conflicts, 1)
		assert.Equal(t, 1, cErr.Conflicts[0].ID)
		assert.Contains(t, err.Error(), "15/03/2025")
		assert.Contains(t, err.Error(), "09h00-11h00")
	})

	t.Run("adjacent is admissible", func(t *testing.T) {
		assert.NoError(t, Check(reservation(0, 1, "2025-03-15", "11:00", "12:00"), existing, testNow))
	})

	t.Run("invalid never reaches conflict test", func(t *testing.T) {
		// 14:00-13:00 would also "overlap" nothing; the rejection must be structural.
		err := Check(reservation(0, 1, "2025-03-15", "14:00", "13:00"), existing, testNow)
		assert.ErrorIs(t, err, ErrInvalidReservation)
		assert.NotErrorIs(t, err, ErrConflictDetected)

		err = Check(reservation(0, 1, "2025-03-15", "10:00", "09:00"), existing, testNow)
		assert.ErrorIs(t, err, ErrInvalidReservation)
		assert.NotErrorIs(t, err, ErrConflictDetected)
	})
}

func TestNextID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, NextID(nil))
	assert.Equal(t, 8, NextID([]models.Reservation{{ID: 3}, {ID: 7}, {ID: 2}}))
}

func TestSortByStartAndSplit(t *testing.T) {
	t.Parallel()

	rs := []models.Reservation{
		reservation(3, 1, "2025-03-12", "14:00", "15:00"),
		reservation(1, 1, "2025-03-09", "09:00", "10:00"),
		reservation(2, 2, "2025-03-12", "08:00", "09:00"),
		reservation(4, 3, "2025-03-10", "08:00", "09:00"),
	}

	SortByStart(rs)

	var ids []int
	for _, r := range rs {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{1, 4, 2, 3}, ids)

	upcoming, past := Split(rs, testNow)
	require.Len(t, past, 1)
	assert.Equal(t, 1, past[0].ID)
	assert.Len(t, upcoming, 3)
	assert.Equal(t, 4, upcoming[0].ID, "today's reservation is upcoming")
}

func TestFilter(t *testing.T) {
	t.Parallel()

	rs := []models.Reservation{
		reservation(1, 1, "2025-03-15", "09:00", "10:00"),
		reservation(2, 2, "2025-03-15", "09:00", "10:00"),
		reservation(3, 1, "2025-03-16", "09:00", "10:00"),
	}

	assert.Len(t, Filter(rs, 0, ""), 3)
	assert.Len(t, Filter(rs, 1, ""), 2)
	assert.Len(t, Filter(rs, 0, "2025-03-15"), 2)
	assert.Len(t, Filter(rs, 1, "2025-03-16"), 1)
	assert.Empty(t, Filter(rs, 3, ""))
}
