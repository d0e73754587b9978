package booking

import (
	"cmp"
	"slices"
	"time"

	"roomBooker/internal/lib/datetime"
	"roomBooker/internal/models"
)

// Filter keeps reservations for roomID (0 means any room) on date ("" means any date).
func Filter(rs []models.Reservation, roomID int, date string) []models.Reservation {
	out := make([]models.Reservation, 0, len(rs))
	for _, r := range rs {
		if roomID != 0 && r.RoomID != roomID {
			continue
		}
		if date != "" && r.Date != date {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SortByStart orders reservations by date, then start time, then id.
// "YYYY-MM-DD" and "HH:MM" both sort lexically.
func SortByStart(rs []models.Reservation) {
	slices.SortStableFunc(rs, func(a, b models.Reservation) int {
		switch {
		case a.Date != b.Date:
			return cmp.Compare(a.Date, b.Date)
		case a.StartTime != b.StartTime:
			return cmp.Compare(a.StartTime, b.StartTime)
		default:
			return cmp.Compare(a.ID, b.ID)
		}
	})
}

// Split partitions reservations into upcoming ones (today or later) and past ones.
// Unparseable dates count as upcoming so they stay visible and cancellable.
func Split(rs []models.Reservation, now time.Time) (upcoming, past []models.Reservation) {
	upcoming = make([]models.Reservation, 0, len(rs))
	past = make([]models.Reservation, 0)

	for _, r := range rs {
		date, err := datetime.ParseDate(r.Date)
		if err == nil && datetime.IsPast(date, now) {
			past = append(past, r)
			continue
		}
		upcoming = append(upcoming, r)
	}

	return upcoming, past
}
