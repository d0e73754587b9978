// Package booking decides whether a reservation may be admitted: structural
// validation first, then the same-room, same-date interval overlap test.
//
// Everything here is a pure function of its arguments. Callers fetch the
// comparison set from a store and handle I/O errors themselves.
package booking

import (
	"strings"
	"time"

	"roomBooker/internal/lib/datetime"
	"roomBooker/internal/models"
)

// Interval is a half-open [Start, End) range of minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether the two half-open intervals share at least one minute.
// Back-to-back intervals (a.End == b.Start) do not overlap.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

func (a Interval) Minutes() int {
	return a.End - a.Start
}

func IntervalOf(r models.Reservation) (Interval, error) {
	start, err := datetime.TimeToMinutes(r.StartTime)
	if err != nil {
		return Interval{}, err
	}

	end, err := datetime.EndTimeToMinutes(r.EndTime)
	if err != nil {
		return Interval{}, err
	}

	return Interval{Start: start, End: end}, nil
}

// ValidateStructure checks the preconditions a candidate must meet before it is
// compared against existing reservations. It returns nil or a *ValidationError.
func ValidateStructure(r models.Reservation, now time.Time) error {
	switch {
	case r.RoomID <= 0:
		return &ValidationError{Field: "room_id", Reason: "is required"}
	case strings.TrimSpace(r.UserName) == "":
		return &ValidationError{Field: "user_name", Reason: "is required"}
	case r.Date == "":
		return &ValidationError{Field: "date", Reason: "is required"}
	case r.StartTime == "":
		return &ValidationError{Field: "start_time", Reason: "is required"}
	case r.EndTime == "":
		return &ValidationError{Field: "end_time", Reason: "is required"}
	}

	date, err := datetime.ParseDate(r.Date)
	if err != nil {
		return &ValidationError{Field: "date", Reason: "must be formatted as YYYY-MM-DD"}
	}

	start, err := datetime.TimeToMinutes(r.StartTime)
	if err != nil {
		return &ValidationError{Field: "start_time", Reason: "must be formatted as HH:MM"}
	}

	end, err := datetime.EndTimeToMinutes(r.EndTime)
	if err != nil {
		return &ValidationError{Field: "end_time", Reason: "must be formatted as HH:MM"}
	}

	if start >= end {
		return &ValidationError{Reason: "start time must be before end time"}
	}

	if datetime.IsPast(date, now) {
		return &ValidationError{Field: "date", Reason: "is in the past"}
	}

	return nil
}

// Conflicts returns the reservations in existing that overlap candidate in the
// same room on the same date. A reservation sharing the candidate's ID is the
// candidate itself being edited and is ignored.
func Conflicts(candidate models.Reservation, existing []models.Reservation) []models.Reservation {
	want, err := IntervalOf(candidate)
	if err != nil {
		return nil
	}

	var conflicts []models.Reservation
	for _, r := range existing {
		if candidate.ID != 0 && r.ID == candidate.ID {
			continue
		}
		if r.RoomID != candidate.RoomID || r.Date != candidate.Date {
			continue
		}

		// Records that were never validated cannot be placed on the clock.
		got, err := IntervalOf(r)
		if err != nil {
			continue
		}

		if want.Overlaps(got) {
			conflicts = append(conflicts, r)
		}
	}

	return conflicts
}

func HasConflict(candidate models.Reservation, existing []models.Reservation) bool {
	return len(Conflicts(candidate, existing)) > 0
}

// Check runs the full admission test. It returns nil, a *ValidationError or a
// *ConflictError. An invalid candidate never reaches the conflict test.
func Check(candidate models.Reservation, existing []models.Reservation, now time.Time) error {
	if err := ValidateStructure(candidate, now); err != nil {
		return err
	}

	if conflicts := Conflicts(candidate, existing); len(conflicts) > 0 {
		return &ConflictError{Conflicts: conflicts}
	}

	return nil
}

// NextID returns one more than the highest id in existing, or 1.
func NextID(existing []models.Reservation) int {
	id := 0
	for _, r := range existing {
		id = max(id, r.ID)
	}
	return id + 1
}
