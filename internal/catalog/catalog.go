// Package catalog holds the room and equipment reference data.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"roomBooker/internal/booking"
	"roomBooker/internal/models"
)

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrEquipmentNotFound = errors.New("equipment not found")
)

type Catalog struct {
	mu        sync.RWMutex
	rooms     []models.Room
	equipment []models.Equipment
}

func New(rooms []models.Room, equipment []models.Equipment) *Catalog {
	return &Catalog{
		rooms:     cloneRooms(rooms),
		equipment: slices.Clone(equipment),
	}
}

func (c *Catalog) Rooms() []models.Room {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cloneRooms(c.rooms)
}

func (c *Catalog) Room(id int) (models.Room, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, r := range c.rooms {
		if r.ID == id {
			return cloneRoom(r), nil
		}
	}

	return models.Room{}, fmt.Errorf("%w: %d", ErrRoomNotFound, id)
}

func (c *Catalog) Equipment() []models.Equipment {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.equipment)
}

// RoomEquipment resolves the equipment ids of room. A dangling id is an error.
func (c *Catalog) RoomEquipment(room models.Room) ([]models.Equipment, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.resolveEquipment(room.EquipmentIDs)
}

func (c *Catalog) resolveEquipment(ids []int) ([]models.Equipment, error) {
	out := make([]models.Equipment, 0, len(ids))

	for _, id := range ids {
		i := slices.IndexFunc(c.equipment, func(e models.Equipment) bool { return e.ID == id })
		if i < 0 {
			return nil, fmt.Errorf("%w: %d", ErrEquipmentNotFound, id)
		}
		out = append(out, c.equipment[i])
	}

	return out, nil
}

// AddRoom stores room under the next free id and returns it.
func (c *Catalog) AddRoom(room models.Room) (models.Room, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.resolveEquipment(room.EquipmentIDs); err != nil {
		return models.Room{}, err
	}

	id := 0
	for _, r := range c.rooms {
		id = max(id, r.ID)
	}

	room = cloneRoom(room)
	room.ID = id + 1
	c.rooms = append(c.rooms, room)

	return cloneRoom(room), nil
}

type Filter struct {
	MinCapacity  int
	Date         string
	EquipmentIDs []int
}

// FilterRooms keeps the rooms that seat at least MinCapacity people, carry every
// requested piece of equipment and, when Date is set, still have free time
// inside window on that date.
func FilterRooms(rooms []models.Room, f Filter, reservations []models.Reservation, window booking.Interval) []models.Room {
	out := make([]models.Room, 0, len(rooms))

	for _, room := range rooms {
		if room.Capacity < f.MinCapacity {
			continue
		}
		if !hasAll(room.EquipmentIDs, f.EquipmentIDs) {
			continue
		}
		if f.Date != "" && fullyBooked(booking.Filter(reservations, room.ID, f.Date), window) {
			continue
		}
		out = append(out, room)
	}

	return out
}

func hasAll(have, want []int) bool {
	for _, id := range want {
		if !slices.Contains(have, id) {
			return false
		}
	}
	return true
}

// fullyBooked reports whether the union of the reservations covers window.
func fullyBooked(rs []models.Reservation, window booking.Interval) bool {
	ivs := make([]booking.Interval, 0, len(rs))
	for _, r := range rs {
		iv, err := booking.IntervalOf(r)
		if err != nil {
			continue
		}
		ivs = append(ivs, iv)
	}

	slices.SortFunc(ivs, func(a, b booking.Interval) int { return a.Start - b.Start })

	covered := window.Start
	for _, iv := range ivs {
		if iv.Start > covered {
			break
		}
		covered = max(covered, iv.End)
		if covered >= window.End {
			return true
		}
	}

	return covered >= window.End
}

// Price is the cost of booking room from start to end, pro rata per minute.
func Price(room models.Room, start, end string) (float64, error) {
	iv, err := booking.IntervalOf(models.Reservation{StartTime: start, EndTime: end})
	if err != nil {
		return 0, err
	}
	if iv.Minutes() <= 0 {
		return 0, nil
	}

	return float64(room.PricePerHour) * float64(iv.Minutes()) / 60, nil
}

func cloneRoom(r models.Room) models.Room {
	r.EquipmentIDs = slices.Clone(r.EquipmentIDs)
	return r
}

func cloneRooms(rs []models.Room) []models.Room {
	out := make([]models.Room, len(rs))
	for i, r := range rs {
		out[i] = cloneRoom(r)
	}
	return out
}
