package models

import "time"

type Reservation struct {
	ID          int       `json:"id"`
	RoomID      int       `json:"room_id"`
	UserName    string    `json:"user_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
}
