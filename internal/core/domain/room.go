package domain

import (
	"errors"
	"time"
)

var ErrDuplicateRoom = errors.New("room already exists")
var ErrRoomNotFound = errors.New("room not found")
var ErrSlotConflict = errors.New("time slot already booked")

// Booking is a reserved slot embedded in a Room. It has no identity of its
// own; the (Date, Hour) pair must be unique within the owning room.
type Booking struct {
	Date      string    `json:"date" bson:"date"` // "YYYY-MM-DD"
	Hour      int       `json:"hour" bson:"hour"`
	Note      string    `json:"note,omitempty" bson:"note,omitempty"`
	Username  string    `json:"username" bson:"username"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Room is the aggregate root owning its bookings. Deleting a room discards
// the embedded bookings with it.
type Room struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Bookings  []Booking `json:"bookings"`
	CreatedAt time.Time `json:"created_at"`
}
