package ports

import (
	"context"

	"github.com/MadeCbt/roombooking/internal/core/domain"
)

// BookInput carries the booking request from the transport layer.
// Hour is deliberately a free integer: the service does not range-check it.
type BookInput struct {
	RoomName string
	Date     string // "YYYY-MM-DD"
	Hour     int
	Note     string
	Username string
}

// BookingService defines use-case operations for rooms and bookings.
type BookingService interface {
	CreateRoom(ctx context.Context, name string) (*domain.Room, error)
	ListRooms(ctx context.Context) ([]*domain.Room, error)
	DeleteRoom(ctx context.Context, id string) error
	Book(ctx context.Context, input BookInput) error
}
