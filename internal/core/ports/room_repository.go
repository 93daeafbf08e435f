package ports

import (
	"context"

	"github.com/MadeCbt/roombooking/internal/core/domain"
)

// RoomRepository defines persistence operations for rooms and their
// embedded bookings.
type RoomRepository interface {
	// Create inserts a new room with an empty booking list. The store
	// enforces name uniqueness; duplicates fail with domain.ErrDuplicateRoom.
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)

	// List returns all rooms with their full booking lists, natural order.
	List(ctx context.Context) ([]*domain.Room, error)

	// Delete removes the room with the given id. Absent or malformed ids
	// are not errors: the delete is idempotent.
	Delete(ctx context.Context, id string) error

	// AppendBooking atomically appends a booking to the named room, but
	// only if no existing booking occupies the same (date, hour) slot.
	// The conflict check and the append are a single store operation, so
	// two concurrent calls for the same slot cannot both succeed.
	// Returns domain.ErrRoomNotFound or domain.ErrSlotConflict.
	AppendBooking(ctx context.Context, roomName string, booking domain.Booking) error
}
