package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/MadeCbt/roombooking/internal/core/domain"
	"github.com/MadeCbt/roombooking/internal/core/ports"
)

// RoomListCache abstracts the read-through cache (Redis) in front of the
// room listing. A nil-room, nil-error Get is a miss. Cache faults are never
// fatal: the service logs them and falls back to the repository.
type RoomListCache interface {
	Get(ctx context.Context) ([]*domain.Room, error)
	Set(ctx context.Context, rooms []*domain.Room) error
	Invalidate(ctx context.Context) error
}

// BookingService implements room management and slot booking.
type BookingService struct {
	repo  ports.RoomRepository
	cache RoomListCache
	log   zerolog.Logger
}

// NewBookingService returns a BookingService. cache may be nil, in which
// case ListRooms always hits the repository.
func NewBookingService(repo ports.RoomRepository, cache RoomListCache, log zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, cache: cache, log: log}
}

// CreateRoom persists a new room with an empty booking list. Name
// uniqueness is enforced by the repository's unique index.
func (s *BookingService) CreateRoom(ctx context.Context, name string) (*domain.Room, error) {
	room := &domain.Room{
		Name:      name,
		Bookings:  []domain.Booking{},
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, room)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.log.Info().Str("room", name).Msg("room created")
	return created, nil
}

// ListRooms returns every room with its full booking list.
func (s *BookingService) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("room list cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, rooms); err != nil {
			s.log.Warn().Err(err).Msg("room list cache write failed")
		}
	}
	return rooms, nil
}

// DeleteRoom removes a room and, with it, all of its bookings. Deleting a
// room that does not exist is not an error.
func (s *BookingService) DeleteRoom(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	s.log.Info().Str("room_id", id).Msg("room deleted")
	return nil
}

// Book appends a booking to the named room unless the (date, hour) slot is
// already taken. The conflict check and the append are one atomic store
// operation, so concurrent bookings for the same slot produce exactly one
// winner.
func (s *BookingService) Book(ctx context.Context, input ports.BookInput) error {
	booking := domain.Booking{
		Date:      input.Date,
		Hour:      input.Hour,
		Note:      input.Note,
		Username:  input.Username,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.AppendBooking(ctx, input.RoomName, booking); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	s.log.Info().
		Str("room", input.RoomName).
		Str("date", input.Date).
		Int("hour", input.Hour).
		Str("username", input.Username).
		Msg("slot booked")
	return nil
}

func (s *BookingService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("room list cache invalidation failed")
	}
}
