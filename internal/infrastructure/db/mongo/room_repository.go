package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MadeCbt/roombooking/internal/core/domain"
)

const roomsCollection = "rooms"

// RoomRepository persists rooms with their embedded booking arrays.
type RoomRepository struct {
	coll *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{coll: db.Collection(roomsCollection)}
}

type mongoRoom struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Bookings  []domain.Booking   `bson:"bookings"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (mr mongoRoom) toDomain() *domain.Room {
	bookings := mr.Bookings
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return &domain.Room{
		ID:        mr.ID.Hex(),
		Name:      mr.Name,
		Bookings:  bookings,
		CreatedAt: mr.CreatedAt,
	}
}

// Create inserts a new room. The unique index on name makes a duplicate
// insert fail atomically with domain.ErrDuplicateRoom.
func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc := mongoRoom{
		Name:      room.Name,
		Bookings:  []domain.Booking{},
		CreatedAt: room.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateRoom
		}
		return nil, fmt.Errorf("insert room: %w", err)
	}

	created := *room
	created.Bookings = []domain.Booking{}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoRoom
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}

	rooms := make([]*domain.Room, 0, len(docs))
	for _, d := range docs {
		rooms = append(rooms, d.toDomain())
	}
	return rooms, nil
}

// Delete removes a room by id. A malformed or unknown id is treated as
// already deleted: the contract is a permissive, idempotent delete.
func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}

// AppendBooking pushes a booking onto the named room in a single
// conditional update: the filter only matches when no existing element of
// the bookings array occupies the same (date, hour) slot. Document updates
// are atomic in MongoDB, so two concurrent calls for the same slot cannot
// both match — the loser sees MatchedCount 0 and is reported as a conflict.
func (r *RoomRepository) AppendBooking(ctx context.Context, roomName string, booking domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{
		"name": roomName,
		"bookings": bson.M{
			"$not": bson.M{
				"$elemMatch": bson.M{"date": booking.Date, "hour": booking.Hour},
			},
		},
	}
	update := bson.M{"$push": bson.M{"bookings": booking}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("append booking: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// Matched nothing: either the room does not exist or the slot is taken.
	err = r.coll.FindOne(ctx, bson.M{"name": roomName}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrRoomNotFound
	}
	if err != nil {
		return fmt.Errorf("append booking: %w", err)
	}
	return domain.ErrSlotConflict
}

// EnsureIndexes creates the unique index on name.
func (r *RoomRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
