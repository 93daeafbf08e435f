package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/MadeCbt/roombooking/internal/core/domain"
	"github.com/MadeCbt/roombooking/internal/core/ports"
)

type stubBookingService struct {
	createRoomFn func(ctx context.Context, name string) (*domain.Room, error)
	listRoomsFn  func(ctx context.Context) ([]*domain.Room, error)
	deleteRoomFn func(ctx context.Context, id string) error
	bookFn       func(ctx context.Context, input ports.BookInput) error
}

func (s *stubBookingService) CreateRoom(ctx context.Context, name string) (*domain.Room, error) {
	return s.createRoomFn(ctx, name)
}

func (s *stubBookingService) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	return s.listRoomsFn(ctx)
}

func (s *stubBookingService) DeleteRoom(ctx context.Context, id string) error {
	return s.deleteRoomFn(ctx, id)
}

func (s *stubBookingService) Book(ctx context.Context, input ports.BookInput) error {
	return s.bookFn(ctx, input)
}

func TestRoomHandler_Create_Success(t *testing.T) {
	stub := &stubBookingService{
		createRoomFn: func(ctx context.Context, name string) (*domain.Room, error) {
			if name != "Room A" {
				t.Fatalf("unexpected name: %q", name)
			}
			return &domain.Room{ID: "r1", Name: name, Bookings: []domain.Booking{}}, nil
		},
	}
	h := NewRoomHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/admin/rooms", `{"name":"Room A"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Room created" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	room, ok := resp["room"].(map[string]any)
	if !ok || room["name"] != "Room A" {
		t.Fatalf("unexpected room payload: %+v", room)
	}
}

func TestRoomHandler_Create_Duplicate(t *testing.T) {
	stub := &stubBookingService{
		createRoomFn: func(ctx context.Context, name string) (*domain.Room, error) {
			return nil, domain.ErrDuplicateRoom
		},
	}
	h := NewRoomHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/admin/rooms", `{"name":"Room A"}`)
	_ = h.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Room already exists") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRoomHandler_Create_MissingName(t *testing.T) {
	stub := &stubBookingService{
		createRoomFn: func(ctx context.Context, name string) (*domain.Room, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewRoomHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/admin/rooms", `{}`)
	_ = h.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRoomHandler_List(t *testing.T) {
	stub := &stubBookingService{
		listRoomsFn: func(ctx context.Context) ([]*domain.Room, error) {
			return []*domain.Room{
				{ID: "r1", Name: "Room A", Bookings: []domain.Booking{{Date: "2024-06-01", Hour: 9, Username: "alice"}}},
				{ID: "r2", Name: "Room B", Bookings: []domain.Booking{}},
			}, nil
		},
	}
	h := NewRoomHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/rooms", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var rooms []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &rooms); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(rooms))
	}
	bookings, ok := rooms[0]["bookings"].([]any)
	if !ok || len(bookings) != 1 {
		t.Fatalf("expected embedded bookings in list response: %+v", rooms[0])
	}
}

func TestRoomHandler_Delete_AlwaysSucceeds(t *testing.T) {
	var gotID string
	stub := &stubBookingService{
		deleteRoomFn: func(ctx context.Context, id string) error {
			gotID = id
			return nil
		},
	}
	h := NewRoomHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/admin/rooms/abc123", "")
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "abc123" {
		t.Fatalf("expected id abc123, got %q", gotID)
	}
	if !strings.Contains(rec.Body.String(), "Room deleted") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRoomHandler_Book_Success(t *testing.T) {
	stub := &stubBookingService{
		bookFn: func(ctx context.Context, input ports.BookInput) error {
			if input.RoomName != "Room A" || input.Date != "2024-06-01" || input.Hour != 9 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return nil
		},
	}
	h := NewRoomHandler(stub)

	body := `{"roomName":"Room A","date":"2024-06-01","hour":9,"note":"standup","username":"alice"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/admin/book", body)
	if err := h.Book(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Booking successful") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRoomHandler_Book_RoomNotFound(t *testing.T) {
	stub := &stubBookingService{
		bookFn: func(ctx context.Context, input ports.BookInput) error {
			return domain.ErrRoomNotFound
		},
	}
	h := NewRoomHandler(stub)

	body := `{"roomName":"Nowhere","date":"2024-06-01","hour":9}`
	c, rec := newTestContext(t, http.MethodPost, "/api/admin/book", body)
	_ = h.Book(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Room not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRoomHandler_Book_SlotConflict(t *testing.T) {
	stub := &stubBookingService{
		bookFn: func(ctx context.Context, input ports.BookInput) error {
			return domain.ErrSlotConflict
		},
	}
	h := NewRoomHandler(stub)

	body := `{"roomName":"Room A","date":"2024-06-01","hour":9,"note":"retro","username":"bob"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/admin/book", body)
	_ = h.Book(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Time slot already booked") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRoomHandler_Book_BadDate(t *testing.T) {
	stub := &stubBookingService{
		bookFn: func(ctx context.Context, input ports.BookInput) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewRoomHandler(stub)

	body := `{"roomName":"Room A","date":"June 1st","hour":9}`
	c, rec := newTestContext(t, http.MethodPost, "/api/admin/book", body)
	_ = h.Book(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
