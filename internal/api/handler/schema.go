package handler

import "github.com/MadeCbt/roombooking/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the confirmation envelope used by write endpoints.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	// Role is advisory and defaults to "user" when empty; it is stored
	// verbatim and never enforced.
	Role string `json:"role,omitempty"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userSummary is the subset of a user record safe to return to a client.
// The password hash never leaves the service.
type userSummary struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Message string      `json:"message"`
	User    userSummary `json:"user"`
}

// --- Rooms / bookings ---

type createRoomRequest struct {
	Name string `json:"name" validate:"required"`
}

type createRoomResponse struct {
	Message string       `json:"message"`
	Room    *domain.Room `json:"room"`
}

type bookRequest struct {
	RoomName string `json:"roomName" validate:"required"`
	Date     string `json:"date"     validate:"required,datetime=2006-01-02"`
	// Hour is deliberately not range-checked; the store treats it as a
	// free integer.
	Hour     int    `json:"hour"`
	Note     string `json:"note,omitempty"`
	Username string `json:"username"`
}
