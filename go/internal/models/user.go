package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the global role of a user account
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleTournyAdmin Role = "TOURNY_ADMIN"
	RolePlayer      Role = "PLAYER"
)

// User represents a user in the system
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Caller is the authenticated user on whose behalf an operation runs.
type Caller struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     Role      `json:"role"`
}

// IsAdmin reports whether the caller holds the global ADMIN role.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
