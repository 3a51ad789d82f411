package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the account identity record. Role is mutable only through the
// explicit admin-promotion operation and defaults to RoleUser on creation.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	PhotoURL  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
