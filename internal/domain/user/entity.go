package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User represents a staff account able to manage shipments
type User struct {
	ID             uuid.UUID
	Username       string
	Email          string
	PasswordHashed string
	FullName       string
	Role           string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
