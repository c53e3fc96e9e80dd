package user

import (
	"net/http"
	"time"

	"github.com/playvenue/sports-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "No Data Found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusBadRequest, "Email already registered")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "Invalid email or password")
	ErrInvalidRole        = apperror.New(http.StatusBadRequest, "Role must be either admin or user")
	ErrDuplicateEntry     = apperror.New(http.StatusBadRequest, "Duplicate entry")
)

// Role determines which guarded routes a user may call.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents a platform account.
type User struct {
	ID           string // UUID
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Role         Role
	Address      string
	CreatedAt    time.Time
}
