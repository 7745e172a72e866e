package model

import "time"

// Role grants access to parts of the API.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents a registered customer or administrator.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Phone        string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}

// IsAdmin reports whether the user may use administrative endpoints.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// LoginAttempt is an audit record of a login request.
type LoginAttempt struct {
	ID            int64
	UserID        *int64
	Success       bool
	FailureReason string
	IPAddress     string
	UserAgent     string
	CreatedAt     time.Time
}

// ClientInfo carries request metadata recorded with login attempts.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}
