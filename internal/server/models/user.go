package models

import (
	"database/sql"
	"time"
)

// Roles assignable to admin-panel users.
const (
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// User is the credential store record. PasswordHash never leaves the
// repository/service layer; ResetTokenHash holds the SHA-256 digest of a
// pending reset token, not the token itself. ResetTokenHash and
// ResetTokenExpiresAt are set and cleared together.
type User struct {
	ID                  string
	Name                string
	Email               string
	PasswordHash        string
	Role                string
	ResetTokenHash      sql.NullString
	ResetTokenExpiresAt sql.NullTime
	CreatedAt           time.Time
}
