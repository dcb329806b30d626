package auth

// Package auth contains domain-level types for authentication and session
// tokens. It is pure and free of transport/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Kept in string form for easy persistence and token claims.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether the role is one of the defined constants.
func (r Role) Valid() bool { return r == RoleAdmin || r == RoleUser }

// TokenTTL is the lifetime of an issued session token. Logout only deletes the
// client-side cookie; a copied token remains valid until this expiry because
// the server keeps no revocation list.
const TokenTTL = 7 * 24 * time.Hour

// Claims is the payload embedded in a signed session token.
// The role claim is informational only: authorization decisions always use the
// role from the freshly fetched user record, never the one baked into the token.
type Claims struct {
	UserID    string
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AuthenticatedUser is the identity resolved for a request: the live user
// record looked up by the token's subject. It is a read-only per-request
// snapshot owned by the user store.
type AuthenticatedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// IsAdmin returns true if the user holds the administrator role.
func (u AuthenticatedUser) IsAdmin() bool { return u.Role == RoleAdmin }
