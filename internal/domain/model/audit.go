//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"encoding/json"
	"time"
)

// AuditRecord captures one administrative action for the audit trail.
type AuditRecord struct {
	ID         string          `json:"id"               db:"id"`
	Action     string          `json:"action"           db:"action"`
	ActorID    string          `json:"actor_id"         db:"actor_id"`
	ActorEmail string          `json:"actor_email"      db:"actor_email"`
	ClientIP   string          `json:"client_ip"        db:"client_ip"`
	Detail     json.RawMessage `json:"detail,omitempty" db:"detail"`
	CreatedAt  time.Time       `json:"created_at"       db:"created_at"`
}

// Audit action names. One per admin mutation.
const (
	AuditLogin          = "auth.login"
	AuditLoginFailed    = "auth.login_failed"
	AuditLogout         = "auth.logout"
	AuditPostCreate     = "post.create"
	AuditPostUpdate     = "post.update"
	AuditPostDelete     = "post.delete"
	AuditCategoryCreate = "category.create"
	AuditCategoryUpdate = "category.update"
	AuditCategoryDelete = "category.delete"
)
