package domain

import "time"

// Session audit actions.
const (
	AuditLogin   = "login"
	AuditLogout  = "logout"
	AuditRestore = "restore"
)

// SessionEvent records one session lifecycle action for the audit trail.
type SessionEvent struct {
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}
