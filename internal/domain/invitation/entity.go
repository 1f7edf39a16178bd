package invitation

import "time"

type EmailStatus string

const (
	EmailStatusPending EmailStatus = "pending"
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
)

// Invitation entity. EmailStatus reports delivery best-effort; a failed
// send never rolls back the invitation itself.
type Invitation struct {
	ID          string      `json:"id"`
	TenantID    string      `json:"tenant_id"`
	EmployeeID  string      `json:"employee_id"`
	Email       string      `json:"email"`
	Token       string      `json:"token"`
	ExpiresAt   time.Time   `json:"expires_at"`
	EmailStatus EmailStatus `json:"email_status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
