package timesheet

import "time"

type Client struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Project struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	ClientID    string    `json:"client_id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	BudgetHours *float64  `json:"budget_hours,omitempty"`
	IsBillable  bool      `json:"is_billable"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Join
	ClientName *string `json:"client_name,omitempty"`
}

type EntryStatus string

const (
	EntryStatusDraft     EntryStatus = "draft"
	EntryStatusSubmitted EntryStatus = "submitted"
	EntryStatusApproved  EntryStatus = "approved"
	EntryStatusRejected  EntryStatus = "rejected"
)

// TimeEntry entity. Lifecycle is strictly draft -> submitted -> approved or
// rejected; entries leave draft only through week-level batch submission.
type TimeEntry struct {
	ID          string      `json:"id"`
	TenantID    string      `json:"tenant_id"`
	EmployeeID  string      `json:"employee_id"`
	ProjectID   string      `json:"project_id"`
	Date        time.Time   `json:"date"`
	Hours       float64     `json:"hours"`
	Description *string     `json:"description,omitempty"`
	IsBillable  bool        `json:"is_billable"`
	Status      EntryStatus `json:"status"`
	SubmittedAt *time.Time  `json:"submitted_at,omitempty"`
	ResolvedBy  *string     `json:"resolved_by,omitempty"`
	ResolvedAt  *time.Time  `json:"resolved_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Joins
	ProjectName *string `json:"project_name,omitempty"`
	ProjectCode *string `json:"project_code,omitempty"`
}

// WeeklySummary aggregates the entries of one employee's 7-day window.
type WeeklySummary struct {
	TotalHours         float64 `json:"total_hours"`
	BillableHours      float64 `json:"billable_hours"`
	NonBillableHours   float64 `json:"non_billable_hours"`
	BillablePercentage int     `json:"billable_percentage"`
}
