package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// Attendance entity. One record per (employee, date); check_in is set once,
// check_out only afterwards and only once.
type Attendance struct {
	ID         string     `json:"id"`
	TenantID   string     `json:"tenant_id"`
	EmployeeID string     `json:"employee_id"`
	Date       time.Time  `json:"date"`
	CheckIn    *time.Time `json:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Join
	EmployeeName *string `json:"employee_name,omitempty"`
}
