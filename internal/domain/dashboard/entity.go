package dashboard

// Stats summarizes a tenant for the admin dashboard.
type Stats struct {
	TotalEmployees   int64   `json:"total_employees"`
	TotalDepartments int64   `json:"total_departments"`
	PendingLeaves    int64   `json:"pending_leaves"`
	PresentToday     int64   `json:"present_today"`
	AttendanceRate   float64 `json:"attendance_rate"`
}
