package timesheet

import "context"

// TimesheetService drives the timesheet workflow: client and project
// administration, draft entry management, week-level submission and
// per-entry resolution.
type TimesheetService interface {
	CreateClient(ctx context.Context, tenantID string, req CreateClientRequest) (Client, error)
	ListClients(ctx context.Context, tenantID string) ([]Client, error)
	DeleteClient(ctx context.Context, tenantID, id string) error

	CreateProject(ctx context.Context, tenantID string, req CreateProjectRequest) (Project, error)
	ListProjects(ctx context.Context, tenantID string) ([]Project, error)
	DeleteProject(ctx context.Context, tenantID, id string) error

	AddEntry(ctx context.Context, tenantID string, req CreateEntryRequest) (TimeEntry, error)
	ListEntries(ctx context.Context, tenantID string, filter EntryFilter) ([]TimeEntry, error)
	// DeleteEntry removes a draft owned by the calling employee; anything
	// past draft is immutable from the employee side.
	DeleteEntry(ctx context.Context, tenantID, employeeID, entryID string) error

	// SubmitWeek transitions the listed drafts to submitted atomically.
	// Every entry must be a draft, owned by the employee and dated inside
	// the 7-day window starting at week_start.
	SubmitWeek(ctx context.Context, tenantID string, req SubmitWeekRequest) ([]TimeEntry, error)

	ApproveEntry(ctx context.Context, tenantID, entryID, resolvedBy string) (TimeEntry, error)
	RejectEntry(ctx context.Context, tenantID, entryID, resolvedBy string) (TimeEntry, error)

	WeeklySummary(ctx context.Context, tenantID, employeeID, weekStart string) (WeeklySummary, error)
}
