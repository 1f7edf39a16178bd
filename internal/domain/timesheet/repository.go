package timesheet

import (
	"context"
	"time"
)

// ClientRepository - interface for clients table
type ClientRepository interface {
	Create(ctx context.Context, c Client) (Client, error)
	GetByID(ctx context.Context, id string) (Client, error)
	ListByTenant(ctx context.Context, tenantID string) ([]Client, error)
	Update(ctx context.Context, c Client) error
	Delete(ctx context.Context, id string) error
	CountProjects(ctx context.Context, id string) (int64, error)
}

// ProjectRepository - interface for projects table
type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	ListByTenant(ctx context.Context, tenantID string) ([]Project, error)
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, id string) error
	CountEntries(ctx context.Context, id string) (int64, error)
}

// TimeEntryRepository - interface for time_entries table
type TimeEntryRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	GetByID(ctx context.Context, id string) (TimeEntry, error)
	ListByTenant(ctx context.Context, tenantID string, filter EntryFilter) ([]TimeEntry, error)
	// ListByEmployeeRange returns the employee's entries with date in
	// [from, to).
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]TimeEntry, error)
	ListByIDs(ctx context.Context, ids []string) ([]TimeEntry, error)
	// DeleteDraft removes an entry only while it is still a draft.
	DeleteDraft(ctx context.Context, id string) error
	// SubmitBatch transitions the listed draft entries to submitted in one
	// statement. It fails without partial effect unless every listed entry
	// is still a draft.
	SubmitBatch(ctx context.Context, ids []string, submittedAt time.Time) error
	// UpdateStatus transitions a single entry conditionally on its expected
	// pre-state, mirroring leave request resolution.
	UpdateStatus(ctx context.Context, id string, from, to EntryStatus, resolvedBy string, resolvedAt time.Time) error
}
