package timesheet

import "errors"

var (
	ErrClientNotFound        = errors.New("client not found")
	ErrClientCodeExists      = errors.New("client code already exists")
	ErrClientHasProjects     = errors.New("client still has projects")
	ErrProjectNotFound       = errors.New("project not found")
	ErrProjectCodeExists     = errors.New("project code already exists")
	ErrProjectInactive       = errors.New("project is not active")
	ErrProjectHasEntries     = errors.New("project still has time entries")
	ErrEntryNotFound         = errors.New("time entry not found")
	ErrEntryNotDraft         = errors.New("time entry is no longer a draft")
	ErrEntryNotSubmitted     = errors.New("time entry is not awaiting approval")
	ErrEntryNotOwned         = errors.New("time entry belongs to another employee")
	ErrEntryOutsideWeek      = errors.New("time entry falls outside the submitted week")
	ErrEntryAlreadyProcessed = errors.New("time entry already processed")
)
