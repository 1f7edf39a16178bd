package dashboard

import "context"

// DashboardService aggregates tenant-wide counters for the admin landing
// page.
type DashboardService interface {
	Stats(ctx context.Context, tenantID string) (Stats, error)
}
