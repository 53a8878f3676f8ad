package dashboard

import "context"

// DashboardService composes the role-appropriate dashboard views.
type DashboardService interface {
	// GetDashboard builds the requester's own dashboard; the date range
	// defaults to the current Monday-Sunday week
	GetDashboard(ctx context.Context, employeeID string, filters Filters) (*DashboardResponse, error)

	// GetEmployeeDashboard builds another employee's dashboard after the
	// visibility policy allows it
	GetEmployeeDashboard(ctx context.Context, requesterID, targetID string, filters Filters) (*DashboardResponse, error)

	// GetQuickStats returns the lightweight today/this-week widget
	GetQuickStats(ctx context.Context, employeeID string) (*QuickStatsResponse, error)
}
