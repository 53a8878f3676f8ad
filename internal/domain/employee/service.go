package employee

import "context"

// EmployeeService exposes the read-side lookups the dashboard UI needs.
// Every operation takes the authenticated requester's id explicitly.
type EmployeeService interface {
	// GetEmployee returns a profile, subject to the visibility policy
	GetEmployee(ctx context.Context, requesterID, targetID string) (EmployeeResponse, error)

	// ListVisibleEmployees returns everyone the requester may view, for
	// dashboard dropdowns: self, direct reports, or the whole department
	ListVisibleEmployees(ctx context.Context, requesterID string) ([]EmployeeResponse, error)
}
