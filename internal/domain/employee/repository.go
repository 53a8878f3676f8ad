package employee

import (
	"context"
)

// EmployeeRepository defines data access for the employee master data. The
// worklog core treats employees as read-mostly reference inputs.
type EmployeeRepository interface {
	// GetByID retrieves an employee with grade and department names joined in
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee for login
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// ListActiveByDepartment retrieves active employees of a department
	ListActiveByDepartment(ctx context.Context, departmentID string) ([]Employee, error)

	// ListActiveByTeamLead retrieves the active direct reports of a team lead
	ListActiveByTeamLead(ctx context.Context, teamLeadID string) ([]Employee, error)

	// ListActiveByRole retrieves active employees holding a role
	ListActiveByRole(ctx context.Context, role Role) ([]Employee, error)
}
