package worklog

import (
	"context"
	"time"
)

// WorklogRepository defines data access for worklog rows. Create, Update and
// Delete run against the querier carried in ctx when called inside a
// transaction, so the duplicate and quota checks observe a consistent
// snapshot of the same-day entries.
type WorklogRepository interface {
	// Create inserts a worklog and returns it with generated fields
	Create(ctx context.Context, w Worklog) (Worklog, error)

	// GetByID retrieves a worklog with the type name joined in
	GetByID(ctx context.Context, id string) (Worklog, error)

	// Update rewrites the mutable fields of a worklog
	Update(ctx context.Context, w Worklog) (Worklog, error)

	// Delete removes a worklog row
	Delete(ctx context.Context, id string) error

	// ListByEmployeeAndRange retrieves an employee's worklogs in [start, end],
	// newest work date first, then newest created first
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Worklog, error)

	// ListByEmployeeAndDate retrieves all of an employee's entries for one
	// date, oldest created first
	ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]Worklog, error)

	// ListByTeamLead retrieves worklogs of a team lead's direct reports in
	// range, joined with employee and type names
	ListByTeamLead(ctx context.Context, teamLeadID string, start, end time.Time) ([]Worklog, error)

	// ListByDepartment retrieves worklogs of a department's employees in range
	ListByDepartment(ctx context.Context, departmentID string, start, end time.Time) ([]Worklog, error)

	// FindDuplicate looks up an entry with identical employee, date, type,
	// project and description; NULL project/description matches only NULL
	FindDuplicate(ctx context.Context, employeeID string, date time.Time, typeID string, projectName, description *string) (*Worklog, error)
}
