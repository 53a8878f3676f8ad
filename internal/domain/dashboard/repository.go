package dashboard

import (
	"context"
	"time"
)

// TypeHours is one row of an hours-by-worklog-type aggregate.
type TypeHours struct {
	TypeName string
	Hours    int
}

// MemberStats is one row of the per-team-member summary: every active direct
// report appears, zeroed when nothing was logged in range.
type MemberStats struct {
	EmployeeID string
	FirstName  string
	LastName   string
	GradeTitle string
	TotalHours int
	DaysWorked int
}

// TeamStats is one row of the per-department team summary grouped by team
// lead; MemberHours excludes the lead's own entries, LeadHours covers them.
type TeamStats struct {
	TeamLeadID      string
	TeamLeadName    string
	TeamSize        int
	MemberHours     int
	LeadHours       int
	MembersWithLogs int
}

// DashboardRepository defines the aggregate queries behind the dashboards.
// Each method is a single SQL aggregation over the inclusive [start, end]
// date range.
type DashboardRepository interface {
	// GetTotalHoursByEmployee sums an employee's hours in range; 0 when none
	GetTotalHoursByEmployee(ctx context.Context, employeeID string, start, end time.Time) (int, error)

	// GetHoursByTypeForEmployee groups an employee's hours by worklog type,
	// descending by hours
	GetHoursByTypeForEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]TypeHours, error)

	// GetTeamMemberSummary returns hours/days-worked per active direct report
	GetTeamMemberSummary(ctx context.Context, teamLeadID string, start, end time.Time) ([]MemberStats, error)

	// GetDepartmentTeamSummary returns per-team-lead member counts and hours
	// for a department
	GetDepartmentTeamSummary(ctx context.Context, departmentID string, start, end time.Time) ([]TeamStats, error)

	// GetDepartmentTypeSummary groups a department's hours by worklog type,
	// descending by hours
	GetDepartmentTypeSummary(ctx context.Context, departmentID string, start, end time.Time) ([]TypeHours, error)

	// CountEmployeesWithLogs counts distinct active department employees who
	// logged anything in range, excluding the employee with excludeID
	CountEmployeesWithLogs(ctx context.Context, departmentID, excludeID string, start, end time.Time) (int, error)

	// HasLoggedWorkForDate reports whether the employee has any entry on date
	HasLoggedWorkForDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
