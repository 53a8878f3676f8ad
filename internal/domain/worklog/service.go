package worklog

import (
	"context"
	"time"
)

// WorklogService defines the write path (validated, owner-only, windowed) and
// the role-gated read paths over worklog entries. requesterID is always the
// authenticated caller, passed explicitly.
type WorklogService interface {
	// CreateWorklog validates and persists a new entry for employeeID
	CreateWorklog(ctx context.Context, employeeID string, req CreateWorklogRequest) (WorklogResponse, error)

	// UpdateWorklog rewrites an entry; owner-only, 7-day window
	UpdateWorklog(ctx context.Context, worklogID, employeeID string, req UpdateWorklogRequest) (WorklogResponse, error)

	// DeleteWorklog removes an entry; owner-only, 7-day window
	DeleteWorklog(ctx context.Context, worklogID, employeeID string) error

	// GetWorklogByID returns one entry, subject to the visibility policy
	GetWorklogByID(ctx context.Context, worklogID, requesterID string) (WorklogResponse, error)

	// GetEmployeeWorklogs lists the requester's own entries in range
	GetEmployeeWorklogs(ctx context.Context, employeeID string, start, end time.Time) ([]WorklogResponse, error)

	// GetWorklogsForDate lists the requester's own entries for one date
	GetWorklogsForDate(ctx context.Context, employeeID string, date time.Time) ([]WorklogResponse, error)

	// GetTeamWorklogs lists a team's entries; team lead or director only.
	// A non-nil memberID narrows to one report after a membership check.
	GetTeamWorklogs(ctx context.Context, teamLeadID string, start, end time.Time, memberID *string) ([]WorklogResponse, error)

	// GetDepartmentWorklogs lists a department's entries; director only.
	// Optional teamLeadID/employeeID filters narrow the result.
	GetDepartmentWorklogs(ctx context.Context, directorID string, start, end time.Time, teamLeadID, employeeID *string) ([]WorklogResponse, error)
}
