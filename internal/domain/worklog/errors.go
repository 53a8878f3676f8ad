package worklog

import "errors"

// Worklog domain errors
var (
	ErrWorklogNotFound    = errors.New("worklog not found")
	ErrNotOwner           = errors.New("you can only modify your own worklogs")
	ErrViewForbidden      = errors.New("you don't have permission to view this worklog")
	ErrImmutable          = errors.New("worklogs outside the 7-day window cannot be modified")
	ErrDuplicateEntry     = errors.New("an identical worklog entry already exists for this date")
	ErrDailyHoursExceeded = errors.New("daily hour limit exceeded")
	ErrTooManySameType    = errors.New("too many entries of the same worklog type for this date")
	ErrFutureDate         = errors.New("cannot log work for future dates")
	ErrBeforeEmployment   = errors.New("cannot log work before employment start date")
	ErrAfterEmployment    = errors.New("cannot log work after employment end date")
	ErrTeamLeadRoleNeeded = errors.New("only team leads and directors can view team worklogs")
	ErrDirectorRoleNeeded = errors.New("only directors can view department worklogs")
)
