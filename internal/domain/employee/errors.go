package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrAccessDenied     = errors.New("you don't have permission to view this employee's data")
	ErrNotInTeam        = errors.New("employee is not in your team")
	ErrNotInDepartment  = errors.New("employee is not in your department")
)
