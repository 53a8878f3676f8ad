package response

import (
	"errors"
	"net/http"

	"github.com/krontech/worklog-backend-go/internal/domain/auth"
	"github.com/krontech/worklog-backend-go/internal/domain/department"
	"github.com/krontech/worklog-backend-go/internal/domain/employee"
	"github.com/krontech/worklog-backend-go/internal/domain/worklog"
	"github.com/krontech/worklog-backend-go/internal/domain/worklogtype"
	"github.com/krontech/worklog-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unmapped is an
// opaque 500; internal detail never leaks to the client.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInactiveEmployee):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrAccessDenied):
		Forbidden(w, "You do not have access to this employee's data")
	case errors.Is(err, employee.ErrNotInTeam):
		Forbidden(w, "Employee is not in your team")
	case errors.Is(err, employee.ErrNotInDepartment):
		Forbidden(w, "Employee is not in your department")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Worklog domain errors
	case errors.Is(err, worklog.ErrWorklogNotFound):
		NotFound(w, "Worklog not found")
	case errors.Is(err, worklogtype.ErrWorklogTypeNotFound):
		NotFound(w, "Worklog type not found")
	case errors.Is(err, worklog.ErrNotOwner):
		Forbidden(w, "Only the owner may change a worklog")
	case errors.Is(err, worklog.ErrViewForbidden):
		Forbidden(w, "You do not have access to this worklog")
	case errors.Is(err, worklog.ErrTeamLeadRoleNeeded):
		Forbidden(w, "Team lead role required")
	case errors.Is(err, worklog.ErrDirectorRoleNeeded):
		Forbidden(w, "Director role required")
	case errors.Is(err, worklog.ErrImmutable):
		Conflict(w, "Worklog is older than 7 days and can no longer be changed")
	case errors.Is(err, worklog.ErrDuplicateEntry):
		Conflict(w, err.Error())
	case errors.Is(err, worklog.ErrFutureDate),
		errors.Is(err, worklog.ErrBeforeEmployment),
		errors.Is(err, worklog.ErrAfterEmployment),
		errors.Is(err, worklog.ErrDailyHoursExceeded),
		errors.Is(err, worklog.ErrTooManySameType):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
