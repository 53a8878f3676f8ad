package worklog

import (
	"time"

	"github.com/krontech/worklog-backend-go/internal/pkg/validator"
)

type CreateWorklogRequest struct {
	WorklogTypeID string  `json:"worklog_type_id"`
	WorkDate      string  `json:"work_date"` // YYYY-MM-DD
	HoursWorked   int     `json:"hours_worked"`
	Description   *string `json:"description,omitempty"`
	ProjectName   *string `json:"project_name,omitempty"`
}

func (r *CreateWorklogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorklogTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worklog_type_id",
			Message: "worklog_type_id is required",
		})
	}

	if validator.IsEmpty(r.WorkDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidHours(r.HoursWorked) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_worked",
			Message: "hours_worked must be between 1 and 8",
		})
	}

	if r.ProjectName != nil && len(*r.ProjectName) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "project_name",
			Message: "project_name must not exceed 200 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedDate returns the request's work date. Validate must have passed.
func (r *CreateWorklogRequest) ParsedDate() time.Time {
	d, _ := validator.IsValidDate(r.WorkDate)
	return d
}

type UpdateWorklogRequest struct {
	WorklogTypeID *string `json:"worklog_type_id,omitempty"`
	WorkDate      *string `json:"work_date,omitempty"` // YYYY-MM-DD
	HoursWorked   int     `json:"hours_worked"`
	Description   *string `json:"description,omitempty"`
	ProjectName   *string `json:"project_name,omitempty"`
}

func (r *UpdateWorklogRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkDate != nil {
		if _, ok := validator.IsValidDate(*r.WorkDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "work_date",
				Message: "work_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.WorklogTypeID != nil && validator.IsEmpty(*r.WorklogTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worklog_type_id",
			Message: "worklog_type_id must not be empty",
		})
	}

	if !validator.IsValidHours(r.HoursWorked) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_worked",
			Message: "hours_worked must be between 1 and 8",
		})
	}

	if r.ProjectName != nil && len(*r.ProjectName) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "project_name",
			Message: "project_name must not exceed 200 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorklogResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Employee    *string `json:"employee,omitempty"`
	Type        string  `json:"type"`
	WorkDate    string  `json:"work_date"`
	HoursWorked int     `json:"hours_worked"`
	Description *string `json:"description,omitempty"`
	ProjectName *string `json:"project_name,omitempty"`
	Editable    bool    `json:"editable"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func ToResponse(w Worklog, now time.Time) WorklogResponse {
	typeName := ""
	if w.WorklogTypeName != nil {
		typeName = *w.WorklogTypeName
	}
	return WorklogResponse{
		ID:          w.ID,
		EmployeeID:  w.EmployeeID,
		Employee:    w.EmployeeName,
		Type:        typeName,
		WorkDate:    w.WorkDate.Format("2006-01-02"),
		HoursWorked: w.HoursWorked,
		Description: w.Description,
		ProjectName: w.ProjectName,
		Editable:    w.Editable(now),
		CreatedAt:   w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   w.UpdatedAt.Format(time.RFC3339),
	}
}

func ToResponseList(worklogs []Worklog, now time.Time) []WorklogResponse {
	responses := make([]WorklogResponse, 0, len(worklogs))
	for _, w := range worklogs {
		responses = append(responses, ToResponse(w, now))
	}
	return responses
}
