package employee

// EmployeeResponse is the profile shape returned to the presentation layer.
type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	Grade        string  `json:"grade"`
	DepartmentID string  `json:"department_id"`
	Department   *string `json:"department,omitempty"`
	TeamLeadID   *string `json:"team_lead_id,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date,omitempty"`
	IsActive     bool    `json:"is_active"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		Name:         e.FullName(),
		Email:        e.Email,
		Role:         e.Role.DisplayName(),
		Grade:        e.GradeTitle,
		DepartmentID: e.DepartmentID,
		Department:   e.DepartmentName,
		TeamLeadID:   e.TeamLeadID,
		StartDate:    e.StartDate.Format("2006-01-02"),
		IsActive:     e.IsActive,
	}
	if e.EndDate != nil {
		end := e.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}
