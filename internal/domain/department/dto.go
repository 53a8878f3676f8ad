package department

import "context"

// DepartmentSummaryResponse is the list shape with headline counts.
type DepartmentSummaryResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	DirectorID    *string `json:"director_id,omitempty"`
	DirectorName  *string `json:"director_name,omitempty"`
	EmployeeCount int64   `json:"employee_count"`
}

// HierarchyResponse is the director -> team leads -> members tree.
type HierarchyResponse struct {
	Department     string        `json:"department"`
	DepartmentCode string        `json:"department_code"`
	Director       *DirectorInfo `json:"director,omitempty"`
	Teams          []TeamInfo    `json:"teams"`
	TotalEmployees int           `json:"total_employees"`
	TotalTeamLeads int           `json:"total_team_leads"`
}

type DirectorInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TeamInfo struct {
	TeamLeadID    string           `json:"team_lead_id"`
	TeamLeadName  string           `json:"team_lead_name"`
	TeamLeadEmail string           `json:"team_lead_email"`
	Members       []TeamMemberInfo `json:"members"`
	TeamSize      int              `json:"team_size"`
}

type TeamMemberInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Grade string `json:"grade"`
}

// DepartmentService exposes the read-side department views.
type DepartmentService interface {
	// ListDepartments returns every department with director and headcount
	ListDepartments(ctx context.Context) ([]DepartmentSummaryResponse, error)

	// GetHierarchy returns the reporting tree of one department
	GetHierarchy(ctx context.Context, departmentID string) (HierarchyResponse, error)
}
