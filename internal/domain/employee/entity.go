package employee

import (
	"time"
)

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleTeamLead Role = "TEAM_LEAD"
	RoleDirector Role = "DIRECTOR"
)

// DisplayName returns the human-readable role label used in responses.
func (r Role) DisplayName() string {
	switch r {
	case RoleTeamLead:
		return "Team Lead"
	case RoleDirector:
		return "Director"
	default:
		return "Employee"
	}
}

func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleTeamLead || r == RoleDirector
}

type Employee struct {
	ID           string
	EmployeeCode string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         Role
	GradeTitle   string
	DepartmentID string
	TeamLeadID   *string
	StartDate    time.Time
	EndDate      *time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	DepartmentName *string
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// CanView reports whether e may read target's data. Precedence: self, then
// director over their department, then team lead over direct reports.
func (e *Employee) CanView(target *Employee) bool {
	if target == nil {
		return false
	}
	if e.ID == target.ID {
		return true
	}
	if e.Role == RoleDirector {
		return e.DepartmentID != "" && e.DepartmentID == target.DepartmentID
	}
	if e.Role == RoleTeamLead {
		return target.TeamLeadID != nil && *target.TeamLeadID == e.ID
	}
	return false
}

func (e *Employee) IsTeamLead() bool {
	return e.Role == RoleTeamLead
}

func (e *Employee) IsDirector() bool {
	return e.Role == RoleDirector
}

// EmployedOn reports whether date falls inside the employment window.
func (e *Employee) EmployedOn(date time.Time) bool {
	if date.Before(e.StartDate) {
		return false
	}
	if e.EndDate != nil && date.After(*e.EndDate) {
		return false
	}
	return true
}
