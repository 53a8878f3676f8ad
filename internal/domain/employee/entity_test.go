package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func newEmployee(id string, role Role, deptID string, teamLeadID *string) *Employee {
	return &Employee{
		ID:           id,
		FirstName:    "Test",
		LastName:     id,
		Role:         role,
		DepartmentID: deptID,
		TeamLeadID:   teamLeadID,
		IsActive:     true,
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCanView_Self(t *testing.T) {
	emp := newEmployee("e1", RoleEmployee, "d1", strPtr("tl1"))
	assert.True(t, emp.CanView(emp))
}

func TestCanView_DirectorSameDepartment(t *testing.T) {
	director := newEmployee("dir1", RoleDirector, "d1", nil)
	sameDept := newEmployee("e1", RoleEmployee, "d1", strPtr("tl1"))
	otherDept := newEmployee("e2", RoleEmployee, "d2", strPtr("tl2"))

	assert.True(t, director.CanView(sameDept))
	assert.False(t, director.CanView(otherDept))
}

func TestCanView_TeamLeadDirectReportOnly(t *testing.T) {
	lead := newEmployee("tl1", RoleTeamLead, "d1", nil)
	report := newEmployee("e1", RoleEmployee, "d1", strPtr("tl1"))
	peerReport := newEmployee("e2", RoleEmployee, "d1", strPtr("tl2"))
	noLead := newEmployee("e3", RoleEmployee, "d1", nil)

	assert.True(t, lead.CanView(report))
	assert.False(t, lead.CanView(peerReport), "a team lead cannot view another team's member")
	assert.False(t, lead.CanView(noLead))
}

func TestCanView_EmployeeDeniedForPeers(t *testing.T) {
	emp := newEmployee("e1", RoleEmployee, "d1", strPtr("tl1"))
	peer := newEmployee("e2", RoleEmployee, "d1", strPtr("tl1"))

	assert.False(t, emp.CanView(peer))
	assert.False(t, emp.CanView(nil))
}

func TestEmployedOn(t *testing.T) {
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	emp := newEmployee("e1", RoleEmployee, "d1", nil)
	emp.EndDate = &end

	assert.True(t, emp.EmployedOn(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, emp.EmployedOn(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, emp.EmployedOn(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, emp.EmployedOn(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestRoleDisplayName(t *testing.T) {
	assert.Equal(t, "Employee", RoleEmployee.DisplayName())
	assert.Equal(t, "Team Lead", RoleTeamLead.DisplayName())
	assert.Equal(t, "Director", RoleDirector.DisplayName())
}
