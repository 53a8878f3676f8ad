package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/krontech/worklog-backend-go/internal/domain/dashboard"
	"github.com/krontech/worklog-backend-go/internal/domain/employee"
	"github.com/krontech/worklog-backend-go/internal/domain/worklog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardRepo struct {
	personalTypeRows []dashboard.TypeHours
	deptTypeRows     []dashboard.TypeHours
	teamRows         []dashboard.TeamStats
	memberRows       []dashboard.MemberStats
	withLogs         int
	withLogsExcluded string
}

func (f *fakeDashboardRepo) GetTotalHoursByEmployee(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	return 0, nil
}

func (f *fakeDashboardRepo) GetHoursByTypeForEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]dashboard.TypeHours, error) {
	return f.personalTypeRows, nil
}

func (f *fakeDashboardRepo) GetTeamMemberSummary(ctx context.Context, teamLeadID string, start, end time.Time) ([]dashboard.MemberStats, error) {
	return f.memberRows, nil
}

func (f *fakeDashboardRepo) GetDepartmentTeamSummary(ctx context.Context, departmentID string, start, end time.Time) ([]dashboard.TeamStats, error) {
	return f.teamRows, nil
}

func (f *fakeDashboardRepo) GetDepartmentTypeSummary(ctx context.Context, departmentID string, start, end time.Time) ([]dashboard.TypeHours, error) {
	return f.deptTypeRows, nil
}

func (f *fakeDashboardRepo) CountEmployeesWithLogs(ctx context.Context, departmentID, excludeID string, start, end time.Time) (int, error) {
	f.withLogsExcluded = excludeID
	return f.withLogs, nil
}

func (f *fakeDashboardRepo) HasLoggedWorkForDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	return false, nil
}

type fakeWorklogRepo struct {
	logs []worklog.Worklog
}

func (f *fakeWorklogRepo) Create(ctx context.Context, w worklog.Worklog) (worklog.Worklog, error) {
	return w, nil
}

func (f *fakeWorklogRepo) GetByID(ctx context.Context, id string) (worklog.Worklog, error) {
	return worklog.Worklog{}, worklog.ErrWorklogNotFound
}

func (f *fakeWorklogRepo) Update(ctx context.Context, w worklog.Worklog) (worklog.Worklog, error) {
	return w, nil
}

func (f *fakeWorklogRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeWorklogRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]worklog.Worklog, error) {
	return f.logs, nil
}

func (f *fakeWorklogRepo) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]worklog.Worklog, error) {
	return nil, nil
}

func (f *fakeWorklogRepo) ListByTeamLead(ctx context.Context, teamLeadID string, start, end time.Time) ([]worklog.Worklog, error) {
	return nil, nil
}

func (f *fakeWorklogRepo) ListByDepartment(ctx context.Context, departmentID string, start, end time.Time) ([]worklog.Worklog, error) {
	return nil, nil
}

func (f *fakeWorklogRepo) FindDuplicate(ctx context.Context, employeeID string, date time.Time, typeID string, projectName, description *string) (*worklog.Worklog, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	byID  map[string]employee.Employee
	staff []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActiveByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	return f.staff, nil
}

func (f *fakeEmployeeRepo) ListActiveByTeamLead(ctx context.Context, teamLeadID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListActiveByRole(ctx context.Context, role employee.Role) ([]employee.Employee, error) {
	return nil, nil
}

func directorFixture() (*fakeDashboardRepo, *fakeWorklogRepo, *fakeEmployeeRepo) {
	deptName := "Engineering"
	meeting := "Meeting"
	director := employee.Employee{
		ID:             "dir-1",
		FirstName:      "Eka",
		LastName:       "Wijaya",
		Role:           employee.RoleDirector,
		DepartmentID:   "dept-1",
		DepartmentName: &deptName,
	}

	dashRepo := &fakeDashboardRepo{
		personalTypeRows: []dashboard.TypeHours{{TypeName: "Meeting", Hours: 4}},
		deptTypeRows: []dashboard.TypeHours{
			{TypeName: "Development", Hours: 40},
			{TypeName: "Meeting", Hours: 10},
		},
		teamRows: []dashboard.TeamStats{
			{TeamLeadID: "tl-1", TeamLeadName: "Citra Dewi", TeamSize: 2, MemberHours: 56, LeadHours: 40, MembersWithLogs: 2},
			{TeamLeadID: "tl-2", TeamLeadName: "Dian Putra", TeamSize: 1, MemberHours: 8, LeadHours: 8, MembersWithLogs: 1},
		},
		withLogs: 4,
	}
	worklogRepo := &fakeWorklogRepo{
		logs: []worklog.Worklog{
			{WorkDate: day(2025, time.June, 10), HoursWorked: 4, WorklogTypeName: &meeting},
		},
	}
	employeeRepo := &fakeEmployeeRepo{
		byID: map[string]employee.Employee{"dir-1": director},
		staff: []employee.Employee{
			director,
			{ID: "tl-1", Role: employee.RoleTeamLead, DepartmentID: "dept-1"},
			{ID: "tl-2", Role: employee.RoleTeamLead, DepartmentID: "dept-1"},
			{ID: "m-1", Role: employee.RoleEmployee, DepartmentID: "dept-1"},
			{ID: "m-2", Role: employee.RoleEmployee, DepartmentID: "dept-1"},
			{ID: "m-3", Role: employee.RoleEmployee, DepartmentID: "dept-1"},
		},
	}
	return dashRepo, worklogRepo, employeeRepo
}

func TestGetDashboardDirector(t *testing.T) {
	dashRepo, worklogRepo, employeeRepo := directorFixture()
	svc := NewDashboardService(dashRepo, worklogRepo, employeeRepo)

	// Monday through Friday, 5 working days.
	view, err := svc.GetDashboard(context.Background(), "dir-1", dashboard.Filters{
		StartDate: "2025-06-09",
		EndDate:   "2025-06-13",
	})
	require.NoError(t, err)

	assert.Equal(t, "Eka Wijaya", view.CurrentUser.Name)
	assert.Equal(t, "Director", view.CurrentUser.Role)
	assert.Equal(t, "Engineering", view.CurrentUser.Department)

	t.Run("department breakdown replaces the personal one", func(t *testing.T) {
		require.Len(t, view.WorklogTypeBreakdown, 2)
		assert.Equal(t, "Development", view.WorklogTypeBreakdown[0].TypeName)
		assert.Equal(t, 40, view.WorklogTypeBreakdown[0].Hours)
		assert.Equal(t, 80.0, view.WorklogTypeBreakdown[0].Percentage)
		assert.Equal(t, "Meeting", view.WorklogTypeBreakdown[1].TypeName)
		assert.Equal(t, 20.0, view.WorklogTypeBreakdown[1].Percentage)
	})

	t.Run("personal period summary is untouched", func(t *testing.T) {
		assert.Equal(t, 4, view.PeriodSummary.TotalHours)
		assert.Equal(t, 1, view.PeriodSummary.DaysWorked)
	})

	t.Run("team lead rows with combined utilization", func(t *testing.T) {
		require.Len(t, view.TeamLeads, 2)
		assert.Equal(t, 96, view.TeamLeads[0].TeamTotalHours)
		assert.Equal(t, 80.0, view.TeamLeads[0].TeamUtilizationRate)
		assert.Equal(t, 16, view.TeamLeads[1].TeamTotalHours)
		assert.Equal(t, 20.0, view.TeamLeads[1].TeamUtilizationRate)

		require.NotNil(t, view.TeamInsights)
		assert.Equal(t, "tl-1", view.TeamInsights.BestTeamID)
		assert.Equal(t, "tl-2", view.TeamInsights.WorstTeamID)
		assert.Equal(t, 60.0, view.TeamInsights.UtilizationGap)
	})

	t.Run("department stats exclude the director", func(t *testing.T) {
		require.NotNil(t, view.DepartmentStats)
		// 6 active staff including the director.
		assert.Equal(t, 5, view.DepartmentStats.TotalEmployees)
		assert.Equal(t, 2, view.DepartmentStats.TotalTeamLeads)
		assert.Equal(t, 50, view.DepartmentStats.DepartmentTotalHours)
		// 50 hours against 5 heads * 5 days * 8 hours.
		assert.Equal(t, 25.0, view.DepartmentStats.DepartmentUtilizationRate)
		assert.Equal(t, 4, view.DepartmentStats.EmployeesWithLogs)
		assert.Equal(t, 80.0, view.DepartmentStats.LogComplianceRate)
		assert.Equal(t, "dir-1", dashRepo.withLogsExcluded)
	})

	t.Run("no team lead blocks for the director view", func(t *testing.T) {
		assert.Nil(t, view.TeamMembers)
		assert.Nil(t, view.TeamStats)
	})
}

func TestGetDashboardDirectorEmptyDepartment(t *testing.T) {
	dashRepo, worklogRepo, employeeRepo := directorFixture()
	dashRepo.deptTypeRows = nil

	svc := NewDashboardService(dashRepo, worklogRepo, employeeRepo)
	view, err := svc.GetDashboard(context.Background(), "dir-1", dashboard.Filters{
		StartDate: "2025-06-09",
		EndDate:   "2025-06-13",
	})
	require.NoError(t, err)

	// With no department entries the personal breakdown stands.
	require.Len(t, view.WorklogTypeBreakdown, 1)
	assert.Equal(t, "Meeting", view.WorklogTypeBreakdown[0].TypeName)
	assert.Equal(t, 0, view.DepartmentStats.DepartmentTotalHours)
}

func TestGetDashboardEmployeeHasNoTeamBlocks(t *testing.T) {
	dashRepo, worklogRepo, employeeRepo := directorFixture()
	employeeRepo.byID["m-1"] = employee.Employee{
		ID:           "m-1",
		FirstName:    "Ana",
		LastName:     "Silva",
		Role:         employee.RoleEmployee,
		DepartmentID: "dept-1",
	}

	svc := NewDashboardService(dashRepo, worklogRepo, employeeRepo)
	view, err := svc.GetDashboard(context.Background(), "m-1", dashboard.Filters{
		StartDate: "2025-06-09",
		EndDate:   "2025-06-13",
	})
	require.NoError(t, err)

	require.Len(t, view.WorklogTypeBreakdown, 1)
	assert.Equal(t, "Meeting", view.WorklogTypeBreakdown[0].TypeName)
	assert.Nil(t, view.TeamLeads)
	assert.Nil(t, view.TeamInsights)
	assert.Nil(t, view.DepartmentStats)
	assert.Nil(t, view.TeamStats)
}

func TestGetEmployeeDashboardDeniedForPeer(t *testing.T) {
	dashRepo, worklogRepo, employeeRepo := directorFixture()
	employeeRepo.byID["m-1"] = employee.Employee{ID: "m-1", Role: employee.RoleEmployee, DepartmentID: "dept-1"}
	employeeRepo.byID["m-2"] = employee.Employee{ID: "m-2", Role: employee.RoleEmployee, DepartmentID: "dept-1"}

	svc := NewDashboardService(dashRepo, worklogRepo, employeeRepo)
	_, err := svc.GetEmployeeDashboard(context.Background(), "m-1", "m-2", dashboard.Filters{})
	assert.ErrorIs(t, err, employee.ErrAccessDenied)
}
