package dashboard

import (
	"context"
	"time"

	"github.com/krontech/worklog-backend-go/internal/domain/dashboard"
	"github.com/krontech/worklog-backend-go/internal/domain/employee"
	"github.com/krontech/worklog-backend-go/internal/domain/worklog"
	"github.com/krontech/worklog-backend-go/internal/pkg/dateutil"
	"github.com/krontech/worklog-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

const standardWeekHours = 40

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	worklog.WorklogRepository
	employee.EmployeeRepository
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	worklogRepo worklog.WorklogRepository,
	employeeRepo employee.EmployeeRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepo,
		WorklogRepository:   worklogRepo,
		EmployeeRepository:  employeeRepo,
	}
}

// parseRange resolves the filter dates, defaulting to the current Monday to
// Sunday week.
func parseRange(filters dashboard.Filters, now time.Time) (time.Time, time.Time, error) {
	start, end := dateutil.WeekRange(now)
	var errs validator.ValidationErrors

	if filters.StartDate != "" {
		parsed, ok := validator.IsValidDate(filters.StartDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		} else {
			start = parsed
		}
	}
	if filters.EndDate != "" {
		parsed, ok := validator.IsValidDate(filters.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		} else {
			end = parsed
		}
	}
	if len(errs) == 0 && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}
	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	return start, end, nil
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, employeeID string, filters dashboard.Filters) (*dashboard.DashboardResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	start, end, err := parseRange(filters, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return s.compose(ctx, &emp, start, end)
}

// GetEmployeeDashboard implements dashboard.DashboardService. The view is
// shaped by the target's role, so a team lead inspecting a report sees that
// report's personal dashboard.
func (s *DashboardServiceImpl) GetEmployeeDashboard(ctx context.Context, requesterID, targetID string, filters dashboard.Filters) (*dashboard.DashboardResponse, error) {
	requester, err := s.EmployeeRepository.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	target, err := s.EmployeeRepository.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if !requester.CanView(&target) {
		return nil, employee.ErrAccessDenied
	}

	start, end, err := parseRange(filters, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return s.compose(ctx, &target, start, end)
}

// compose builds the personal blocks for every role, then stacks the team and
// department blocks on top for leads and directors. The independent aggregate
// queries run concurrently.
func (s *DashboardServiceImpl) compose(ctx context.Context, emp *employee.Employee, start, end time.Time) (*dashboard.DashboardResponse, error) {
	workingDays := dateutil.WorkingDays(start, end)

	var (
		logs     []worklog.Worklog
		typeRows []dashboard.TypeHours
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logs, err = s.WorklogRepository.ListByEmployeeAndRange(gCtx, emp.ID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		typeRows, err = s.DashboardRepository.GetHoursByTypeForEmployee(gCtx, emp.ID, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	department := ""
	if emp.DepartmentName != nil {
		department = *emp.DepartmentName
	}

	resp := &dashboard.DashboardResponse{
		CurrentUser: dashboard.UserSummary{
			ID:         emp.ID,
			Name:       emp.FullName(),
			Role:       emp.Role.DisplayName(),
			Department: department,
		},
		PeriodSummary:        buildPeriodSummary(logs, start, end),
		WorklogTypeBreakdown: buildTypeBreakdown(typeRows),
		RecentWorklogs:       buildRecentWorklogs(logs),
	}

	switch emp.Role {
	case employee.RoleTeamLead:
		if err := s.attachTeamView(ctx, resp, emp.ID, start, end, workingDays); err != nil {
			return nil, err
		}
	case employee.RoleDirector:
		if err := s.attachDepartmentView(ctx, resp, emp, start, end, workingDays); err != nil {
			return nil, err
		}
	}

	return resp, nil
}

func (s *DashboardServiceImpl) attachTeamView(ctx context.Context, resp *dashboard.DashboardResponse, teamLeadID string, start, end time.Time, workingDays int) error {
	rows, err := s.DashboardRepository.GetTeamMemberSummary(ctx, teamLeadID, start, end)
	if err != nil {
		return err
	}

	resp.TeamMembers = buildTeamMemberSummaries(rows, workingDays)
	resp.TeamStats = buildTeamStatistics(resp.TeamMembers, workingDays)
	return nil
}

func (s *DashboardServiceImpl) attachDepartmentView(ctx context.Context, resp *dashboard.DashboardResponse, director *employee.Employee, start, end time.Time, workingDays int) error {
	var (
		teamRows     []dashboard.TeamStats
		deptTypeRows []dashboard.TypeHours
		staff        []employee.Employee
		withLogs     int
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teamRows, err = s.DashboardRepository.GetDepartmentTeamSummary(gCtx, director.DepartmentID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		deptTypeRows, err = s.DashboardRepository.GetDepartmentTypeSummary(gCtx, director.DepartmentID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		staff, err = s.EmployeeRepository.ListActiveByDepartment(gCtx, director.DepartmentID)
		return err
	})
	g.Go(func() error {
		var err error
		withLogs, err = s.DashboardRepository.CountEmployeesWithLogs(gCtx, director.DepartmentID, director.ID, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	teamLeads := 0
	for _, e := range staff {
		if e.IsTeamLead() {
			teamLeads++
		}
	}

	deptHours := 0
	for _, row := range deptTypeRows {
		deptHours += row.Hours
	}

	// The director's view reports on the department, not on their own
	// entries: the department-wide breakdown replaces the personal one.
	if len(deptTypeRows) > 0 {
		resp.WorklogTypeBreakdown = buildTypeBreakdown(deptTypeRows)
	}

	resp.TeamLeads = buildTeamLeadSummaries(teamRows, workingDays)
	resp.TeamInsights = buildInsights(resp.TeamLeads)
	resp.DepartmentStats = buildDepartmentStats(len(staff)-1, teamLeads, deptHours, withLogs, workingDays)
	return nil
}

// GetQuickStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetQuickStats(ctx context.Context, employeeID string) (*dashboard.QuickStatsResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	today := dateutil.DateOnly(now)
	weekStart, weekEnd := dateutil.WeekRange(now)

	todayHours, err := s.DashboardRepository.GetTotalHoursByEmployee(ctx, employeeID, today, today)
	if err != nil {
		return nil, err
	}
	weekHours, err := s.DashboardRepository.GetTotalHoursByEmployee(ctx, employeeID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	remaining := standardWeekHours - weekHours
	if remaining < 0 {
		remaining = 0
	}

	resp := &dashboard.QuickStatsResponse{
		TodayHours:         todayHours,
		WeekHours:          weekHours,
		RemainingWeekHours: remaining,
		HasLoggedToday:     todayHours > 0,
	}

	team, err := s.teamFor(ctx, &emp)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return resp, nil
	}

	logged := 0
	for _, member := range team {
		has, err := s.DashboardRepository.HasLoggedWorkForDate(ctx, member.ID, today)
		if err != nil {
			return nil, err
		}
		if has {
			logged++
		}
	}

	size := len(team)
	resp.TeamSize = &size
	resp.TeamMembersLoggedToday = &logged
	return resp, nil
}

// teamFor returns the people a lead or director oversees; nil for regular
// employees. The director is not part of their own headcount.
func (s *DashboardServiceImpl) teamFor(ctx context.Context, emp *employee.Employee) ([]employee.Employee, error) {
	switch emp.Role {
	case employee.RoleTeamLead:
		return s.EmployeeRepository.ListActiveByTeamLead(ctx, emp.ID)
	case employee.RoleDirector:
		staff, err := s.EmployeeRepository.ListActiveByDepartment(ctx, emp.DepartmentID)
		if err != nil {
			return nil, err
		}
		team := make([]employee.Employee, 0, len(staff))
		for _, e := range staff {
			if e.ID != emp.ID {
				team = append(team, e)
			}
		}
		return team, nil
	default:
		return nil, nil
	}
}
