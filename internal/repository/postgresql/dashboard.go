package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/krontech/worklog-backend-go/internal/domain/dashboard"
	"github.com/krontech/worklog-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetTotalHoursByEmployee returns the employee's summed hours in range, 0 when
// nothing was logged.
func (r *dashboardRepositoryImpl) GetTotalHoursByEmployee(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(hours_worked), 0)
		FROM worklogs
		WHERE employee_id = $1 AND work_date BETWEEN $2 AND $3
	`

	var total int
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to get total hours: %w", err)
	}
	return total, nil
}

func (r *dashboardRepositoryImpl) queryTypeHours(ctx context.Context, query string, args ...interface{}) ([]dashboard.TypeHours, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []dashboard.TypeHours
	for rows.Next() {
		var th dashboard.TypeHours
		if err := rows.Scan(&th.TypeName, &th.Hours); err != nil {
			return nil, err
		}
		result = append(result, th)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetHoursByTypeForEmployee groups one employee's hours by type, busiest first.
func (r *dashboardRepositoryImpl) GetHoursByTypeForEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]dashboard.TypeHours, error) {
	query := `
		SELECT wt.name, SUM(w.hours_worked)
		FROM worklogs w
		JOIN worklog_types wt ON wt.id = w.worklog_type_id
		WHERE w.employee_id = $1 AND w.work_date BETWEEN $2 AND $3
		GROUP BY wt.name
		ORDER BY SUM(w.hours_worked) DESC
	`
	result, err := r.queryTypeHours(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get hours by type: %w", err)
	}
	return result, nil
}

// GetTeamMemberSummary returns every active direct report with hours and
// distinct days worked in range; members without logs appear zeroed.
func (r *dashboardRepositoryImpl) GetTeamMemberSummary(ctx context.Context, teamLeadID string, start, end time.Time) ([]dashboard.MemberStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			e.id, e.first_name, e.last_name, g.title,
			COALESCE(SUM(w.hours_worked), 0),
			COUNT(DISTINCT w.work_date)
		FROM employees e
		JOIN grades g ON g.id = e.grade_id
		LEFT JOIN worklogs w ON w.employee_id = e.id AND w.work_date BETWEEN $2 AND $3
		WHERE e.team_lead_id = $1 AND e.is_active = TRUE
		GROUP BY e.id, e.first_name, e.last_name, g.title
		ORDER BY e.first_name
	`

	rows, err := q.Query(ctx, query, teamLeadID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get team member summary: %w", err)
	}
	defer rows.Close()

	var result []dashboard.MemberStats
	for rows.Next() {
		var ms dashboard.MemberStats
		if err := rows.Scan(&ms.EmployeeID, &ms.FirstName, &ms.LastName, &ms.GradeTitle, &ms.TotalHours, &ms.DaysWorked); err != nil {
			return nil, err
		}
		result = append(result, ms)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetDepartmentTeamSummary groups a department's employees by team lead; the
// hours sum covers members only, not the lead's own entries. Only rows whose
// lead actually holds the TEAM_LEAD role appear; a team lead reporting to the
// director must not surface the director as a team of their own.
func (r *dashboardRepositoryImpl) GetDepartmentTeamSummary(ctx context.Context, departmentID string, start, end time.Time) ([]dashboard.TeamStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			tl.id, tl.first_name || ' ' || tl.last_name,
			COUNT(DISTINCT e.id),
			COALESCE(SUM(w.hours_worked), 0),
			COALESCE((
				SELECT SUM(lw.hours_worked)
				FROM worklogs lw
				WHERE lw.employee_id = tl.id AND lw.work_date BETWEEN $2 AND $3
			), 0),
			COUNT(DISTINCT e.id) FILTER (WHERE w.id IS NOT NULL)
		FROM employees e
		JOIN employees tl ON tl.id = e.team_lead_id AND tl.role = 'TEAM_LEAD'
		LEFT JOIN worklogs w ON w.employee_id = e.id AND w.work_date BETWEEN $2 AND $3
		WHERE e.department_id = $1 AND e.is_active = TRUE
		GROUP BY tl.id, tl.first_name, tl.last_name
		ORDER BY tl.first_name
	`

	rows, err := q.Query(ctx, query, departmentID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get department team summary: %w", err)
	}
	defer rows.Close()

	var result []dashboard.TeamStats
	for rows.Next() {
		var ts dashboard.TeamStats
		if err := rows.Scan(&ts.TeamLeadID, &ts.TeamLeadName, &ts.TeamSize, &ts.MemberHours, &ts.LeadHours, &ts.MembersWithLogs); err != nil {
			return nil, err
		}
		result = append(result, ts)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetDepartmentTypeSummary groups a department's hours by type, busiest first.
func (r *dashboardRepositoryImpl) GetDepartmentTypeSummary(ctx context.Context, departmentID string, start, end time.Time) ([]dashboard.TypeHours, error) {
	query := `
		SELECT wt.name, SUM(w.hours_worked)
		FROM worklogs w
		JOIN worklog_types wt ON wt.id = w.worklog_type_id
		JOIN employees e ON e.id = w.employee_id
		WHERE e.department_id = $1 AND w.work_date BETWEEN $2 AND $3
		GROUP BY wt.name
		ORDER BY SUM(w.hours_worked) DESC
	`
	result, err := r.queryTypeHours(ctx, query, departmentID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get department type summary: %w", err)
	}
	return result, nil
}

// CountEmployeesWithLogs counts distinct active department employees who
// logged anything in range. The excluded id is the requesting director, who
// does not count toward their own department's compliance.
func (r *dashboardRepositoryImpl) CountEmployeesWithLogs(ctx context.Context, departmentID, excludeID string, start, end time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT w.employee_id)
		FROM worklogs w
		JOIN employees e ON e.id = w.employee_id
		WHERE e.department_id = $1 AND e.is_active = TRUE
			AND e.id <> $2
			AND w.work_date BETWEEN $3 AND $4
	`

	var count int
	if err := q.QueryRow(ctx, query, departmentID, excludeID, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees with logs: %w", err)
	}
	return count, nil
}

// HasLoggedWorkForDate reports whether the employee has any entry on date.
func (r *dashboardRepositoryImpl) HasLoggedWorkForDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM worklogs WHERE employee_id = $1 AND work_date = $2
		)
	`

	var logged bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&logged); err != nil {
		return false, fmt.Errorf("failed to check logged work: %w", err)
	}
	return logged, nil
}
