package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/krontech/worklog-backend-go/internal/domain/worklog"
	"github.com/krontech/worklog-backend-go/internal/pkg/database"
)

type worklogRepositoryImpl struct {
	db *database.DB
}

func NewWorklogRepository(db *database.DB) worklog.WorklogRepository {
	return &worklogRepositoryImpl{db: db}
}

const worklogColumns = `
	w.id, w.employee_id, w.worklog_type_id, w.work_date, w.hours_worked,
	w.description, w.project_name, w.created_at, w.updated_at,
	e.first_name || ' ' || e.last_name, wt.name
`

func scanWorklog(row pgx.Row) (worklog.Worklog, error) {
	var w worklog.Worklog
	err := row.Scan(
		&w.ID, &w.EmployeeID, &w.WorklogTypeID, &w.WorkDate, &w.HoursWorked,
		&w.Description, &w.ProjectName, &w.CreatedAt, &w.UpdatedAt,
		&w.EmployeeName, &w.WorklogTypeName,
	)
	return w, err
}

// Create implements worklog.WorklogRepository.
func (r *worklogRepositoryImpl) Create(ctx context.Context, w worklog.Worklog) (worklog.Worklog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worklogs (id, employee_id, worklog_type_id, work_date, hours_worked, description, project_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	w.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		w.ID, w.EmployeeID, w.WorklogTypeID, w.WorkDate, w.HoursWorked,
		w.Description, w.ProjectName,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return worklog.Worklog{}, fmt.Errorf("failed to insert worklog: %w", err)
	}
	return w, nil
}

// GetByID implements worklog.WorklogRepository.
func (r *worklogRepositoryImpl) GetByID(ctx context.Context, id string) (worklog.Worklog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + worklogColumns + `
		FROM worklogs w
		JOIN employees e ON e.id = w.employee_id
		JOIN worklog_types wt ON wt.id = w.worklog_type_id
		WHERE w.id = $1
	`

	w, err := scanWorklog(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worklog.Worklog{}, worklog.ErrWorklogNotFound
		}
		return worklog.Worklog{}, fmt.Errorf("failed to get worklog by id: %w", err)
	}
	return w, nil
}

// Update implements worklog.WorklogRepository.
func (r *worklogRepositoryImpl) Update(ctx context.Context, w worklog.Worklog) (worklog.Worklog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE worklogs
		SET worklog_type_id = $1, work_date = $2, hours_worked = $3,
			description = $4, project_name = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		w.WorklogTypeID, w.WorkDate, w.HoursWorked, w.Description, w.ProjectName, w.ID,
	).Scan(&w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worklog.Worklog{}, worklog.ErrWorklogNotFound
		}
		return worklog.Worklog{}, fmt.Errorf("failed to update worklog: %w", err)
	}
	return w, nil
}

// Delete implements worklog.WorklogRepository.
func (r *worklogRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM worklogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete worklog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worklog.ErrWorklogNotFound
	}
	return nil
}

func (r *worklogRepositoryImpl) listWorklogs(ctx context.Context, where, orderBy string, args ...interface{}) ([]worklog.Worklog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + worklogColumns + `
		FROM worklogs w
		JOIN employees e ON e.id = w.employee_id
		JOIN worklog_types wt ON wt.id = w.worklog_type_id
		WHERE ` + where + `
		ORDER BY ` + orderBy

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var worklogs []worklog.Worklog
	for rows.Next() {
		w, err := scanWorklog(rows)
		if err != nil {
			return nil, err
		}
		worklogs = append(worklogs, w)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return worklogs, nil
}

// ListByEmployeeAndRange implements worklog.WorklogRepository.
func (r *worklogRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]worklog.Worklog, error) {
	return r.listWorklogs(ctx,
		"w.employee_id = $1 AND w.work_date BETWEEN $2 AND $3",
		"w.work_date DESC, w.created_at DESC",
		employeeID, start, end,
	)
}

// ListByEmployeeAndDate implements worklog.WorklogRepository.
func (r *worklogRepositoryImpl) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]worklog.Worklog, error) {
	return r.listWorklogs(ctx,
		"w.employee_id = $1 AND w.work_date = $2",
		"w.created_at",
		employeeID, date,
	)
}

// ListByTeamLead implements worklog.WorklogRepository.
func (r *worklogRepositoryImpl) ListByTeamLead(ctx context.Context, teamLeadID string, start, end time.Time) ([]worklog.Worklog, error) {
	return r.listWorklogs(ctx,
		"e.team_lead_id = $1 AND w.work_date BETWEEN $2 AND $3",
		"w.work_date DESC, e.first_name",
		teamLeadID, start, end,
	)
}

// ListByDepartment implements worklog.WorklogRepository.
func (r *worklogRepositoryImpl) ListByDepartment(ctx context.Context, departmentID string, start, end time.Time) ([]worklog.Worklog, error) {
	return r.listWorklogs(ctx,
		"e.department_id = $1 AND w.work_date BETWEEN $2 AND $3",
		"w.work_date DESC",
		departmentID, start, end,
	)
}

// FindDuplicate implements worklog.WorklogRepository. NULL project/description
// matches only NULL, not any value.
func (r *worklogRepositoryImpl) FindDuplicate(ctx context.Context, employeeID string, date time.Time, typeID string, projectName, description *string) (*worklog.Worklog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + worklogColumns + `
		FROM worklogs w
		JOIN employees e ON e.id = w.employee_id
		JOIN worklog_types wt ON wt.id = w.worklog_type_id
		WHERE w.employee_id = $1
			AND w.work_date = $2
			AND w.worklog_type_id = $3
			AND (($4::text IS NULL AND w.project_name IS NULL) OR w.project_name = $4)
			AND (($5::text IS NULL AND w.description IS NULL) OR w.description = $5)
	`

	w, err := scanWorklog(q.QueryRow(ctx, query, employeeID, date, typeID, projectName, description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up duplicate worklog: %w", err)
	}
	return &w, nil
}
