package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/krontech/worklog-backend-go/internal/domain/department"
	"github.com/krontech/worklog-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.code, d.director_id, d.created_at, d.updated_at,
			dir.first_name || ' ' || dir.last_name
		FROM departments d
		LEFT JOIN employees dir ON dir.id = d.director_id
		WHERE d.id = $1
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&dept.ID, &dept.Name, &dept.Code, &dept.DirectorID,
		&dept.CreatedAt, &dept.UpdatedAt, &dept.DirectorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by id: %w", err)
	}
	return dept, nil
}

// ListWithStats implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) ListWithStats(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.code, d.director_id, d.created_at, d.updated_at,
			dir.first_name || ' ' || dir.last_name,
			COUNT(e.id) FILTER (WHERE e.is_active)
		FROM departments d
		LEFT JOIN employees dir ON dir.id = d.director_id
		LEFT JOIN employees e ON e.department_id = d.id
		GROUP BY d.id, d.name, d.code, d.director_id, d.created_at, d.updated_at,
			dir.first_name, dir.last_name
		ORDER BY d.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		err := rows.Scan(
			&dept.ID, &dept.Name, &dept.Code, &dept.DirectorID,
			&dept.CreatedAt, &dept.UpdatedAt, &dept.DirectorName, &dept.EmployeeCount,
		)
		if err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}
