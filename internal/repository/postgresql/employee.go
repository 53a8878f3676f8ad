package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/krontech/worklog-backend-go/internal/domain/employee"
	"github.com/krontech/worklog-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.employee_code, e.first_name, e.last_name, e.email, e.password_hash,
	e.role, g.title, e.department_id, e.team_lead_id, e.start_date, e.end_date,
	e.is_active, e.created_at, e.updated_at, d.name
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FirstName, &emp.LastName, &emp.Email,
		&emp.PasswordHash, &emp.Role, &emp.GradeTitle, &emp.DepartmentID,
		&emp.TeamLeadID, &emp.StartDate, &emp.EndDate, &emp.IsActive,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DepartmentName,
	)
	return emp, err
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN grades g ON g.id = e.grade_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN grades g ON g.id = e.grade_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.email = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	return emp, nil
}

func (e *employeeRepositoryImpl) listEmployees(ctx context.Context, where string, args ...interface{}) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN grades g ON g.id = e.grade_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE ` + where + `
		ORDER BY e.first_name, e.last_name
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// ListActiveByDepartment implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActiveByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	return e.listEmployees(ctx, "e.department_id = $1 AND e.is_active = TRUE", departmentID)
}

// ListActiveByTeamLead implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActiveByTeamLead(ctx context.Context, teamLeadID string) ([]employee.Employee, error) {
	return e.listEmployees(ctx, "e.team_lead_id = $1 AND e.is_active = TRUE", teamLeadID)
}

// ListActiveByRole implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActiveByRole(ctx context.Context, role employee.Role) ([]employee.Employee, error) {
	return e.listEmployees(ctx, "e.role = $1 AND e.is_active = TRUE", string(role))
}
