package department

import "context"

type DepartmentRepository interface {
	// GetByID retrieves a department with the director's name joined in
	GetByID(ctx context.Context, id string) (Department, error)

	// ListWithStats retrieves all departments with director name and active
	// employee count
	ListWithStats(ctx context.Context) ([]Department, error)
}
