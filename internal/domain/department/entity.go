package department

import "time"

type Department struct {
	ID         string
	Name       string
	Code       string
	DirectorID *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	DirectorName  *string
	EmployeeCount int64
}
