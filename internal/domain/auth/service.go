package auth

import (
	"context"

	"github.com/krontech/worklog-backend-go/internal/domain/employee"
)

type AuthService interface {
	// Login checks the password and mints an access/refresh token pair
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh validates a refresh token and mints a fresh pair
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)

	// Me resolves the authenticated employee's profile
	Me(ctx context.Context, employeeID string) (employee.EmployeeResponse, error)
}
