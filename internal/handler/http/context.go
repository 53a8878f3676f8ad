package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/krontech/worklog-backend-go/internal/domain/auth"
)

// employeeIDFromRequest pulls the authenticated employee id out of the
// verified token. Handlers pass it to services explicitly; no service reads
// the token itself.
func employeeIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", auth.ErrInvalidToken
	}
	return employeeID, nil
}
