package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/krontech/worklog-backend-go/internal/domain/employee"
	"github.com/krontech/worklog-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	requesterID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	targetID := chi.URLParam(r, "id")

	profile, err := h.employeeService.GetEmployee(r.Context(), requesterID, targetID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	requesterID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employees, err := h.employeeService.ListVisibleEmployees(r.Context(), requesterID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}
