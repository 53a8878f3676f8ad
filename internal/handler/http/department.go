package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/krontech/worklog-backend-go/internal/domain/department"
	"github.com/krontech/worklog-backend-go/internal/handler/http/response"
)

type DepartmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetHierarchy(w http.ResponseWriter, r *http.Request)
}

type DepartmentHandlerImpl struct {
	departmentService department.DepartmentService
}

func NewDepartmentHandler(departmentService department.DepartmentService) DepartmentHandler {
	return &DepartmentHandlerImpl{departmentService: departmentService}
}

// List implements DepartmentHandler.
func (h *DepartmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

// GetHierarchy implements DepartmentHandler.
func (h *DepartmentHandlerImpl) GetHierarchy(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "id")

	hierarchy, err := h.departmentService.GetHierarchy(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, hierarchy)
}
