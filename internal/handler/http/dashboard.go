package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/krontech/worklog-backend-go/internal/domain/dashboard"
	"github.com/krontech/worklog-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetEmployeeDashboard(w http.ResponseWriter, r *http.Request)
	GetQuickStats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

func dashboardFilters(r *http.Request) dashboard.Filters {
	q := r.URL.Query()
	return dashboard.Filters{
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
		EmployeeID: q.Get("employee_id"),
		TeamLeadID: q.Get("team_lead_id"),
		GroupBy:    q.Get("group_by"),
	}
}

// GetDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	view, err := h.dashboardService.GetDashboard(r.Context(), employeeID, dashboardFilters(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// GetEmployeeDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetEmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	requesterID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	targetID := chi.URLParam(r, "id")

	view, err := h.dashboardService.GetEmployeeDashboard(r.Context(), requesterID, targetID, dashboardFilters(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// GetQuickStats implements DashboardHandler.
func (h *DashboardHandlerImpl) GetQuickStats(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.dashboardService.GetQuickStats(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
