package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/krontech/worklog-backend-go/internal/domain/worklog"
	"github.com/krontech/worklog-backend-go/internal/handler/http/response"
	"github.com/krontech/worklog-backend-go/internal/pkg/dateutil"
	"github.com/krontech/worklog-backend-go/internal/pkg/validator"
)

type WorklogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListTeam(w http.ResponseWriter, r *http.Request)
	ListDepartment(w http.ResponseWriter, r *http.Request)
}

type WorklogHandlerImpl struct {
	worklogService worklog.WorklogService
}

func NewWorklogHandler(worklogService worklog.WorklogService) WorklogHandler {
	return &WorklogHandlerImpl{worklogService: worklogService}
}

// parseDateRange reads optional start_date/end_date query parameters,
// defaulting to the current Monday to Sunday week.
func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	start, end := dateutil.WeekRange(time.Now().UTC())
	var errs validator.ValidationErrors

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		} else {
			start = parsed
		}
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		} else {
			end = parsed
		}
	}
	if len(errs) == 0 && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}
	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	return start, end, nil
}

func optionalQueryParam(r *http.Request, name string) *string {
	if raw := r.URL.Query().Get(name); raw != "" {
		return &raw
	}
	return nil
}

// Create implements WorklogHandler.
func (h *WorklogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq worklog.CreateWorklogRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create worklog decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.worklogService.CreateWorklog(r.Context(), employeeID, createReq)
	if err != nil {
		slog.Error("Create worklog service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worklog created", created)
}

// Update implements WorklogHandler.
func (h *WorklogHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	worklogID := chi.URLParam(r, "id")

	var updateReq worklog.UpdateWorklogRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update worklog decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.worklogService.UpdateWorklog(r.Context(), worklogID, employeeID, updateReq)
	if err != nil {
		slog.Error("Update worklog service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worklog updated", updated)
}

// Delete implements WorklogHandler.
func (h *WorklogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	worklogID := chi.URLParam(r, "id")

	if err := h.worklogService.DeleteWorklog(r.Context(), worklogID, employeeID); err != nil {
		slog.Error("Delete worklog service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worklog deleted", nil)
}

// GetByID implements WorklogHandler.
func (h *WorklogHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	requesterID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	worklogID := chi.URLParam(r, "id")

	found, err := h.worklogService.GetWorklogByID(r.Context(), worklogID, requesterID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListMine implements WorklogHandler. A date parameter narrows the listing to
// a single day; otherwise start_date and end_date bound it.
func (h *WorklogHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, ok := validator.IsValidDate(raw)
		if !ok {
			response.HandleError(w, validator.ValidationErrors{
				{Field: "date", Message: "date must be in YYYY-MM-DD format"},
			})
			return
		}
		worklogs, err := h.worklogService.GetWorklogsForDate(r.Context(), employeeID, date)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, worklogs)
		return
	}

	start, end, err := parseDateRange(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	worklogs, err := h.worklogService.GetEmployeeWorklogs(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, worklogs)
}

// ListTeam implements WorklogHandler.
func (h *WorklogHandlerImpl) ListTeam(w http.ResponseWriter, r *http.Request) {
	teamLeadID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	start, end, err := parseDateRange(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	worklogs, err := h.worklogService.GetTeamWorklogs(r.Context(), teamLeadID, start, end, optionalQueryParam(r, "member_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, worklogs)
}

// ListDepartment implements WorklogHandler.
func (h *WorklogHandlerImpl) ListDepartment(w http.ResponseWriter, r *http.Request) {
	directorID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	start, end, err := parseDateRange(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	worklogs, err := h.worklogService.GetDepartmentWorklogs(r.Context(), directorID, start, end,
		optionalQueryParam(r, "team_lead_id"), optionalQueryParam(r, "employee_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, worklogs)
}
