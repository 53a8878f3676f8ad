package worklog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/krontech/worklog-backend-go/internal/domain/employee"
	"github.com/krontech/worklog-backend-go/internal/domain/worklog"
	"github.com/krontech/worklog-backend-go/internal/domain/worklogtype"
	"github.com/krontech/worklog-backend-go/internal/pkg/database"
	"github.com/krontech/worklog-backend-go/internal/pkg/dateutil"
	"github.com/krontech/worklog-backend-go/internal/pkg/validator"
	"github.com/krontech/worklog-backend-go/internal/repository/postgresql"
)

type WorklogServiceImpl struct {
	db *database.DB
	worklog.WorklogRepository
	employee.EmployeeRepository
	worklogtype.WorklogTypeRepository
}

func NewWorklogService(
	db *database.DB,
	worklogRepo worklog.WorklogRepository,
	employeeRepo employee.EmployeeRepository,
	typeRepo worklogtype.WorklogTypeRepository,
) worklog.WorklogService {
	return &WorklogServiceImpl{
		db:                    db,
		WorklogRepository:     worklogRepo,
		EmployeeRepository:    employeeRepo,
		WorklogTypeRepository: typeRepo,
	}
}

// CreateWorklog implements worklog.WorklogService. The duplicate and quota
// checks run inside the same transaction as the insert so two concurrent
// submissions cannot both pass the ceiling.
func (s *WorklogServiceImpl) CreateWorklog(ctx context.Context, employeeID string, req worklog.CreateWorklogRequest) (worklog.WorklogResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.WorklogResponse{}, err
	}
	now := time.Now().UTC()

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return worklog.WorklogResponse{}, err
	}

	wt, err := s.WorklogTypeRepository.GetByID(ctx, req.WorklogTypeID)
	if err != nil {
		return worklog.WorklogResponse{}, err
	}

	workDate := dateutil.DateOnly(req.ParsedDate())
	if err := validateWorkDate(&emp, workDate, now); err != nil {
		return worklog.WorklogResponse{}, err
	}

	var created worklog.Worklog
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		dup, err := s.WorklogRepository.FindDuplicate(txCtx, employeeID, workDate, req.WorklogTypeID, req.ProjectName, req.Description)
		if err != nil {
			return err
		}
		if dup != nil {
			return fmt.Errorf("%w: update the existing entry or provide different details", worklog.ErrDuplicateEntry)
		}

		dayLogs, err := s.WorklogRepository.ListByEmployeeAndDate(txCtx, employeeID, workDate)
		if err != nil {
			return fmt.Errorf("failed to load same-day worklogs: %w", err)
		}

		newTotal, err := validateDayQuota(dayLogs, req.WorklogTypeID, req.HoursWorked, "")
		if err != nil {
			return err
		}
		if newTotal > worklog.StandardDailyHours {
			slog.Warn("daily total exceeds standard working hours",
				"employee_id", employeeID,
				"work_date", workDate.Format("2006-01-02"),
				"total_hours", newTotal,
			)
		}

		created, err = s.WorklogRepository.Create(txCtx, worklog.Worklog{
			EmployeeID:    employeeID,
			WorklogTypeID: req.WorklogTypeID,
			WorkDate:      workDate,
			HoursWorked:   req.HoursWorked,
			Description:   req.Description,
			ProjectName:   req.ProjectName,
		})
		return err
	})
	if err != nil {
		return worklog.WorklogResponse{}, err
	}

	slog.Info("worklog created",
		"worklog_id", created.ID,
		"employee_id", employeeID,
		"work_date", workDate.Format("2006-01-02"),
	)

	created.WorklogTypeName = &wt.Name
	return worklog.ToResponse(created, now), nil
}

// UpdateWorklog implements worklog.WorklogService. Only the owner may edit,
// and only while the entry is inside the 7-day window.
func (s *WorklogServiceImpl) UpdateWorklog(ctx context.Context, worklogID, employeeID string, req worklog.UpdateWorklogRequest) (worklog.WorklogResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.WorklogResponse{}, err
	}
	now := time.Now().UTC()

	existing, err := s.WorklogRepository.GetByID(ctx, worklogID)
	if err != nil {
		return worklog.WorklogResponse{}, err
	}

	if existing.EmployeeID != employeeID {
		return worklog.WorklogResponse{}, worklog.ErrNotOwner
	}
	if !existing.Editable(now) {
		return worklog.WorklogResponse{}, worklog.ErrImmutable
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return worklog.WorklogResponse{}, err
	}

	workDate := existing.WorkDate
	if req.WorkDate != nil {
		parsed, ok := validator.IsValidDate(*req.WorkDate)
		if !ok {
			return worklog.WorklogResponse{}, validator.ValidationErrors{
				{Field: "work_date", Message: "work_date must be in YYYY-MM-DD format"},
			}
		}
		workDate = dateutil.DateOnly(parsed)
	}
	typeID := existing.WorklogTypeID
	if req.WorklogTypeID != nil {
		wt, err := s.WorklogTypeRepository.GetByID(ctx, *req.WorklogTypeID)
		if err != nil {
			return worklog.WorklogResponse{}, err
		}
		typeID = wt.ID
	}

	if err := validateWorkDate(&emp, workDate, now); err != nil {
		return worklog.WorklogResponse{}, err
	}

	var updated worklog.Worklog
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		dayLogs, err := s.WorklogRepository.ListByEmployeeAndDate(txCtx, employeeID, workDate)
		if err != nil {
			return fmt.Errorf("failed to load same-day worklogs: %w", err)
		}

		// The entry being edited must not count against its own quota.
		newTotal, err := validateDayQuota(dayLogs, typeID, req.HoursWorked, existing.ID)
		if err != nil {
			return err
		}
		if newTotal > worklog.StandardDailyHours {
			slog.Warn("daily total exceeds standard working hours",
				"employee_id", employeeID,
				"work_date", workDate.Format("2006-01-02"),
				"total_hours", newTotal,
			)
		}

		existing.WorklogTypeID = typeID
		existing.WorkDate = workDate
		existing.HoursWorked = req.HoursWorked
		existing.Description = req.Description
		existing.ProjectName = req.ProjectName

		updated, err = s.WorklogRepository.Update(txCtx, existing)
		return err
	})
	if err != nil {
		return worklog.WorklogResponse{}, err
	}

	// Re-read for the joined type name after a possible type change.
	updated, err = s.WorklogRepository.GetByID(ctx, updated.ID)
	if err != nil {
		return worklog.WorklogResponse{}, err
	}
	return worklog.ToResponse(updated, now), nil
}

// DeleteWorklog implements worklog.WorklogService.
func (s *WorklogServiceImpl) DeleteWorklog(ctx context.Context, worklogID, employeeID string) error {
	now := time.Now().UTC()

	existing, err := s.WorklogRepository.GetByID(ctx, worklogID)
	if err != nil {
		return err
	}

	if existing.EmployeeID != employeeID {
		return worklog.ErrNotOwner
	}
	if !existing.Editable(now) {
		return worklog.ErrImmutable
	}

	return s.WorklogRepository.Delete(ctx, worklogID)
}

// GetWorklogByID implements worklog.WorklogService. Owners always see their
// own entries; team leads and directors see entries of employees they can
// view.
func (s *WorklogServiceImpl) GetWorklogByID(ctx context.Context, worklogID, requesterID string) (worklog.WorklogResponse, error) {
	now := time.Now().UTC()

	w, err := s.WorklogRepository.GetByID(ctx, worklogID)
	if err != nil {
		return worklog.WorklogResponse{}, err
	}

	if w.EmployeeID == requesterID {
		return worklog.ToResponse(w, now), nil
	}

	requester, err := s.EmployeeRepository.GetByID(ctx, requesterID)
	if err != nil {
		return worklog.WorklogResponse{}, err
	}
	owner, err := s.EmployeeRepository.GetByID(ctx, w.EmployeeID)
	if err != nil {
		return worklog.WorklogResponse{}, err
	}

	if !requester.CanView(&owner) {
		return worklog.WorklogResponse{}, worklog.ErrViewForbidden
	}
	return worklog.ToResponse(w, now), nil
}

// GetEmployeeWorklogs implements worklog.WorklogService.
func (s *WorklogServiceImpl) GetEmployeeWorklogs(ctx context.Context, employeeID string, start, end time.Time) ([]worklog.WorklogResponse, error) {
	worklogs, err := s.WorklogRepository.ListByEmployeeAndRange(ctx, employeeID, dateutil.DateOnly(start), dateutil.DateOnly(end))
	if err != nil {
		return nil, err
	}
	return worklog.ToResponseList(worklogs, time.Now().UTC()), nil
}

// GetWorklogsForDate implements worklog.WorklogService.
func (s *WorklogServiceImpl) GetWorklogsForDate(ctx context.Context, employeeID string, date time.Time) ([]worklog.WorklogResponse, error) {
	worklogs, err := s.WorklogRepository.ListByEmployeeAndDate(ctx, employeeID, dateutil.DateOnly(date))
	if err != nil {
		return nil, err
	}
	return worklog.ToResponseList(worklogs, time.Now().UTC()), nil
}

// GetTeamWorklogs implements worklog.WorklogService.
func (s *WorklogServiceImpl) GetTeamWorklogs(ctx context.Context, teamLeadID string, start, end time.Time, memberID *string) ([]worklog.WorklogResponse, error) {
	lead, err := s.EmployeeRepository.GetByID(ctx, teamLeadID)
	if err != nil {
		return nil, err
	}
	if !lead.IsTeamLead() && !lead.IsDirector() {
		return nil, worklog.ErrTeamLeadRoleNeeded
	}

	start, end = dateutil.DateOnly(start), dateutil.DateOnly(end)

	var worklogs []worklog.Worklog
	if memberID != nil {
		member, err := s.EmployeeRepository.GetByID(ctx, *memberID)
		if err != nil {
			return nil, err
		}
		if !lead.CanView(&member) {
			return nil, employee.ErrNotInTeam
		}
		worklogs, err = s.WorklogRepository.ListByEmployeeAndRange(ctx, *memberID, start, end)
		if err != nil {
			return nil, err
		}
	} else {
		worklogs, err = s.WorklogRepository.ListByTeamLead(ctx, teamLeadID, start, end)
		if err != nil {
			return nil, err
		}
	}

	return worklog.ToResponseList(worklogs, time.Now().UTC()), nil
}

// GetDepartmentWorklogs implements worklog.WorklogService.
func (s *WorklogServiceImpl) GetDepartmentWorklogs(ctx context.Context, directorID string, start, end time.Time, teamLeadID, employeeID *string) ([]worklog.WorklogResponse, error) {
	director, err := s.EmployeeRepository.GetByID(ctx, directorID)
	if err != nil {
		return nil, err
	}
	if !director.IsDirector() {
		return nil, worklog.ErrDirectorRoleNeeded
	}

	start, end = dateutil.DateOnly(start), dateutil.DateOnly(end)

	var worklogs []worklog.Worklog
	switch {
	case employeeID != nil:
		emp, err := s.EmployeeRepository.GetByID(ctx, *employeeID)
		if err != nil {
			return nil, err
		}
		if emp.DepartmentID != director.DepartmentID {
			return nil, employee.ErrNotInDepartment
		}
		worklogs, err = s.WorklogRepository.ListByEmployeeAndRange(ctx, *employeeID, start, end)
		if err != nil {
			return nil, err
		}
	case teamLeadID != nil:
		worklogs, err = s.WorklogRepository.ListByTeamLead(ctx, *teamLeadID, start, end)
		if err != nil {
			return nil, err
		}
	default:
		worklogs, err = s.WorklogRepository.ListByDepartment(ctx, director.DepartmentID, start, end)
		if err != nil {
			return nil, err
		}
	}

	return worklog.ToResponseList(worklogs, time.Now().UTC()), nil
}
