package worklog

import (
	"context"
	"testing"
	"time"

	"github.com/krontech/worklog-backend-go/internal/domain/employee"
	"github.com/krontech/worklog-backend-go/internal/domain/worklog"
	"github.com/krontech/worklog-backend-go/internal/domain/worklogtype"
	"github.com/krontech/worklog-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWorklogRepo struct {
	existing worklog.Worklog
	getCalls int
}

func (s *stubWorklogRepo) Create(ctx context.Context, w worklog.Worklog) (worklog.Worklog, error) {
	return w, nil
}

func (s *stubWorklogRepo) GetByID(ctx context.Context, id string) (worklog.Worklog, error) {
	s.getCalls++
	if id != s.existing.ID {
		return worklog.Worklog{}, worklog.ErrWorklogNotFound
	}
	return s.existing, nil
}

func (s *stubWorklogRepo) Update(ctx context.Context, w worklog.Worklog) (worklog.Worklog, error) {
	return w, nil
}

func (s *stubWorklogRepo) Delete(ctx context.Context, id string) error { return nil }

func (s *stubWorklogRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]worklog.Worklog, error) {
	return nil, nil
}

func (s *stubWorklogRepo) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]worklog.Worklog, error) {
	return nil, nil
}

func (s *stubWorklogRepo) ListByTeamLead(ctx context.Context, teamLeadID string, start, end time.Time) ([]worklog.Worklog, error) {
	return nil, nil
}

func (s *stubWorklogRepo) ListByDepartment(ctx context.Context, departmentID string, start, end time.Time) ([]worklog.Worklog, error) {
	return nil, nil
}

func (s *stubWorklogRepo) FindDuplicate(ctx context.Context, employeeID string, date time.Time, typeID string, projectName, description *string) (*worklog.Worklog, error) {
	return nil, nil
}

type stubEmployeeRepo struct {
	emp employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.emp, nil
}

func (s *stubEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) ListActiveByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) ListActiveByTeamLead(ctx context.Context, teamLeadID string) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) ListActiveByRole(ctx context.Context, role employee.Role) ([]employee.Employee, error) {
	return nil, nil
}

type stubTypeRepo struct{}

func (s *stubTypeRepo) GetByID(ctx context.Context, id string) (worklogtype.WorklogType, error) {
	return worklogtype.WorklogType{ID: id, Name: "Development", IsActive: true}, nil
}

func (s *stubTypeRepo) ListActive(ctx context.Context) ([]worklogtype.WorklogType, error) {
	return nil, nil
}

func TestUpdateWorklogRejectsMalformedDate(t *testing.T) {
	repo := &stubWorklogRepo{existing: worklog.Worklog{
		ID:            "wl-1",
		EmployeeID:    "emp-1",
		WorklogTypeID: "type-1",
		WorkDate:      time.Now().UTC(),
		HoursWorked:   4,
	}}
	svc := NewWorklogService(nil, repo, &stubEmployeeRepo{}, &stubTypeRepo{})

	bad := "16/06/2025"
	_, err := svc.UpdateWorklog(context.Background(), "wl-1", "emp-1", worklog.UpdateWorklogRequest{
		WorkDate:    &bad,
		HoursWorked: 4,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "work_date", verrs[0].Field)
	// Rejected up front, before anything is loaded or written.
	assert.Equal(t, 0, repo.getCalls)
}

func TestUpdateWorklogOwnershipAndWindow(t *testing.T) {
	now := time.Now().UTC()

	t.Run("non-owner is refused", func(t *testing.T) {
		repo := &stubWorklogRepo{existing: worklog.Worklog{
			ID:         "wl-1",
			EmployeeID: "emp-1",
			WorkDate:   now,
		}}
		svc := NewWorklogService(nil, repo, &stubEmployeeRepo{}, &stubTypeRepo{})

		_, err := svc.UpdateWorklog(context.Background(), "wl-1", "emp-2", worklog.UpdateWorklogRequest{HoursWorked: 4})
		assert.ErrorIs(t, err, worklog.ErrNotOwner)
	})

	t.Run("stale entry is immutable", func(t *testing.T) {
		repo := &stubWorklogRepo{existing: worklog.Worklog{
			ID:         "wl-1",
			EmployeeID: "emp-1",
			WorkDate:   now.AddDate(0, 0, -8),
		}}
		svc := NewWorklogService(nil, repo, &stubEmployeeRepo{}, &stubTypeRepo{})

		_, err := svc.UpdateWorklog(context.Background(), "wl-1", "emp-1", worklog.UpdateWorklogRequest{HoursWorked: 4})
		assert.ErrorIs(t, err, worklog.ErrImmutable)
	})
}
