package employee

import (
	"context"

	"github.com/krontech/worklog-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepo}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, requesterID, targetID string) (employee.EmployeeResponse, error) {
	requester, err := s.EmployeeRepository.GetByID(ctx, requesterID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	target, err := s.EmployeeRepository.GetByID(ctx, targetID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if !requester.CanView(&target) {
		return employee.EmployeeResponse{}, employee.ErrAccessDenied
	}
	return employee.ToResponse(target), nil
}

// ListVisibleEmployees implements employee.EmployeeService. Employees see only
// themselves, team leads their direct reports, directors their department.
func (s *EmployeeServiceImpl) ListVisibleEmployees(ctx context.Context, requesterID string) ([]employee.EmployeeResponse, error) {
	requester, err := s.EmployeeRepository.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	var visible []employee.Employee
	switch {
	case requester.IsDirector():
		visible, err = s.EmployeeRepository.ListActiveByDepartment(ctx, requester.DepartmentID)
		if err != nil {
			return nil, err
		}
	case requester.IsTeamLead():
		visible, err = s.EmployeeRepository.ListActiveByTeamLead(ctx, requester.ID)
		if err != nil {
			return nil, err
		}
		visible = append([]employee.Employee{requester}, visible...)
	default:
		visible = []employee.Employee{requester}
	}

	responses := make([]employee.EmployeeResponse, 0, len(visible))
	for _, e := range visible {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}
