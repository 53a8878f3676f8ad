package department

import (
	"context"

	"github.com/krontech/worklog-backend-go/internal/domain/department"
	"github.com/krontech/worklog-backend-go/internal/domain/employee"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
	employee.EmployeeRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository, employeeRepo employee.EmployeeRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		DepartmentRepository: departmentRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentSummaryResponse, error) {
	departments, err := s.DepartmentRepository.ListWithStats(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentSummaryResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.DepartmentSummaryResponse{
			ID:            d.ID,
			Name:          d.Name,
			Code:          d.Code,
			DirectorID:    d.DirectorID,
			DirectorName:  d.DirectorName,
			EmployeeCount: d.EmployeeCount,
		})
	}
	return responses, nil
}

// GetHierarchy implements department.DepartmentService. The tree is built
// from one pass over the department's active employees; members without a
// team lead hang off nothing and only count toward the totals.
func (s *DepartmentServiceImpl) GetHierarchy(ctx context.Context, departmentID string) (department.HierarchyResponse, error) {
	dept, err := s.DepartmentRepository.GetByID(ctx, departmentID)
	if err != nil {
		return department.HierarchyResponse{}, err
	}

	staff, err := s.EmployeeRepository.ListActiveByDepartment(ctx, departmentID)
	if err != nil {
		return department.HierarchyResponse{}, err
	}

	resp := department.HierarchyResponse{
		Department:     dept.Name,
		DepartmentCode: dept.Code,
		Teams:          []department.TeamInfo{},
		TotalEmployees: len(staff),
	}

	membersByLead := make(map[string][]department.TeamMemberInfo)
	var leads []employee.Employee
	for _, e := range staff {
		switch {
		case e.IsDirector():
			resp.Director = &department.DirectorInfo{
				ID:    e.ID,
				Name:  e.FullName(),
				Email: e.Email,
			}
		case e.IsTeamLead():
			leads = append(leads, e)
		default:
			if e.TeamLeadID != nil {
				membersByLead[*e.TeamLeadID] = append(membersByLead[*e.TeamLeadID], department.TeamMemberInfo{
					ID:    e.ID,
					Name:  e.FullName(),
					Email: e.Email,
					Grade: e.GradeTitle,
				})
			}
		}
	}

	resp.TotalTeamLeads = len(leads)
	for _, lead := range leads {
		members := membersByLead[lead.ID]
		if members == nil {
			members = []department.TeamMemberInfo{}
		}
		resp.Teams = append(resp.Teams, department.TeamInfo{
			TeamLeadID:    lead.ID,
			TeamLeadName:  lead.FullName(),
			TeamLeadEmail: lead.Email,
			Members:       members,
			TeamSize:      len(members),
		})
	}

	return resp, nil
}
