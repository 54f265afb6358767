package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/meridianhr/payroll-backend-go/internal/domain/employee"
	"github.com/meridianhr/payroll-backend-go/internal/domain/salary"
)

type SalaryServiceImpl struct {
	salaryRepo   salary.SalaryRepository
	employeeRepo employee.EmployeeRepository
}

func NewSalaryService(salaryRepo salary.SalaryRepository, employeeRepo employee.EmployeeRepository) salary.SalaryService {
	return &SalaryServiceImpl{
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
	}
}

// ========== COMPONENTS ==========

func (s *SalaryServiceImpl) CreateComponent(ctx context.Context, req salary.CreateComponentRequest) (salary.ComponentResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.ComponentResponse{}, err
	}

	component := salary.Component{
		Code:      req.Code,
		Name:      req.Name,
		Type:      salary.ComponentType(req.Type),
		Frequency: salary.Frequency(req.Frequency),
		IsActive:  true,
	}
	if component.Frequency == "" {
		component.Frequency = salary.FrequencyMonthly
	}
	if req.IsTaxable != nil {
		component.IsTaxable = *req.IsTaxable
	}
	if req.IsEPFApplicable != nil {
		component.IsEPFApplicable = *req.IsEPFApplicable
	}
	if req.IsSOCSOApplicable != nil {
		component.IsSOCSOApplicable = *req.IsSOCSOApplicable
	}

	created, err := s.salaryRepo.CreateComponent(ctx, component)
	if err != nil {
		return salary.ComponentResponse{}, err
	}

	return toComponentResponse(created), nil
}

func (s *SalaryServiceImpl) GetComponent(ctx context.Context, id string) (salary.ComponentResponse, error) {
	component, err := s.salaryRepo.GetComponentByID(ctx, id)
	if err != nil {
		return salary.ComponentResponse{}, err
	}
	return toComponentResponse(component), nil
}

func (s *SalaryServiceImpl) ListComponents(ctx context.Context, activeOnly bool) ([]salary.ComponentResponse, error) {
	components, err := s.salaryRepo.ListComponents(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]salary.ComponentResponse, 0, len(components))
	for _, component := range components {
		responses = append(responses, toComponentResponse(component))
	}
	return responses, nil
}

func (s *SalaryServiceImpl) UpdateComponent(ctx context.Context, req salary.UpdateComponentRequest) error {
	return s.salaryRepo.UpdateComponent(ctx, req)
}

// ========== STRUCTURE ASSIGNMENTS ==========

func (s *SalaryServiceImpl) AssignComponent(ctx context.Context, actor string, req salary.AssignComponentRequest) (salary.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.AssignmentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return salary.AssignmentResponse{}, err
	}
	component, err := s.salaryRepo.GetComponentByID(ctx, req.ComponentID)
	if err != nil {
		return salary.AssignmentResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.EffectiveStartDate)
	if err != nil {
		return salary.AssignmentResponse{}, fmt.Errorf("failed to parse effective start date: %w", err)
	}
	var endDate *time.Time
	if req.EffectiveEndDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EffectiveEndDate)
		if err != nil {
			return salary.AssignmentResponse{}, fmt.Errorf("failed to parse effective end date: %w", err)
		}
		endDate = &parsed
	}

	created, err := s.salaryRepo.CreateAssignment(ctx, salary.StructureAssignment{
		EmployeeID:         req.EmployeeID,
		ComponentID:        req.ComponentID,
		Amount:             req.Amount,
		EffectiveStartDate: startDate,
		EffectiveEndDate:   endDate,
		IsActive:           true,
		CreatedBy:          &actor,
	})
	if err != nil {
		return salary.AssignmentResponse{}, err
	}

	created.ComponentCode = &component.Code
	created.ComponentName = &component.Name
	created.ComponentType = &component.Type
	return toAssignmentResponse(created), nil
}

func (s *SalaryServiceImpl) ListEmployeeStructures(ctx context.Context, employeeID string) ([]salary.AssignmentResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	assignments, err := s.salaryRepo.ListAssignmentsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]salary.AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, toAssignmentResponse(assignment))
	}
	return responses, nil
}

func (s *SalaryServiceImpl) EndAssignment(ctx context.Context, id string, endDate string) error {
	parsed, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return fmt.Errorf("failed to parse end date: %w", err)
	}

	assignment, err := s.salaryRepo.GetAssignmentByID(ctx, id)
	if err != nil {
		return err
	}
	if parsed.Before(assignment.EffectiveStartDate) {
		return fmt.Errorf("end date %s precedes the assignment's start date", endDate)
	}

	return s.salaryRepo.EndAssignment(ctx, id, parsed)
}

func (s *SalaryServiceImpl) DeactivateAssignment(ctx context.Context, id string) error {
	return s.salaryRepo.DeactivateAssignment(ctx, id)
}

// ========== CONVERTERS ==========

func toComponentResponse(c salary.Component) salary.ComponentResponse {
	return salary.ComponentResponse{
		ID:                c.ID,
		Code:              c.Code,
		Name:              c.Name,
		Type:              string(c.Type),
		Frequency:         string(c.Frequency),
		IsTaxable:         c.IsTaxable,
		IsEPFApplicable:   c.IsEPFApplicable,
		IsSOCSOApplicable: c.IsSOCSOApplicable,
		IsActive:          c.IsActive,
	}
}

func toAssignmentResponse(a salary.StructureAssignment) salary.AssignmentResponse {
	resp := salary.AssignmentResponse{
		ID:                 a.ID,
		EmployeeID:         a.EmployeeID,
		ComponentID:        a.ComponentID,
		Amount:             a.Amount,
		EffectiveStartDate: a.EffectiveStartDate.Format("2006-01-02"),
		IsActive:           a.IsActive,
	}
	if a.EffectiveEndDate != nil {
		endDate := a.EffectiveEndDate.Format("2006-01-02")
		resp.EffectiveEndDate = &endDate
	}
	if a.ComponentCode != nil {
		resp.ComponentCode = *a.ComponentCode
	}
	if a.ComponentName != nil {
		resp.ComponentName = *a.ComponentName
	}
	if a.ComponentType != nil {
		resp.ComponentType = string(*a.ComponentType)
	}
	return resp
}
