package master

import (
	"context"

	"github.com/meridianhr/payroll-backend-go/internal/domain/master/department"
	"github.com/meridianhr/payroll-backend-go/internal/domain/master/grade"
)

type MasterService interface {
	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, id string) error

	// Grade operations
	CreateGrade(ctx context.Context, req grade.CreateGradeRequest) (grade.GradeResponse, error)
	GetGrade(ctx context.Context, id string) (grade.GradeResponse, error)
	ListGrades(ctx context.Context) ([]grade.GradeResponse, error)
	UpdateGrade(ctx context.Context, req grade.UpdateGradeRequest) error
	DeleteGrade(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	gradeRepo      grade.GradeRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	gradeRepo grade.GradeRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
		gradeRepo:      gradeRepo,
	}
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:           req.Name,
		CostCenterCode: req.CostCenterCode,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return toDepartmentResponse(created), nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toDepartmentResponse(dept), nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, toDepartmentResponse(dept))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.departmentRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}

func toDepartmentResponse(dept department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:             dept.ID,
		Name:           dept.Name,
		CostCenterCode: dept.CostCenterCode,
	}
}

// ==================== GRADE OPERATIONS ====================

func (s *masterServiceImpl) CreateGrade(ctx context.Context, req grade.CreateGradeRequest) (grade.GradeResponse, error) {
	if err := req.Validate(); err != nil {
		return grade.GradeResponse{}, err
	}

	created, err := s.gradeRepo.Create(ctx, grade.Grade{
		Name:        req.Name,
		MinSalary:   req.MinSalary,
		MaxSalary:   req.MaxSalary,
		Description: req.Description,
	})
	if err != nil {
		return grade.GradeResponse{}, err
	}

	return toGradeResponse(created), nil
}

func (s *masterServiceImpl) GetGrade(ctx context.Context, id string) (grade.GradeResponse, error) {
	g, err := s.gradeRepo.GetByID(ctx, id)
	if err != nil {
		return grade.GradeResponse{}, err
	}
	return toGradeResponse(g), nil
}

func (s *masterServiceImpl) ListGrades(ctx context.Context) ([]grade.GradeResponse, error) {
	grades, err := s.gradeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]grade.GradeResponse, 0, len(grades))
	for _, g := range grades {
		responses = append(responses, toGradeResponse(g))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateGrade(ctx context.Context, req grade.UpdateGradeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.gradeRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteGrade(ctx context.Context, id string) error {
	return s.gradeRepo.Delete(ctx, id)
}

func toGradeResponse(g grade.Grade) grade.GradeResponse {
	return grade.GradeResponse{
		ID:          g.ID,
		Name:        g.Name,
		MinSalary:   g.MinSalary,
		MaxSalary:   g.MaxSalary,
		Description: g.Description,
	}
}
