package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/meridianhr/payroll-backend-go/internal/domain/audit"
	"github.com/meridianhr/payroll-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	auditor      audit.Recorder
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, auditor audit.Recorder) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		auditor:      auditor,
	}
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, actor string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse join date: %w", err)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		IdentityNo:   req.IdentityNo,
		EPFNo:        req.EPFNo,
		SOCSONo:      req.SOCSONo,
		TaxNo:        req.TaxNo,
		JoinDate:     joinDate,
		Status:       employee.EmploymentStatus(req.Status),
		DepartmentID: req.DepartmentID,
		GradeID:      req.GradeID,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.record(ctx, audit.Log{
		TableName: "employees",
		RecordID:  created.ID,
		Action:    audit.ActionInsert,
		NewValues: employeeSnapshot(created),
		ChangedBy: &actor,
	})

	return toEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, actor string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	before, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, req.ID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	after, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.record(ctx, audit.Log{
		TableName: "employees",
		RecordID:  req.ID,
		Action:    audit.ActionUpdate,
		OldValues: employeeSnapshot(before),
		NewValues: employeeSnapshot(after),
		ChangedBy: &actor,
	})

	return toEmployeeResponse(after), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter.Statuses)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}
	return responses, nil
}

// record writes an audit entry; a failed write never fails the operation
// that triggered it.
func (s *EmployeeServiceImpl) record(ctx context.Context, log audit.Log) {
	if s.auditor == nil {
		return
	}
	_ = s.auditor.Record(ctx, log)
}

func employeeSnapshot(emp employee.Employee) map[string]any {
	snapshot := map[string]any{
		"employee_code": emp.EmployeeCode,
		"full_name":     emp.FullName,
		"identity_no":   emp.IdentityNo,
		"join_date":     emp.JoinDate.Format("2006-01-02"),
		"status":        string(emp.Status),
	}
	if emp.ResignDate != nil {
		snapshot["resign_date"] = emp.ResignDate.Format("2006-01-02")
	}
	if emp.DepartmentID != nil {
		snapshot["department_id"] = *emp.DepartmentID
	}
	if emp.GradeID != nil {
		snapshot["grade_id"] = *emp.GradeID
	}
	return snapshot
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:             emp.ID,
		EmployeeCode:   emp.EmployeeCode,
		FullName:       emp.FullName,
		IdentityNo:     emp.IdentityNo,
		EPFNo:          emp.EPFNo,
		SOCSONo:        emp.SOCSONo,
		TaxNo:          emp.TaxNo,
		JoinDate:       emp.JoinDate.Format("2006-01-02"),
		Status:         string(emp.Status),
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		GradeID:        emp.GradeID,
		GradeName:      emp.GradeName,
	}
	if emp.ResignDate != nil {
		resignDate := emp.ResignDate.Format("2006-01-02")
		resp.ResignDate = &resignDate
	}
	return resp
}
