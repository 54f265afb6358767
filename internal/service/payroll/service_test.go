package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/meridianhr/payroll-backend-go/internal/domain/employee"
	"github.com/meridianhr/payroll-backend-go/internal/domain/payroll"
	"github.com/meridianhr/payroll-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollRepo struct {
	runs  map[string]payroll.Run
	items map[string][]payroll.Item
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		runs:  make(map[string]payroll.Run),
		items: make(map[string][]payroll.Item),
	}
}

func periodKey(month, year int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func (f *fakePayrollRepo) GetRunByPeriod(_ context.Context, month, year int) (payroll.Run, error) {
	run, ok := f.runs[periodKey(month, year)]
	if !ok {
		return payroll.Run{}, payroll.ErrRunNotFound
	}
	return run, nil
}

func (f *fakePayrollRepo) GetRunByPeriodForUpdate(ctx context.Context, month, year int) (payroll.Run, error) {
	return f.GetRunByPeriod(ctx, month, year)
}

func (f *fakePayrollRepo) CreateRun(_ context.Context, run payroll.Run) (payroll.Run, error) {
	key := periodKey(run.Month, run.Year)
	if _, ok := f.runs[key]; ok {
		return payroll.Run{}, payroll.ErrRunAlreadyExists
	}
	run.ID = "run-" + key
	f.runs[key] = run
	return run, nil
}

func (f *fakePayrollRepo) UpdateRunResult(_ context.Context, run payroll.Run) (payroll.Run, error) {
	key := periodKey(run.Month, run.Year)
	if _, ok := f.runs[key]; !ok {
		return payroll.Run{}, payroll.ErrRunNotFound
	}
	f.runs[key] = run
	return run, nil
}

func (f *fakePayrollRepo) FinalizeRun(_ context.Context, id string) error {
	for key, run := range f.runs {
		if run.ID != id {
			continue
		}
		if run.Status == payroll.RunStatusFinalized {
			return payroll.ErrRunFinalized
		}
		run.Status = payroll.RunStatusFinalized
		f.runs[key] = run
		return nil
	}
	return payroll.ErrRunNotFound
}

func (f *fakePayrollRepo) ListRunsByYear(_ context.Context, year int) ([]payroll.Run, error) {
	var runs []payroll.Run
	for month := 1; month <= 12; month++ {
		if run, ok := f.runs[periodKey(month, year)]; ok {
			runs = append(runs, run)
		}
	}
	return runs, nil
}

func (f *fakePayrollRepo) CreateItems(_ context.Context, items []payroll.Item) error {
	for _, item := range items {
		f.items[item.RunID] = append(f.items[item.RunID], item)
	}
	return nil
}

func (f *fakePayrollRepo) DeleteItemsByRun(_ context.Context, runID string) error {
	delete(f.items, runID)
	return nil
}

func (f *fakePayrollRepo) ListItemsByRun(_ context.Context, runID string) ([]payroll.Item, error) {
	return f.items[runID], nil
}

func (f *fakePayrollRepo) ListItemsByRunAndEmployee(_ context.Context, runID, employeeID string) ([]payroll.Item, error) {
	var items []payroll.Item
	for _, item := range f.items[runID] {
		if item.EmployeeID == employeeID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakePayrollRepo) CountItemsByRun(_ context.Context, runID string) (int64, error) {
	return int64(len(f.items[runID])), nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmployeeCode(_ context.Context, code string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeCode == code {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) ExistsByCodeOrIdentityNo(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ string, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, includeStatuses []employee.EmploymentStatus) ([]employee.Employee, error) {
	if len(includeStatuses) == 0 {
		return f.employees, nil
	}
	var out []employee.Employee
	for _, emp := range f.employees {
		for _, status := range includeStatuses {
			if emp.Status == status {
				out = append(out, emp)
				break
			}
		}
	}
	return out, nil
}

type fakeSalaryRepo struct {
	assignments map[string][]salary.StructureAssignment
}

func (f *fakeSalaryRepo) CreateComponent(_ context.Context, c salary.Component) (salary.Component, error) {
	return c, nil
}

func (f *fakeSalaryRepo) GetComponentByID(_ context.Context, _ string) (salary.Component, error) {
	return salary.Component{}, salary.ErrComponentNotFound
}

func (f *fakeSalaryRepo) GetComponentByCode(_ context.Context, _ string) (salary.Component, error) {
	return salary.Component{}, salary.ErrComponentNotFound
}

func (f *fakeSalaryRepo) ListComponents(_ context.Context, _ bool) ([]salary.Component, error) {
	return nil, nil
}

func (f *fakeSalaryRepo) UpdateComponent(_ context.Context, _ salary.UpdateComponentRequest) error {
	return nil
}

func (f *fakeSalaryRepo) CreateAssignment(_ context.Context, a salary.StructureAssignment) (salary.StructureAssignment, error) {
	f.assignments[a.EmployeeID] = append(f.assignments[a.EmployeeID], a)
	return a, nil
}

func (f *fakeSalaryRepo) GetAssignmentByID(_ context.Context, _ string) (salary.StructureAssignment, error) {
	return salary.StructureAssignment{}, salary.ErrAssignmentNotFound
}

func (f *fakeSalaryRepo) ListAssignmentsByEmployee(_ context.Context, employeeID string) ([]salary.StructureAssignment, error) {
	return f.assignments[employeeID], nil
}

func (f *fakeSalaryRepo) ListEffectiveByEmployee(_ context.Context, employeeID string, date time.Time) ([]salary.StructureAssignment, error) {
	var out []salary.StructureAssignment
	for _, a := range f.assignments[employeeID] {
		if a.EffectiveOn(date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeSalaryRepo) EndAssignment(_ context.Context, _ string, _ time.Time) error {
	return nil
}

func (f *fakeSalaryRepo) DeactivateAssignment(_ context.Context, _ string) error {
	return nil
}

func componentType(t salary.ComponentType) *salary.ComponentType {
	return &t
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(employees []employee.Employee, assignments map[string][]salary.StructureAssignment) (*PayrollServiceImpl, *fakePayrollRepo) {
	payrollRepo := newFakePayrollRepo()
	s := &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: &fakeEmployeeRepo{employees: employees},
		salaryRepo:   &fakeSalaryRepo{assignments: assignments},
	}
	s.inTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	return s, payrollRepo
}

func openEnded(comp string, compType salary.ComponentType, amt string) salary.StructureAssignment {
	return salary.StructureAssignment{
		ID:                 comp + "-assignment",
		ComponentID:        comp,
		Amount:             amount(amt),
		EffectiveStartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:           true,
		ComponentType:      componentType(compType),
	}
}

func TestGenerateRunSingleEmployee(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", EmployeeCode: "EMP001", FullName: "Alice Tan", Status: employee.StatusActive},
	}
	assignments := map[string][]salary.StructureAssignment{
		"emp-1": {
			openEnded("basic", salary.ComponentTypeEarning, "5000"),
			openEnded("allowance", salary.ComponentTypeEarning, "1000"),
			openEnded("epf", salary.ComponentTypeStatutoryDeduction, "500"),
		},
	}
	s, repo := newTestService(employees, assignments)

	resp, err := s.GenerateRun(context.Background(), "admin@example.com", payroll.GenerateRunRequest{Month: 1, Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, "DRAFT", resp.Status)
	assert.True(t, resp.TotalPayout.Equal(amount("5500")), "total payout %s", resp.TotalPayout)

	items, err := repo.ListItemsByRun(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	for _, item := range items {
		assert.True(t, item.CalculationBase.Equal(item.Amount))
	}
}

func TestGenerateRunIsIdempotent(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", EmployeeCode: "EMP001", FullName: "Alice Tan", Status: employee.StatusActive},
	}
	assignments := map[string][]salary.StructureAssignment{
		"emp-1": {
			openEnded("basic", salary.ComponentTypeEarning, "5000"),
			openEnded("allowance", salary.ComponentTypeEarning, "1000"),
			openEnded("epf", salary.ComponentTypeStatutoryDeduction, "500"),
		},
	}
	s, repo := newTestService(employees, assignments)

	first, err := s.GenerateRun(context.Background(), "admin@example.com", payroll.GenerateRunRequest{Month: 1, Year: 2026})
	require.NoError(t, err)
	second, err := s.GenerateRun(context.Background(), "admin@example.com", payroll.GenerateRunRequest{Month: 1, Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.TotalPayout.Equal(amount("5500")))

	// Regeneration replaces items rather than appending.
	count, err := repo.CountItemsByRun(context.Background(), second.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestGenerateRunFinalizedPeriodRejected(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", EmployeeCode: "EMP001", FullName: "Alice Tan", Status: employee.StatusActive},
	}
	assignments := map[string][]salary.StructureAssignment{
		"emp-1": {openEnded("basic", salary.ComponentTypeEarning, "5000")},
	}
	s, repo := newTestService(employees, assignments)

	resp, err := s.GenerateRun(context.Background(), "admin@example.com", payroll.GenerateRunRequest{Month: 1, Year: 2026})
	require.NoError(t, err)

	_, err = s.FinalizeRun(context.Background(), 1, 2026)
	require.NoError(t, err)

	_, err = s.GenerateRun(context.Background(), "admin@example.com", payroll.GenerateRunRequest{Month: 1, Year: 2026})
	assert.ErrorIs(t, err, payroll.ErrRunFinalized)

	// The finalized run keeps its items untouched.
	count, err := repo.CountItemsByRun(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestGenerateRunSkipsEmployeesWithoutAssignments(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", EmployeeCode: "EMP001", FullName: "Alice Tan", Status: employee.StatusActive},
		{ID: "emp-2", EmployeeCode: "EMP002", FullName: "Bala Krishnan", Status: employee.StatusActive},
	}
	assignments := map[string][]salary.StructureAssignment{
		"emp-1": {openEnded("basic", salary.ComponentTypeEarning, "4000")},
	}
	s, repo := newTestService(employees, assignments)

	resp, err := s.GenerateRun(context.Background(), "admin@example.com", payroll.GenerateRunRequest{Month: 3, Year: 2026})
	require.NoError(t, err)

	assert.True(t, resp.TotalPayout.Equal(amount("4000")))

	items, err := repo.ListItemsByRun(context.Background(), resp.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "emp-1", items[0].EmployeeID)
}

func TestGenerateRunExpiredAssignmentExcluded(t *testing.T) {
	expired := openEnded("basic", salary.ComponentTypeEarning, "5000")
	end := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	expired.EffectiveEndDate = &end

	employees := []employee.Employee{
		{ID: "emp-1", EmployeeCode: "EMP001", FullName: "Alice Tan", Status: employee.StatusActive},
	}
	assignments := map[string][]salary.StructureAssignment{
		"emp-1": {
			expired,
			openEnded("allowance", salary.ComponentTypeEarning, "800"),
		},
	}
	s, repo := newTestService(employees, assignments)

	// Reference date 2026-01-31 falls after the expired assignment's end.
	resp, err := s.GenerateRun(context.Background(), "admin@example.com", payroll.GenerateRunRequest{Month: 1, Year: 2026})
	require.NoError(t, err)

	assert.True(t, resp.TotalPayout.Equal(amount("800")))

	items, err := repo.ListItemsByRun(context.Background(), resp.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "allowance", items[0].ComponentID)
}

func TestGenerateRunNegativeNetPermitted(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", EmployeeCode: "EMP001", FullName: "Alice Tan", Status: employee.StatusActive},
	}
	assignments := map[string][]salary.StructureAssignment{
		"emp-1": {
			openEnded("basic", salary.ComponentTypeEarning, "1000"),
			openEnded("loan", salary.ComponentTypeDeduction, "1500"),
		},
	}
	s, _ := newTestService(employees, assignments)

	resp, err := s.GenerateRun(context.Background(), "admin@example.com", payroll.GenerateRunRequest{Month: 6, Year: 2026})
	require.NoError(t, err)

	assert.True(t, resp.TotalPayout.Equal(amount("-500")), "total payout %s", resp.TotalPayout)
}

func TestGenerateRunMalformedStructureFailsWholeRun(t *testing.T) {
	orphan := openEnded("ghost", salary.ComponentTypeEarning, "100")
	orphan.ComponentType = nil

	employees := []employee.Employee{
		{ID: "emp-1", EmployeeCode: "EMP001", FullName: "Alice Tan", Status: employee.StatusActive},
	}
	assignments := map[string][]salary.StructureAssignment{
		"emp-1": {
			openEnded("basic", salary.ComponentTypeEarning, "5000"),
			orphan,
		},
	}
	s, _ := newTestService(employees, assignments)

	_, err := s.GenerateRun(context.Background(), "admin@example.com", payroll.GenerateRunRequest{Month: 1, Year: 2026})
	assert.ErrorIs(t, err, payroll.ErrMalformedStructure)
}

func TestGenerateRunRejectsInvalidPeriod(t *testing.T) {
	s, _ := newTestService(nil, map[string][]salary.StructureAssignment{})

	_, err := s.GenerateRun(context.Background(), "admin@example.com", payroll.GenerateRunRequest{Month: 13, Year: 2026})
	assert.Error(t, err)

	_, err = s.GenerateRun(context.Background(), "admin@example.com", payroll.GenerateRunRequest{Month: 0, Year: 2026})
	assert.Error(t, err)
}

func TestFinalizeRunTwiceRejected(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", EmployeeCode: "EMP001", FullName: "Alice Tan", Status: employee.StatusActive},
	}
	assignments := map[string][]salary.StructureAssignment{
		"emp-1": {openEnded("basic", salary.ComponentTypeEarning, "5000")},
	}
	s, _ := newTestService(employees, assignments)

	_, err := s.GenerateRun(context.Background(), "admin@example.com", payroll.GenerateRunRequest{Month: 1, Year: 2026})
	require.NoError(t, err)

	resp, err := s.FinalizeRun(context.Background(), 1, 2026)
	require.NoError(t, err)
	assert.Equal(t, "FINALIZED", resp.Status)

	_, err = s.FinalizeRun(context.Background(), 1, 2026)
	assert.ErrorIs(t, err, payroll.ErrRunFinalized)
}

func TestFinalizeRunMissingPeriod(t *testing.T) {
	s, _ := newTestService(nil, map[string][]salary.StructureAssignment{})

	_, err := s.FinalizeRun(context.Background(), 4, 2026)
	assert.ErrorIs(t, err, payroll.ErrRunNotFound)
}

func TestListEmployeeRunItemsMissingEmployee(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", EmployeeCode: "EMP001", FullName: "Alice Tan", Status: employee.StatusActive},
	}
	assignments := map[string][]salary.StructureAssignment{
		"emp-1": {openEnded("basic", salary.ComponentTypeEarning, "5000")},
	}
	s, _ := newTestService(employees, assignments)

	_, err := s.GenerateRun(context.Background(), "admin@example.com", payroll.GenerateRunRequest{Month: 1, Year: 2026})
	require.NoError(t, err)

	_, err = s.ListEmployeeRunItems(context.Background(), 1, 2026, "emp-unknown")
	assert.ErrorIs(t, err, payroll.ErrNoItemsForEmployee)
}

func TestBuildEmployeeResultPoolsDeductionTypes(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", EmployeeCode: "EMP001"}
	assignments := []salary.StructureAssignment{
		openEnded("basic", salary.ComponentTypeEarning, "6000"),
		openEnded("loan", salary.ComponentTypeDeduction, "300"),
		openEnded("epf", salary.ComponentTypeStatutoryDeduction, "660"),
		openEnded("socso", salary.ComponentTypeStatutoryDeduction, "24.75"),
	}

	res, err := buildEmployeeResult("run-1", emp, assignments)
	require.NoError(t, err)

	assert.True(t, res.Gross.Equal(amount("6000")))
	assert.True(t, res.Deductions.Equal(amount("984.75")))
	assert.True(t, res.Net.Equal(amount("5015.25")))
	assert.Len(t, res.Items, 4)
}
