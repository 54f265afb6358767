package payroll

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/meridianhr/payroll-backend-go/internal/domain/employee"
	"github.com/meridianhr/payroll-backend-go/internal/domain/payroll"
	"github.com/meridianhr/payroll-backend-go/internal/domain/salary"
	"github.com/meridianhr/payroll-backend-go/internal/pkg/database"
	"github.com/meridianhr/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db           *database.DB
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	salaryRepo   salary.SalaryRepository

	// includeStatuses filters which employees a generation pass covers;
	// empty means everyone, including resigned employees.
	includeStatuses []employee.EmploymentStatus

	// inTx runs fn inside one database transaction, handing it a context
	// that routes repository calls through that transaction.
	inTx func(ctx context.Context, fn func(ctx context.Context) error) error

	periodLocks periodLocks
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	salaryRepo salary.SalaryRepository,
	includeStatuses []employee.EmploymentStatus,
) payroll.PayrollService {
	s := &PayrollServiceImpl{
		db:              db,
		payrollRepo:     payrollRepo,
		employeeRepo:    employeeRepo,
		salaryRepo:      salaryRepo,
		includeStatuses: includeStatuses,
	}
	s.inTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
			return fn(postgresql.TxContext(ctx, tx))
		})
	}
	return s
}

// periodLocks serializes generation per (month, year) within this process.
// The row lock taken inside the transaction covers concurrent replicas.
type periodLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (p *periodLocks) acquire(month, year int) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.locks == nil {
		p.locks = make(map[string]*sync.Mutex)
	}
	key := fmt.Sprintf("%d-%d", year, month)
	lock, ok := p.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		p.locks[key] = lock
	}
	return lock
}

// ========== GENERATION ==========

func (s *PayrollServiceImpl) GenerateRun(ctx context.Context, processedBy string, req payroll.GenerateRunRequest) (payroll.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunResponse{}, err
	}

	lock := s.periodLocks.acquire(req.Month, req.Year)
	lock.Lock()
	defer lock.Unlock()

	var result payroll.Run
	err := s.inTx(ctx, func(txCtx context.Context) error {
		run, err := s.lockOrCreateRun(txCtx, req.Month, req.Year, processedBy)
		if err != nil {
			return err
		}
		if run.Status == payroll.RunStatusFinalized {
			return payroll.ErrRunFinalized
		}

		referenceDate := payroll.PeriodEnd(req.Month, req.Year)

		employees, err := s.employeeRepo.List(txCtx, s.includeStatuses)
		if err != nil {
			return fmt.Errorf("failed to list employees for payroll: %w", err)
		}

		// Re-running a draft period replaces its items wholesale.
		if err := s.payrollRepo.DeleteItemsByRun(txCtx, run.ID); err != nil {
			return err
		}

		total := decimal.Zero
		var items []payroll.Item
		for _, emp := range employees {
			assignments, err := s.salaryRepo.ListEffectiveByEmployee(txCtx, emp.ID, referenceDate)
			if err != nil {
				return fmt.Errorf("failed to resolve salary structure for %s: %w", emp.EmployeeCode, err)
			}

			res, err := buildEmployeeResult(run.ID, emp, assignments)
			if err != nil {
				return err
			}

			items = append(items, res.Items...)
			total = total.Add(res.Net)
		}

		if err := s.payrollRepo.CreateItems(txCtx, items); err != nil {
			return err
		}

		run.RunDate = time.Now()
		run.ProcessedBy = &processedBy
		run.TotalPayout = total
		result, err = s.payrollRepo.UpdateRunResult(txCtx, run)
		return err
	})
	if err != nil {
		return payroll.RunResponse{}, err
	}

	return toRunResponse(result), nil
}

// lockOrCreateRun row-locks the period's run, creating a fresh DRAFT run
// when none exists yet.
func (s *PayrollServiceImpl) lockOrCreateRun(ctx context.Context, month, year int, processedBy string) (payroll.Run, error) {
	run, err := s.payrollRepo.GetRunByPeriodForUpdate(ctx, month, year)
	if err == nil {
		return run, nil
	}
	if !errors.Is(err, payroll.ErrRunNotFound) {
		return payroll.Run{}, err
	}

	return s.payrollRepo.CreateRun(ctx, payroll.Run{
		Month:       month,
		Year:        year,
		RunDate:     time.Now(),
		Status:      payroll.RunStatusDraft,
		ProcessedBy: &processedBy,
		TotalPayout: decimal.Zero,
	})
}

// employeeResult is one employee's slice of a generation pass.
type employeeResult struct {
	Items      []payroll.Item
	Gross      decimal.Decimal
	Deductions decimal.Decimal
	Net        decimal.Decimal
}

// buildEmployeeResult folds an employee's effective assignments into payroll
// items and totals. Earnings accumulate into gross; deductions and statutory
// deductions pool together. Net pay may be negative.
func buildEmployeeResult(runID string, emp employee.Employee, assignments []salary.StructureAssignment) (employeeResult, error) {
	res := employeeResult{
		Gross:      decimal.Zero,
		Deductions: decimal.Zero,
	}

	for _, a := range assignments {
		if a.ComponentType == nil {
			return employeeResult{}, fmt.Errorf("assignment %s for %s references a missing component: %w",
				a.ID, emp.EmployeeCode, payroll.ErrMalformedStructure)
		}

		switch *a.ComponentType {
		case salary.ComponentTypeEarning:
			res.Gross = res.Gross.Add(a.Amount)
		case salary.ComponentTypeDeduction, salary.ComponentTypeStatutoryDeduction:
			res.Deductions = res.Deductions.Add(a.Amount)
		default:
			return employeeResult{}, fmt.Errorf("assignment %s for %s has component type %q: %w",
				a.ID, emp.EmployeeCode, *a.ComponentType, payroll.ErrMalformedStructure)
		}

		res.Items = append(res.Items, payroll.Item{
			RunID:           runID,
			EmployeeID:      emp.ID,
			ComponentID:     a.ComponentID,
			Amount:          a.Amount,
			CalculationBase: a.Amount,
		})
	}

	res.Net = res.Gross.Sub(res.Deductions)
	return res, nil
}

// ========== RUN LIFECYCLE ==========

func (s *PayrollServiceImpl) FinalizeRun(ctx context.Context, month, year int) (payroll.RunResponse, error) {
	run, err := s.payrollRepo.GetRunByPeriod(ctx, month, year)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	if err := s.payrollRepo.FinalizeRun(ctx, run.ID); err != nil {
		return payroll.RunResponse{}, err
	}

	run.Status = payroll.RunStatusFinalized
	return toRunResponse(run), nil
}

// ========== READS ==========

func (s *PayrollServiceImpl) GetRun(ctx context.Context, month, year int) (payroll.RunResponse, error) {
	run, err := s.payrollRepo.GetRunByPeriod(ctx, month, year)
	if err != nil {
		return payroll.RunResponse{}, err
	}
	return toRunResponse(run), nil
}

func (s *PayrollServiceImpl) ListRuns(ctx context.Context, year int) ([]payroll.RunResponse, error) {
	runs, err := s.payrollRepo.ListRunsByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.RunResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, toRunResponse(run))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) ListRunItems(ctx context.Context, month, year int) ([]payroll.ItemResponse, error) {
	run, err := s.payrollRepo.GetRunByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	items, err := s.payrollRepo.ListItemsByRun(ctx, run.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toItemResponse(item))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) ListEmployeeRunItems(ctx context.Context, month, year int, employeeID string) ([]payroll.ItemResponse, error) {
	run, err := s.payrollRepo.GetRunByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	items, err := s.payrollRepo.ListItemsByRunAndEmployee(ctx, run.ID, employeeID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, payroll.ErrNoItemsForEmployee
	}

	responses := make([]payroll.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toItemResponse(item))
	}
	return responses, nil
}

// ========== CONVERTERS ==========

func toRunResponse(run payroll.Run) payroll.RunResponse {
	return payroll.RunResponse{
		ID:          run.ID,
		Month:       run.Month,
		Year:        run.Year,
		RunDate:     run.RunDate.Format("2006-01-02"),
		Status:      string(run.Status),
		ProcessedBy: run.ProcessedBy,
		TotalPayout: run.TotalPayout,
	}
}

func toItemResponse(item payroll.Item) payroll.ItemResponse {
	return payroll.ItemResponse{
		ID:              item.ID,
		RunID:           item.RunID,
		EmployeeID:      item.EmployeeID,
		EmployeeCode:    item.EmployeeCode,
		EmployeeName:    item.EmployeeName,
		ComponentID:     item.ComponentID,
		ComponentCode:   item.ComponentCode,
		ComponentName:   item.ComponentName,
		Amount:          item.Amount,
		CalculationBase: item.CalculationBase,
		CalculationRate: item.CalculationRate,
		Remarks:         item.Remarks,
	}
}
