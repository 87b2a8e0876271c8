package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
	"github.com/orbisedu/academy_mgmt_app/internal/middleware"
)

// employeeService provides validated CRUD over employees.
type employeeService struct {
	employees portsrepo.RecordRepository[domain.Employee]
	branches  portsrepo.RecordRepository[domain.Branch]
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employees portsrepo.RecordRepository[domain.Employee], branches portsrepo.RecordRepository[domain.Branch]) portssvc.EmployeeSvcFacade {
	return &employeeService{employees: employees, branches: branches}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Branch-local XOR global.
	if req.IsGlobal && req.BranchID != "" {
		return nil, fmt.Errorf("%w: a global employee cannot carry a branch", apperrors.ErrValidation)
	}
	if !req.IsGlobal && req.BranchID == "" {
		return nil, fmt.Errorf("%w: a branch-local employee requires a branch", apperrors.ErrValidation)
	}
	if req.BranchID != "" {
		if _, err := requireActiveBranch(ctx, s.branches, req.BranchID); err != nil {
			return nil, err
		}
	}
	if req.Salary.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: salary must not be negative", apperrors.ErrValidation)
	}

	employee, err := s.employees.Create(ctx, domain.Employee{
		BranchID: req.BranchID,
		Name:     req.Name,
		Role:     req.Role,
		Salary:   req.Salary,
		IsGlobal: req.IsGlobal,
		IsActive: true,
	})
	if err != nil {
		logger.Error("Failed to save employee", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	logger.Info("Employee created", slog.String("employee_id", employee.ID))
	return employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, id string) (*domain.Employee, error) {
	return s.employees.FindByID(ctx, id)
}

func (s *employeeService) ListEmployees(ctx context.Context, branchID string) ([]domain.Employee, error) {
	return s.employees.FindBy(ctx, func(e domain.Employee) bool {
		return e.IsActive && (branchID == "" || e.BranchID == branchID)
	})
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if req.Salary != nil && req.Salary.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: salary must not be negative", apperrors.ErrValidation)
	}
	return s.employees.Update(ctx, id, func(e *domain.Employee) {
		if req.Name != nil {
			e.Name = *req.Name
		}
		if req.Role != nil {
			e.Role = *req.Role
		}
		if req.Salary != nil {
			e.Salary = *req.Salary
		}
	})
}

func (s *employeeService) DeactivateEmployee(ctx context.Context, id string) error {
	_, err := s.employees.Update(ctx, id, func(e *domain.Employee) {
		e.IsActive = false
	})
	return err
}
