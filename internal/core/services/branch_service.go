package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
	"github.com/orbisedu/academy_mgmt_app/internal/middleware"
)

// branchService provides validated CRUD over branches.
type branchService struct {
	branches portsrepo.RecordRepository[domain.Branch]
}

// NewBranchService creates a new BranchService.
func NewBranchService(branches portsrepo.RecordRepository[domain.Branch]) portssvc.BranchSvcFacade {
	return &branchService{branches: branches}
}

var _ portssvc.BranchSvcFacade = (*branchService)(nil)

func (s *branchService) CreateBranch(ctx context.Context, req dto.CreateBranchRequest) (*domain.Branch, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	branch, err := s.branches.Create(ctx, domain.Branch{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		IsActive: true,
	})
	if err != nil {
		logger.Error("Failed to save branch", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save branch: %w", err)
	}

	logger.Info("Branch created", slog.String("branch_id", branch.ID))
	return branch, nil
}

func (s *branchService) GetBranchByID(ctx context.Context, id string) (*domain.Branch, error) {
	return s.branches.FindByID(ctx, id)
}

func (s *branchService) ListBranches(ctx context.Context, includeInactive bool) ([]domain.Branch, error) {
	if includeInactive {
		return s.branches.ReadAll(ctx)
	}
	return s.branches.FindBy(ctx, func(b domain.Branch) bool { return b.IsActive })
}

func (s *branchService) UpdateBranch(ctx context.Context, id string, req dto.UpdateBranchRequest) (*domain.Branch, error) {
	return s.branches.Update(ctx, id, func(b *domain.Branch) {
		if req.Name != nil {
			b.Name = *req.Name
		}
		if req.Address != nil {
			b.Address = *req.Address
		}
		if req.Phone != nil {
			b.Phone = *req.Phone
		}
	})
}

// DeactivateBranch soft-deletes the branch. Repeating it on an already
// inactive branch succeeds and leaves it inactive.
func (s *branchService) DeactivateBranch(ctx context.Context, id string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	_, err := s.branches.Update(ctx, id, func(b *domain.Branch) {
		b.IsActive = false
	})
	if err != nil {
		return err
	}

	logger.Info("Branch deactivated", slog.String("branch_id", id))
	return nil
}

// requireActiveBranch is shared by services that reference a branch.
func requireActiveBranch(ctx context.Context, branches portsrepo.RecordRepository[domain.Branch], branchID string) (*domain.Branch, error) {
	branch, err := branches.FindByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if !branch.IsActive {
		return nil, fmt.Errorf("%w: branch %s is inactive", apperrors.ErrValidation, branchID)
	}
	return branch, nil
}
