package services

import (
	"context"

	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
)

// ReportingSvcFacade derives financial analytics; it never mutates.
type ReportingSvcFacade interface {
	// FinancialSummary computes profit for one branch, or company-wide when
	// branchID is empty.
	FinancialSummary(ctx context.Context, branchID string, rng domain.DateRange) (*domain.FinancialSummary, error)
	MonthlyBreakdown(ctx context.Context, rng domain.DateRange) ([]domain.MonthlyBucket, error)
	CategoryBreakdown(ctx context.Context, rng domain.DateRange) ([]domain.CategoryBucket, error)
	TopBranches(ctx context.Context, n int, rng domain.DateRange) ([]domain.BranchRanking, error)
}
