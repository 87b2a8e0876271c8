package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRevenueRequest records a cash-increasing event.
type CreateRevenueRequest struct {
	BranchID     string          `json:"branchId" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`
	CourseID     string          `json:"courseId"`
	EnrollmentID string          `json:"enrollmentId"`
	StudentID    string          `json:"studentId"`
}

// CreateExpenseRequest records a cost. SHARED expenses carry no branch and an
// optional distribution method; FIXED expenses may be recurring.
type CreateExpenseRequest struct {
	BranchID           string          `json:"branchId"`
	Type               string          `json:"type" binding:"required,oneof=FIXED VARIABLE SHARED"`
	Category           string          `json:"category" binding:"required"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	Date               time.Time       `json:"date"`
	IsRecurring        bool            `json:"isRecurring"`
	DistributionMethod string          `json:"distributionMethod" binding:"omitempty,oneof=EQUAL PROPORTIONAL"`
}

// UpdateExpenseRequest carries optional field updates for an expense.
type UpdateExpenseRequest struct {
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *time.Time       `json:"date"`
}

// ManualCashAdjustmentRequest applies a signed correction to the cash ledger.
type ManualCashAdjustmentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Reason string          `json:"reason" binding:"required"`
}
