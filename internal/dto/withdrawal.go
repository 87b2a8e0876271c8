package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
)

// CreateWithdrawalRequest distributes a cash amount across stakeholders whose
// amounts must sum to Amount within 0.01.
type CreateWithdrawalRequest struct {
	Amount       decimal.Decimal      `json:"amount" binding:"required"`
	Description  string               `json:"description"`
	Date         time.Time            `json:"date"`
	Stakeholders []domain.Stakeholder `json:"stakeholders" binding:"required,min=1,dive"`
}

// UpdateWithdrawalRequest edits a withdrawal inside its 24h window.
type UpdateWithdrawalRequest struct {
	Description  *string               `json:"description"`
	Stakeholders *[]domain.Stakeholder `json:"stakeholders"`
}
