package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stakeholder is one named recipient of a withdrawal split.
type Stakeholder struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Withdrawal is a cash-decreasing event distributing an amount across
// stakeholders. Stakeholder amounts must sum to Amount within 0.01.
// Edits and removal are only allowed within 24 hours of creation.
type Withdrawal struct {
	RecordMeta
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description,omitempty"`
	Date         time.Time       `json:"date"`
	Stakeholders []Stakeholder   `json:"stakeholders"`
	IsActive     bool            `json:"isActive"`
}
