package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest defines data for hiring an employee. An employee is
// branch-local XOR global.
type CreateEmployeeRequest struct {
	BranchID string          `json:"branchId"`
	Name     string          `json:"name" binding:"required"`
	Role     string          `json:"role"`
	Salary   decimal.Decimal `json:"salary"`
	IsGlobal bool            `json:"isGlobal"`
}

// UpdateEmployeeRequest carries optional field updates for an employee.
type UpdateEmployeeRequest struct {
	Name   *string          `json:"name"`
	Role   *string          `json:"role"`
	Salary *decimal.Decimal `json:"salary"`
}
