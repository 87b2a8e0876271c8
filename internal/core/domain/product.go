package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType selects how a sale discount is applied to the subtotal.
type DiscountType string

const (
	DiscountPercentage  DiscountType = "PERCENTAGE"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
)

// Product is global XOR branch-scoped, carries a unique Code and a
// non-negative stock count.
type Product struct {
	RecordMeta
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	BranchID  string          `json:"branchId,omitempty"`
	IsGlobal  bool            `json:"isGlobal"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Stock     int             `json:"stock"`
	IsActive  bool            `json:"isActive"`
}

// ProductSale is an append-only audit record: it can never be deleted, and
// only Notes and ReceiptNumber are mutable after creation. RevenueID points at
// the Revenue row created for the sale total.
type ProductSale struct {
	RecordMeta
	ProductID     string          `json:"productId"`
	BranchID      string          `json:"branchId,omitempty"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountType  DiscountType    `json:"discountType,omitempty"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	RevenueID     string          `json:"revenueId"`
	SaleDate      time.Time       `json:"saleDate"`
	ReceiptNumber string          `json:"receiptNumber,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}
