package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest registers a sellable product, globally or per branch.
type CreateProductRequest struct {
	Code      string          `json:"code" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	BranchID  string          `json:"branchId"`
	IsGlobal  bool            `json:"isGlobal"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
	Stock     int             `json:"stock" binding:"gte=0"`
}

// UpdateProductRequest carries optional field updates for a product.
type UpdateProductRequest struct {
	Name      *string          `json:"name"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
}

// AdjustStockRequest moves stock in or out of a product.
type AdjustStockRequest struct {
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Operation string `json:"operation" binding:"required,oneof=add subtract"`
}

// CreateProductSaleRequest sells quantity units of a product. The discount is
// clamped so the total can never go below zero.
type CreateProductSaleRequest struct {
	ProductID     string           `json:"productId" binding:"required"`
	Quantity      int              `json:"quantity" binding:"required,gt=0"`
	DiscountType  string           `json:"discountType" binding:"omitempty,oneof=PERCENTAGE FIXED_AMOUNT"`
	DiscountValue *decimal.Decimal `json:"discountValue"`
	SaleDate      time.Time        `json:"saleDate"`
	ReceiptNumber string           `json:"receiptNumber"`
	Notes         string           `json:"notes"`
}

// UpdateProductSaleRequest edits the only mutable fields of a sale.
type UpdateProductSaleRequest struct {
	Notes         *string `json:"notes"`
	ReceiptNumber *string `json:"receiptNumber"`
}
