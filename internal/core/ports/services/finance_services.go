package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

// RevenueSvcFacade records cash-increasing events against the ledger.
type RevenueSvcFacade interface {
	CreateRevenue(ctx context.Context, req dto.CreateRevenueRequest) (*domain.Revenue, error)
	GetRevenueByID(ctx context.Context, id string) (*domain.Revenue, error)
	ListRevenues(ctx context.Context, branchID string, rng domain.DateRange) ([]domain.Revenue, error)
	// RemoveRevenue soft-deletes the record and reverses its ledger credit.
	RemoveRevenue(ctx context.Context, id string) error
}

// ExpenseSvcFacade manages analytically-counted costs.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, id string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, branchID string, rng domain.DateRange) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, id string, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	DeactivateExpense(ctx context.Context, id string) error
	// DistributeSharedExpense splits a SHARED expense across active branches,
	// EQUAL or PROPORTIONAL to each branch's revenue share.
	DistributeSharedExpense(ctx context.Context, expenseID string) ([]domain.BranchShare, error)
	// GenerateRecurringExpenses materializes at most one child per recurring
	// parent for the given calendar month; repeat invocations are no-ops.
	GenerateRecurringExpenses(ctx context.Context, year int, month time.Month) ([]domain.Expense, error)
}

// DebtSvcFacade manages liabilities and their payments against the cash ledger.
type DebtSvcFacade interface {
	CreateDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error)
	GetDebtByID(ctx context.Context, id string) (*domain.Debt, error)
	ListDebts(ctx context.Context, branchID string) ([]domain.Debt, error)
	CreatePayment(ctx context.Context, debtID string, req dto.CreateDebtPaymentRequest) (*domain.DebtPayment, error)
	ListPayments(ctx context.Context, debtID string) ([]domain.DebtPayment, error)
	// DeletePayment is only permitted within 24 hours of the payment's
	// creation; it restores the debt and credits the ledger back.
	DeletePayment(ctx context.Context, debtID, paymentID string) error
}

// WithdrawalSvcFacade distributes cash to stakeholders.
type WithdrawalSvcFacade interface {
	CreateWithdrawal(ctx context.Context, req dto.CreateWithdrawalRequest) (*domain.Withdrawal, error)
	GetWithdrawalByID(ctx context.Context, id string) (*domain.Withdrawal, error)
	ListWithdrawals(ctx context.Context, rng domain.DateRange) ([]domain.Withdrawal, error)
	UpdateWithdrawal(ctx context.Context, id string, req dto.UpdateWithdrawalRequest) (*domain.Withdrawal, error)
	RemoveWithdrawal(ctx context.Context, id string) error
}

// ProductSvcFacade manages products and their append-only sales.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, branchID string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest) (*domain.Product, error)
	DeactivateProduct(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, quantity int, operation string) (*domain.Product, error)
	CreateSale(ctx context.Context, req dto.CreateProductSaleRequest) (*domain.ProductSale, error)
	GetSaleByID(ctx context.Context, id string) (*domain.ProductSale, error)
	ListSales(ctx context.Context, productID string, rng domain.DateRange) ([]domain.ProductSale, error)
	UpdateSale(ctx context.Context, id string, req dto.UpdateProductSaleRequest) (*domain.ProductSale, error)
	// RemoveSale always fails: sales are an append-only audit trail.
	RemoveSale(ctx context.Context, id string) error
}

// CashSvcFacade exposes the ledger state and manual corrections.
type CashSvcFacade interface {
	GetState(ctx context.Context) (domain.CashState, error)
	ManualAdjust(ctx context.Context, amount decimal.Decimal, reason string) (domain.CashState, error)
}
