package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
	"github.com/orbisedu/academy_mgmt_app/internal/middleware"
)

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrSaleImmutable     = errors.New("product sales cannot be deleted")
)

// productService manages the product catalog and its append-only sales trail.
// A sale fans out into a Revenue row, a ledger credit, a ProductSale row and a
// stock decrement; later steps cannot roll earlier ones back, so each failure
// is logged naming the records already written.
type productService struct {
	products portsrepo.RecordRepository[domain.Product]
	sales    portsrepo.RecordRepository[domain.ProductSale]
	branches portsrepo.RecordRepository[domain.Branch]
	revenues portsrepo.RecordRepository[domain.Revenue]
	ledger   portsrepo.CashLedgerRepository
}

// NewProductService creates a new ProductService.
func NewProductService(
	products portsrepo.RecordRepository[domain.Product],
	sales portsrepo.RecordRepository[domain.ProductSale],
	branches portsrepo.RecordRepository[domain.Branch],
	revenues portsrepo.RecordRepository[domain.Revenue],
	ledger portsrepo.CashLedgerRepository,
) portssvc.ProductSvcFacade {
	return &productService{products: products, sales: sales, branches: branches, revenues: revenues, ledger: ledger}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.IsGlobal == (req.BranchID != "") {
		return nil, fmt.Errorf("%w: a product is either global or belongs to exactly one branch", apperrors.ErrValidation)
	}
	if !req.IsGlobal {
		if _, err := requireActiveBranch(ctx, s.branches, req.BranchID); err != nil {
			return nil, err
		}
	}
	if !req.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: unit price must be positive", apperrors.ErrValidation)
	}

	duplicates, err := s.products.FindBy(ctx, func(p domain.Product) bool { return p.Code == req.Code })
	if err != nil {
		return nil, err
	}
	if len(duplicates) > 0 {
		return nil, fmt.Errorf("%w: product code %s already registered", apperrors.ErrConflict, req.Code)
	}

	product, err := s.products.Create(ctx, domain.Product{
		Code:      req.Code,
		Name:      req.Name,
		BranchID:  req.BranchID,
		IsGlobal:  req.IsGlobal,
		UnitPrice: req.UnitPrice,
		Stock:     req.Stock,
		IsActive:  true,
	})
	if err != nil {
		logger.Error("Failed to save product", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	logger.Info("Product created", slog.String("product_id", product.ID), slog.String("code", product.Code))
	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *productService) ListProducts(ctx context.Context, branchID string) ([]domain.Product, error) {
	return s.products.FindBy(ctx, func(p domain.Product) bool {
		return p.IsActive && (branchID == "" || p.IsGlobal || p.BranchID == branchID)
	})
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest) (*domain.Product, error) {
	if req.UnitPrice != nil && !req.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: unit price must be positive", apperrors.ErrValidation)
	}
	return s.products.Update(ctx, id, func(p *domain.Product) {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.UnitPrice != nil {
			p.UnitPrice = *req.UnitPrice
		}
	})
}

func (s *productService) DeactivateProduct(ctx context.Context, id string) error {
	_, err := s.products.Update(ctx, id, func(p *domain.Product) {
		p.IsActive = false
	})
	return err
}

// AdjustStock moves stock in or out. The floor check runs inside the update
// mutator so decision and write share one critical section.
func (s *productService) AdjustStock(ctx context.Context, id string, quantity int, operation string) (*domain.Product, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	delta := quantity
	if operation == "subtract" {
		delta = -quantity
	}

	return s.products.TryUpdate(ctx, id, func(p *domain.Product) error {
		if p.Stock+delta < 0 {
			return fmt.Errorf("%w: %w: product %s has %d units, cannot remove %d", apperrors.ErrValidation, ErrInsufficientStock, id, p.Stock, quantity)
		}
		p.Stock += delta
		return nil
	})
}

func (s *productService) CreateSale(ctx context.Context, req dto.CreateProductSaleRequest) (*domain.ProductSale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, fmt.Errorf("%w: product %s is inactive", apperrors.ErrValidation, product.ID)
	}
	if product.Stock < req.Quantity {
		return nil, fmt.Errorf("%w: %w: product %s has %d units, sale asks for %d", apperrors.ErrValidation, ErrInsufficientStock, product.ID, product.Stock, req.Quantity)
	}

	subtotal := product.UnitPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))
	total := subtotal
	discountValue := decimal.Zero
	if req.DiscountValue != nil {
		discountValue = *req.DiscountValue
	}
	switch domain.DiscountType(req.DiscountType) {
	case domain.DiscountPercentage:
		if discountValue.IsNegative() || discountValue.GreaterThan(oneHundred) {
			return nil, fmt.Errorf("%w: percentage discount must be between 0 and 100", apperrors.ErrValidation)
		}
		total = subtotal.Sub(subtotal.Mul(discountValue).Div(oneHundred)).Round(2)
	case domain.DiscountFixedAmount:
		if discountValue.IsNegative() {
			return nil, fmt.Errorf("%w: fixed discount cannot be negative", apperrors.ErrValidation)
		}
		total = subtotal.Sub(discountValue)
		if total.IsNegative() {
			total = decimal.Zero // discount larger than subtotal clamps to a free sale
		}
	}

	saleDate := req.SaleDate
	if saleDate.IsZero() {
		saleDate = time.Now().UTC()
	}

	revenue, err := s.revenues.Create(ctx, domain.Revenue{
		BranchID:    product.BranchID,
		Amount:      total,
		Description: fmt.Sprintf("Sale of %d x %s", req.Quantity, product.Name),
		Date:        saleDate,
		IsActive:    true,
	})
	if err != nil {
		logger.Error("Failed to save sale revenue", slog.String("product_id", product.ID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save sale revenue: %w", err)
	}
	if _, err := s.ledger.Adjust(ctx, total, domain.CashRevenue, revenue.ID); err != nil {
		logger.Error("Sale revenue persisted but cash ledger credit failed",
			slog.String("revenue_id", revenue.ID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("sale revenue %s saved but ledger credit failed: %w", revenue.ID, err)
	}

	sale, err := s.sales.Create(ctx, domain.ProductSale{
		ProductID:     product.ID,
		BranchID:      product.BranchID,
		Quantity:      req.Quantity,
		UnitPrice:     product.UnitPrice,
		Subtotal:      subtotal,
		DiscountType:  domain.DiscountType(req.DiscountType),
		DiscountValue: discountValue,
		TotalAmount:   total,
		RevenueID:     revenue.ID,
		SaleDate:      saleDate,
		ReceiptNumber: req.ReceiptNumber,
		Notes:         req.Notes,
	})
	if err != nil {
		logger.Error("Sale revenue and ledger credit persisted but sale record failed",
			slog.String("revenue_id", revenue.ID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("revenue %s recorded but sale record failed: %w", revenue.ID, err)
	}

	if _, err := s.products.Update(ctx, product.ID, func(p *domain.Product) {
		if p.Stock >= req.Quantity {
			p.Stock -= req.Quantity
		} else {
			p.Stock = 0
		}
	}); err != nil {
		logger.Error("Sale recorded but stock decrement failed",
			slog.String("sale_id", sale.ID), slog.String("product_id", product.ID), slog.String("error", err.Error()))
		return sale, fmt.Errorf("sale %s recorded but stock decrement failed: %w", sale.ID, err)
	}

	logger.Info("Product sale recorded",
		slog.String("sale_id", sale.ID), slog.String("product_id", product.ID), slog.String("total", total.String()))
	return sale, nil
}

func (s *productService) GetSaleByID(ctx context.Context, id string) (*domain.ProductSale, error) {
	return s.sales.FindByID(ctx, id)
}

func (s *productService) ListSales(ctx context.Context, productID string, rng domain.DateRange) ([]domain.ProductSale, error) {
	return s.sales.FindBy(ctx, func(sale domain.ProductSale) bool {
		return (productID == "" || sale.ProductID == productID) && rng.Contains(sale.SaleDate)
	})
}

func (s *productService) UpdateSale(ctx context.Context, id string, req dto.UpdateProductSaleRequest) (*domain.ProductSale, error) {
	return s.sales.Update(ctx, id, func(sale *domain.ProductSale) {
		if req.Notes != nil {
			sale.Notes = *req.Notes
		}
		if req.ReceiptNumber != nil {
			sale.ReceiptNumber = *req.ReceiptNumber
		}
	})
}

// RemoveSale always refuses: the sales trail is append-only.
func (s *productService) RemoveSale(ctx context.Context, id string) error {
	return fmt.Errorf("%w: %s", apperrors.ErrForbidden, ErrSaleImmutable)
}
