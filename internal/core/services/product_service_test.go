package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/core/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

type ProductServiceTestSuite struct {
	suite.Suite
	repos   *portsrepo.RepositoryProvider
	service portssvc.ProductSvcFacade
	branch  *domain.Branch
}

func (s *ProductServiceTestSuite) SetupTest() {
	s.repos, _ = newTestProvider(s.T())
	s.service = services.NewProductService(s.repos.Products, s.repos.ProductSales, s.repos.Branches, s.repos.Revenues, s.repos.CashLedger)
	s.branch = seedBranch(s.T(), s.repos)
}

func (s *ProductServiceTestSuite) newProduct(code string, stock int, price int64) *domain.Product {
	product, err := s.service.CreateProduct(context.Background(), dto.CreateProductRequest{
		Code:      code,
		Name:      "Textbook",
		BranchID:  s.branch.ID,
		UnitPrice: decimal.NewFromInt(price),
		Stock:     stock,
	})
	s.Require().NoError(err)
	return product
}

func (s *ProductServiceTestSuite) TestCreateProduct_DuplicateCode() {
	s.newProduct("BK-1", 10, 25)

	_, err := s.service.CreateProduct(context.Background(), dto.CreateProductRequest{
		Code:      "BK-1",
		Name:      "Other",
		BranchID:  s.branch.ID,
		UnitPrice: decimal.NewFromInt(30),
	})
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *ProductServiceTestSuite) TestCreateProduct_GlobalXorBranch() {
	ctx := context.Background()

	_, err := s.service.CreateProduct(ctx, dto.CreateProductRequest{
		Code:      "BK-2",
		Name:      "Both",
		BranchID:  s.branch.ID,
		IsGlobal:  true,
		UnitPrice: decimal.NewFromInt(10),
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.CreateProduct(ctx, dto.CreateProductRequest{
		Code:      "BK-3",
		Name:      "Neither",
		UnitPrice: decimal.NewFromInt(10),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ProductServiceTestSuite) TestAdjustStock_FloorAtZero() {
	ctx := context.Background()
	product := s.newProduct("BK-4", 5, 20)

	updated, err := s.service.AdjustStock(ctx, product.ID, 3, "subtract")
	s.Require().NoError(err)
	s.Equal(2, updated.Stock)

	before, err := s.service.GetProductByID(ctx, product.ID)
	s.Require().NoError(err)

	_, err = s.service.AdjustStock(ctx, product.ID, 3, "subtract")
	s.ErrorIs(err, services.ErrInsufficientStock)
	s.ErrorIs(err, apperrors.ErrValidation)

	// The failed removal must leave the record untouched, UpdatedAt included.
	current, err := s.service.GetProductByID(ctx, product.ID)
	s.Require().NoError(err)
	s.Equal(2, current.Stock)
	s.True(current.UpdatedAt.Equal(before.UpdatedAt))

	updated, err = s.service.AdjustStock(ctx, product.ID, 10, "add")
	s.Require().NoError(err)
	s.Equal(12, updated.Stock)
}

func (s *ProductServiceTestSuite) TestCreateSale_FansOutRevenueLedgerAndStock() {
	ctx := context.Background()
	product := s.newProduct("BK-5", 10, 25)

	sale, err := s.service.CreateSale(ctx, dto.CreateProductSaleRequest{
		ProductID: product.ID,
		Quantity:  4,
	})
	s.Require().NoError(err)
	s.True(sale.Subtotal.Equal(decimal.NewFromInt(100)))
	s.True(sale.TotalAmount.Equal(decimal.NewFromInt(100)))
	s.NotEmpty(sale.RevenueID)

	revenue, err := s.repos.Revenues.FindByID(ctx, sale.RevenueID)
	s.Require().NoError(err)
	s.True(revenue.Amount.Equal(sale.TotalAmount))
	s.True(revenue.IsActive)

	state, err := s.repos.CashLedger.GetState(ctx)
	s.Require().NoError(err)
	s.True(state.CurrentCash.Equal(decimal.NewFromInt(100)), "cash %s", state.CurrentCash)

	current, err := s.service.GetProductByID(ctx, product.ID)
	s.Require().NoError(err)
	s.Equal(6, current.Stock)
}

func (s *ProductServiceTestSuite) TestCreateSale_PercentageDiscount() {
	ctx := context.Background()
	product := s.newProduct("BK-6", 10, 50)

	discount := decimal.NewFromInt(10)
	sale, err := s.service.CreateSale(ctx, dto.CreateProductSaleRequest{
		ProductID:     product.ID,
		Quantity:      2,
		DiscountType:  "PERCENTAGE",
		DiscountValue: &discount,
	})
	s.Require().NoError(err)
	s.True(sale.TotalAmount.Equal(decimal.NewFromInt(90)), "total %s", sale.TotalAmount)
}

// A fixed discount larger than the subtotal clamps the total to zero instead
// of going negative.
func (s *ProductServiceTestSuite) TestCreateSale_FixedDiscountClamps() {
	ctx := context.Background()
	product := s.newProduct("BK-7", 10, 10)

	discount := decimal.NewFromInt(500)
	sale, err := s.service.CreateSale(ctx, dto.CreateProductSaleRequest{
		ProductID:     product.ID,
		Quantity:      1,
		DiscountType:  "FIXED_AMOUNT",
		DiscountValue: &discount,
	})
	s.Require().NoError(err)
	s.True(sale.TotalAmount.IsZero())
}

func (s *ProductServiceTestSuite) TestCreateSale_InsufficientStock() {
	ctx := context.Background()
	product := s.newProduct("BK-8", 2, 15)

	_, err := s.service.CreateSale(ctx, dto.CreateProductSaleRequest{
		ProductID: product.ID,
		Quantity:  3,
	})
	s.ErrorIs(err, services.ErrInsufficientStock)
	s.ErrorIs(err, apperrors.ErrValidation)

	// Nothing was written.
	state, err := s.repos.CashLedger.GetState(ctx)
	s.Require().NoError(err)
	s.True(state.CurrentCash.IsZero())
	count, err := s.repos.ProductSales.Count(ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

// Sales are an audit trail: notes and receipt number may change, nothing else,
// and deletion is always refused.
func (s *ProductServiceTestSuite) TestSalesAreAppendOnly() {
	ctx := context.Background()
	product := s.newProduct("BK-9", 5, 20)

	sale, err := s.service.CreateSale(ctx, dto.CreateProductSaleRequest{
		ProductID: product.ID,
		Quantity:  1,
	})
	s.Require().NoError(err)

	notes := "walk-in customer"
	updated, err := s.service.UpdateSale(ctx, sale.ID, dto.UpdateProductSaleRequest{Notes: &notes})
	s.Require().NoError(err)
	s.Equal(notes, updated.Notes)
	s.True(updated.TotalAmount.Equal(sale.TotalAmount))

	err = s.service.RemoveSale(ctx, sale.ID)
	s.ErrorIs(err, apperrors.ErrForbidden)

	// Still there.
	_, err = s.service.GetSaleByID(ctx, sale.ID)
	s.NoError(err)
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
