package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/core/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

type DebtServiceTestSuite struct {
	suite.Suite
	repos   *portsrepo.RepositoryProvider
	dataDir string
	service portssvc.DebtSvcFacade
}

func (s *DebtServiceTestSuite) SetupTest() {
	s.repos, s.dataDir = newTestProvider(s.T())
	s.service = services.NewDebtService(s.repos.Debts, s.repos.DebtPayments, s.repos.Branches, s.repos.CashLedger)
}

func (s *DebtServiceTestSuite) TestCreateDebt_CreditsLedgerWithPrincipal() {
	ctx := context.Background()

	debt, err := s.service.CreateDebt(ctx, dto.CreateDebtRequest{
		Lender:          "First Bank",
		PrincipalAmount: decimal.NewFromInt(5000),
		InterestRate:    decimal.NewFromInt(10),
	})
	s.Require().NoError(err)
	s.Equal(domain.DebtActive, debt.Status)
	s.True(debt.CurrentBalance.Equal(debt.PrincipalAmount))

	state, err := s.repos.CashLedger.GetState(ctx)
	s.Require().NoError(err)
	s.True(state.CurrentCash.Equal(decimal.NewFromInt(5000)))
	s.Equal(domain.CashDebtTaken, state.LastTransactionType)
	s.Equal(debt.ID, state.LastTransactionID)
}

// 1000 at 12% annual simple interest over 30 days accrues 1000*0.12/365*30,
// about 9.86; the rest of the payment reduces principal.
func (s *DebtServiceTestSuite) TestCreatePayment_SplitsInterestAndPrincipal() {
	ctx := context.Background()
	taken := time.Now().UTC().Add(-30 * 24 * time.Hour)

	debt, err := s.service.CreateDebt(ctx, dto.CreateDebtRequest{
		Lender:          "First Bank",
		PrincipalAmount: decimal.NewFromInt(1000),
		InterestRate:    decimal.NewFromInt(12),
		TakenDate:       taken,
	})
	s.Require().NoError(err)

	payment, err := s.service.CreatePayment(ctx, debt.ID, dto.CreateDebtPaymentRequest{
		TotalAmount: decimal.NewFromInt(100),
	})
	s.Require().NoError(err)

	expectedInterest := decimal.NewFromFloat(9.86)
	s.True(payment.InterestPortion.Round(2).Equal(expectedInterest), "interest %s", payment.InterestPortion)
	s.True(payment.PrincipalPortion.Round(2).Equal(decimal.NewFromFloat(90.14)), "principal %s", payment.PrincipalPortion)
	s.True(payment.BalanceAfter.Add(payment.PrincipalPortion).Equal(debt.CurrentBalance))

	updated, err := s.service.GetDebtByID(ctx, debt.ID)
	s.Require().NoError(err)
	s.True(updated.CurrentBalance.Equal(payment.BalanceAfter))
	s.Require().NotNil(updated.LastPaymentDate)

	// Cash went up by the principal and down by the payment.
	state, err := s.repos.CashLedger.GetState(ctx)
	s.Require().NoError(err)
	s.True(state.CurrentCash.Equal(decimal.NewFromInt(900)), "got %s", state.CurrentCash)
}

func (s *DebtServiceTestSuite) TestCreatePayment_OverpayClampsToZeroAndPaysOff() {
	ctx := context.Background()

	debt, err := s.service.CreateDebt(ctx, dto.CreateDebtRequest{
		Lender:          "First Bank",
		PrincipalAmount: decimal.NewFromInt(200),
		InterestRate:    decimal.Zero,
	})
	s.Require().NoError(err)

	payment, err := s.service.CreatePayment(ctx, debt.ID, dto.CreateDebtPaymentRequest{
		TotalAmount: decimal.NewFromInt(500),
	})
	s.Require().NoError(err)
	s.True(payment.BalanceAfter.IsZero())

	updated, err := s.service.GetDebtByID(ctx, debt.ID)
	s.Require().NoError(err)
	s.Equal(domain.DebtPaidOff, updated.Status)

	// Paying an inactive debt is refused.
	_, err = s.service.CreatePayment(ctx, debt.ID, dto.CreateDebtPaymentRequest{
		TotalAmount: decimal.NewFromInt(10),
	})
	s.ErrorIs(err, services.ErrDebtNotActive)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *DebtServiceTestSuite) TestDeletePayment_RestoresDebtAndLedger() {
	ctx := context.Background()

	debt, err := s.service.CreateDebt(ctx, dto.CreateDebtRequest{
		Lender:          "First Bank",
		PrincipalAmount: decimal.NewFromInt(1000),
		InterestRate:    decimal.Zero,
	})
	s.Require().NoError(err)

	payment, err := s.service.CreatePayment(ctx, debt.ID, dto.CreateDebtPaymentRequest{
		TotalAmount: decimal.NewFromInt(300),
	})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeletePayment(ctx, debt.ID, payment.ID))

	restored, err := s.service.GetDebtByID(ctx, debt.ID)
	s.Require().NoError(err)
	s.True(restored.CurrentBalance.Equal(decimal.NewFromInt(1000)), "balance %s", restored.CurrentBalance)
	s.True(restored.TotalPrincipalPaid.IsZero())
	s.Nil(restored.LastPaymentDate)

	state, err := s.repos.CashLedger.GetState(ctx)
	s.Require().NoError(err)
	s.True(state.CurrentCash.Equal(decimal.NewFromInt(1000)), "cash %s", state.CurrentCash)

	payments, err := s.service.ListPayments(ctx, debt.ID)
	s.Require().NoError(err)
	s.Empty(payments)
}

func (s *DebtServiceTestSuite) TestDeletePayment_WrongDebt() {
	ctx := context.Background()

	debtA, err := s.service.CreateDebt(ctx, dto.CreateDebtRequest{
		Lender: "A", PrincipalAmount: decimal.NewFromInt(100),
	})
	s.Require().NoError(err)
	debtB, err := s.service.CreateDebt(ctx, dto.CreateDebtRequest{
		Lender: "B", PrincipalAmount: decimal.NewFromInt(100),
	})
	s.Require().NoError(err)

	payment, err := s.service.CreatePayment(ctx, debtA.ID, dto.CreateDebtPaymentRequest{
		TotalAmount: decimal.NewFromInt(50),
	})
	s.Require().NoError(err)

	err = s.service.DeletePayment(ctx, debtB.ID, payment.ID)
	s.Error(err)
}

func TestDebtServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}
