package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/core/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

type WithdrawalServiceTestSuite struct {
	suite.Suite
	repos   *portsrepo.RepositoryProvider
	dataDir string
	service portssvc.WithdrawalSvcFacade
}

func (s *WithdrawalServiceTestSuite) SetupTest() {
	s.repos, s.dataDir = newTestProvider(s.T())
	s.service = services.NewWithdrawalService(s.repos.Withdrawals, s.repos.CashLedger)
}

func (s *WithdrawalServiceTestSuite) seedCash(amount int64) {
	_, err := s.repos.CashLedger.Adjust(context.Background(), decimal.NewFromInt(amount), domain.CashRevenue, "seed")
	s.Require().NoError(err)
}

func (s *WithdrawalServiceTestSuite) TestCreateWithdrawal_DebitsLedger() {
	ctx := context.Background()
	s.seedCash(1000)

	withdrawal, err := s.service.CreateWithdrawal(ctx, dto.CreateWithdrawalRequest{
		Amount:      decimal.NewFromInt(300),
		Description: "Quarterly distribution",
		Stakeholders: []domain.Stakeholder{
			{Name: "Alice", Amount: decimal.NewFromInt(200)},
			{Name: "Bob", Amount: decimal.NewFromInt(100)},
		},
	})
	s.Require().NoError(err)
	s.NotEmpty(withdrawal.ID)

	state, err := s.repos.CashLedger.GetState(ctx)
	s.Require().NoError(err)
	s.True(state.CurrentCash.Equal(decimal.NewFromInt(700)), "got %s", state.CurrentCash)
	s.Equal(withdrawal.ID, state.LastTransactionID)
	s.Equal(domain.CashWithdrawal, state.LastTransactionType)
}

func (s *WithdrawalServiceTestSuite) TestCreateWithdrawal_RejectsOverdraw() {
	ctx := context.Background()
	s.seedCash(100)

	_, err := s.service.CreateWithdrawal(ctx, dto.CreateWithdrawalRequest{
		Amount:       decimal.NewFromInt(150),
		Stakeholders: []domain.Stakeholder{{Name: "Alice", Amount: decimal.NewFromInt(150)}},
	})
	s.Require().ErrorIs(err, services.ErrInsufficientCash)
	s.Require().ErrorIs(err, apperrors.ErrValidation)

	// Balance must be untouched and no record persisted.
	state, err := s.repos.CashLedger.GetState(ctx)
	s.Require().NoError(err)
	s.True(state.CurrentCash.Equal(decimal.NewFromInt(100)))
	count, err := s.repos.Withdrawals.Count(ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *WithdrawalServiceTestSuite) TestStakeholderSumTolerance() {
	ctx := context.Background()
	s.seedCash(1000)

	// 0.005 off is inside the 0.01 tolerance.
	_, err := s.service.CreateWithdrawal(ctx, dto.CreateWithdrawalRequest{
		Amount:       decimal.NewFromInt(100),
		Stakeholders: []domain.Stakeholder{{Name: "Alice", Amount: decimal.NewFromFloat(99.995)}},
	})
	s.NoError(err)

	// 0.02 off is outside it.
	_, err = s.service.CreateWithdrawal(ctx, dto.CreateWithdrawalRequest{
		Amount:       decimal.NewFromInt(100),
		Stakeholders: []domain.Stakeholder{{Name: "Alice", Amount: decimal.NewFromFloat(99.98)}},
	})
	s.ErrorIs(err, services.ErrStakeholderSumMismatch)
}

func (s *WithdrawalServiceTestSuite) TestRemoveWithdrawal_CreditsBackAndIsIdempotent() {
	ctx := context.Background()
	s.seedCash(500)

	withdrawal, err := s.service.CreateWithdrawal(ctx, dto.CreateWithdrawalRequest{
		Amount:       decimal.NewFromInt(200),
		Stakeholders: []domain.Stakeholder{{Name: "Alice", Amount: decimal.NewFromInt(200)}},
	})
	s.Require().NoError(err)

	s.Require().NoError(s.service.RemoveWithdrawal(ctx, withdrawal.ID))
	state, err := s.repos.CashLedger.GetState(ctx)
	s.Require().NoError(err)
	s.True(state.CurrentCash.Equal(decimal.NewFromInt(500)), "got %s", state.CurrentCash)

	// Removing again must not credit twice.
	s.Require().NoError(s.service.RemoveWithdrawal(ctx, withdrawal.ID))
	state, err = s.repos.CashLedger.GetState(ctx)
	s.Require().NoError(err)
	s.True(state.CurrentCash.Equal(decimal.NewFromInt(500)), "got %s", state.CurrentCash)
}

func (s *WithdrawalServiceTestSuite) TestEditWindowExpired() {
	ctx := context.Background()
	s.seedCash(500)

	old := domain.Withdrawal{
		RecordMeta: domain.RecordMeta{
			ID:        uuid.NewString(),
			CreatedAt: time.Now().UTC().Add(-48 * time.Hour),
			UpdatedAt: time.Now().UTC().Add(-48 * time.Hour),
		},
		Amount:       decimal.NewFromInt(100),
		Date:         time.Now().UTC().Add(-48 * time.Hour),
		Stakeholders: []domain.Stakeholder{{Name: "Alice", Amount: decimal.NewFromInt(100)}},
		IsActive:     true,
	}
	seedCollection(s.T(), s.dataDir, "withdrawals", []domain.Withdrawal{old})

	desc := "too late"
	_, err := s.service.UpdateWithdrawal(ctx, old.ID, dto.UpdateWithdrawalRequest{Description: &desc})
	s.ErrorIs(err, apperrors.ErrValidation)

	err = s.service.RemoveWithdrawal(ctx, old.ID)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *WithdrawalServiceTestSuite) TestUpdateWithinWindow() {
	ctx := context.Background()
	s.seedCash(500)

	withdrawal, err := s.service.CreateWithdrawal(ctx, dto.CreateWithdrawalRequest{
		Amount:       decimal.NewFromInt(100),
		Stakeholders: []domain.Stakeholder{{Name: "Alice", Amount: decimal.NewFromInt(100)}},
	})
	s.Require().NoError(err)

	split := []domain.Stakeholder{
		{Name: "Alice", Amount: decimal.NewFromInt(60)},
		{Name: "Bob", Amount: decimal.NewFromInt(40)},
	}
	updated, err := s.service.UpdateWithdrawal(ctx, withdrawal.ID, dto.UpdateWithdrawalRequest{Stakeholders: &split})
	s.Require().NoError(err)
	s.Len(updated.Stakeholders, 2)

	// A replacement split must still sum to the immutable amount.
	bad := []domain.Stakeholder{{Name: "Alice", Amount: decimal.NewFromInt(60)}}
	_, err = s.service.UpdateWithdrawal(ctx, withdrawal.ID, dto.UpdateWithdrawalRequest{Stakeholders: &bad})
	s.ErrorIs(err, services.ErrStakeholderSumMismatch)
}

func TestWithdrawalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalServiceTestSuite))
}
