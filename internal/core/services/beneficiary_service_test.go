package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/swiftremit/money_transfer_app/internal/apperrors"
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	"github.com/swiftremit/money_transfer_app/internal/core/services"
	"github.com/swiftremit/money_transfer_app/internal/dto"
)

type BeneficiaryServiceTestSuite struct {
	suite.Suite
	mockBeneficiaryRepo *MockBeneficiaryRepository
	mockTxnRepo         *MockTransactionRepository
	service             *services.BeneficiaryService
}

func (suite *BeneficiaryServiceTestSuite) SetupTest() {
	suite.mockBeneficiaryRepo = new(MockBeneficiaryRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewBeneficiaryService(suite.mockBeneficiaryRepo, suite.mockTxnRepo)
}

func (suite *BeneficiaryServiceTestSuite) TestCreateBeneficiary_NormalizesFields() {
	ctx := context.Background()
	callerUserID := uuid.NewString()
	var saved domain.Beneficiary
	suite.mockBeneficiaryRepo.On("SaveBeneficiary", ctx, mock.AnythingOfType("domain.Beneficiary")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Beneficiary)
		}).
		Return(nil)

	created, err := suite.service.CreateBeneficiary(ctx, dto.CreateBeneficiaryRequest{
		Name:          "  Maria Lopez  ",
		AccountNumber: " ES9121000418450200051332 ",
		Country:       "es",
		Currency:      "eur",
	}, callerUserID)

	suite.NoError(err)
	suite.Equal("Maria Lopez", created.Name)
	suite.Equal("ES9121000418450200051332", created.AccountNumber)
	suite.Equal("ES", created.Country)
	suite.Equal("EUR", created.Currency)
	suite.Equal(callerUserID, saved.OwnerUserID)
	suite.NotEmpty(saved.BeneficiaryID)
}

func (suite *BeneficiaryServiceTestSuite) TestCreateBeneficiary_RejectsBlankName() {
	ctx := context.Background()

	_, err := suite.service.CreateBeneficiary(ctx, dto.CreateBeneficiaryRequest{
		Name:          "   ",
		AccountNumber: "123456",
		Country:       "ES",
		Currency:      "EUR",
	}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBeneficiaryRepo.AssertNotCalled(suite.T(), "SaveBeneficiary", mock.Anything, mock.Anything)
}

func (suite *BeneficiaryServiceTestSuite) TestGetBeneficiary_ForeignOwnerReadsAsNotFound() {
	ctx := context.Background()
	beneficiaryID := uuid.NewString()
	suite.mockBeneficiaryRepo.On("FindBeneficiaryByID", ctx, beneficiaryID).Return(&domain.Beneficiary{
		BeneficiaryID: beneficiaryID,
		OwnerUserID:   uuid.NewString(),
	}, nil)

	_, err := suite.service.GetBeneficiary(ctx, beneficiaryID, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BeneficiaryServiceTestSuite) TestGetBeneficiary_AbsentReadsAsNotFound() {
	ctx := context.Background()
	beneficiaryID := uuid.NewString()
	suite.mockBeneficiaryRepo.On("FindBeneficiaryByID", ctx, beneficiaryID).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.GetBeneficiary(ctx, beneficiaryID, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BeneficiaryServiceTestSuite) TestUpdateBeneficiary_PatchesOnlyProvidedFields() {
	ctx := context.Background()
	callerUserID := uuid.NewString()
	beneficiaryID := uuid.NewString()
	suite.mockBeneficiaryRepo.On("FindBeneficiaryByID", ctx, beneficiaryID).Return(&domain.Beneficiary{
		BeneficiaryID: beneficiaryID,
		OwnerUserID:   callerUserID,
		Name:          "Maria Lopez",
		AccountNumber: "ES91",
		Country:       "ES",
		Currency:      "EUR",
	}, nil)
	suite.mockBeneficiaryRepo.On("UpdateBeneficiary", ctx, mock.AnythingOfType("domain.Beneficiary")).Return(nil)

	newName := "Maria Garcia"
	updated, err := suite.service.UpdateBeneficiary(ctx, beneficiaryID, dto.UpdateBeneficiaryRequest{
		Name: &newName,
	}, callerUserID)

	suite.NoError(err)
	suite.Equal("Maria Garcia", updated.Name)
	suite.Equal("ES91", updated.AccountNumber)
	suite.Equal("EUR", updated.Currency)
}

func (suite *BeneficiaryServiceTestSuite) TestUpdateBeneficiary_ForeignOwnerNotFound() {
	ctx := context.Background()
	beneficiaryID := uuid.NewString()
	suite.mockBeneficiaryRepo.On("FindBeneficiaryByID", ctx, beneficiaryID).Return(&domain.Beneficiary{
		BeneficiaryID: beneficiaryID,
		OwnerUserID:   uuid.NewString(),
	}, nil)

	newName := "Eve"
	_, err := suite.service.UpdateBeneficiary(ctx, beneficiaryID, dto.UpdateBeneficiaryRequest{Name: &newName}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBeneficiaryRepo.AssertNotCalled(suite.T(), "UpdateBeneficiary", mock.Anything, mock.Anything)
}

func (suite *BeneficiaryServiceTestSuite) TestDeleteBeneficiary_RestrictedWhenReferenced() {
	ctx := context.Background()
	callerUserID := uuid.NewString()
	beneficiaryID := uuid.NewString()
	suite.mockBeneficiaryRepo.On("FindBeneficiaryByID", ctx, beneficiaryID).Return(&domain.Beneficiary{
		BeneficiaryID: beneficiaryID,
		OwnerUserID:   callerUserID,
	}, nil)
	suite.mockTxnRepo.On("CountTransactionsForBeneficiary", ctx, beneficiaryID).Return(3, nil)

	err := suite.service.DeleteBeneficiary(ctx, beneficiaryID, callerUserID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBeneficiaryRepo.AssertNotCalled(suite.T(), "DeleteBeneficiary", mock.Anything, mock.Anything)
}

func (suite *BeneficiaryServiceTestSuite) TestDeleteBeneficiary_Unreferenced() {
	ctx := context.Background()
	callerUserID := uuid.NewString()
	beneficiaryID := uuid.NewString()
	suite.mockBeneficiaryRepo.On("FindBeneficiaryByID", ctx, beneficiaryID).Return(&domain.Beneficiary{
		BeneficiaryID: beneficiaryID,
		OwnerUserID:   callerUserID,
	}, nil)
	suite.mockTxnRepo.On("CountTransactionsForBeneficiary", ctx, beneficiaryID).Return(0, nil)
	suite.mockBeneficiaryRepo.On("DeleteBeneficiary", ctx, beneficiaryID).Return(nil)

	err := suite.service.DeleteBeneficiary(ctx, beneficiaryID, callerUserID)

	suite.NoError(err)
	suite.mockBeneficiaryRepo.AssertExpectations(suite.T())
}

func TestBeneficiaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BeneficiaryServiceTestSuite))
}
