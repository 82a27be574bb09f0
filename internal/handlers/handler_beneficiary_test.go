package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/swiftremit/money_transfer_app/internal/apperrors"
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	portssvc "github.com/swiftremit/money_transfer_app/internal/core/ports/services"
	"github.com/swiftremit/money_transfer_app/internal/dto"
	"github.com/swiftremit/money_transfer_app/internal/handlers"
	"github.com/swiftremit/money_transfer_app/internal/middleware"
	"github.com/swiftremit/money_transfer_app/internal/utils"
)

// --- Mock BeneficiaryService ---
type MockBeneficiaryService struct {
	mock.Mock
}

func (m *MockBeneficiaryService) GetBeneficiary(ctx context.Context, beneficiaryID, callerUserID string) (*domain.Beneficiary, error) {
	args := m.Called(ctx, beneficiaryID, callerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryService) ListBeneficiaries(ctx context.Context, callerUserID string) ([]domain.Beneficiary, error) {
	args := m.Called(ctx, callerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryService) CreateBeneficiary(ctx context.Context, req dto.CreateBeneficiaryRequest, callerUserID string) (*domain.Beneficiary, error) {
	args := m.Called(ctx, req, callerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryService) UpdateBeneficiary(ctx context.Context, beneficiaryID string, req dto.UpdateBeneficiaryRequest, callerUserID string) (*domain.Beneficiary, error) {
	args := m.Called(ctx, beneficiaryID, req, callerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryService) DeleteBeneficiary(ctx context.Context, beneficiaryID, callerUserID string) error {
	args := m.Called(ctx, beneficiaryID, callerUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.BeneficiarySvcFacade = (*MockBeneficiaryService)(nil)

// --- Test Suite ---
type BeneficiaryHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockBeneficiaryService *MockBeneficiaryService
	jwtSecret              string
}

func (suite *BeneficiaryHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, false, suite.jwtSecret, time.Hour, "mta-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *BeneficiaryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterCustomValidators())
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockBeneficiaryService = new(MockBeneficiaryService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterBeneficiaryRoutes(v1, suite.mockBeneficiaryService)
}

func (suite *BeneficiaryHandlerTestSuite) doRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BeneficiaryHandlerTestSuite) TestCreateBeneficiary_Success() {
	userID := uuid.NewString()
	req := dto.CreateBeneficiaryRequest{
		Name:          "Maria Lopez",
		AccountNumber: "ES9121000418450200051332",
		Country:       "ES",
		Currency:      "EUR",
	}
	created := &domain.Beneficiary{
		BeneficiaryID: uuid.NewString(),
		OwnerUserID:   userID,
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		Country:       req.Country,
		Currency:      req.Currency,
	}
	suite.mockBeneficiaryService.On("CreateBeneficiary", mock.Anything, req, userID).Return(created, nil)

	w := suite.doRequest(http.MethodPost, "/api/v1/beneficiaries", suite.generateTestToken(userID), req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.BeneficiaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.BeneficiaryID, resp.BeneficiaryID)
	suite.Equal("Maria Lopez", resp.Name)
	suite.mockBeneficiaryService.AssertExpectations(suite.T())
}

func (suite *BeneficiaryHandlerTestSuite) TestCreateBeneficiary_MissingToken() {
	w := suite.doRequest(http.MethodPost, "/api/v1/beneficiaries", "", dto.CreateBeneficiaryRequest{
		Name:          "Maria Lopez",
		AccountNumber: "123",
		Country:       "ES",
		Currency:      "EUR",
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBeneficiaryService.AssertNotCalled(suite.T(), "CreateBeneficiary", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BeneficiaryHandlerTestSuite) TestCreateBeneficiary_InvalidPayload() {
	userID := uuid.NewString()

	// Currency fails the currencycode binding rule.
	w := suite.doRequest(http.MethodPost, "/api/v1/beneficiaries", suite.generateTestToken(userID), map[string]string{
		"name":          "Maria Lopez",
		"accountNumber": "123",
		"country":       "ES",
		"currency":      "EURO",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBeneficiaryService.AssertNotCalled(suite.T(), "CreateBeneficiary", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BeneficiaryHandlerTestSuite) TestGetBeneficiary_NotFound() {
	userID := uuid.NewString()
	beneficiaryID := uuid.NewString()
	suite.mockBeneficiaryService.On("GetBeneficiary", mock.Anything, beneficiaryID, userID).
		Return(nil, fmt.Errorf("%w: beneficiary %s not found", apperrors.ErrNotFound, beneficiaryID))

	w := suite.doRequest(http.MethodGet, "/api/v1/beneficiaries/"+beneficiaryID, suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BeneficiaryHandlerTestSuite) TestListBeneficiaries_Success() {
	userID := uuid.NewString()
	suite.mockBeneficiaryService.On("ListBeneficiaries", mock.Anything, userID).Return([]domain.Beneficiary{
		{BeneficiaryID: uuid.NewString(), OwnerUserID: userID, Name: "Maria Lopez"},
		{BeneficiaryID: uuid.NewString(), OwnerUserID: userID, Name: "Kenji Sato"},
	}, nil)

	w := suite.doRequest(http.MethodGet, "/api/v1/beneficiaries", suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListBeneficiariesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Beneficiaries, 2)
}

func (suite *BeneficiaryHandlerTestSuite) TestDeleteBeneficiary_ReferencedByTransactions() {
	userID := uuid.NewString()
	beneficiaryID := uuid.NewString()
	suite.mockBeneficiaryService.On("DeleteBeneficiary", mock.Anything, beneficiaryID, userID).
		Return(fmt.Errorf("%w: beneficiary is referenced by 2 transaction(s)", apperrors.ErrValidation))

	w := suite.doRequest(http.MethodDelete, "/api/v1/beneficiaries/"+beneficiaryID, suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *BeneficiaryHandlerTestSuite) TestDeleteBeneficiary_Success() {
	userID := uuid.NewString()
	beneficiaryID := uuid.NewString()
	suite.mockBeneficiaryService.On("DeleteBeneficiary", mock.Anything, beneficiaryID, userID).Return(nil)

	w := suite.doRequest(http.MethodDelete, "/api/v1/beneficiaries/"+beneficiaryID, suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func TestBeneficiaryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BeneficiaryHandlerTestSuite))
}
