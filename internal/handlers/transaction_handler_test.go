package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	handler     *TransactionHandler
	echo        *echo.Echo
	userID      uuid.UUID
	accountID   uuid.UUID
	ctrl        *gomock.Controller
	mockService *service_mocks.MockTransactionServiceInterface
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = newTestEcho()
	s.userID = uuid.New()
	s.accountID = uuid.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockService)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) newTransaction() models.Transaction {
	merchant := gofakeit.Company()
	return models.Transaction{
		ID:                    uuid.New(),
		UserID:                s.userID,
		AccountID:             s.accountID,
		ProviderTransactionID: gofakeit.UUID(),
		Amount:                decimal.NewFromFloat(gofakeit.Price(1, 200)).Round(2),
		Date:                  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Name:                  merchant + " PURCHASE",
		MerchantName:          &merchant,
		DerivedCategory:       models.CategoryShopping,
		TransactionType:       models.TransactionTypeExpense,
	}
}

func (s *TransactionHandlerTestSuite) TestListTransactions_AppliesFilters() {
	txn := s.newTransaction()
	target := fmt.Sprintf("/api/v1/transactions?account_id=%s&start_date=2024-03-01&end_date=2024-03-31&type=expense&limit=10&offset=20", s.accountID)

	s.mockService.EXPECT().
		ListTransactions(gomock.Any()).
		DoAndReturn(func(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Equal(s.userID, filters.UserID)
			s.Require().NotNil(filters.AccountID)
			s.Equal(s.accountID, *filters.AccountID)
			s.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *filters.StartDate)
			s.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), *filters.EndDate)
			s.Equal(models.TransactionTypeExpense, filters.Type)
			s.Equal(10, filters.Limit)
			s.Equal(20, filters.Offset)
			return []models.Transaction{txn}, 21, nil
		})

	c, rec := newAuthedContext(s.echo, http.MethodGet, target, nil, s.userID)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Cache-Control"), "private")

	var resp dto.TransactionListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(21), resp.Total)
	s.Require().Len(resp.Transactions, 1)
	s.Equal("2024-03-15", resp.Transactions[0].Date)
	s.Equal(models.CategoryShopping, resp.Transactions[0].DisplayCategory)
	s.Equal(*txn.MerchantName, resp.Transactions[0].DisplayName)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_ProviderLeafCategory() {
	s.mockService.EXPECT().
		ListTransactions(gomock.Any()).
		DoAndReturn(func(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Equal("Restaurants", filters.Category)
			return nil, 0, nil
		})

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/v1/transactions?category=Restaurants", nil, s.userID)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_DefaultLimit() {
	s.mockService.EXPECT().
		ListTransactions(gomock.Any()).
		DoAndReturn(func(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Equal(defaultPageLimit, filters.Limit)
			s.Nil(filters.AccountID)
			s.Nil(filters.StartDate)
			return nil, 0, nil
		})

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/v1/transactions", nil, s.userID)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"transactions":[]`)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidQuery() {
	testCases := []struct {
		name   string
		target string
	}{
		{"bad account id", "/api/v1/transactions?account_id=nope"},
		{"impossible date", "/api/v1/transactions?start_date=2024-02-30"},
		{"unknown type", "/api/v1/transactions?type=refund"},
		{"category too long", "/api/v1/transactions?category=" + strings.Repeat("x", 101)},
		{"limit too large", "/api/v1/transactions?limit=5000"},
		{"inverted range", "/api/v1/transactions?start_date=2024-03-31&end_date=2024-03-01"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := newAuthedContext(s.echo, http.MethodGet, tc.target, nil, s.userID)

			s.NoError(s.handler.ListTransactions(c))
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestListTransactions_Unauthenticated() {
	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/v1/transactions", nil, uuid.Nil)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestSetCategory_Success() {
	txn := s.newTransaction()
	label := models.CategoryEntertainment
	updated := txn
	updated.UserCategory = &label

	s.mockService.EXPECT().
		SetUserCategory(gomock.Any(), s.userID, txn.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, category *string) (*models.Transaction, error) {
			s.Require().NotNil(category)
			s.Equal(label, *category)
			return &updated, nil
		})

	c, rec := newAuthedContext(s.echo, http.MethodPatch, "/", map[string]interface{}{"category": label}, s.userID)
	c.SetParamNames("transactionId")
	c.SetParamValues(txn.ID.String())

	s.NoError(s.handler.SetCategory(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.TransactionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(label, resp.DisplayCategory)
}

func (s *TransactionHandlerTestSuite) TestSetCategory_NullClearsOverride() {
	txn := s.newTransaction()

	s.mockService.EXPECT().
		SetUserCategory(gomock.Any(), s.userID, txn.ID, gomock.Nil()).
		Return(&txn, nil)

	c, rec := newAuthedContext(s.echo, http.MethodPatch, "/", map[string]interface{}{"category": nil}, s.userID)
	c.SetParamNames("transactionId")
	c.SetParamValues(txn.ID.String())

	s.NoError(s.handler.SetCategory(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestSetCategory_UnknownLabel() {
	c, rec := newAuthedContext(s.echo, http.MethodPatch, "/", map[string]interface{}{"category": "Crypto"}, s.userID)
	c.SetParamNames("transactionId")
	c.SetParamValues(uuid.NewString())

	s.NoError(s.handler.SetCategory(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("CATEGORY_001", decodeErrorCode(rec))
}

func (s *TransactionHandlerTestSuite) TestSetCategory_InvalidID() {
	c, rec := newAuthedContext(s.echo, http.MethodPatch, "/", map[string]interface{}{"category": nil}, s.userID)
	c.SetParamNames("transactionId")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.SetCategory(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_003", decodeErrorCode(rec))
}

func (s *TransactionHandlerTestSuite) TestSetCategory_NotFound() {
	id := uuid.New()
	s.mockService.EXPECT().
		SetUserCategory(gomock.Any(), s.userID, id, gomock.Any()).
		Return(nil, services.ErrTransactionNotFound)

	c, rec := newAuthedContext(s.echo, http.MethodPatch, "/", map[string]interface{}{"category": models.CategoryGroceries}, s.userID)
	c.SetParamNames("transactionId")
	c.SetParamValues(id.String())

	s.NoError(s.handler.SetCategory(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("TRANSACTION_001", decodeErrorCode(rec))
}

func (s *TransactionHandlerTestSuite) TestAutoCategorize_Success() {
	s.mockService.EXPECT().AutoCategorize(gomock.Any(), s.userID, 100).Return(7, nil)

	c, rec := newAuthedContext(s.echo, http.MethodPost, "/api/v1/transactions/auto-categorize", map[string]int{"limit": 100}, s.userID)

	s.NoError(s.handler.AutoCategorize(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AutoCategorizeResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(7, resp.Categorized)
}

func (s *TransactionHandlerTestSuite) TestAutoCategorize_LimitOutOfRange() {
	c, rec := newAuthedContext(s.echo, http.MethodPost, "/api/v1/transactions/auto-categorize", map[string]int{"limit": 5000}, s.userID)

	s.NoError(s.handler.AutoCategorize(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestAutoCategorize_ServiceError() {
	s.mockService.EXPECT().AutoCategorize(gomock.Any(), s.userID, 0).Return(0, fmt.Errorf("db down"))

	c, rec := newAuthedContext(s.echo, http.MethodPost, "/api/v1/transactions/auto-categorize", map[string]int{}, s.userID)

	s.NoError(s.handler.AutoCategorize(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}
