package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// AccountHandlerSuite defines the test suite for AccountHandler
type AccountHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockAccountServiceInterface
	handler     *AccountHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
}

func (s *AccountHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.handler = NewAccountHandler(s.mockService)
	s.echo = newTestEcho()
	s.testUserID = uuid.New()
}

func (s *AccountHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerSuite))
}

func (s *AccountHandlerSuite) TestListAccounts_Success() {
	accounts := []models.LinkedAccount{
		{ID: uuid.New(), UserID: s.testUserID, ProviderAccountID: "acc-1", Name: "Checking", EncryptedAccessToken: "sealed"},
		{ID: uuid.New(), UserID: s.testUserID, ProviderAccountID: "acc-2", Name: "Card", EncryptedAccessToken: "sealed"},
	}
	s.mockService.EXPECT().GetLinkedAccounts(s.testUserID).Return(accounts, nil)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/v1/accounts", nil, s.testUserID)

	s.NoError(s.handler.ListAccounts(c))
	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "sealed")

	var resp dto.LinkedAccountListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(2, resp.Total)
	s.Equal("acc-1", resp.Accounts[0].ProviderAccountID)
}

func (s *AccountHandlerSuite) TestListAccounts_EmptyListIsArray() {
	s.mockService.EXPECT().GetLinkedAccounts(s.testUserID).Return(nil, nil)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/v1/accounts", nil, s.testUserID)

	s.NoError(s.handler.ListAccounts(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"accounts":[]`)
}

func (s *AccountHandlerSuite) TestListAccounts_Unauthenticated() {
	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/v1/accounts", nil, uuid.Nil)

	s.NoError(s.handler.ListAccounts(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", decodeErrorCode(rec))
}

func (s *AccountHandlerSuite) TestListAccounts_ServiceError() {
	s.mockService.EXPECT().GetLinkedAccounts(s.testUserID).Return(nil, fmt.Errorf("connection reset"))

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/api/v1/accounts", nil, s.testUserID)

	s.NoError(s.handler.ListAccounts(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection reset")
}
