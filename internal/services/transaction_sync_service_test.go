package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories/repository_mocks"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type TransactionSyncServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	accountRepo     *repository_mocks.MockLinkedAccountRepositoryInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	client          *service_mocks.MockAggregatorClientInterface
	syncLogger      *service_mocks.MockSyncLoggerInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	vault           CredentialVaultInterface
	breaker         CircuitBreakerInterface
	service         *TransactionSyncService
	userID          uuid.UUID
	now             time.Time
}

func TestTransactionSyncServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionSyncServiceTestSuite))
}

func (s *TransactionSyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accountRepo = repository_mocks.NewMockLinkedAccountRepositoryInterface(s.ctrl)
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.client = service_mocks.NewMockAggregatorClientInterface(s.ctrl)
	s.syncLogger = service_mocks.NewMockSyncLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	key, err := config.GenerateVaultKey()
	s.Require().NoError(err)
	s.vault, err = NewCredentialVault(key)
	s.Require().NoError(err)
	s.breaker = NewCircuitBreaker(DefaultCircuitBreakerConfig())

	s.service = NewTransactionSyncService(
		s.accountRepo,
		s.transactionRepo,
		s.client,
		s.vault,
		NewCategoryService(DefaultKeywordConfig()),
		s.breaker,
		s.syncLogger,
		s.metrics,
		TransactionSyncConfig{Cooldown: 24 * time.Hour, LookbackDays: 90, MaxWorkers: 2},
	).(*TransactionSyncService)

	s.userID = uuid.New()
	s.now = time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }

	s.syncLogger.EXPECT().LogSyncStarted(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.syncLogger.EXPECT().LogSyncCompleted(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.syncLogger.EXPECT().LogAccountFailed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.syncLogger.EXPECT().LogRecordSkipped(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().AddCounter(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *TransactionSyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionSyncServiceTestSuite) linkedAccount(providerID, token string) models.LinkedAccount {
	sealed, err := s.vault.Encrypt(token)
	s.Require().NoError(err)
	return models.LinkedAccount{
		ID:                   uuid.New(),
		UserID:               s.userID,
		ProviderAccountID:    providerID,
		EncryptedAccessToken: sealed,
	}
}

func (s *TransactionSyncServiceTestSuite) TestSyncNow_CooldownActive() {
	lastSynced := s.now.Add(-time.Hour)
	s.accountRepo.EXPECT().GetLatestSyncTime(s.userID).Return(&lastSynced, nil)
	s.syncLogger.EXPECT().LogCooldownRejected(gomock.Any(), s.userID, 23*time.Hour)

	summary, err := s.service.SyncNow(context.Background(), s.userID)

	s.Nil(summary)
	var limited *RateLimitedError
	s.Require().ErrorAs(err, &limited)
	s.Equal(23*time.Hour, limited.RetryAfter)
	s.Equal(lastSynced, limited.LastSyncedAt)
}

func (s *TransactionSyncServiceTestSuite) TestSyncNow_CooldownElapsed() {
	lastSynced := s.now.Add(-24 * time.Hour)
	s.accountRepo.EXPECT().GetLatestSyncTime(s.userID).Return(&lastSynced, nil)
	s.accountRepo.EXPECT().GetByUserID(s.userID).Return([]models.LinkedAccount{}, nil)

	_, err := s.service.SyncNow(context.Background(), s.userID)

	s.ErrorIs(err, ErrNoLinkedAccounts)
}

func (s *TransactionSyncServiceTestSuite) TestSyncNow_NeverSynced() {
	account := s.linkedAccount("acc-1", "token-1")
	s.accountRepo.EXPECT().GetLatestSyncTime(s.userID).Return(nil, nil)
	s.accountRepo.EXPECT().GetByUserID(s.userID).Return([]models.LinkedAccount{account}, nil)
	s.client.EXPECT().GetTransactions(gomock.Any(), "token-1", "acc-1", gomock.Any(), gomock.Any()).Return(nil, nil)
	s.transactionRepo.EXPECT().UpsertBatch(gomock.Len(0)).Return(0, nil)
	s.accountRepo.EXPECT().UpdateLastSynced(account.ID, s.now).Return(nil)

	summary, err := s.service.SyncNow(context.Background(), s.userID)

	s.Require().NoError(err)
	s.Equal(1, summary.AccountsSynced)
}

func (s *TransactionSyncServiceTestSuite) TestSyncNow_RepositoryError() {
	s.accountRepo.EXPECT().GetLatestSyncTime(s.userID).Return(nil, errors.New("db down"))

	_, err := s.service.SyncNow(context.Background(), s.userID)

	s.ErrorContains(err, "db down")
}

func (s *TransactionSyncServiceTestSuite) TestSyncUser_NormalizesCategorizesAndUpserts() {
	account := s.linkedAccount("acc-1", "token-1")
	s.accountRepo.EXPECT().GetByUserID(s.userID).Return([]models.LinkedAccount{account}, nil)

	expectedEnd := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	s.client.EXPECT().
		GetTransactions(gomock.Any(), "token-1", "acc-1", expectedEnd.AddDate(0, 0, -90), expectedEnd).
		Return([]dto.ProviderTransaction{
			{TransactionID: "t1", Amount: decPtr("15.99"), Date: strPtr("2024-03-15"), Name: "NETFLIX.COM"},
			{TransactionID: "t2", Amount: decPtr("-2500"), Date: strPtr("2024-03-15"), Name: "ACME", Category: []string{"Transfer", "Payroll"}},
			{TransactionID: "", Amount: decPtr("3.00"), Date: strPtr("2024-03-16"), Name: "NO ID"},
			{TransactionID: "t3", Amount: nil, Date: strPtr("2024-03-16"), Name: "NO AMOUNT"},
			{TransactionID: "t1", Amount: decPtr("16.99"), Date: strPtr("2024-03-15"), Name: "NETFLIX.COM"},
		}, nil)

	s.transactionRepo.EXPECT().UpsertBatch(gomock.Any()).DoAndReturn(func(transactions []*models.Transaction) (int, error) {
		if !s.Len(transactions, 2) {
			return 0, nil
		}
		s.Equal("t1", transactions[0].ProviderTransactionID)
		s.Equal("16.99", transactions[0].Amount.StringFixed(2))
		s.Equal(models.CategorySubscriptions, transactions[0].DerivedCategory)
		s.Equal(account.ID, transactions[0].AccountID)
		s.Equal(s.userID, transactions[0].UserID)
		s.Equal("t2", transactions[1].ProviderTransactionID)
		s.Empty(transactions[1].DerivedCategory)
		s.Equal(models.TransactionTypeIncome, transactions[1].TransactionType)
		return len(transactions), nil
	})
	s.accountRepo.EXPECT().UpdateLastSynced(account.ID, s.now).Return(nil)

	summary, err := s.service.SyncUser(context.Background(), s.userID)

	s.Require().NoError(err)
	s.Equal(1, summary.AccountsTotal)
	s.Equal(1, summary.AccountsSynced)
	s.Equal(2, summary.TransactionsSynced)
	s.Equal(2, summary.RecordsSkipped)
	s.Empty(summary.Failures)
}

func (s *TransactionSyncServiceTestSuite) TestSyncUser_FailureIsolation() {
	healthy := s.linkedAccount("acc-ok", "token-ok")
	broken := s.linkedAccount("acc-bad", "token-bad")
	s.accountRepo.EXPECT().GetByUserID(s.userID).Return([]models.LinkedAccount{healthy, broken}, nil)

	s.client.EXPECT().GetTransactions(gomock.Any(), "token-ok", "acc-ok", gomock.Any(), gomock.Any()).
		Return([]dto.ProviderTransaction{{TransactionID: "t1", Amount: decPtr("5"), Date: strPtr("2024-03-01"), Name: "CAFE"}}, nil)
	s.client.EXPECT().GetTransactions(gomock.Any(), "token-bad", "acc-bad", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("502 bad gateway"))
	s.transactionRepo.EXPECT().UpsertBatch(gomock.Len(1)).Return(1, nil)
	s.accountRepo.EXPECT().UpdateLastSynced(healthy.ID, s.now).Return(nil)

	summary, err := s.service.SyncUser(context.Background(), s.userID)

	s.Require().NoError(err)
	s.Equal(2, summary.AccountsTotal)
	s.Equal(1, summary.AccountsSynced)
	s.Equal(1, summary.TransactionsSynced)
	s.Require().Len(summary.Failures, 1)
	s.Equal(broken.ID.String(), summary.Failures[0].AccountID)
	s.Contains(summary.Failures[0].Reason, opFetchTransactions)
}

func (s *TransactionSyncServiceTestSuite) TestSyncUser_AllAccountsFail() {
	first := s.linkedAccount("acc-1", "token-1")
	second := s.linkedAccount("acc-2", "token-2")
	second.EncryptedAccessToken = "not-a-sealed-token"
	s.accountRepo.EXPECT().GetByUserID(s.userID).Return([]models.LinkedAccount{first, second}, nil)
	s.client.EXPECT().GetTransactions(gomock.Any(), "token-1", "acc-1", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout"))

	summary, err := s.service.SyncUser(context.Background(), s.userID)

	s.Require().NoError(err)
	s.Equal(0, summary.AccountsSynced)
	s.Equal(0, summary.TransactionsSynced)
	s.Len(summary.Failures, 2)
}

func (s *TransactionSyncServiceTestSuite) TestSyncUser_ProviderOutageOpensBreaker() {
	var accounts []models.LinkedAccount
	for i := 0; i < DefaultCircuitBreakerConfig().MaxFailures; i++ {
		accounts = append(accounts, s.linkedAccount(fmt.Sprintf("acc-%d", i), fmt.Sprintf("token-%d", i)))
	}
	s.accountRepo.EXPECT().GetByUserID(s.userID).Return(accounts, nil)
	s.client.EXPECT().GetTransactions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &ProviderAPIError{StatusCode: http.StatusServiceUnavailable, ErrorMessage: "maintenance"}).
		Times(len(accounts))

	summary, err := s.service.SyncUser(context.Background(), s.userID)

	s.Require().NoError(err)
	s.Len(summary.Failures, len(accounts))
	s.Equal(StateOpen, s.breaker.GetState())

	otherUser := uuid.New()
	other := s.linkedAccount("acc-other", "token-other")
	other.UserID = otherUser
	s.accountRepo.EXPECT().GetByUserID(otherUser).Return([]models.LinkedAccount{other}, nil)

	summary, err = s.service.SyncUser(context.Background(), otherUser)

	s.Require().NoError(err)
	s.Require().Len(summary.Failures, 1)
	s.Contains(summary.Failures[0].Reason, ErrCircuitBreakerOpen.Error())
}

func (s *TransactionSyncServiceTestSuite) TestSyncUser_RevokedCredentialsDoNotBlockOtherAccounts() {
	healthy := s.linkedAccount("acc-ok", "token-ok")
	accounts := []models.LinkedAccount{healthy}
	for i := 0; i < DefaultCircuitBreakerConfig().MaxFailures+1; i++ {
		accounts = append(accounts, s.linkedAccount(fmt.Sprintf("acc-revoked-%d", i), "token-revoked"))
	}
	s.accountRepo.EXPECT().GetByUserID(s.userID).Return(accounts, nil)

	loginRequired := &ProviderAPIError{
		StatusCode:   http.StatusBadRequest,
		ErrorType:    "ITEM_ERROR",
		ErrorCode:    "ITEM_LOGIN_REQUIRED",
		ErrorMessage: "the login details of this item have changed",
	}
	s.client.EXPECT().GetTransactions(gomock.Any(), "token-revoked", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, loginRequired).Times(len(accounts) - 1)
	s.client.EXPECT().GetTransactions(gomock.Any(), "token-ok", "acc-ok", gomock.Any(), gomock.Any()).
		Return([]dto.ProviderTransaction{{TransactionID: "t1", Amount: decPtr("5"), Date: strPtr("2024-03-01"), Name: "CAFE"}}, nil)
	s.transactionRepo.EXPECT().UpsertBatch(gomock.Len(1)).Return(1, nil)
	s.accountRepo.EXPECT().UpdateLastSynced(healthy.ID, s.now).Return(nil)

	summary, err := s.service.SyncUser(context.Background(), s.userID)

	s.Require().NoError(err)
	s.Equal(1, summary.AccountsSynced)
	s.Len(summary.Failures, len(accounts)-1)
	s.Equal(StateClosed, s.breaker.GetState())

	otherUser := uuid.New()
	other := s.linkedAccount("acc-other", "token-other")
	other.UserID = otherUser
	s.accountRepo.EXPECT().GetByUserID(otherUser).Return([]models.LinkedAccount{other}, nil)
	s.client.EXPECT().GetTransactions(gomock.Any(), "token-other", "acc-other", gomock.Any(), gomock.Any()).
		Return([]dto.ProviderTransaction{{TransactionID: "t9", Amount: decPtr("12"), Date: strPtr("2024-03-02"), Name: "BOOKS"}}, nil)
	s.transactionRepo.EXPECT().UpsertBatch(gomock.Len(1)).Return(1, nil)
	s.accountRepo.EXPECT().UpdateLastSynced(other.ID, s.now).Return(nil)

	summary, err = s.service.SyncUser(context.Background(), otherUser)

	s.Require().NoError(err)
	s.Equal(1, summary.AccountsSynced)
	s.Empty(summary.Failures)
}

func (s *TransactionSyncServiceTestSuite) TestSyncUser_UpsertFailureLeavesSyncTime() {
	account := s.linkedAccount("acc-1", "token-1")
	s.accountRepo.EXPECT().GetByUserID(s.userID).Return([]models.LinkedAccount{account}, nil)
	s.client.EXPECT().GetTransactions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]dto.ProviderTransaction{{TransactionID: "t1", Amount: decPtr("5"), Date: strPtr("2024-03-01"), Name: "CAFE"}}, nil)
	s.transactionRepo.EXPECT().UpsertBatch(gomock.Any()).Return(0, errors.New("constraint violation"))
	s.accountRepo.EXPECT().UpdateLastSynced(gomock.Any(), gomock.Any()).Times(0)

	summary, err := s.service.SyncUser(context.Background(), s.userID)

	s.Require().NoError(err)
	s.Len(summary.Failures, 1)
}

func (s *TransactionSyncServiceTestSuite) TestSyncUser_NoLinkedAccounts() {
	s.accountRepo.EXPECT().GetByUserID(s.userID).Return(nil, nil)

	summary, err := s.service.SyncUser(context.Background(), s.userID)

	s.ErrorIs(err, ErrNoLinkedAccounts)
	s.Equal(0, summary.AccountsTotal)
}

func TestRecordProviderOutcome(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantFailures int
	}{
		{"success", nil, 0},
		{"transport error", errors.New("dial tcp: connection refused"), 1},
		{"deadline", context.DeadlineExceeded, 1},
		{"server error", &ProviderAPIError{StatusCode: http.StatusBadGateway}, 1},
		{"provider throttling", &ProviderAPIError{StatusCode: http.StatusTooManyRequests}, 1},
		{"wrapped server error", fmt.Errorf("page 2: %w", &ProviderAPIError{StatusCode: http.StatusInternalServerError}), 1},
		{"login required", &ProviderAPIError{StatusCode: http.StatusBadRequest, ErrorCode: "ITEM_LOGIN_REQUIRED"}, 0},
		{"unknown account", &ProviderAPIError{StatusCode: http.StatusNotFound}, 0},
		{"canceled", context.Canceled, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breaker := NewCircuitBreaker(DefaultCircuitBreakerConfig())

			recordProviderOutcome(breaker, tt.err)

			assert.Equal(t, tt.wantFailures, breaker.GetFailureCount())
		})
	}
}
