package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyLinked = errors.New("account already linked for user")
	ErrMissingAccessToken   = errors.New("provider access token is required")
	ErrMissingProviderID    = errors.New("provider account id is required")
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo repositories.LinkedAccountRepositoryInterface
	vault       CredentialVaultInterface
	logger      *slog.Logger
}

// NewAccountService creates a linked account service
func NewAccountService(
	accountRepo repositories.LinkedAccountRepositoryInterface,
	vault CredentialVaultInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo: accountRepo,
		vault:       vault,
		logger:      logger,
	}
}

// LinkAccount stores a provider account for a user. The access token is sealed before it is persisted.
func (s *accountService) LinkAccount(ctx context.Context, userID uuid.UUID, providerAccountID, name, mask, accountType, subtype, accessToken string) (*models.LinkedAccount, error) {
	providerAccountID = strings.TrimSpace(providerAccountID)
	if providerAccountID == "" {
		return nil, ErrMissingProviderID
	}
	if strings.TrimSpace(accessToken) == "" {
		return nil, ErrMissingAccessToken
	}

	existing, err := s.accountRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	for _, account := range existing {
		if account.ProviderAccountID == providerAccountID {
			return nil, ErrAccountAlreadyLinked
		}
	}

	sealed, err := s.vault.Encrypt(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to seal access token: %w", err)
	}

	account := &models.LinkedAccount{
		UserID:               userID,
		ProviderAccountID:    providerAccountID,
		Name:                 strings.TrimSpace(name),
		Mask:                 mask,
		Type:                 accountType,
		Subtype:              subtype,
		EncryptedAccessToken: sealed,
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "account linked",
		slog.String("user_id", userID.String()),
		slog.String("account_id", account.ID.String()),
	)

	return account, nil
}

// GetLinkedAccounts lists the linked accounts of a user
func (s *accountService) GetLinkedAccounts(userID uuid.UUID) ([]models.LinkedAccount, error) {
	return s.accountRepo.GetByUserID(userID)
}
