package repositories

import (
	"testing"
	"time"

	"finance-dashboard/internal/database"
	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositorySuite defines the test suite for TransactionRepository
type TransactionRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    TransactionRepositoryInterface
	userID  uuid.UUID
	account *models.LinkedAccount
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.userID = uuid.New()
	s.account = database.CreateTestLinkedAccount(s.T(), s.db, s.userID, "acc-1")
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) newTransaction(providerID, name, amount string, date time.Time) *models.Transaction {
	return &models.Transaction{
		UserID:                s.userID,
		AccountID:             s.account.ID,
		ProviderTransactionID: providerID,
		Amount:                decimal.RequireFromString(amount),
		Date:                  date,
		Name:                  name,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *TransactionRepositorySuite) TestUpsertBatch_InsertsAndDerivesType() {
	count, err := s.repo.UpsertBatch([]*models.Transaction{
		s.newTransaction("t1", "Netflix", "15.99", day(2024, 1, 15)),
		s.newTransaction("t2", "Payroll", "-2000.00", day(2024, 1, 12)),
		s.newTransaction("t3", "Internal move", "0", day(2024, 1, 10)),
	})

	s.Require().NoError(err)
	s.Equal(3, count)

	transactions, total, err := s.repo.ListByUser(models.TransactionFilters{UserID: s.userID, Limit: 10})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(transactions, 3)
	s.Equal("t1", transactions[0].ProviderTransactionID)
	s.Equal(models.TransactionTypeExpense, transactions[0].TransactionType)
	s.Equal(models.TransactionTypeIncome, transactions[1].TransactionType)
	s.Equal(models.TransactionTypeTransfer, transactions[2].TransactionType)
}

func (s *TransactionRepositorySuite) TestUpsertBatch_SubCentAmountKeepsSign() {
	_, err := s.repo.UpsertBatch([]*models.Transaction{
		s.newTransaction("fx-fee", "FX rounding", "0.004", day(2024, 1, 15)),
	})
	s.Require().NoError(err)

	transactions, _, err := s.repo.ListByUser(models.TransactionFilters{UserID: s.userID, Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(transactions, 1)
	s.True(decimal.RequireFromString("0.004").Equal(transactions[0].Amount))
	s.Equal(models.TransactionTypeExpense, transactions[0].TransactionType)
}

func (s *TransactionRepositorySuite) TestUpsertBatch_EmptyBatch() {
	count, err := s.repo.UpsertBatch(nil)

	s.NoError(err)
	s.Zero(count)
}

func (s *TransactionRepositorySuite) TestUpsertBatch_ReplacesProviderFieldsAndKeepsUserCategory() {
	_, err := s.repo.UpsertBatch([]*models.Transaction{
		s.newTransaction("t1", "NETFLIX PENDING", "15.99", day(2024, 1, 15)),
	})
	s.Require().NoError(err)

	stored, _, err := s.repo.ListByUser(models.TransactionFilters{UserID: s.userID, Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(stored, 1)
	originalID := stored[0].ID

	entertainment := models.CategoryEntertainment
	s.Require().NoError(s.repo.UpdateUserCategory(s.userID, originalID, &entertainment))

	merchant := "Netflix"
	resynced := s.newTransaction("t1", "Netflix.com", "16.49", day(2024, 1, 16))
	resynced.MerchantName = &merchant
	resynced.Category = models.CategoryPath{"Service", "Subscription"}
	_, err = s.repo.UpsertBatch([]*models.Transaction{resynced})
	s.Require().NoError(err)

	result, err := s.repo.GetByID(s.userID, originalID)
	s.Require().NoError(err)
	s.Equal("Netflix.com", result.Name)
	s.True(decimal.RequireFromString("16.49").Equal(result.Amount))
	s.True(day(2024, 1, 16).Equal(result.Date.UTC()))
	s.Require().NotNil(result.MerchantName)
	s.Equal("Netflix", *result.MerchantName)
	s.Equal(models.CategoryPath{"Service", "Subscription"}, result.Category)
	s.Require().NotNil(result.UserCategory)
	s.Equal(models.CategoryEntertainment, *result.UserCategory)
	s.Equal(models.CategoryEntertainment, result.DisplayCategory())

	var count int64
	s.Require().NoError(s.db.Model(&models.Transaction{}).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *TransactionRepositorySuite) TestUpsertBatch_SameProviderIDDifferentUsers() {
	otherUser := uuid.New()
	otherAccount := database.CreateTestLinkedAccount(s.T(), s.db, otherUser, "acc-1")

	other := s.newTransaction("t1", "Spotify", "9.99", day(2024, 2, 1))
	other.UserID = otherUser
	other.AccountID = otherAccount.ID

	_, err := s.repo.UpsertBatch([]*models.Transaction{
		s.newTransaction("t1", "Netflix", "15.99", day(2024, 2, 1)),
		other,
	})
	s.Require().NoError(err)

	mine, total, err := s.repo.ListByUser(models.TransactionFilters{UserID: s.userID, Limit: 10})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal("Netflix", mine[0].Name)
}

func (s *TransactionRepositorySuite) TestUpsertBatch_RejectsMissingProviderID() {
	_, err := s.repo.UpsertBatch([]*models.Transaction{
		s.newTransaction("", "Netflix", "15.99", day(2024, 1, 15)),
	})

	s.Error(err)
}

func (s *TransactionRepositorySuite) TestGetByID_NotFoundForOtherUser() {
	_, err := s.repo.UpsertBatch([]*models.Transaction{
		s.newTransaction("t1", "Netflix", "15.99", day(2024, 1, 15)),
	})
	s.Require().NoError(err)
	stored, _, err := s.repo.ListByUser(models.TransactionFilters{UserID: s.userID, Limit: 1})
	s.Require().NoError(err)

	_, err = s.repo.GetByID(uuid.New(), stored[0].ID)
	s.ErrorIs(err, ErrTransactionNotFound)

	_, err = s.repo.GetByID(s.userID, uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetRecentByAccountID_NewestFirstWithLimit() {
	var batch []*models.Transaction
	for i := 1; i <= 5; i++ {
		batch = append(batch, s.newTransaction(
			"t"+string(rune('0'+i)), "Coffee", "4.50", day(2024, 3, i),
		))
	}
	_, err := s.repo.UpsertBatch(batch)
	s.Require().NoError(err)

	recent, err := s.repo.GetRecentByAccountID(s.userID, s.account.ID, 3)

	s.Require().NoError(err)
	s.Require().Len(recent, 3)
	s.Equal("t5", recent[0].ProviderTransactionID)
	s.Equal("t4", recent[1].ProviderTransactionID)
	s.Equal("t3", recent[2].ProviderTransactionID)
}

func (s *TransactionRepositorySuite) TestListByUser_Filters() {
	second := database.CreateTestLinkedAccount(s.T(), s.db, s.userID, "acc-2")

	rent := s.newTransaction("t3", "Rent", "1500.00", day(2024, 3, 1))
	rent.AccountID = second.ID
	restaurant := s.newTransaction("t4", "Bistro", "42.00", day(2024, 3, 5))
	restaurant.Category = models.CategoryPath{"Food and Drink", "Restaurants"}
	derived := s.newTransaction("t5", "Uber Eats", "25.00", day(2024, 3, 6))
	derived.DerivedCategory = models.CategoryDining

	_, err := s.repo.UpsertBatch([]*models.Transaction{
		s.newTransaction("t1", "Netflix", "15.99", day(2024, 1, 15)),
		s.newTransaction("t2", "Payroll", "-2000.00", day(2024, 2, 15)),
		rent, restaurant, derived,
	})
	s.Require().NoError(err)

	start := day(2024, 2, 1)
	end := day(2024, 3, 1)

	tests := []struct {
		name    string
		filters models.TransactionFilters
		want    []string
	}{
		{"by account", models.TransactionFilters{AccountID: &second.ID}, []string{"t3"}},
		{"by type", models.TransactionFilters{Type: models.TransactionTypeIncome}, []string{"t2"}},
		{"by date range", models.TransactionFilters{StartDate: &start, EndDate: &end}, []string{"t3", "t2"}},
		{"by provider category leaf", models.TransactionFilters{Category: "Restaurants"}, []string{"t4"}},
		{"by derived category", models.TransactionFilters{Category: models.CategoryDining}, []string{"t5"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			filters := tt.filters
			filters.UserID = s.userID
			filters.Limit = 10

			transactions, total, err := s.repo.ListByUser(filters)

			s.Require().NoError(err)
			s.Equal(int64(len(tt.want)), total)
			var got []string
			for _, transaction := range transactions {
				got = append(got, transaction.ProviderTransactionID)
			}
			s.Equal(tt.want, got)
		})
	}
}

func (s *TransactionRepositorySuite) TestListByUser_CategoryLeafIsMatchedLiterally() {
	underscore := s.newTransaction("t1", "Shell", "40.00", day(2024, 3, 5))
	underscore.Category = models.CategoryPath{"Travel", "Gas_Stations"}
	lookalike := s.newTransaction("t2", "Chevron", "38.00", day(2024, 3, 6))
	lookalike.Category = models.CategoryPath{"Travel", "GasXStations"}
	percent := s.newTransaction("t3", "Promo", "5.00", day(2024, 3, 7))
	percent.Category = models.CategoryPath{"Shops", "50% Off"}
	_, err := s.repo.UpsertBatch([]*models.Transaction{underscore, lookalike, percent})
	s.Require().NoError(err)

	for category, want := range map[string]string{"Gas_Stations": "t1", "50% Off": "t3"} {
		transactions, total, err := s.repo.ListByUser(models.TransactionFilters{UserID: s.userID, Category: category, Limit: 10})

		s.Require().NoError(err)
		s.Equal(int64(1), total, category)
		s.Require().Len(transactions, 1)
		s.Equal(want, transactions[0].ProviderTransactionID)
	}

	_, total, err := s.repo.ListByUser(models.TransactionFilters{UserID: s.userID, Category: "%", Limit: 10})
	s.Require().NoError(err)
	s.Zero(total)
}

func (s *TransactionRepositorySuite) TestListByUser_Pagination() {
	var batch []*models.Transaction
	for i := 1; i <= 5; i++ {
		batch = append(batch, s.newTransaction("t"+string(rune('0'+i)), "Coffee", "4.50", day(2024, 3, i)))
	}
	_, err := s.repo.UpsertBatch(batch)
	s.Require().NoError(err)

	page, total, err := s.repo.ListByUser(models.TransactionFilters{UserID: s.userID, Offset: 2, Limit: 2})

	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Require().Len(page, 2)
	s.Equal("t3", page[0].ProviderTransactionID)
	s.Equal("t2", page[1].ProviderTransactionID)
}

func (s *TransactionRepositorySuite) TestUserCategoryOverridesListFilter() {
	restaurant := s.newTransaction("t1", "Bistro", "42.00", day(2024, 3, 5))
	restaurant.Category = models.CategoryPath{"Food and Drink", "Restaurants"}
	_, err := s.repo.UpsertBatch([]*models.Transaction{restaurant})
	s.Require().NoError(err)

	stored, _, err := s.repo.ListByUser(models.TransactionFilters{UserID: s.userID, Limit: 1})
	s.Require().NoError(err)
	shopping := models.CategoryShopping
	s.Require().NoError(s.repo.UpdateUserCategory(s.userID, stored[0].ID, &shopping))

	_, total, err := s.repo.ListByUser(models.TransactionFilters{UserID: s.userID, Category: "Restaurants", Limit: 10})
	s.Require().NoError(err)
	s.Zero(total)

	_, total, err = s.repo.ListByUser(models.TransactionFilters{UserID: s.userID, Category: models.CategoryShopping, Limit: 10})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
}

func (s *TransactionRepositorySuite) TestGetUncategorizedAndUpdateDerivedCategory() {
	withCategory := s.newTransaction("t1", "Bistro", "42.00", day(2024, 3, 5))
	withCategory.Category = models.CategoryPath{"Food and Drink"}
	withDerived := s.newTransaction("t2", "Uber Eats", "25.00", day(2024, 3, 6))
	withDerived.DerivedCategory = models.CategoryDining

	_, err := s.repo.UpsertBatch([]*models.Transaction{
		withCategory,
		withDerived,
		s.newTransaction("t3", "Spotify", "9.99", day(2024, 3, 7)),
	})
	s.Require().NoError(err)

	uncategorized, err := s.repo.GetUncategorized(s.userID, 10)
	s.Require().NoError(err)
	s.Require().Len(uncategorized, 1)
	s.Equal("t3", uncategorized[0].ProviderTransactionID)

	s.Require().NoError(s.repo.UpdateDerivedCategory(uncategorized[0].ID, models.CategorySubscriptions))

	uncategorized, err = s.repo.GetUncategorized(s.userID, 10)
	s.Require().NoError(err)
	s.Empty(uncategorized)

	s.ErrorIs(s.repo.UpdateDerivedCategory(uuid.New(), models.CategoryDining), ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestUpdateUserCategory_ClearAndNotFound() {
	_, err := s.repo.UpsertBatch([]*models.Transaction{
		s.newTransaction("t1", "Bistro", "42.00", day(2024, 3, 5)),
	})
	s.Require().NoError(err)
	stored, _, err := s.repo.ListByUser(models.TransactionFilters{UserID: s.userID, Limit: 1})
	s.Require().NoError(err)
	id := stored[0].ID

	dining := models.CategoryDining
	s.Require().NoError(s.repo.UpdateUserCategory(s.userID, id, &dining))
	s.Require().NoError(s.repo.UpdateUserCategory(s.userID, id, nil))

	result, err := s.repo.GetByID(s.userID, id)
	s.Require().NoError(err)
	s.Nil(result.UserCategory)

	s.ErrorIs(s.repo.UpdateUserCategory(uuid.New(), id, &dining), ErrTransactionNotFound)
}
