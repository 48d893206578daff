package services

import (
	"strings"

	"finance-dashboard/internal/models"
)

type categoryService struct {
	rules []categoryRule
}

type categoryRule struct {
	category string
	keywords []string
}

// NewCategoryService creates a keyword categorizer. Rule order in the config is the match priority.
func NewCategoryService(cfg *models.KeywordConfig) CategoryServiceInterface {
	if cfg == nil {
		cfg = DefaultKeywordConfig()
	}

	rules := make([]categoryRule, 0, len(cfg.CategoryRules))
	for _, rule := range cfg.CategoryRules {
		if !models.IsValidCategory(rule.Category) || len(rule.Keywords) == 0 {
			continue
		}
		rules = append(rules, categoryRule{
			category: rule.Category,
			keywords: normalizeKeywords(rule.Keywords),
		})
	}

	return &categoryService{rules: rules}
}

// Categorize matches the merchant name when present, otherwise the raw name. When both
// are present and the merchant alone does not match, "merchant name" is tried.
// The result is always a label from the closed category set.
func (s *categoryService) Categorize(name string, merchantName *string) *models.CategorizationResult {
	lowerName := strings.ToLower(strings.TrimSpace(name))
	lowerMerchant := ""
	if merchantName != nil {
		lowerMerchant = strings.ToLower(strings.TrimSpace(*merchantName))
	}

	if lowerMerchant != "" {
		if result := s.match(lowerMerchant, models.CategorizationMethodMerchant); result != nil {
			return result
		}
		if lowerName != "" {
			if result := s.match(lowerMerchant+" "+lowerName, models.CategorizationMethodCombined); result != nil {
				return result
			}
		}
	} else if lowerName != "" {
		if result := s.match(lowerName, models.CategorizationMethodName); result != nil {
			return result
		}
	}

	return &models.CategorizationResult{
		Category: models.CategoryUncategorized,
		Method:   models.CategorizationMethodFallback,
	}
}

func (s *categoryService) match(text, method string) *models.CategorizationResult {
	for _, rule := range s.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return &models.CategorizationResult{
					Category:       rule.category,
					Method:         method,
					MatchedKeyword: keyword,
				}
			}
		}
	}
	return nil
}

// BatchCategorize writes derived_category on every transaction lacking a provider category
// and returns how many were labelled
func (s *categoryService) BatchCategorize(transactions []*models.Transaction) int {
	labelled := 0
	for _, txn := range transactions {
		if txn == nil || txn.HasAuthoritativeCategory() {
			continue
		}
		txn.DerivedCategory = s.Categorize(txn.Name, txn.MerchantName).Category
		labelled++
	}
	return labelled
}

// OverrideCategory sets the user label, or clears it when category is nil.
// The provider category and derived label are never touched.
func (s *categoryService) OverrideCategory(transaction *models.Transaction, category *string) error {
	if transaction == nil {
		return ErrTransactionNil
	}

	if category == nil {
		if transaction.UserCategory == nil {
			return ErrCategoryNotChanged
		}
		transaction.UserCategory = nil
		return nil
	}

	if !models.IsValidCategory(*category) {
		return ErrInvalidCategory
	}
	if transaction.UserCategory != nil && *transaction.UserCategory == *category {
		return ErrCategoryNotChanged
	}

	label := *category
	transaction.UserCategory = &label
	return nil
}
