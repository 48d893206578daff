package models

// Spending categories a heuristic or user label may take. The set is closed.
const (
	CategorySubscriptions  = "Subscriptions"
	CategoryDining         = "Dining"
	CategoryGroceries      = "Groceries"
	CategoryTransportation = "Transportation"
	CategoryTravel         = "Travel"
	CategoryUtilities      = "Utilities"
	CategoryHousing        = "Housing"
	CategoryInsurance      = "Insurance"
	CategoryHealthcare     = "Healthcare"
	CategoryEntertainment  = "Entertainment"
	CategoryShopping       = "Shopping"
	CategoryEducation      = "Education"
	CategoryIncome         = "Income"
	CategoryFees           = "Fees"
	CategoryUncategorized  = "Uncategorized"
)

// Categorization method types
const (
	CategorizationMethodMerchant = "MERCHANT"
	CategorizationMethodName     = "NAME"
	CategorizationMethodCombined = "COMBINED"
	CategorizationMethodFallback = "FALLBACK"
)

// AllCategories returns all valid category labels
func AllCategories() []string {
	return []string{
		CategorySubscriptions,
		CategoryDining,
		CategoryGroceries,
		CategoryTransportation,
		CategoryTravel,
		CategoryUtilities,
		CategoryHousing,
		CategoryInsurance,
		CategoryHealthcare,
		CategoryEntertainment,
		CategoryShopping,
		CategoryEducation,
		CategoryIncome,
		CategoryFees,
		CategoryUncategorized,
	}
}

// IsValidCategory checks if a category label belongs to the closed set
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// CategorizationResult contains the result of transaction categorization
type CategorizationResult struct {
	Category       string `json:"category"`
	Method         string `json:"method"`
	MatchedKeyword string `json:"matched_keyword,omitempty"`
}

// CategoryRule maps a keyword set to a category label. Rules are evaluated in file order.
type CategoryRule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// KeywordConfig is the externally configurable keyword data used by the categorizer
// and the subscription classifier.
type KeywordConfig struct {
	CategoryRules        []CategoryRule `yaml:"category_rules"`
	SubscriptionKeywords []string       `yaml:"subscription_keywords"`
}
