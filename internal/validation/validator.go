package validation

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"finance-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the dashboard's custom rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("category_label", validateCategoryLabel)
	_ = v.RegisterValidation("frequency", validateFrequency)
	_ = v.RegisterValidation("calendar_date", validateCalendarDate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateCategoryLabel accepts only labels of the closed category set, case-sensitive
func validateCategoryLabel(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

// validateFrequency accepts detector buckets and the provider frequency strings, case-insensitive
func validateFrequency(fl validator.FieldLevel) bool {
	switch models.NormalizeFrequency(fl.Field().String()) {
	case models.FrequencyWeekly, models.FrequencyBiweekly, models.FrequencyMonthly,
		models.FrequencyQuarterly, models.FrequencyYearly,
		models.FrequencyApproximatelyMonthly, models.FrequencyAnnually:
		return true
	default:
		return false
	}
}

// validateCalendarDate accepts YYYY-MM-DD
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
