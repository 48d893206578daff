package services

import (
	"os"
	"path/filepath"
	"testing"

	"finance-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeywordConfig(t *testing.T) {
	cfg := DefaultKeywordConfig()

	require.NotEmpty(t, cfg.CategoryRules)
	require.NotEmpty(t, cfg.SubscriptionKeywords)
	assert.Equal(t, models.CategorySubscriptions, cfg.CategoryRules[0].Category)
	for _, rule := range cfg.CategoryRules {
		assert.True(t, models.IsValidCategory(rule.Category), rule.Category)
	}
}

func TestParseKeywordConfig_NormalizesKeywords(t *testing.T) {
	data := []byte(`
category_rules:
  - category: Dining
    keywords: ["  Taqueria ", "", "BISTRO"]
subscription_keywords: [" Gym ", ""]
`)

	cfg, err := ParseKeywordConfig(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"taqueria", "bistro"}, cfg.CategoryRules[0].Keywords)
	assert.Equal(t, []string{"gym"}, cfg.SubscriptionKeywords)
}

func TestParseKeywordConfig_Errors(t *testing.T) {
	_, err := ParseKeywordConfig([]byte("category_rules:\n  - category: Crypto\n    keywords: [btc]\n"))
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = ParseKeywordConfig([]byte("category_rules: [: bad"))
	assert.Error(t, err)
}

func TestLoadKeywordConfig(t *testing.T) {
	cfg, err := LoadKeywordConfig("")
	require.NoError(t, err)
	assert.Equal(t, len(DefaultKeywordConfig().CategoryRules), len(cfg.CategoryRules))

	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("category_rules:\n  - category: Fees\n    keywords: [penalty]\n"), 0o600))

	cfg, err = LoadKeywordConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.CategoryRules, 1)
	assert.Equal(t, []string{"penalty"}, cfg.CategoryRules[0].Keywords)

	_, err = LoadKeywordConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
