package services

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"finance-dashboard/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var defaultKeywordsYAML []byte

// LoadKeywordConfig returns the embedded keyword data, or the file at path when one is given
func LoadKeywordConfig(path string) (*models.KeywordConfig, error) {
	data := defaultKeywordsYAML
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read keywords file %s: %w", path, err)
		}
		data = fileData
	}
	return ParseKeywordConfig(data)
}

// DefaultKeywordConfig returns the embedded keyword data
func DefaultKeywordConfig() *models.KeywordConfig {
	cfg, err := ParseKeywordConfig(defaultKeywordsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded keywords.yaml is invalid: %v", err))
	}
	return cfg
}

// ParseKeywordConfig decodes keyword YAML. Keywords are lower-cased and blank entries dropped;
// every rule must name a category from the closed set.
func ParseKeywordConfig(data []byte) (*models.KeywordConfig, error) {
	var cfg models.KeywordConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse keyword config: %w", err)
	}

	for i := range cfg.CategoryRules {
		rule := &cfg.CategoryRules[i]
		if !models.IsValidCategory(rule.Category) {
			return nil, fmt.Errorf("rule %d: %w: %q", i, ErrInvalidCategory, rule.Category)
		}
		rule.Keywords = normalizeKeywords(rule.Keywords)
	}
	cfg.SubscriptionKeywords = normalizeKeywords(cfg.SubscriptionKeywords)

	return &cfg, nil
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if keyword = strings.ToLower(strings.TrimSpace(keyword)); keyword != "" {
			out = append(out, keyword)
		}
	}
	return out
}
