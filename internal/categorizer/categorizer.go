// Package categorizer assigns exactly one category to each transaction
// description using an ordered keyword decision list, with an optional
// AI-backed fallback for descriptions no keyword matches.
package categorizer

import (
	"context"
	"strings"
	"sync"

	"mweber/konto-csv/internal/logging"
	"mweber/konto-csv/internal/models"
)

// Categorizer matches descriptions against a keyword registry. The registry
// is an explicit decision list: the priority tier (specific vendors) is
// always scanned before the fallback tier (generic terms), categories are
// scanned in declared order within a tier, keywords in declared order within
// a category, and the first case-insensitive substring hit wins.
//
// Each Categorizer owns a copy of its registry, so instances with different
// registries can coexist.
type Categorizer struct {
	mu       sync.RWMutex
	priority []models.CategoryConfig
	fallback []models.CategoryConfig
	aiClient AIClient
	logger   logging.Logger
}

// New creates a Categorizer over a copy of the given registry. A nil logger
// falls back to the package default.
func New(registry models.CategoriesConfig, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{
		priority: copyConfigs(registry.Priority),
		fallback: copyConfigs(registry.Fallback),
		logger:   logger,
	}
}

// NewDefault creates a Categorizer over the built-in registry.
func NewDefault(logger logging.Logger) *Categorizer {
	return New(models.DefaultCategories(), logger)
}

// SetAIClient attaches an AI fallback consulted only when no keyword matches.
// A nil client disables the fallback.
func (c *Categorizer) SetAIClient(client AIClient) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aiClient = client
}

// Categorize returns the category name for a description. It is total over
// well-formed input: when nothing matches and the AI fallback is absent or
// declines, the default category is returned.
func (c *Categorizer) Categorize(ctx context.Context, description string) string {
	lower := strings.ToLower(description)

	c.mu.RLock()
	tiers := [][]models.CategoryConfig{c.priority, c.fallback}
	for _, tier := range tiers {
		for _, category := range tier {
			for _, keyword := range category.Keywords {
				if strings.Contains(lower, strings.ToLower(keyword)) {
					c.mu.RUnlock()
					c.logger.WithFields(
						logging.Field{Key: "keyword", Value: keyword},
						logging.Field{Key: "category", Value: category.Name},
					).Debug("Description categorized by keyword")
					return category.Name
				}
			}
		}
	}
	aiClient := c.aiClient
	c.mu.RUnlock()

	if aiClient != nil {
		if name, ok := c.categorizeWithAI(ctx, aiClient, description); ok {
			return name
		}
	}

	return models.CategoryOther
}

// AddKeyword appends a keyword to a category at runtime. A keyword already
// present in the category (case-insensitive) is rejected silently. A category
// not yet in the registry is created at the end of the fallback tier.
func (c *Categorizer) AddKeyword(category, keyword string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, tier := range [][]models.CategoryConfig{c.priority, c.fallback} {
		for i := range tier {
			if tier[i].Name != category {
				continue
			}
			if containsKeyword(tier[i].Keywords, keyword) {
				return
			}
			tier[i].Keywords = append(tier[i].Keywords, keyword)
			return
		}
	}

	c.fallback = append(c.fallback, models.CategoryConfig{
		Name:     category,
		Keywords: []string{keyword},
	})
}

// Registry returns a copy of the current keyword registry, including any
// keywords added at runtime, so callers can persist it.
func (c *Categorizer) Registry() models.CategoriesConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return models.CategoriesConfig{
		Priority: copyConfigs(c.priority),
		Fallback: copyConfigs(c.fallback),
	}
}

// Categories returns the category names in scan order, ending with the
// default category.
func (c *Categorizer) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.priority)+len(c.fallback)+1)
	for _, category := range c.priority {
		names = append(names, category.Name)
	}
	for _, category := range c.fallback {
		names = append(names, category.Name)
	}
	return append(names, models.CategoryOther)
}

// categorizeWithAI consults the attached AI client. Any failure, and any
// answer outside the registry, counts as "no match": classification itself
// never fails.
func (c *Categorizer) categorizeWithAI(ctx context.Context, client AIClient, description string) (string, bool) {
	name, err := client.Categorize(ctx, description, c.Categories())
	if err != nil {
		c.logger.WithError(err).Warn("AI categorization failed, using default category")
		return "", false
	}
	for _, known := range c.Categories() {
		if strings.EqualFold(name, known) {
			c.logger.WithFields(
				logging.Field{Key: "category", Value: known},
			).Debug("Description categorized by AI fallback")
			return known, true
		}
	}
	c.logger.WithField("category", name).Warn("AI returned a category outside the registry")
	return "", false
}

func containsKeyword(keywords []string, keyword string) bool {
	for _, k := range keywords {
		if strings.EqualFold(k, keyword) {
			return true
		}
	}
	return false
}

func copyConfigs(src []models.CategoryConfig) []models.CategoryConfig {
	out := make([]models.CategoryConfig, len(src))
	for i, c := range src {
		out[i] = models.CategoryConfig{
			Name:     c.Name,
			Keywords: append([]string(nil), c.Keywords...),
		}
	}
	return out
}
