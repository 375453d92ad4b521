// Package common builds the shared dependencies commands need at run time.
package common

import (
	"context"
	"fmt"

	"mweber/konto-csv/cmd/root"
	"mweber/konto-csv/internal/categorizer"
	"mweber/konto-csv/internal/store"
)

// Deps bundles the stores and the categorizer a command operates on.
type Deps struct {
	Ledger     *store.LedgerStore
	Categories *store.CategoryStore
	Cat        *categorizer.Categorizer

	aiClient *categorizer.GeminiClient
}

// Build assembles the ledger store, the category store and a categorizer
// from the resolved configuration. When AI categorization is enabled a
// Gemini client is attached as fallback; Close must be called to release it.
func Build(ctx context.Context) (*Deps, error) {
	cfg := root.Cfg
	if cfg == nil {
		return nil, fmt.Errorf("configuration is not initialized")
	}

	categories := store.NewCategoryStore(cfg.Categories.File, root.Log)
	registry, err := categories.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading category registry: %w", err)
	}

	cat := categorizer.New(registry, root.Log)

	deps := &Deps{
		Ledger:     store.NewLedgerStore(cfg.Ledger.File, root.Log),
		Categories: categories,
		Cat:        cat,
	}

	if cfg.AI.Enabled {
		client, err := categorizer.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model, root.Log)
		if err != nil {
			return nil, fmt.Errorf("error creating AI client: %w", err)
		}
		deps.aiClient = client
		cat.SetAIClient(client)
	}

	return deps, nil
}

// Close releases any resources held by the dependencies.
func (d *Deps) Close() {
	if d.aiClient != nil {
		if err := d.aiClient.Close(); err != nil {
			root.Log.WithError(err).Warn("failed to close AI client")
		}
	}
}
