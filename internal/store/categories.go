package store

import (
	"fmt"
	"os"

	"mweber/konto-csv/internal/fileutils"
	"mweber/konto-csv/internal/logging"
	"mweber/konto-csv/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoryStore loads and saves the keyword registry as a YAML file.
type CategoryStore struct {
	path   string
	logger logging.Logger
}

// NewCategoryStore returns a store backed by the YAML file at path.
func NewCategoryStore(path string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CategoryStore{path: path, logger: logger}
}

// Load reads the registry from disk. When the file does not exist the
// built-in registry is returned so a fresh checkout works without any
// configuration.
func (s *CategoryStore) Load() (models.CategoriesConfig, error) {
	if !fileutils.FileExists(s.path) {
		s.logger.Debug("categories file not found, using built-in registry",
			logging.Field{Key: "file", Value: s.path})
		return models.DefaultCategories(), nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return models.CategoriesConfig{}, fmt.Errorf("error reading categories file: %w", err)
	}

	var cfg models.CategoriesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return models.CategoriesConfig{}, fmt.Errorf("error parsing categories file: %w", err)
	}

	if len(cfg.Priority) == 0 && len(cfg.Fallback) == 0 {
		return models.CategoriesConfig{}, fmt.Errorf("categories file %s defines no categories", s.path)
	}
	return cfg, nil
}

// Save writes the registry to disk, creating parent directories as needed.
func (s *CategoryStore) Save(cfg models.CategoriesConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error encoding categories: %w", err)
	}
	if err := fileutils.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}
	s.logger.Info("saved category registry", logging.Field{Key: "file", Value: s.path})
	return nil
}
