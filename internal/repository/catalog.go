package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
)

// CatalogRepository provides read-only access to the bundled word catalog.
// The catalog is loaded once and never mutated.
type CatalogRepository struct {
	entries []entities.Entry
}

// NewCatalogRepository loads the catalog from a JSON file. A missing or
// unreadable file is logged and results in an empty catalog.
func NewCatalogRepository(path string, logger *zap.Logger) *CatalogRepository {
	entries, err := loadCatalog(path)
	if err != nil {
		logger.Warn("catalog unavailable, continuing with an empty catalog",
			zap.String("path", path),
			zap.Error(err),
		)
		entries = nil
	}

	logger.Info("catalog loaded", zap.Int("entries", len(entries)))

	return &CatalogRepository{entries: entries}
}

// NewCatalogFromEntries creates a catalog from in-memory entries.
func NewCatalogFromEntries(entries []entities.Entry) *CatalogRepository {
	return &CatalogRepository{entries: append([]entities.Entry(nil), entries...)}
}

// All returns the catalog entries in their natural order.
func (r *CatalogRepository) All() []entities.Entry {
	return append([]entities.Entry(nil), r.entries...)
}

// Len returns the number of catalog entries.
func (r *CatalogRepository) Len() int {
	return len(r.entries)
}

func loadCatalog(path string) ([]entities.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []entities.Entry
	if err = json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog JSON: %w", err)
	}

	return entries, nil
}
