// Package memory holds in-process adapters used when no external storage is configured.
package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/nikolayk812/possale/internal/domain"
	"github.com/nikolayk812/possale/internal/port"
)

type catalogRepository struct {
	items []domain.CatalogItem
}

// NewCatalog validates items at construction; the catalog is read-only afterwards.
func NewCatalog(items []domain.CatalogItem) (port.CatalogRepository, error) {
	seen := make(map[int64]struct{}, len(items))

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("item.Validate: %w", err)
		}
		if _, ok := seen[item.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate id[%d]", domain.ErrInvalidCatalogItem, item.ID)
		}
		seen[item.ID] = struct{}{}
	}

	return &catalogRepository{items: slices.Clone(items)}, nil
}

func (r *catalogRepository) List(_ context.Context) ([]domain.CatalogItem, error) {
	return slices.Clone(r.items), nil
}

func (r *catalogRepository) Get(_ context.Context, id int64) (domain.CatalogItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.CatalogItem{}, fmt.Errorf("id[%d]: %w", id, domain.ErrItemNotFound)
}

func (r *catalogRepository) Search(_ context.Context, term string) ([]domain.CatalogItem, error) {
	var out []domain.CatalogItem
	for _, item := range r.items {
		if item.Matches(term) {
			out = append(out, item)
		}
	}
	return out, nil
}
