package port

import (
	"context"

	"github.com/nikolayk812/possale/internal/domain"
)

type CatalogRepository interface {
	List(ctx context.Context) ([]domain.CatalogItem, error)
	Get(ctx context.Context, id int64) (domain.CatalogItem, error)
	Search(ctx context.Context, term string) ([]domain.CatalogItem, error)
}
