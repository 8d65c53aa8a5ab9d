package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/possale/internal/db"
	"github.com/nikolayk812/possale/internal/domain"
	"github.com/nikolayk812/possale/internal/port"
	"golang.org/x/text/currency"
)

type catalogRepository struct {
	q *db.Queries
}

func NewCatalog(pool *pgxpool.Pool) port.CatalogRepository {
	return &catalogRepository{
		q: db.New(pool),
	}
}

func (r *catalogRepository) List(ctx context.Context) ([]domain.CatalogItem, error) {
	rows, err := r.q.ListCatalogItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListCatalogItems: %w", err)
	}

	items, err := mapCatalogRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapCatalogRowsToDomain: %w", err)
	}

	return items, nil
}

func (r *catalogRepository) Get(ctx context.Context, id int64) (domain.CatalogItem, error) {
	row, err := r.q.GetCatalogItem(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CatalogItem{}, fmt.Errorf("id[%d]: %w", id, domain.ErrItemNotFound)
	}
	if err != nil {
		return domain.CatalogItem{}, fmt.Errorf("q.GetCatalogItem: %w", err)
	}

	item, err := mapCatalogRowToDomain(row)
	if err != nil {
		return domain.CatalogItem{}, fmt.Errorf("mapCatalogRowToDomain: %w", err)
	}

	return item, nil
}

func (r *catalogRepository) Search(ctx context.Context, term string) ([]domain.CatalogItem, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return r.List(ctx)
	}

	rows, err := r.q.SearchCatalogItems(ctx, escapeLike(term))
	if err != nil {
		return nil, fmt.Errorf("q.SearchCatalogItems: %w", err)
	}

	items, err := mapCatalogRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapCatalogRowsToDomain: %w", err)
	}

	return items, nil
}

// SeedCatalog upserts items in a single transaction.
func SeedCatalog(ctx context.Context, pool *pgxpool.Pool, items []domain.CatalogItem) error {
	_, err := withTx(ctx, pool, db.New(pool), func(q *db.Queries) (struct{}, error) {
		for _, item := range items {
			if err := item.Validate(); err != nil {
				return struct{}{}, fmt.Errorf("item.Validate: %w", err)
			}

			err := q.UpsertCatalogItem(ctx, db.UpsertCatalogItemParams{
				ID:            item.ID,
				Name:          item.Name,
				PriceAmount:   item.UnitPrice.Amount,
				PriceCurrency: item.UnitPrice.Currency.String(),
				Category:      item.Category,
				Stock:         int32(item.StockQuantity),
				Unit:          item.Unit,
				Image:         item.Image,
			})
			if err != nil {
				return struct{}{}, fmt.Errorf("q.UpsertCatalogItem[%d]: %w", item.ID, err)
			}
		}
		return struct{}{}, nil
	})

	return err
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func mapCatalogRowToDomain(row db.CatalogItem) (domain.CatalogItem, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.CatalogItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	item := domain.CatalogItem{
		ID:            row.ID,
		Name:          row.Name,
		UnitPrice:     domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Category:      row.Category,
		StockQuantity: int(row.Stock),
		Unit:          row.Unit,
		Image:         row.Image,
	}

	if err := item.Validate(); err != nil {
		return domain.CatalogItem{}, fmt.Errorf("item.Validate: %w", err)
	}

	return item, nil
}

func mapCatalogRowsToDomain(rows []db.CatalogItem) ([]domain.CatalogItem, error) {
	var items []domain.CatalogItem

	for _, row := range rows {
		item, err := mapCatalogRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapCatalogRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
