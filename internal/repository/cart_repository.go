package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/possale/internal/db"
	"github.com/nikolayk812/possale/internal/domain"
	"github.com/nikolayk812/possale/internal/port"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	q        *db.Queries
	pool     *pgxpool.Pool
	currency currency.Unit
}

// NewCart returns a repository whose empty carts are denominated in cur.
func NewCart(pool *pgxpool.Pool, cur currency.Unit) port.CartRepository {
	return &cartRepository{
		q:        db.New(pool),
		pool:     pool,
		currency: cur,
	}
}

func NewCartWithTx(tx pgx.Tx, cur currency.Unit) port.CartRepository {
	return &cartRepository{
		q:        db.New(tx),
		pool:     nil, // use provided transaction instead
		currency: cur,
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	lines, err := mapGetCartRowsToDomain(rows)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	cur := r.currency
	if len(lines) > 0 {
		cur = lines[0].Item.UnitPrice.Currency
	}

	cart, err := domain.RestoreCart(ownerID, cur, lines)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("domain.RestoreCart: %w", err)
	}

	return cart, nil
}

// SaveCart replaces every stored line of the cart owner.
func (r *cartRepository) SaveCart(ctx context.Context, cart domain.Cart) error {
	if cart.OwnerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if _, err := q.DeleteCart(ctx, cart.OwnerID); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteCart: %w", err)
		}

		for i, line := range cart.Lines() {
			err := q.AddCartLine(ctx, db.AddCartLineParams{
				OwnerID:       cart.OwnerID,
				ItemID:        line.Item.ID,
				Position:      int32(i),
				Quantity:      int32(line.Quantity),
				Name:          line.Item.Name,
				PriceAmount:   line.Item.UnitPrice.Amount,
				PriceCurrency: line.Item.UnitPrice.Currency.String(),
				Category:      line.Item.Category,
				Stock:         int32(line.Item.StockQuantity),
				Unit:          line.Item.Unit,
				Image:         line.Item.Image,
			})
			if err != nil {
				return struct{}{}, fmt.Errorf("q.AddCartLine: %w", err)
			}
		}

		return struct{}{}, nil
	})

	return err
}

func (r *cartRepository) DeleteCart(ctx context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.DeleteCart(ctx, ownerID)
	if err != nil {
		return false, fmt.Errorf("q.DeleteCart: %w", err)
	}

	return rowsAffected > 0, nil
}

func mapGetCartRowToDomain(row db.GetCartRow) (domain.CartLine, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.CartLine{
		Item: domain.CatalogItem{
			ID:            row.ItemID,
			Name:          row.Name,
			UnitPrice:     domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
			Category:      row.Category,
			StockQuantity: int(row.Stock),
			Unit:          row.Unit,
			Image:         row.Image,
		},
		Quantity: int(row.Quantity),
	}, nil
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) ([]domain.CartLine, error) {
	var lines []domain.CartLine

	for _, row := range rows {
		line, err := mapGetCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}
