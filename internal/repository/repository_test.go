package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/possale/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_catalog_items.up.sql",
			"../migrations/02_cart_lines.up.sql",
			"../migrations/03_checkout_transfers.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func randomCatalogItem(cur currency.Unit) domain.CatalogItem {
	return domain.CatalogItem{
		ID:            gofakeit.Int64()&0x7fffffffffff | 1,
		Name:          gofakeit.ProductName(),
		UnitPrice:     randomMoney(cur),
		Category:      gofakeit.ProductCategory(),
		StockQuantity: gofakeit.IntRange(1, 100),
		Unit:          gofakeit.RandomString([]string{"dona", "kg", "litr", "quti"}),
		Image:         gofakeit.URL(),
	}
}

func randomMoney(cur currency.Unit) domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)),
		Currency: cur,
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

func diffOptions() cmp.Options {
	return cmp.Options{
		cmp.Comparer(func(x, y currency.Unit) bool {
			return x.String() == y.String()
		}),
		cmp.Comparer(func(x, y decimal.Decimal) bool {
			return x.Equal(y)
		}),
	}
}

func assertCatalogItem(t *testing.T, expected, actual domain.CatalogItem) {
	t.Helper()

	diff := cmp.Diff(expected, actual, diffOptions())
	assert.Empty(t, diff)
}

func assertCartLines(t *testing.T, expected, actual []domain.CartLine) {
	t.Helper()

	diff := cmp.Diff(expected, actual, diffOptions())
	assert.Empty(t, diff)
}
