package repository

import (
	"context"
	"errors"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/ceramics-cart/internal/db"
	"github.com/nikolayk812/ceramics-cart/internal/domain"
	"github.com/nikolayk812/ceramics-cart/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrCatalogEmpty = errors.New("catalog is empty")

const (
	kindProductType = "product_type"
	kindColor       = "color"
	kindSize        = "size"
	kindDesign      = "design"
	kindGlaze       = "glaze"
)

type catalogRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) port.CatalogRepository {
	return &catalogRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCatalogWithTx(tx pgx.Tx) port.CatalogRepository {
	return &catalogRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *catalogRepository) GetCatalog(ctx context.Context) (domain.Catalog, error) {
	rows, err := r.q.GetCatalogOptions(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("q.GetCatalogOptions: %w", err)
	}

	if len(rows) == 0 {
		return domain.Catalog{}, ErrCatalogEmpty
	}

	catalog, err := mapCatalogOptionsToDomain(rows)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("mapCatalogOptionsToDomain: %w", err)
	}

	return catalog, nil
}

// SaveCatalog replaces every stored option with the given catalog.
func (r *catalogRepository) SaveCatalog(ctx context.Context, catalog domain.Catalog) error {
	if len(catalog.ProductTypes) == 0 {
		return fmt.Errorf("catalog has no product types")
	}

	params := mapDomainToCatalogOptions(catalog)

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if _, err := q.DeleteCatalogOptions(ctx); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteCatalogOptions: %w", err)
		}

		for _, p := range params {
			if err := q.InsertCatalogOption(ctx, p); err != nil {
				return struct{}{}, fmt.Errorf("q.InsertCatalogOption[%s/%s]: %w", p.Kind, p.ID, err)
			}
		}

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func mapCatalogOptionsToDomain(rows []db.CatalogOption) (domain.Catalog, error) {
	var (
		catalog     domain.Catalog
		currencySet bool
	)

	for _, row := range rows {
		switch row.Kind {
		case kindProductType:
			parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
			if err != nil {
				return domain.Catalog{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
			}
			if currencySet && parsedCurrency != catalog.Currency {
				return domain.Catalog{}, fmt.Errorf("mixed currencies: %s and %s", catalog.Currency, parsedCurrency)
			}
			catalog.Currency, currencySet = parsedCurrency, true

			catalog.ProductTypes = append(catalog.ProductTypes, domain.ProductType{
				ID: row.ID, Name: row.Name, BasePrice: row.Amount,
			})
		case kindColor:
			catalog.Colors = append(catalog.Colors, domain.Color{ID: row.ID, Name: row.Name, Hex: row.Hex})
		case kindSize:
			catalog.Sizes = append(catalog.Sizes, domain.Size{ID: row.ID, Name: row.Name, Multiplier: row.Amount})
		case kindDesign:
			catalog.Designs = append(catalog.Designs, domain.Design{ID: row.ID, Name: row.Name, Surcharge: row.Amount})
		case kindGlaze:
			catalog.Glazes = append(catalog.Glazes, domain.Glaze{ID: row.ID, Name: row.Name, Surcharge: row.Amount})
		default:
			return domain.Catalog{}, fmt.Errorf("kind[%s] is not valid", row.Kind)
		}
	}

	if !currencySet {
		return domain.Catalog{}, fmt.Errorf("catalog has no product types")
	}

	return catalog, nil
}

func mapDomainToCatalogOptions(c domain.Catalog) []db.InsertCatalogOptionParams {
	var params []db.InsertCatalogOptionParams

	add := func(kind string, i int, id, name string, amount decimal.Decimal, cur, hex string) {
		params = append(params, db.InsertCatalogOptionParams{
			Kind:          kind,
			ID:            id,
			Name:          name,
			Position:      int32(i),
			Amount:        amount,
			PriceCurrency: cur,
			Hex:           hex,
		})
	}

	cur := c.Currency.String()

	for i, v := range c.ProductTypes {
		add(kindProductType, i, v.ID, v.Name, v.BasePrice, cur, "")
	}
	for i, v := range c.Colors {
		add(kindColor, i, v.ID, v.Name, decimal.Zero, "", v.Hex)
	}
	for i, v := range c.Sizes {
		add(kindSize, i, v.ID, v.Name, v.Multiplier, "", "")
	}
	for i, v := range c.Designs {
		add(kindDesign, i, v.ID, v.Name, v.Surcharge, cur, "")
	}
	for i, v := range c.Glazes {
		add(kindGlaze, i, v.ID, v.Name, v.Surcharge, cur, "")
	}

	return params
}
