package port

import (
	"context"
	"github.com/nikolayk812/ceramics-cart/internal/domain"
)

type CatalogRepository interface {
	GetCatalog(ctx context.Context) (domain.Catalog, error)
	SaveCatalog(ctx context.Context, catalog domain.Catalog) error
}

// ProductSource lists what the shop sells, typically the remote shop API.
type ProductSource interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
