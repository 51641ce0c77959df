package product

import (
	"context"

	"github.com/muhammadheryan/shop-console/model"
	"github.com/muhammadheryan/shop-console/repository/resource"
	"github.com/muhammadheryan/shop-console/thirdparty/backend"
)

type ProductRepository interface {
	List(ctx context.Context, page, size int) (*model.Page[model.Product], error)
	ListSorted(ctx context.Context, page, size int, sortKey string) (*model.Page[model.Product], error)
	ListFiltered(ctx context.Context, page, size int, fragment string) (*model.Page[model.Product], error)
	Search(ctx context.Context, page, size int, fragment string) (*model.Page[model.Product], error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, entity *model.MinimalProduct) (*model.Product, error)
	Update(ctx context.Context, entity *model.MinimalProduct) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type REST struct {
	*resource.REST[model.Product, model.MinimalProduct]
}

func NewProductRepository(client backend.Client) ProductRepository {
	return &REST{REST: resource.NewREST[model.Product, model.MinimalProduct](client, "/products")}
}
