package shop

import (
	"context"

	"github.com/muhammadheryan/shop-console/model"
	"github.com/muhammadheryan/shop-console/repository/resource"
	"github.com/muhammadheryan/shop-console/thirdparty/backend"
)

// ShopRepository reads and writes shops through the catalog backend. The
// fragment arguments are pre-encoded query suffixes such as
// "&inVacations=true&text=boul".
type ShopRepository interface {
	List(ctx context.Context, page, size int) (*model.Page[model.Shop], error)
	ListSorted(ctx context.Context, page, size int, sortKey string) (*model.Page[model.Shop], error)
	ListFiltered(ctx context.Context, page, size int, fragment string) (*model.Page[model.Shop], error)
	Search(ctx context.Context, page, size int, fragment string) (*model.Page[model.Shop], error)
	Get(ctx context.Context, id string) (*model.Shop, error)
	Create(ctx context.Context, entity *model.MinimalShop) (*model.Shop, error)
	Update(ctx context.Context, entity *model.MinimalShop) (*model.Shop, error)
	Delete(ctx context.Context, id string) error
}

type REST struct {
	*resource.REST[model.Shop, model.MinimalShop]
}

func NewShopRepository(client backend.Client) ShopRepository {
	return &REST{REST: resource.NewREST[model.Shop, model.MinimalShop](client, "/shops")}
}
