package category

import (
	"context"

	"github.com/muhammadheryan/shop-console/model"
	"github.com/muhammadheryan/shop-console/repository/resource"
	"github.com/muhammadheryan/shop-console/thirdparty/backend"
)

type CategoryRepository interface {
	List(ctx context.Context, page, size int) (*model.Page[model.Category], error)
	ListSorted(ctx context.Context, page, size int, sortKey string) (*model.Page[model.Category], error)
	ListFiltered(ctx context.Context, page, size int, fragment string) (*model.Page[model.Category], error)
	Search(ctx context.Context, page, size int, fragment string) (*model.Page[model.Category], error)
	Get(ctx context.Context, id string) (*model.Category, error)
	Create(ctx context.Context, entity *model.MinimalCategory) (*model.Category, error)
	Update(ctx context.Context, entity *model.MinimalCategory) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

type REST struct {
	*resource.REST[model.Category, model.MinimalCategory]
}

func NewCategoryRepository(client backend.Client) CategoryRepository {
	return &REST{REST: resource.NewREST[model.Category, model.MinimalCategory](client, "/categories")}
}
