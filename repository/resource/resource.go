package resource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/muhammadheryan/shop-console/model"
	"github.com/muhammadheryan/shop-console/thirdparty/backend"
)

// REST implements the list/search/CRUD calls shared by every catalog
// resource. T is the read shape and W the write shape.
type REST[T any, W any] struct {
	client backend.Client
	path   string
}

func NewREST[T any, W any](client backend.Client, path string) *REST[T, W] {
	return &REST[T, W]{client: client, path: path}
}

func (r *REST[T, W]) List(ctx context.Context, page, size int) (*model.Page[T], error) {
	return r.page(ctx, r.pagePath(r.path, page, size))
}

func (r *REST[T, W]) ListSorted(ctx context.Context, page, size int, sortKey string) (*model.Page[T], error) {
	path := r.pagePath(r.path, page, size) + "&sortBy=" + url.QueryEscape(sortKey)
	return r.page(ctx, path)
}

// ListFiltered appends fragment, which must start with '&', verbatim.
func (r *REST[T, W]) ListFiltered(ctx context.Context, page, size int, fragment string) (*model.Page[T], error) {
	return r.page(ctx, r.pagePath(r.path, page, size)+fragment)
}

func (r *REST[T, W]) Search(ctx context.Context, page, size int, fragment string) (*model.Page[T], error) {
	return r.page(ctx, r.pagePath(r.path+"/search", page, size)+fragment)
}

func (r *REST[T, W]) Get(ctx context.Context, id string) (*T, error) {
	var out T
	if err := r.client.Do(ctx, http.MethodGet, r.itemPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *REST[T, W]) Create(ctx context.Context, entity *W) (*T, error) {
	var out T
	if err := r.client.Do(ctx, http.MethodPost, r.path, entity, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update sends entity to the collection path; the id travels in the body.
func (r *REST[T, W]) Update(ctx context.Context, entity *W) (*T, error) {
	var out T
	if err := r.client.Do(ctx, http.MethodPut, r.path, entity, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *REST[T, W]) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, r.itemPath(id), nil, nil)
}

func (r *REST[T, W]) page(ctx context.Context, path string) (*model.Page[T], error) {
	var out model.Page[T]
	if err := r.client.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if out.Content == nil {
		out.Content = []T{}
	}
	return &out, nil
}

func (r *REST[T, W]) pagePath(base string, page, size int) string {
	return fmt.Sprintf("%s?page=%d&size=%d", base, page, size)
}

func (r *REST[T, W]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}
