package shop_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/shop-console/model"
	shoprepo "github.com/muhammadheryan/shop-console/repository/shop"
	"github.com/muhammadheryan/shop-console/thirdparty/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageBody = `{"content":[{"id":1,"name":"Boulangerie","inVacations":false,"nbProducts":3}],"totalPages":4,"pageable":{"pageNumber":2}}`

type recorded struct {
	method string
	uri    string
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.uri = r.URL.RequestURI()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestShopRepository_Listing(t *testing.T) {
	tests := []struct {
		name    string
		call    func(repo shoprepo.ShopRepository) (*model.Page[model.Shop], error)
		wantURI string
	}{
		{
			name: "plain pagination",
			call: func(repo shoprepo.ShopRepository) (*model.Page[model.Shop], error) {
				return repo.List(context.Background(), 2, 9)
			},
			wantURI: "/shops?page=2&size=9",
		},
		{
			name: "sorted",
			call: func(repo shoprepo.ShopRepository) (*model.Page[model.Shop], error) {
				return repo.ListSorted(context.Background(), 0, 9, "nbProducts")
			},
			wantURI: "/shops?page=0&size=9&sortBy=nbProducts",
		},
		{
			name: "filtered fragment appended verbatim",
			call: func(repo shoprepo.ShopRepository) (*model.Page[model.Shop], error) {
				return repo.ListFiltered(context.Background(), 1, 9, "&inVacations=true&createdAfter=2024-01-01")
			},
			wantURI: "/shops?page=1&size=9&inVacations=true&createdAfter=2024-01-01",
		},
		{
			name: "search endpoint",
			call: func(repo shoprepo.ShopRepository) (*model.Page[model.Shop], error) {
				return repo.Search(context.Background(), 0, 9, "&text=boul%20angerie&inVacations=false")
			},
			wantURI: "/shops/search?page=0&size=9&text=boul%20angerie&inVacations=false",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv, rec := newServer(t, http.StatusOK, pageBody)
			repo := shoprepo.NewShopRepository(backend.NewClient(srv.URL, time.Second))

			got, err := tt.call(repo)
			require.NoError(t, err)

			assert.Equal(t, http.MethodGet, rec.method)
			assert.Equal(t, tt.wantURI, rec.uri)
			require.Len(t, got.Content, 1)
			assert.Equal(t, "Boulangerie", got.Content[0].Name)
			assert.Equal(t, 4, got.TotalPages)
			assert.Equal(t, 3, got.DisplayPage())
		})
	}
}

func TestShopRepository_EmptyContent(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"totalPages":0,"number":0}`)
	repo := shoprepo.NewShopRepository(backend.NewClient(srv.URL, time.Second))

	got, err := repo.List(context.Background(), 0, 9)
	require.NoError(t, err)
	assert.NotNil(t, got.Content)
	assert.Empty(t, got.Content)
	assert.Equal(t, 1, got.DisplayPage())
}

func TestShopRepository_CRUD(t *testing.T) {
	shop := &model.MinimalShop{ID: "5", Name: "Fromagerie", InVacations: true}

	tests := []struct {
		name       string
		call       func(repo shoprepo.ShopRepository) error
		wantMethod string
		wantURI    string
	}{
		{
			name: "get",
			call: func(repo shoprepo.ShopRepository) error {
				_, err := repo.Get(context.Background(), "5")
				return err
			},
			wantMethod: http.MethodGet,
			wantURI:    "/shops/5",
		},
		{
			name: "create",
			call: func(repo shoprepo.ShopRepository) error {
				_, err := repo.Create(context.Background(), shop)
				return err
			},
			wantMethod: http.MethodPost,
			wantURI:    "/shops",
		},
		{
			name: "update",
			call: func(repo shoprepo.ShopRepository) error {
				_, err := repo.Update(context.Background(), shop)
				return err
			},
			wantMethod: http.MethodPut,
			wantURI:    "/shops",
		},
		{
			name: "delete",
			call: func(repo shoprepo.ShopRepository) error {
				return repo.Delete(context.Background(), "5")
			},
			wantMethod: http.MethodDelete,
			wantURI:    "/shops/5",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv, rec := newServer(t, http.StatusOK, `{"id":5,"name":"Fromagerie","inVacations":true}`)
			repo := shoprepo.NewShopRepository(backend.NewClient(srv.URL, time.Second))

			require.NoError(t, tt.call(repo))
			assert.Equal(t, tt.wantMethod, rec.method)
			assert.Equal(t, tt.wantURI, rec.uri)
		})
	}
}

func TestShopRepository_PropagatesNormalizedError(t *testing.T) {
	srv, _ := newServer(t, http.StatusNotFound, `{"message":"nope"}`)
	repo := shoprepo.NewShopRepository(backend.NewClient(srv.URL, time.Second))

	_, err := repo.Get(context.Background(), "404")
	require.Error(t, err)
	assert.Equal(t, "Ressource non trouvée.", err.Error())
}
