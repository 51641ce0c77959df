package transport_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/muhammadheryan/shop-console/application/console"
	"github.com/muhammadheryan/shop-console/constant"
	authmocks "github.com/muhammadheryan/shop-console/mocks/application/auth"
	categorymocks "github.com/muhammadheryan/shop-console/mocks/repository/category"
	productmocks "github.com/muhammadheryan/shop-console/mocks/repository/product"
	shopmocks "github.com/muhammadheryan/shop-console/mocks/repository/shop"
	publishermocks "github.com/muhammadheryan/shop-console/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/shop-console/model"
	"github.com/muhammadheryan/shop-console/transport"
	cerr "github.com/muhammadheryan/shop-console/utils/errors"
	"github.com/muhammadheryan/shop-console/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const token = "valid-token"

type fields struct {
	authApp      *authmocks.AuthApp
	shopRepo     *shopmocks.ShopRepository
	productRepo  *productmocks.ProductRepository
	categoryRepo *categorymocks.CategoryRepository
	publisher    *publishermocks.AuditPublisher
	health       map[string]transport.HealthCheck
}

func newFields(t *testing.T) fields {
	logger.Set(zap.NewNop())
	return fields{
		authApp:      authmocks.NewAuthApp(t),
		shopRepo:     shopmocks.NewShopRepository(t),
		productRepo:  productmocks.NewProductRepository(t),
		categoryRepo: categorymocks.NewCategoryRepository(t),
		publisher:    publishermocks.NewAuditPublisher(t),
		health:       map[string]transport.HealthCheck{},
	}
}

func (f fields) handler() http.Handler {
	registry := console.NewRegistry(f.shopRepo, f.productRepo, f.categoryRepo, f.publisher, time.Hour)
	return transport.NewTransport(f.authApp, registry, "ops-key", f.health)
}

func (f fields) authorize() {
	f.authApp.On("ValidateToken", mock.Anything, token).Return("session-1", nil)
}

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, h http.Handler, method, path, body string, withToken bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if withToken {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockCall   func(f fields)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			body: `{"username":"admin","password":"s3cret"}`,
			mockCall: func(f fields) {
				f.authApp.On("Login", mock.Anything, &model.LoginRequest{Username: "admin", Password: "s3cret"}).
					Return(&model.LoginResponse{Username: "admin", Token: "jwt"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name:       "missing password",
			body:       `{"username":"admin"}`,
			mockCall:   func(f fields) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name:       "malformed body",
			body:       `{`,
			mockCall:   func(f fields) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name: "bad credentials",
			body: `{"username":"admin","password":"nope"}`,
			mockCall: func(f fields) {
				f.authApp.On("Login", mock.Anything, mock.Anything).
					Return(nil, cerr.SetCustomError(constant.ErrInvalidPassword)).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidPassword],
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			rec, env := do(t, f.handler(), http.MethodPost, "/login", tt.body, false)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, env.Code)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		f := newFields(t)
		rec, env := do(t, f.handler(), http.MethodGet, "/screens/shops", "", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrUnauthorize], env.Code)
	})

	t.Run("expired session", func(t *testing.T) {
		f := newFields(t)
		f.authApp.On("ValidateToken", mock.Anything, token).Return("", errors.New("invalid or expired session")).Once()

		rec, _ := do(t, f.handler(), http.MethodGet, "/screens/shops", "", true)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestShopScreen(t *testing.T) {
	f := newFields(t)
	f.authorize()
	f.shopRepo.On("ListSorted", mock.Anything, 0, constant.ShopPageSize, "name").Return(&model.Page[model.Shop]{
		Content:    []model.Shop{{ID: 1, Name: "Boulangerie"}},
		TotalPages: 1,
	}, nil).Once()
	h := f.handler()

	rec, env := do(t, h, http.MethodPut, "/screens/shops/sort", `{"sortKey":"name"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		State struct {
			Items   []model.Shop `json:"items"`
			SortKey string       `json:"sortKey"`
		} `json:"state"`
		Screen struct {
			Loading bool `json:"loading"`
		} `json:"screen"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "name", res.State.SortKey)
	require.Len(t, res.State.Items, 1)
	assert.Equal(t, "Boulangerie", res.State.Items[0].Name)
	assert.False(t, res.Screen.Loading)

	rec, env = do(t, h, http.MethodPut, "/screens/shops/sort", `{"sortKey":"price"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], env.Code)

	f.shopRepo.On("List", mock.Anything, 0, constant.ShopPageSize).Return(&model.Page[model.Shop]{
		Content:    []model.Shop{{ID: 1, Name: "Boulangerie", NbProducts: 2}},
		TotalPages: 1,
	}, nil).Once()

	rec, env = do(t, h, http.MethodDelete, "/screens/shops/query", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var reset struct {
		State struct {
			SortKey string `json:"sortKey"`
			Cards   []struct {
				Products string `json:"products"`
			} `json:"cards"`
		} `json:"state"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reset))
	assert.Empty(t, reset.State.SortKey)
	require.Len(t, reset.State.Cards, 1)
	assert.Equal(t, "2 produits", reset.State.Cards[0].Products)
	f.shopRepo.AssertNumberOfCalls(t, "List", 1)
}

func TestProductFormScreen(t *testing.T) {
	f := newFields(t)
	f.authorize()
	h := f.handler()

	rec, _ := do(t, h, http.MethodPost, "/screens/product-form", `{"id":""}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := do(t, h, http.MethodPost, "/screens/product-form/submit", "", true)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrValidation], env.Code)

	var res struct {
		State struct {
			Errors model.FieldErrors `json:"errors"`
		} `json:"state"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "Ce champ est requis", res.State.Errors["nameFr"])

	rec, _ = do(t, h, http.MethodPut, "/screens/product-form/localized", `{"locale":"FR","key":"name","value":"Pain"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	f.productRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.MinimalProduct) bool {
		return p.LocalizedProducts[0].Name == "Pain"
	})).Return(&model.Product{ID: 3}, nil).Once()
	f.publisher.On("PublishAudit", mock.Anything, mock.MatchedBy(func(e model.AuditEvent) bool {
		return e.SessionID == "session-1"
	})).Return(nil).Once()

	rec, env = do(t, h, http.MethodPost, "/screens/product-form/submit", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var done struct {
		Screen struct {
			Toasts     []model.Toast `json:"toasts"`
			NavigateTo string        `json:"navigateTo"`
		} `json:"screen"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &done))
	assert.Equal(t, "/product", done.Screen.NavigateTo)
	require.Len(t, done.Screen.Toasts, 1)
	assert.Equal(t, "Le produit a bien été créé", done.Screen.Toasts[0].Message)
}

func TestProductFormOptions(t *testing.T) {
	f := newFields(t)
	f.authorize()
	f.categoryRepo.On("List", mock.Anything, 1, constant.OptionPageSize).Return(&model.Page[model.Category]{
		Content:    []model.Category{{ID: 8, Name: "Boissons"}},
		TotalPages: 3,
	}, nil).Once()
	h := f.handler()

	rec, env := do(t, h, http.MethodGet, "/screens/product-form/categories?page=1", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var page model.OptionPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, []model.Option{{Value: "8", Label: "Boissons"}}, page.Options)
	assert.True(t, page.HasMore)

	rec, _ = do(t, h, http.MethodGet, "/screens/product-form/categories?page=-1", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout(t *testing.T) {
	f := newFields(t)
	f.authorize()
	f.authApp.On("Logout", mock.Anything, "session-1").Return(nil).Once()

	rec, _ := do(t, f.handler(), http.MethodPost, "/logout", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInternalHealth(t *testing.T) {
	f := newFields(t)
	f.health["redis"] = func(ctx context.Context) error { return nil }
	h := f.handler()

	req := httptest.NewRequest(http.MethodGet, "/internal/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/internal/health", nil)
	req.Header.Set("Authorization", "Bearer ops-key")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	f.health["rabbitmq"] = func(ctx context.Context) error { return errors.New("closed") }
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
