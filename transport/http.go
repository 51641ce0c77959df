package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	authapp "github.com/muhammadheryan/shop-console/application/auth"
	"github.com/muhammadheryan/shop-console/application/console"
	"github.com/muhammadheryan/shop-console/application/screen"
	"github.com/muhammadheryan/shop-console/constant"
	"github.com/muhammadheryan/shop-console/model"
	utilsContext "github.com/muhammadheryan/shop-console/utils/context"
	"github.com/muhammadheryan/shop-console/utils/errors"
	validatorx "github.com/muhammadheryan/shop-console/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

// HealthCheck reports whether a dependency of the console is usable.
type HealthCheck func(ctx context.Context) error

type RestHandler struct {
	AuthApp  authapp.AuthApp
	Registry console.Registry
	Health   map[string]HealthCheck
}

// ScreenResponse pairs a controller snapshot with the drained screen signals.
type ScreenResponse struct {
	State  interface{}     `json:"state"`
	Screen screen.Snapshot `json:"screen"`
}

// NewTransport builds the console router. Internal routes are only mounted
// when internalAPIKey is set.
func NewTransport(AuthApp authapp.AuthApp, Registry console.Registry, internalAPIKey string, health map[string]HealthCheck) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:  AuthApp,
		Registry: Registry,
		Health:   health,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/notifications", rh.Notifications).Methods(http.MethodGet)

	mux.HandleFunc("/screens/shops", rh.ShopListView).Methods(http.MethodGet)
	mux.HandleFunc("/screens/shops/load", rh.ShopListLoad).Methods(http.MethodPost)
	mux.HandleFunc("/screens/shops/page", rh.ShopListPage).Methods(http.MethodPut)
	mux.HandleFunc("/screens/shops/sort", rh.ShopListSort).Methods(http.MethodPut)
	mux.HandleFunc("/screens/shops/filter", rh.ShopListFilter).Methods(http.MethodPut)
	mux.HandleFunc("/screens/shops/search", rh.ShopListSearch).Methods(http.MethodPut)
	mux.HandleFunc("/screens/shops/error", rh.ShopListDismissError).Methods(http.MethodDelete)
	mux.HandleFunc("/screens/shops/query", rh.ShopListReset).Methods(http.MethodDelete)
	mux.HandleFunc("/screens/shops/{id:[0-9]+}/vacations", rh.ShopListToggleVacations).Methods(http.MethodPost)
	mux.HandleFunc("/screens/shops/{id:[0-9]+}", rh.ShopListDelete).Methods(http.MethodDelete)

	mux.HandleFunc("/screens/product-form", rh.ProductFormMount).Methods(http.MethodPost)
	mux.HandleFunc("/screens/product-form", rh.ProductFormState).Methods(http.MethodGet)
	mux.HandleFunc("/screens/product-form/localized", rh.ProductFormLocalized).Methods(http.MethodPut)
	mux.HandleFunc("/screens/product-form/price", rh.ProductFormPrice).Methods(http.MethodPut)
	mux.HandleFunc("/screens/product-form/shop", rh.ProductFormShop).Methods(http.MethodPut)
	mux.HandleFunc("/screens/product-form/categories", rh.ProductFormCategories).Methods(http.MethodPut)
	mux.HandleFunc("/screens/product-form/submit", rh.ProductFormSubmit).Methods(http.MethodPost)
	mux.HandleFunc("/screens/product-form/shops", rh.ProductFormShopOptions).Methods(http.MethodGet)
	mux.HandleFunc("/screens/product-form/categories", rh.ProductFormCategoryOptions).Methods(http.MethodGet)

	if internalAPIKey != "" {
		internal := mux.PathPrefix("/internal").Subrouter()
		internal.Use(InternalMiddleware(internalAPIKey))
		internal.HandleFunc("/health", rh.InternalHealth).Methods(http.MethodGet)
	}

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(AuthApp))

	return mux
}

// decodeRequest decodes the JSON body into req and validates it.
func decodeRequest(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.NewCustomError(constant.ErrInvalidRequest, err.Error())
	}
	return nil
}

// screens returns the controllers of the caller's session.
func (s *RestHandler) screens(r *http.Request) (*console.Screens, error) {
	sessionID, ok := utilsContext.GetSessionID(r.Context())
	if !ok || s.Registry == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return s.Registry.Screens(sessionID), nil
}

// Login handler
// @Summary Login admin
// @Description Login with the admin account and receive a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if s.AuthApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout admin
// @Description Ends the session and drops its screens
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.AuthApp.Logout(ctx, sessionID); err != nil {
		writeError(w, err)
		return
	}
	s.Registry.Forget(sessionID)

	writeSuccess(w, nil)
}

// Notifications handler
// @Summary Drain screen signals
// @Description Returns and clears pending toasts, the last navigation target and the loading flag
// @Tags Screens
// @Produce json
// @Security BearerAuth
// @Success 200 {object} screen.Snapshot
// @Router /notifications [get]
func (s *RestHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, sc.Session.Drain())
}

// InternalHealth reports the state of each dependency.
func (s *RestHandler) InternalHealth(w http.ResponseWriter, r *http.Request) {
	status := make(map[string]string, len(s.Health))
	healthy := true
	for name, check := range s.Health {
		if err := check(r.Context()); err != nil {
			status[name] = err.Error()
			healthy = false
			continue
		}
		status[name] = "ok"
	}

	if !healthy {
		writeErrorData(w, errors.SetCustomError(constant.ErrServer), status)
		return
	}
	writeSuccess(w, status)
}
