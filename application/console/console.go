// Package console keeps the screen controllers of every logged-in admin
// session. Controllers are created on first use and dropped on logout or once
// the session lifetime has passed.
package console

import (
	"sync"
	"time"

	"github.com/muhammadheryan/shop-console/application/productform"
	"github.com/muhammadheryan/shop-console/application/screen"
	"github.com/muhammadheryan/shop-console/application/shoplist"
	categoryrepo "github.com/muhammadheryan/shop-console/repository/category"
	productrepo "github.com/muhammadheryan/shop-console/repository/product"
	shoprepo "github.com/muhammadheryan/shop-console/repository/shop"
	"github.com/muhammadheryan/shop-console/thirdparty/rabbitmq"
	"github.com/muhammadheryan/shop-console/utils/logger"
	"go.uber.org/zap"
)

// Screens groups the controllers of one session around a shared screen context.
type Screens struct {
	Session     *screen.Session
	ShopList    shoplist.ShopListApp
	ProductForm productform.ProductFormApp

	createdAt time.Time
}

type Registry interface {
	Screens(sessionID string) *Screens
	Forget(sessionID string)
	Len() int
}

type registry struct {
	shopRepo     shoprepo.ShopRepository
	productRepo  productrepo.ProductRepository
	categoryRepo categoryrepo.CategoryRepository
	publisher    rabbitmq.AuditPublisher
	sessionTTL   time.Duration
	now          func() time.Time

	mu       sync.Mutex
	sessions map[string]*Screens
}

// NewRegistry builds a registry. sessionTTL should match the session
// lifetime in Redis: a session cannot outlive it, so older screens are swept.
// A zero sessionTTL keeps screens until Forget.
func NewRegistry(
	shopRepo shoprepo.ShopRepository,
	productRepo productrepo.ProductRepository,
	categoryRepo categoryrepo.CategoryRepository,
	publisher rabbitmq.AuditPublisher,
	sessionTTL time.Duration,
) Registry {
	return newRegistry(shopRepo, productRepo, categoryRepo, publisher, sessionTTL, time.Now)
}

func newRegistry(
	shopRepo shoprepo.ShopRepository,
	productRepo productrepo.ProductRepository,
	categoryRepo categoryrepo.CategoryRepository,
	publisher rabbitmq.AuditPublisher,
	sessionTTL time.Duration,
	now func() time.Time,
) *registry {
	return &registry{
		shopRepo:     shopRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
		sessionTTL:   sessionTTL,
		now:          now,
		sessions:     make(map[string]*Screens),
	}
}

func (r *registry) Screens(sessionID string) *Screens {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)

	if s, ok := r.sessions[sessionID]; ok {
		return s
	}

	session := screen.NewSession()
	sc := session.Context()
	s := &Screens{
		Session:     session,
		ShopList:    shoplist.NewShopListApp(r.shopRepo, r.publisher, sc),
		ProductForm: productform.NewProductFormApp(r.productRepo, r.shopRepo, r.categoryRepo, r.publisher, sc),
		createdAt:   now,
	}
	r.sessions[sessionID] = s
	return s
}

func (r *registry) Forget(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

func (r *registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *registry) sweepLocked(now time.Time) {
	if r.sessionTTL <= 0 {
		return
	}
	for id, s := range r.sessions {
		if now.Sub(s.createdAt) >= r.sessionTTL {
			delete(r.sessions, id)
			logger.Debug("[console.sweep] dropped expired session screens", zap.String("session", id))
		}
	}
}
