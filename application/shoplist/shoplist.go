package shoplist

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/muhammadheryan/shop-console/application/screen"
	"github.com/muhammadheryan/shop-console/constant"
	"github.com/muhammadheryan/shop-console/model"
	shoprepo "github.com/muhammadheryan/shop-console/repository/shop"
	"github.com/muhammadheryan/shop-console/thirdparty/rabbitmq"
	utilsContext "github.com/muhammadheryan/shop-console/utils/context"
	"github.com/muhammadheryan/shop-console/utils/errors"
	"github.com/muhammadheryan/shop-console/utils/formatter"
	"github.com/muhammadheryan/shop-console/utils/logger"
	"go.uber.org/zap"
)

// ShopListApp drives the shop list screen. Every change of page, sort,
// filter or search text issues exactly one fetch; search takes precedence
// over sort, sort over filters, filters over plain pagination.
type ShopListApp interface {
	Load(ctx context.Context) View
	SetPage(ctx context.Context, page int) View
	SetSort(ctx context.Context, sortKey string) (View, error)
	SetFilter(ctx context.Context, filter model.ShopFilter) View
	SetSearch(ctx context.Context, text string) View
	DismissError() View
	Reset(ctx context.Context) View
	View() View
	ToggleVacations(ctx context.Context, id string) View
	DeleteShop(ctx context.Context, id string) View
}

// View is a snapshot of the screen state. CurrentPage is one-based,
// PageSelected zero-based.
type View struct {
	Items        []model.Shop     `json:"items"`
	Cards        []ShopCard       `json:"cards"`
	TotalPages   int              `json:"totalPages"`
	CurrentPage  int              `json:"currentPage"`
	PageSelected int              `json:"pageSelected"`
	SortKey      string           `json:"sortKey"`
	Filter       model.ShopFilter `json:"filter"`
	SearchText   string           `json:"searchText"`
	Loading      bool             `json:"loading"`
	Error        string           `json:"error,omitempty"`
	Empty        bool             `json:"empty"`
}

// ShopCard is the display form of a shop in the list.
type ShopCard struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	CreatedOn  string `json:"createdOn"`
	Products   string `json:"products"`
	Categories string `json:"categories"`
	Status     string `json:"status"`
}

func toCard(shop model.Shop) ShopCard {
	status := "Ouverte"
	if shop.InVacations {
		status = "En congé"
	}
	return ShopCard{
		ID:         shop.ID,
		Name:       shop.Name,
		CreatedOn:  formatter.FormatDate(shop.CreatedAt),
		Products:   fmt.Sprintf("%d %s", shop.NbProducts, formatter.Pluralize("produit", shop.NbProducts)),
		Categories: fmt.Sprintf("%d %s", shop.NbDistinctCategories, formatter.Pluralize("catégorie", shop.NbDistinctCategories)),
		Status:     status,
	}
}

type query struct {
	page     int
	sortKey  string
	fragment string
	search   string
}

type shopListAppImpl struct {
	shopRepo  shoprepo.ShopRepository
	publisher rabbitmq.AuditPublisher
	screen    screen.Context
	now       func() time.Time

	mu           sync.Mutex
	items        []model.Shop
	totalPages   int
	currentPage  int
	pageSelected int
	sortKey      string
	filter       model.ShopFilter
	searchText   string
	loading      bool
	err          string
	fetched      bool

	// gen identifies the latest fetch; older results are dropped.
	gen    uint64
	cancel context.CancelFunc
}

func NewShopListApp(shopRepo shoprepo.ShopRepository, publisher rabbitmq.AuditPublisher, sc screen.Context) ShopListApp {
	return &shopListAppImpl{
		shopRepo:    shopRepo,
		publisher:   publisher,
		screen:      sc,
		now:         time.Now,
		items:       []model.Shop{},
		currentPage: 1,
	}
}

func (s *shopListAppImpl) Load(ctx context.Context) View {
	s.fetch(ctx)
	return s.View()
}

// SetPage selects a one-based page.
func (s *shopListAppImpl) SetPage(ctx context.Context, page int) View {
	selected := page - 1
	if selected < 0 {
		selected = 0
	}
	return s.change(ctx, func() { s.pageSelected = selected })
}

func (s *shopListAppImpl) SetSort(ctx context.Context, sortKey string) (View, error) {
	if !validSortKey(sortKey) {
		return s.View(), errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return s.change(ctx, func() {
		s.sortKey = sortKey
		s.pageSelected = 0
	}), nil
}

func (s *shopListAppImpl) SetFilter(ctx context.Context, filter model.ShopFilter) View {
	return s.change(ctx, func() {
		s.filter = filter
		s.pageSelected = 0
	})
}

func (s *shopListAppImpl) SetSearch(ctx context.Context, text string) View {
	return s.change(ctx, func() {
		s.searchText = text
		s.pageSelected = 0
	})
}

// DismissError clears the banner without fetching again.
func (s *shopListAppImpl) DismissError() View {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
	return s.View()
}

// Reset clears search text, filters and sort in one step.
func (s *shopListAppImpl) Reset(ctx context.Context) View {
	return s.change(ctx, func() {
		s.searchText = ""
		s.filter = model.ShopFilter{}
		s.sortKey = ""
		s.pageSelected = 0
	})
}

func (s *shopListAppImpl) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.Shop, len(s.items))
	copy(items, s.items)
	cards := make([]ShopCard, 0, len(items))
	for _, shop := range items {
		cards = append(cards, toCard(shop))
	}
	return View{
		Items:        items,
		Cards:        cards,
		TotalPages:   s.totalPages,
		CurrentPage:  s.currentPage,
		PageSelected: s.pageSelected,
		SortKey:      s.sortKey,
		Filter:       s.filter,
		SearchText:   s.searchText,
		Loading:      s.loading,
		Error:        s.err,
		Empty:        s.fetched && !s.loading && s.err == "" && len(s.items) == 0,
	}
}

func (s *shopListAppImpl) ToggleVacations(ctx context.Context, id string) View {
	shop, err := s.shopRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[ToggleVacations] error shopRepo.Get", zap.String("id", id), zap.String("error", err.Error()))
		return s.fail(err)
	}

	update := shop.ToMinimal()
	update.InVacations = !update.InVacations
	if _, err := s.shopRepo.Update(ctx, &update); err != nil {
		logger.Error("[ToggleVacations] error shopRepo.Update", zap.String("id", id), zap.String("error", err.Error()))
		return s.fail(err)
	}

	s.audit(ctx, "updated", id)
	return s.Load(ctx)
}

func (s *shopListAppImpl) DeleteShop(ctx context.Context, id string) View {
	if err := s.shopRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteShop] error shopRepo.Delete", zap.String("id", id), zap.String("error", err.Error()))
		return s.fail(err)
	}

	s.audit(ctx, "deleted", id)
	return s.Load(ctx)
}

// change applies mutate and fetches only when the query inputs moved.
func (s *shopListAppImpl) change(ctx context.Context, mutate func()) View {
	s.mu.Lock()
	before := s.queryLocked()
	mutate()
	changed := s.queryLocked() != before
	s.mu.Unlock()

	if changed {
		s.fetch(ctx)
	}
	return s.View()
}

func (s *shopListAppImpl) queryLocked() query {
	return query{
		page:     s.pageSelected,
		sortKey:  s.sortKey,
		fragment: s.filter.Fragment(),
		search:   s.searchText,
	}
}

func (s *shopListAppImpl) fetch(ctx context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	q := s.queryLocked()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	s.screen.Loading.Start()
	page, err := s.run(fetchCtx, q)
	s.screen.Loading.Done()
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		logger.Debug("[ShopList.fetch] dropped superseded result", zap.Uint64("gen", gen))
		return
	}
	s.cancel = nil
	s.loading = false
	s.fetched = true

	if err != nil {
		logger.Error("[ShopList.fetch] error loading shops", zap.Int("page", q.page), zap.String("error", err.Error()))
		s.items = []model.Shop{}
		s.totalPages = 0
		s.currentPage = 1
		s.err = err.Error()
		return
	}

	s.items = page.Content
	if s.items == nil {
		s.items = []model.Shop{}
	}
	s.totalPages = page.TotalPages
	s.currentPage = page.DisplayPage()
}

func (s *shopListAppImpl) run(ctx context.Context, q query) (*model.Page[model.Shop], error) {
	size := constant.ShopPageSize
	switch {
	case strings.TrimSpace(q.search) != "":
		return s.shopRepo.Search(ctx, q.page, size, model.SearchFragment(q.search, q.fragment))
	case q.sortKey != "":
		return s.shopRepo.ListSorted(ctx, q.page, size, q.sortKey)
	case q.fragment != "":
		return s.shopRepo.ListFiltered(ctx, q.page, size, q.fragment)
	default:
		return s.shopRepo.List(ctx, q.page, size)
	}
}

func (s *shopListAppImpl) fail(err error) View {
	s.mu.Lock()
	s.err = err.Error()
	s.mu.Unlock()
	return s.View()
}

func (s *shopListAppImpl) audit(ctx context.Context, action, id string) {
	sessionID, _ := utilsContext.GetSessionID(ctx)
	event := model.AuditEvent{
		Action:     action,
		Resource:   "shop",
		ResourceID: id,
		SessionID:  sessionID,
		At:         s.now(),
	}
	if err := s.publisher.PublishAudit(ctx, event); err != nil {
		logger.Warn("[ShopList.audit] publish failed", zap.String("action", action), zap.String("error", err.Error()))
	}
}

func validSortKey(key string) bool {
	if key == "" {
		return true
	}
	for _, k := range constant.ShopSortKeys {
		if k == key {
			return true
		}
	}
	return false
}
