package productform

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/muhammadheryan/shop-console/application/screen"
	"github.com/muhammadheryan/shop-console/constant"
	"github.com/muhammadheryan/shop-console/model"
	categoryrepo "github.com/muhammadheryan/shop-console/repository/category"
	productrepo "github.com/muhammadheryan/shop-console/repository/product"
	shoprepo "github.com/muhammadheryan/shop-console/repository/shop"
	"github.com/muhammadheryan/shop-console/thirdparty/rabbitmq"
	utilsContext "github.com/muhammadheryan/shop-console/utils/context"
	"github.com/muhammadheryan/shop-console/utils/errors"
	"github.com/muhammadheryan/shop-console/utils/formatter"
	"github.com/muhammadheryan/shop-console/utils/logger"
	validatorx "github.com/muhammadheryan/shop-console/utils/validator"
	"go.uber.org/zap"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

const (
	FieldNameFr = "nameFr"
	FieldNameEn = "nameEn"
	FieldPrice  = "price"
)

const (
	msgCreated     = "Le produit a bien été créé"
	msgEdited      = "Le produit a bien été modifié"
	msgCreateError = "Une erreur est survenue lors de la création"
	msgEditError   = "Une erreur est survenue lors de la modification"
)

var ruleMessages = map[string]string{
	FieldNameFr + ".required":      "Ce champ est requis",
	FieldNameEn + ".required_with": "Une description est fournie en anglais donc le nom est requis",
	FieldPrice + ".gte":            "Le prix ne peut pas être un nombre négatif",
}

type ProductFormApp interface {
	Mount(ctx context.Context, id string) (State, error)
	State() State
	SetLocalized(locale constant.Locale, key, value string) (State, error)
	SetPrice(raw string) State
	SetShop(shop *model.Shop) State
	SetCategories(categories []model.Category) State
	Submit(ctx context.Context) (State, error)
	ShopOptions(ctx context.Context, page int) (*model.OptionPage, error)
	CategoryOptions(ctx context.Context, page int) (*model.OptionPage, error)
}

// State is a snapshot of the form. Blocked is set while an edit-mode load is
// pending or after it failed; a blocked form cannot be submitted. PriceLabel
// is the draft price as displayed, e.g. "12,34 €".
type State struct {
	Mode       Mode               `json:"mode"`
	ID         string             `json:"id,omitempty"`
	Draft      model.ProductDraft `json:"draft"`
	Errors     model.FieldErrors  `json:"errors"`
	LoadError  string             `json:"loadError,omitempty"`
	Blocked    bool               `json:"blocked"`
	Submitting bool               `json:"submitting"`
	PriceLabel string             `json:"priceLabel"`
}

type productFormAppImpl struct {
	productRepo  productrepo.ProductRepository
	shopRepo     shoprepo.ShopRepository
	categoryRepo categoryrepo.CategoryRepository
	publisher    rabbitmq.AuditPublisher
	screen       screen.Context
	now          func() time.Time

	mu         sync.Mutex
	mode       Mode
	id         string
	draft      model.ProductDraft
	errors     model.FieldErrors
	loadErr    string
	blocked    bool
	submitting bool
	mountGen   uint64
}

func NewProductFormApp(
	productRepo productrepo.ProductRepository,
	shopRepo shoprepo.ShopRepository,
	categoryRepo categoryrepo.CategoryRepository,
	publisher rabbitmq.AuditPublisher,
	sc screen.Context,
) ProductFormApp {
	return &productFormAppImpl{
		productRepo:  productRepo,
		shopRepo:     shopRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
		screen:       sc,
		now:          time.Now,
		mode:         ModeCreate,
		draft:        blankDraft(),
		errors:       model.FieldErrors{},
	}
}

func blankDraft() model.ProductDraft {
	return model.ProductDraft{
		Categories:        []model.Category{},
		LocalizedProducts: formatter.BlankLocales(),
	}
}

// Mount resets the form. An empty id opens a blank create form; otherwise the
// product is fetched and the form stays blocked until it loads.
func (s *productFormAppImpl) Mount(ctx context.Context, id string) (State, error) {
	s.mu.Lock()
	s.mountGen++
	gen := s.mountGen
	s.id = id
	s.draft = blankDraft()
	s.errors = model.FieldErrors{}
	s.loadErr = ""
	if id == "" {
		s.mode = ModeCreate
		s.blocked = false
		s.mu.Unlock()
		return s.State(), nil
	}
	s.mode = ModeEdit
	s.blocked = true
	s.mu.Unlock()

	s.screen.Loading.Start()
	product, err := s.productRepo.Get(ctx, id)
	s.screen.Loading.Done()

	s.mu.Lock()
	if gen != s.mountGen {
		s.mu.Unlock()
		return s.State(), nil
	}
	if err != nil {
		s.loadErr = err.Error()
		s.mu.Unlock()
		logger.Error("[Mount] error productRepo.Get", zap.String("id", id), zap.String("error", err.Error()))
		s.screen.Notifier.Notify(model.SeverityError, err.Error())
		return s.State(), err
	}
	s.draft = formatter.ToDraft(product)
	s.draft.ID = id
	s.blocked = false
	s.mu.Unlock()

	return s.State(), nil
}

func (s *productFormAppImpl) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *productFormAppImpl) stateLocked() State {
	errs := make(model.FieldErrors, len(s.errors))
	for k, v := range s.errors {
		errs[k] = v
	}
	return State{
		Mode:       s.mode,
		ID:         s.id,
		Draft:      copyDraft(s.draft),
		Errors:     errs,
		LoadError:  s.loadErr,
		Blocked:    s.blocked,
		Submitting: s.submitting,
		PriceLabel: formatter.FormatPrice(formatter.EurosToCents(s.draft.Price)),
	}
}

func copyDraft(d model.ProductDraft) model.ProductDraft {
	out := d
	out.Categories = append([]model.Category{}, d.Categories...)
	out.LocalizedProducts = append([]model.LocalizedProduct{}, d.LocalizedProducts...)
	if d.Shop != nil {
		shop := *d.Shop
		out.Shop = &shop
	}
	return out
}

// SetLocalized updates the name or description of one locale.
func (s *productFormAppImpl) SetLocalized(locale constant.Locale, key, value string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lp := formatter.LocalizedProduct(s.draft.LocalizedProducts, locale)
	if lp == nil {
		return s.stateLocked(), errors.SetCustomError(constant.ErrInvalidRequest)
	}
	switch key {
	case "name":
		lp.Name = value
	case "description":
		lp.Description = value
	default:
		return s.stateLocked(), errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return s.stateLocked(), nil
}

// SetPrice stores raw as euros with two decimals; unparsable input is zero.
func (s *productFormAppImpl) SetPrice(raw string) State {
	cents, err := formatter.ParsePriceToCents(raw)
	if err != nil {
		cents = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Price = formatter.CentsToEuros(cents)
	return s.stateLocked()
}

// SetShop selects the owning shop; nil or the "Aucune" entry clears it.
func (s *productFormAppImpl) SetShop(shop *model.Shop) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if shop == nil || shop.Name == constant.NoneLabel {
		s.draft.Shop = nil
	} else {
		selected := *shop
		s.draft.Shop = &selected
	}
	return s.stateLocked()
}

func (s *productFormAppImpl) SetCategories(categories []model.Category) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Categories = append([]model.Category{}, categories...)
	return s.stateLocked()
}

// Validate runs the draft rules and returns one entry per form field.
func Validate(d model.ProductDraft) model.FieldErrors {
	fr := formatter.LocalizedProduct(d.LocalizedProducts, constant.LocaleFR)
	en := formatter.LocalizedProduct(d.LocalizedProducts, constant.LocaleEN)

	rules := model.DraftRules{Price: d.Price}
	if fr != nil {
		rules.NameFr = fr.Name
	}
	if en != nil {
		rules.NameEn = en.Name
		rules.DescriptionEn = en.Description
	}

	out := model.FieldErrors{FieldNameFr: "", FieldNameEn: "", FieldPrice: ""}
	for field, msg := range validatorx.ValidateFields(&rules, ruleMessages) {
		out[field] = msg
	}
	return out
}

func (s *productFormAppImpl) Submit(ctx context.Context) (State, error) {
	s.mu.Lock()
	if s.blocked {
		st := s.stateLocked()
		s.mu.Unlock()
		return st, errors.SetCustomError(constant.ErrFormBlocked)
	}
	if s.submitting {
		st := s.stateLocked()
		s.mu.Unlock()
		return st, errors.SetCustomError(constant.ErrSubmitInFlight)
	}
	s.errors = Validate(s.draft)
	if !s.errors.Valid() {
		st := s.stateLocked()
		s.mu.Unlock()
		return st, errors.SetCustomError(constant.ErrValidation)
	}
	s.submitting = true
	mode, id := s.mode, s.id
	wire := formatter.ToMinimalProduct(s.draft)
	s.mu.Unlock()

	s.screen.Loading.Start()
	var (
		saved *model.Product
		err   error
	)
	if mode == ModeCreate {
		saved, err = s.productRepo.Create(ctx, &wire)
	} else {
		saved, err = s.productRepo.Update(ctx, &wire)
	}
	s.screen.Loading.Done()

	if err != nil {
		logger.Error("[Submit] error saving product", zap.String("mode", string(mode)), zap.String("error", err.Error()))
		msg := msgCreateError
		if mode == ModeEdit {
			msg = msgEditError
		}
		s.screen.Notifier.Notify(model.SeverityError, msg)
		return s.finishSubmit(), err
	}

	if mode == ModeCreate {
		if saved != nil && saved.ID != 0 {
			id = strconv.FormatUint(saved.ID, 10)
		}
		s.screen.Navigator.Navigate("/product")
		s.screen.Notifier.Notify(model.SeveritySuccess, msgCreated)
		s.audit(ctx, "created", id)
	} else {
		s.screen.Navigator.Navigate("/product/" + id)
		s.screen.Notifier.Notify(model.SeveritySuccess, msgEdited)
		s.audit(ctx, "updated", id)
	}
	return s.finishSubmit(), nil
}

// finishSubmit releases the in-flight guard and snapshots the form.
func (s *productFormAppImpl) finishSubmit() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	return s.stateLocked()
}

// ShopOptions lists shops for the shop picker; page zero starts with "Aucune".
func (s *productFormAppImpl) ShopOptions(ctx context.Context, page int) (*model.OptionPage, error) {
	res, err := s.shopRepo.List(ctx, page, constant.OptionPageSize)
	if err != nil {
		logger.Error("[ShopOptions] error shopRepo.List", zap.String("error", err.Error()))
		return nil, err
	}
	options := make([]model.Option, 0, len(res.Content))
	for _, shop := range res.Content {
		options = append(options, model.Option{Value: strconv.FormatUint(shop.ID, 10), Label: shop.Name})
	}
	return optionPage(page, res.TotalPages, options), nil
}

func (s *productFormAppImpl) CategoryOptions(ctx context.Context, page int) (*model.OptionPage, error) {
	res, err := s.categoryRepo.List(ctx, page, constant.OptionPageSize)
	if err != nil {
		logger.Error("[CategoryOptions] error categoryRepo.List", zap.String("error", err.Error()))
		return nil, err
	}
	options := make([]model.Option, 0, len(res.Content))
	for _, category := range res.Content {
		options = append(options, model.Option{Value: strconv.FormatUint(category.ID, 10), Label: category.Name})
	}
	return optionPage(page, res.TotalPages, options), nil
}

func optionPage(page, totalPages int, options []model.Option) *model.OptionPage {
	if page == 0 {
		options = append([]model.Option{{Value: "", Label: constant.NoneLabel}}, options...)
	}
	return &model.OptionPage{Options: options, HasMore: page+1 < totalPages}
}

func (s *productFormAppImpl) audit(ctx context.Context, action, id string) {
	sessionID, _ := utilsContext.GetSessionID(ctx)
	event := model.AuditEvent{
		Action:     action,
		Resource:   "product",
		ResourceID: id,
		SessionID:  sessionID,
		At:         s.now(),
	}
	if err := s.publisher.PublishAudit(ctx, event); err != nil {
		logger.Warn("[ProductForm.audit] publish failed", zap.String("action", action), zap.String("error", err.Error()))
	}
}
