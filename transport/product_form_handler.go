package transport

import (
	"net/http"
	"strconv"

	"github.com/muhammadheryan/shop-console/application/console"
	"github.com/muhammadheryan/shop-console/application/productform"
	"github.com/muhammadheryan/shop-console/constant"
	"github.com/muhammadheryan/shop-console/model"
	"github.com/muhammadheryan/shop-console/utils/errors"
)

func productFormResponse(sc *console.Screens, st productform.State) ScreenResponse {
	return ScreenResponse{State: st, Screen: sc.Session.Drain()}
}

// ProductFormMount handler
// @Summary Open the product form
// @Description An empty id opens a create form, otherwise the product is loaded for edition
// @Tags ProductForm
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.MountRequest true "Product ID"
// @Success 200 {object} ScreenResponse
// @Failure 404 {object} Response
// @Router /screens/product-form [post]
func (s *RestHandler) ProductFormMount(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.MountRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	st, err := sc.ProductForm.Mount(r.Context(), req.ID)
	if err != nil {
		writeErrorData(w, err, productFormResponse(sc, st))
		return
	}
	writeSuccess(w, productFormResponse(sc, st))
}

// ProductFormState handler
// @Summary Product form state
// @Tags ProductForm
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ScreenResponse
// @Router /screens/product-form [get]
func (s *RestHandler) ProductFormState(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, productFormResponse(sc, sc.ProductForm.State()))
}

// ProductFormLocalized handler
// @Summary Edit a localized name or description
// @Tags ProductForm
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.LocalizedRequest true "Localized field"
// @Success 200 {object} ScreenResponse
// @Failure 400 {object} Response
// @Router /screens/product-form/localized [put]
func (s *RestHandler) ProductFormLocalized(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.LocalizedRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	st, err := sc.ProductForm.SetLocalized(req.Locale, req.Key, req.Value)
	if err != nil {
		writeErrorData(w, err, productFormResponse(sc, st))
		return
	}
	writeSuccess(w, productFormResponse(sc, st))
}

// ProductFormPrice handler
// @Summary Edit the price
// @Description Raw input in euros; unparsable input counts as zero
// @Tags ProductForm
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PriceRequest true "Price"
// @Success 200 {object} ScreenResponse
// @Router /screens/product-form/price [put]
func (s *RestHandler) ProductFormPrice(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.PriceRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, productFormResponse(sc, sc.ProductForm.SetPrice(req.Price)))
}

// ProductFormShop handler
// @Summary Select the owning shop
// @Tags ProductForm
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ShopSelectRequest true "Shop"
// @Success 200 {object} ScreenResponse
// @Router /screens/product-form/shop [put]
func (s *RestHandler) ProductFormShop(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ShopSelectRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, productFormResponse(sc, sc.ProductForm.SetShop(req.Shop)))
}

// ProductFormCategories handler
// @Summary Select categories
// @Tags ProductForm
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CategoriesRequest true "Categories"
// @Success 200 {object} ScreenResponse
// @Router /screens/product-form/categories [put]
func (s *RestHandler) ProductFormCategories(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CategoriesRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, productFormResponse(sc, sc.ProductForm.SetCategories(req.Categories)))
}

// ProductFormSubmit handler
// @Summary Submit the product form
// @Tags ProductForm
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ScreenResponse
// @Failure 409 {object} Response
// @Failure 422 {object} Response
// @Router /screens/product-form/submit [post]
func (s *RestHandler) ProductFormSubmit(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}

	st, err := sc.ProductForm.Submit(r.Context())
	if err != nil {
		writeErrorData(w, err, productFormResponse(sc, st))
		return
	}
	writeSuccess(w, productFormResponse(sc, st))
}

// ProductFormShopOptions handler
// @Summary Shop picker options
// @Tags ProductForm
// @Produce json
// @Security BearerAuth
// @Param page query int false "Zero-based page"
// @Success 200 {object} model.OptionPage
// @Router /screens/product-form/shops [get]
func (s *RestHandler) ProductFormShopOptions(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}

	page, err := pageParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := sc.ProductForm.ShopOptions(r.Context(), page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ProductFormCategoryOptions handler
// @Summary Category picker options
// @Tags ProductForm
// @Produce json
// @Security BearerAuth
// @Param page query int false "Zero-based page"
// @Success 200 {object} model.OptionPage
// @Router /screens/product-form/categories [get]
func (s *RestHandler) ProductFormCategoryOptions(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}

	page, err := pageParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := sc.ProductForm.CategoryOptions(r.Context(), page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 0, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return page, nil
}
