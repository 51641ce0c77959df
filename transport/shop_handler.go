package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/shop-console/application/console"
	"github.com/muhammadheryan/shop-console/application/shoplist"
	"github.com/muhammadheryan/shop-console/model"
)

func writeShopList(w http.ResponseWriter, sc *console.Screens, view shoplist.View) {
	writeSuccess(w, ScreenResponse{State: view, Screen: sc.Session.Drain()})
}

// ShopListView handler
// @Summary Shop list state
// @Tags Shops
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ScreenResponse
// @Router /screens/shops [get]
func (s *RestHandler) ShopListView(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeShopList(w, sc, sc.ShopList.View())
}

// ShopListLoad handler
// @Summary Fetch the current shop page
// @Tags Shops
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ScreenResponse
// @Router /screens/shops/load [post]
func (s *RestHandler) ShopListLoad(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeShopList(w, sc, sc.ShopList.Load(r.Context()))
}

// ShopListPage handler
// @Summary Select a page (one-based)
// @Tags Shops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PageRequest true "Page"
// @Success 200 {object} ScreenResponse
// @Failure 400 {object} Response
// @Router /screens/shops/page [put]
func (s *RestHandler) ShopListPage(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.PageRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	writeShopList(w, sc, sc.ShopList.SetPage(r.Context(), req.Page))
}

// ShopListSort handler
// @Summary Sort shops
// @Description Sort key is one of name, createdAt, nbProducts or empty
// @Tags Shops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SortRequest true "Sort"
// @Success 200 {object} ScreenResponse
// @Failure 400 {object} Response
// @Router /screens/shops/sort [put]
func (s *RestHandler) ShopListSort(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.SortRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	view, err := sc.ShopList.SetSort(r.Context(), req.SortKey)
	if err != nil {
		writeErrorData(w, err, view)
		return
	}
	writeShopList(w, sc, view)
}

// ShopListFilter handler
// @Summary Filter shops
// @Tags Shops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ShopFilter true "Filters"
// @Success 200 {object} ScreenResponse
// @Failure 400 {object} Response
// @Router /screens/shops/filter [put]
func (s *RestHandler) ShopListFilter(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ShopFilter
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	writeShopList(w, sc, sc.ShopList.SetFilter(r.Context(), req))
}

// ShopListSearch handler
// @Summary Search shops by text
// @Tags Shops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SearchRequest true "Search"
// @Success 200 {object} ScreenResponse
// @Failure 400 {object} Response
// @Router /screens/shops/search [put]
func (s *RestHandler) ShopListSearch(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.SearchRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	writeShopList(w, sc, sc.ShopList.SetSearch(r.Context(), req.Text))
}

// ShopListDismissError handler
// @Summary Dismiss the error banner
// @Tags Shops
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ScreenResponse
// @Router /screens/shops/error [delete]
func (s *RestHandler) ShopListDismissError(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeShopList(w, sc, sc.ShopList.DismissError())
}

// ShopListReset handler
// @Summary Clear search text, filters and sort
// @Tags Shops
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ScreenResponse
// @Router /screens/shops/query [delete]
func (s *RestHandler) ShopListReset(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeShopList(w, sc, sc.ShopList.Reset(r.Context()))
}

// ShopListToggleVacations handler
// @Summary Toggle the vacation flag of a shop
// @Tags Shops
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shop ID"
// @Success 200 {object} ScreenResponse
// @Router /screens/shops/{id}/vacations [post]
func (s *RestHandler) ShopListToggleVacations(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeShopList(w, sc, sc.ShopList.ToggleVacations(r.Context(), mux.Vars(r)["id"]))
}

// ShopListDelete handler
// @Summary Delete a shop
// @Tags Shops
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shop ID"
// @Success 200 {object} ScreenResponse
// @Router /screens/shops/{id} [delete]
func (s *RestHandler) ShopListDelete(w http.ResponseWriter, r *http.Request) {
	sc, err := s.screens(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeShopList(w, sc, sc.ShopList.DeleteShop(r.Context(), mux.Vars(r)["id"]))
}
