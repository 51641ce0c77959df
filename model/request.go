package model

import "github.com/muhammadheryan/shop-console/constant"

type PageRequest struct {
	Page int `json:"page" validate:"gte=1"`
}

type SortRequest struct {
	SortKey string `json:"sortKey" validate:"omitempty,oneof=name createdAt nbProducts"`
}

type SearchRequest struct {
	Text string `json:"text" validate:"max=255"`
}

type MountRequest struct {
	ID string `json:"id" validate:"omitempty,numeric"`
}

type LocalizedRequest struct {
	Locale constant.Locale `json:"locale" validate:"required,oneof=FR EN"`
	Key    string          `json:"key" validate:"required,oneof=name description"`
	Value  string          `json:"value"`
}

// PriceRequest carries the raw text of the price input.
type PriceRequest struct {
	Price string `json:"price"`
}

type ShopSelectRequest struct {
	Shop *Shop `json:"shop"`
}

type CategoriesRequest struct {
	Categories []Category `json:"categories"`
}
