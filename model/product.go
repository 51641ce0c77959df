package model

import (
	"strconv"

	"github.com/muhammadheryan/shop-console/constant"
)

type LocalizedProduct struct {
	ID          uint64          `json:"id,omitempty"`
	Locale      constant.Locale `json:"locale"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
}

// Product is the backend representation; Price is in cents.
type Product struct {
	ID                uint64             `json:"id"`
	Price             int64              `json:"price"`
	Shop              *Shop              `json:"shop"`
	Categories        []Category         `json:"categories"`
	LocalizedProducts []LocalizedProduct `json:"localizedProducts"`
}

// MinimalProduct is the wire shape sent on create and update.
type MinimalProduct struct {
	ID                string             `json:"id,omitempty"`
	Price             int64              `json:"price"`
	Shop              *Shop              `json:"shop"`
	Categories        []Category         `json:"categories"`
	LocalizedProducts []LocalizedProduct `json:"localizedProducts"`
}

// ProductDraft is the form-side shape of a product. Price is in euros and
// LocalizedProducts always holds FR then EN.
type ProductDraft struct {
	ID                string             `json:"id,omitempty"`
	Price             float64            `json:"price"`
	Shop              *Shop              `json:"shop"`
	Categories        []Category         `json:"categories"`
	LocalizedProducts []LocalizedProduct `json:"localizedProducts"`
}

// DraftRules is the declarative rule set checked before a draft is submitted.
type DraftRules struct {
	NameFr        string  `json:"nameFr" validate:"required"`
	NameEn        string  `json:"nameEn" validate:"required_with=DescriptionEn"`
	DescriptionEn string  `json:"-"`
	Price         float64 `json:"price" validate:"gte=0"`
}

// FieldErrors maps a form field to its user-facing message.
type FieldErrors map[string]string

// Valid reports whether every message is empty.
func (f FieldErrors) Valid() bool {
	for _, msg := range f {
		if msg != "" {
			return false
		}
	}
	return true
}

// Option is one entry of a paginated picker.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type OptionPage struct {
	Options []Option `json:"options"`
	HasMore bool     `json:"hasMore"`
}

func formatID(id uint64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatUint(id, 10)
}
