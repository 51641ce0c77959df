package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/muhammadheryan/shop-console/constant"
	"github.com/muhammadheryan/shop-console/model"
)

// Pluralize appends an "s" to word when nb is greater than one.
func Pluralize(word string, nb int64) string {
	if nb > 1 {
		return word + "s"
	}
	return word
}

// FormatPrice renders cents as French-formatted euros, e.g. 123456 -> "1 234,56 €".
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%s,%02d €", sign, groupThousands(cents/100), cents%100)
}

func groupThousands(n int64) string {
	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// ParsePriceToCents reads a euro amount such as "12,34 €" or "12.34" and
// returns it in cents. An empty string is zero.
func ParsePriceToCents(price string) (int64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == '€' || unicode.IsSpace(r) {
			return -1
		}
		if r == ',' {
			return '.'
		}
		return r
	}, price)
	if cleaned == "" {
		return 0, nil
	}

	euros, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(euros) || math.IsInf(euros, 0) {
		return 0, fmt.Errorf("invalid price %q", price)
	}
	return EurosToCents(euros), nil
}

func EurosToCents(euros float64) int64 {
	return int64(math.Round(euros * 100))
}

func CentsToEuros(cents int64) float64 {
	return float64(cents) / 100
}

// RoundEuros keeps two decimal digits.
func RoundEuros(euros float64) float64 {
	return math.Round(euros*100) / 100
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders a backend timestamp as dd/mm/yyyy. Unknown layouts are
// returned unchanged.
func FormatDate(value string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return value
}

// LocalizedProduct returns the entry of list for locale, or nil.
func LocalizedProduct(list []model.LocalizedProduct, locale constant.Locale) *model.LocalizedProduct {
	for i := range list {
		if list[i].Locale == locale {
			return &list[i]
		}
	}
	return nil
}

// ToDraft shapes a backend product for the form: euros, FR then EN, no
// missing descriptions.
func ToDraft(p *model.Product) model.ProductDraft {
	draft := model.ProductDraft{
		Price:      RoundEuros(CentsToEuros(p.Price)),
		Shop:       p.Shop,
		Categories: p.Categories,
	}
	if p.ID != 0 {
		draft.ID = strconv.FormatUint(p.ID, 10)
	}
	if draft.Categories == nil {
		draft.Categories = []model.Category{}
	}
	draft.LocalizedProducts = normalizeLocales(p.LocalizedProducts)
	return draft
}

// ToMinimalProduct converts a validated draft into the wire shape.
func ToMinimalProduct(d model.ProductDraft) model.MinimalProduct {
	shop := d.Shop
	if shop != nil && (shop.Name == constant.NoneLabel || shop.ID == 0) {
		shop = nil
	}
	categories := d.Categories
	if categories == nil {
		categories = []model.Category{}
	}
	return model.MinimalProduct{
		ID:                d.ID,
		Price:             EurosToCents(d.Price),
		Shop:              shop,
		Categories:        categories,
		LocalizedProducts: normalizeLocales(d.LocalizedProducts),
	}
}

// BlankLocales is the FR/EN pair of an empty draft.
func BlankLocales() []model.LocalizedProduct {
	return []model.LocalizedProduct{
		{Locale: constant.LocaleFR},
		{Locale: constant.LocaleEN},
	}
}

func normalizeLocales(list []model.LocalizedProduct) []model.LocalizedProduct {
	out := BlankLocales()
	for i := range out {
		if lp := LocalizedProduct(list, out[i].Locale); lp != nil {
			out[i] = *lp
		}
	}
	return out
}
