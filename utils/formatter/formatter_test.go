package formatter

import (
	"testing"

	"github.com/muhammadheryan/shop-console/constant"
	"github.com/muhammadheryan/shop-console/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{cents: 1234, want: "12,34 €"},
		{cents: 0, want: "0,00 €"},
		{cents: 5, want: "0,05 €"},
		{cents: 100, want: "1,00 €"},
		{cents: 123456, want: "1 234,56 €"},
		{cents: 100000000, want: "1 000 000,00 €"},
		{cents: -1999, want: "-19,99 €"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.cents), "FormatPrice(%d)", tt.cents)
	}
}

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "12,34 €", want: 1234},
		{in: "12.34", want: 1234},
		{in: "1 234,56 €", want: 123456},
		{in: "1 234,56 €", want: 123456},
		{in: "0,1", want: 10},
		{in: "19.999", want: 2000},
		{in: "", want: 0},
		{in: " € ", want: 0},
		{in: "douze", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePriceToCents(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParsePriceToCents(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParsePriceToCents(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParsePriceToCents(%q)", tt.in)
	}
}

func TestPrice_RoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 1234, 100001, 987654321, -42} {
		got, err := ParsePriceToCents(FormatPrice(cents))
		require.NoError(t, err)
		assert.Equal(t, cents, got)
	}
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "produit", Pluralize("produit", 0))
	assert.Equal(t, "produit", Pluralize("produit", 1))
	assert.Equal(t, "produits", Pluralize("produit", 2))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "15/01/2024", FormatDate("2024-01-15T10:30:00"))
	assert.Equal(t, "15/01/2024", FormatDate("2024-01-15T10:30:00.123456"))
	assert.Equal(t, "15/01/2024", FormatDate("2024-01-15T10:30:00Z"))
	assert.Equal(t, "15/01/2024", FormatDate("2024-01-15"))
	assert.Equal(t, "hier", FormatDate("hier"))
}

func TestToDraft(t *testing.T) {
	shop := &model.Shop{ID: 2, Name: "Boulangerie"}
	got := ToDraft(&model.Product{
		ID:    9,
		Price: 1999,
		Shop:  shop,
		LocalizedProducts: []model.LocalizedProduct{
			{Locale: constant.LocaleFR, Name: "Baguette"},
		},
	})

	assert.Equal(t, "9", got.ID)
	assert.Equal(t, 19.99, got.Price)
	assert.Equal(t, shop, got.Shop)
	assert.Equal(t, []model.Category{}, got.Categories)
	assert.Equal(t, []model.LocalizedProduct{
		{Locale: constant.LocaleFR, Name: "Baguette"},
		{Locale: constant.LocaleEN},
	}, got.LocalizedProducts)
}

func TestToDraft_ReordersLocales(t *testing.T) {
	got := ToDraft(&model.Product{
		LocalizedProducts: []model.LocalizedProduct{
			{Locale: constant.LocaleEN, Name: "Bread"},
			{Locale: constant.LocaleFR, Name: "Pain"},
		},
	})
	require.Len(t, got.LocalizedProducts, 2)
	assert.Equal(t, constant.LocaleFR, got.LocalizedProducts[0].Locale)
	assert.Equal(t, "Pain", got.LocalizedProducts[0].Name)
	assert.Equal(t, "Bread", got.LocalizedProducts[1].Name)
}

func TestToMinimalProduct(t *testing.T) {
	tests := []struct {
		name      string
		draft     model.ProductDraft
		wantPrice int64
		wantShop  *model.Shop
	}{
		{
			name:      "rounds euros to cents",
			draft:     model.ProductDraft{Price: 12.346, Shop: &model.Shop{ID: 4, Name: "Épicerie"}},
			wantPrice: 1235,
			wantShop:  &model.Shop{ID: 4, Name: "Épicerie"},
		},
		{
			name:      "none selection becomes no shop",
			draft:     model.ProductDraft{Price: 0.1, Shop: &model.Shop{Name: constant.NoneLabel}},
			wantPrice: 10,
		},
		{
			name:      "nil shop",
			draft:     model.ProductDraft{Price: 3},
			wantPrice: 300,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := ToMinimalProduct(tt.draft)
			assert.Equal(t, tt.wantPrice, got.Price)
			assert.Equal(t, tt.wantShop, got.Shop)
			assert.NotNil(t, got.Categories)
			assert.Len(t, got.LocalizedProducts, 2)
		})
	}
}

func TestLocalizedProduct(t *testing.T) {
	list := BlankLocales()
	lp := LocalizedProduct(list, constant.LocaleEN)
	require.NotNil(t, lp)
	lp.Name = "Bread"
	assert.Equal(t, "Bread", list[1].Name)
	assert.Nil(t, LocalizedProduct(nil, constant.LocaleFR))
}
