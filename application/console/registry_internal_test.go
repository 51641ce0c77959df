package console

import (
	"testing"
	"time"

	categorymocks "github.com/muhammadheryan/shop-console/mocks/repository/category"
	productmocks "github.com/muhammadheryan/shop-console/mocks/repository/product"
	shopmocks "github.com/muhammadheryan/shop-console/mocks/repository/shop"
	publishermocks "github.com/muhammadheryan/shop-console/mocks/thirdparty/rabbitmq"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_SweepsExpiredSessions(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	r := newRegistry(
		shopmocks.NewShopRepository(t),
		productmocks.NewProductRepository(t),
		categorymocks.NewCategoryRepository(t),
		publishermocks.NewAuditPublisher(t),
		time.Hour,
		func() time.Time { return now },
	)

	old := r.Screens("old")
	now = now.Add(30 * time.Minute)
	r.Screens("recent")
	assert.Equal(t, 2, r.Len())

	now = now.Add(30 * time.Minute)
	r.Screens("recent")
	assert.Equal(t, 1, r.Len())

	assert.NotSame(t, old, r.Screens("old"))
	assert.Equal(t, 2, r.Len())
}
