package console_test

import (
	"sync"
	"testing"

	"github.com/muhammadheryan/shop-console/application/console"
	categorymocks "github.com/muhammadheryan/shop-console/mocks/repository/category"
	productmocks "github.com/muhammadheryan/shop-console/mocks/repository/product"
	shopmocks "github.com/muhammadheryan/shop-console/mocks/repository/shop"
	publishermocks "github.com/muhammadheryan/shop-console/mocks/thirdparty/rabbitmq"
	"github.com/stretchr/testify/assert"
)

func newRegistry(t *testing.T) console.Registry {
	return console.NewRegistry(
		shopmocks.NewShopRepository(t),
		productmocks.NewProductRepository(t),
		categorymocks.NewCategoryRepository(t),
		publishermocks.NewAuditPublisher(t),
		0,
	)
}

func TestRegistry_Screens(t *testing.T) {
	r := newRegistry(t)

	a := r.Screens("a")
	assert.Same(t, a, r.Screens("a"))
	assert.NotSame(t, a, r.Screens("b"))
	assert.NotNil(t, a.ShopList)
	assert.NotNil(t, a.ProductForm)
	assert.NotNil(t, a.Session)

	r.Forget("a")
	assert.Equal(t, 1, r.Len())
	assert.NotSame(t, a, r.Screens("a"))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := newRegistry(t)

	var wg sync.WaitGroup
	got := make([]*console.Screens, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = r.Screens("same")
		}(i)
	}
	wg.Wait()

	for _, s := range got {
		assert.Same(t, got[0], s)
	}
}
