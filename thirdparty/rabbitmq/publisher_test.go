package rabbitmq

import (
	"context"
	"testing"
	"time"

	"github.com/muhammadheryan/shop-console/model"
	"github.com/stretchr/testify/assert"
)

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "product.created", RoutingKey(model.AuditEvent{Resource: "product", Action: "created"}))
	assert.Equal(t, "shop.deleted", RoutingKey(model.AuditEvent{Resource: "shop", Action: "deleted"}))
}

func TestNopPublisher(t *testing.T) {
	var p AuditPublisher = NopPublisher{}
	assert.NoError(t, p.PublishAudit(context.Background(), model.AuditEvent{Resource: "shop", Action: "updated", At: time.Now()}))
	assert.NoError(t, p.Close())
}
