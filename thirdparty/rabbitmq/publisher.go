package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muhammadheryan/shop-console/model"
	"github.com/rabbitmq/amqp091-go"
)

const (
	AuditExchange = "catalog_audit_exchange"
	AuditQueue    = "catalog_audit_queue"
)

// AuditPublisher emits catalog mutation events.
type AuditPublisher interface {
	PublishAudit(ctx context.Context, event model.AuditEvent) error
	Close() error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		AuditExchange, // name
		"topic",       // type
		true,          // durable
		false,         // auto-delete
		false,         // internal
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	_, err = channel.QueueDeclare(
		AuditQueue, // name
		true,       // durable
		false,      // auto-delete
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	// every resource and action
	err = channel.QueueBind(AuditQueue, "#", AuditExchange, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// RoutingKey is "<resource>.<action>", e.g. "product.created".
func RoutingKey(event model.AuditEvent) string {
	return event.Resource + "." + event.Action
}

func (p *Publisher) PublishAudit(ctx context.Context, event model.AuditEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		AuditExchange,     // exchange
		RoutingKey(event), // routing key
		false,             // mandatory
		false,             // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.At,
			Body:         body,
		},
	)
}

// Healthy reports an error once the broker connection is gone.
func (p *Publisher) Healthy(context.Context) error {
	if p.conn == nil || p.conn.IsClosed() {
		return amqp091.ErrClosed
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// NopPublisher drops every event; used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishAudit(context.Context, model.AuditEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
