// Package rabbit broadcasts mutation events over RabbitMQ.
// Every committed mutation is published to a durable fanout exchange so any
// number of connected clients (kitchen displays, register screens, customer
// views) observe the same stream. Publish failures are logged and returned;
// callers treat delivery as fire-and-forget.
package rabbit

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// envelope is the wire format of one broadcast message.
type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// EventPublisher publishes mutation events to a fanout exchange.
// Safe for concurrent use; publishes on a single channel are serialized.
type EventPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string

	mu sync.Mutex
}

// NewEventPublisher dials the broker and declares the durable fanout
// exchange used for broadcasts. The returned publisher owns the connection;
// call Close when shutting down.
func NewEventPublisher(url, exchange string) (*EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchange,
		"fanout",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &EventPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
	}, nil
}

// Publish broadcasts one event with its payload.
// Messages are marked persistent so they survive broker restarts. Errors are
// logged here; the caller decides whether they matter.
func (p *EventPublisher) Publish(ctx context.Context, event string, payload any) error {
	body, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		slog.Error("rabbitmq: marshal event failed", "event", event, "error", err)
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		event, // routing key, ignored by fanout but useful in traces
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Type:         event,
			Body:         body,
		},
	)
	if err != nil {
		slog.Error("rabbitmq: publish failed", "event", event, "error", err)
		return err
	}

	return nil
}

// Close releases the channel and connection.
func (p *EventPublisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
