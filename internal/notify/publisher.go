package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange is the fanout every dashboard/socket bridge subscribes to.
// Messages are a nudge to re-fetch, not a source of truth: a lost one
// only leaves a stale screen until the next refresh.
const Exchange = "order_events"

// OrderEvent is the broadcast payload.
type OrderEvent struct {
	OrderID  string    `json:"order_id"`
	Status   string    `json:"status"`
	PickupAt time.Time `json:"pickup_at"`
	At       time.Time `json:"at"`
}

type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Dial connects and declares the fanout exchange. The caller may run
// without a broker: a nil *Publisher is a no-op publisher.
func Dial(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(Exchange, "fanout", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, ch: ch}, nil
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// PublishOrderEvent broadcasts fire-and-forget. Failures are logged,
// never returned: notification must not fail an order.
func (p *Publisher) PublishOrderEvent(ctx context.Context, ev OrderEvent) {
	if p == nil || p.ch == nil {
		return
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("notify: marshal event: %v", err)
		return
	}

	err = p.ch.PublishWithContext(ctx, Exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now().UTC(),
		Body:        body,
	})
	if err != nil {
		log.Printf("notify: publish order %s: %v", ev.OrderID, err)
	}
}
