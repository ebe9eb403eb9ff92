// Package alert publishes low-stock events to RabbitMQ. Publish failures
// are logged and returned so callers can ignore them without interrupting
// the request flow. A nil *Publisher is valid and does nothing.
package alert

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const queueName = "inventory.low-stock"

// LowStockEvent is published when a mutation leaves a product under the
// low-stock cutoff.
type LowStockEvent struct {
	ProductID     int    `json:"product_id"`
	Name          string `json:"name"`
	StockQuantity int    `json:"stock_quantity"`
	Cutoff        int    `json:"cutoff"`
	OccurredAt    string `json:"occurred_at"`
}

type Publisher struct {
	url string
}

func NewPublisher(url string) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url}
}

// PublishLowStock sends the event to a durable queue. The connection is
// opened per publish so a broker restart never leaves a dead channel behind.
func (p *Publisher) PublishLowStock(ctx context.Context, event LowStockEvent) error {
	if p == nil {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
