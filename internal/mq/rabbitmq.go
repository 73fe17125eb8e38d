package mq

import (
	"DocVault/config"
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeEvents = "document.events.exchange"
	QueueEvents    = "document.events.queue"
	RoutingEvents  = "document.event"

	EventItemCreated = "document.created"
	EventItemDeleted = "document.deleted"
)

// ItemEvent is the payload published on catalog writes.
type ItemEvent struct {
	Event  string    `json:"event"`
	ItemID uint64    `json:"item_id"`
	Name   string    `json:"name"`
	Type   string    `json:"type"`
	UserID uint64    `json:"user_id"`
	At     time.Time `json:"at"`
}

type Client struct {
	Conn      *amqp.Connection
	Channel   *amqp.Channel
	publishMu sync.Mutex
}

var publisherMu sync.Mutex
var publisher *Client

// Enabled reports whether event publishing is configured.
func Enabled() bool {
	return config.AppConfig.RabbitMQURL != ""
}

func Dial() (*Client, error) {
	conn, err := amqp.Dial(config.AppConfig.RabbitMQURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return &Client{Conn: conn, Channel: ch}, nil
}

func GetPublisher() (*Client, error) {
	publisherMu.Lock()
	defer publisherMu.Unlock()
	if publisher != nil {
		if !publisher.Conn.IsClosed() && !publisher.Channel.IsClosed() {
			return publisher, nil
		}
		publisher.Close()
		publisher = nil
	}
	client, err := Dial()
	if err != nil {
		return nil, err
	}
	if err := client.DeclareTopology(); err != nil {
		client.Close()
		return nil, err
	}
	publisher = client
	return publisher, nil
}

func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.Channel != nil {
		_ = c.Channel.Close()
	}
	if c.Conn != nil {
		_ = c.Conn.Close()
	}
}

func (c *Client) DeclareTopology() error {
	if err := c.Channel.ExchangeDeclare(
		ExchangeEvents,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return err
	}
	if _, err := c.Channel.QueueDeclare(
		QueueEvents,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return err
	}
	return c.Channel.QueueBind(
		QueueEvents,
		RoutingEvents,
		ExchangeEvents,
		false,
		nil,
	)
}

func (c *Client) publish(ctx context.Context, body []byte) error {
	c.publishMu.Lock()
	defer c.publishMu.Unlock()
	return c.Channel.PublishWithContext(
		ctx,
		ExchangeEvents,
		RoutingEvents,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
}

// PublishItemEvent publishes a catalog event. Failures are logged, never
// surfaced to the request that triggered the write.
func PublishItemEvent(ctx context.Context, event ItemEvent) {
	if !Enabled() {
		return
	}
	event.At = time.Now()
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("marshal item event failed: %v", err)
		return
	}
	client, err := GetPublisher()
	if err != nil {
		log.Printf("mq publisher unavailable: %v", err)
		return
	}
	if err := client.publish(ctx, body); err != nil {
		log.Printf("publish item event failed: %v", err)
	}
}
