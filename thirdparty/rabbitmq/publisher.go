package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/rabbitmq/amqp091-go"
)

const (
	SavedSearchExchange = "saved_search_exchange"
	SavedSearchQueue    = "saved_search_audit_queue"
)

type SavedSearchAction string

const (
	SavedSearchCreated SavedSearchAction = "created"
	SavedSearchUpdated SavedSearchAction = "updated"
	SavedSearchDeleted SavedSearchAction = "deleted"
)

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// SavedSearchEvent is published after a saved search write has committed.
type SavedSearchEvent struct {
	Action     SavedSearchAction     `json:"action"`
	ID         string                `json:"id"`
	UserID     uint64                `json:"user_id"`
	Entity     constant.SearchEntity `json:"entity"`
	IsDefault  bool                  `json:"is_default"`
	OccurredAt time.Time             `json:"occurred_at"`
}

// RoutingKey is "saved_search.<action>".
func (e SavedSearchEvent) RoutingKey() string {
	return "saved_search." + string(e.Action)
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
		SavedSearchExchange, // name
		"topic",             // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	_, err = channel.QueueDeclare(
		SavedSearchQueue, // name
		true,             // durable
		false,            // auto-delete
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	err = channel.QueueBind(
		SavedSearchQueue,    // queue name
		"saved_search.*",    // routing key
		SavedSearchExchange, // exchange
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishSavedSearchEvent(msg SavedSearchEvent) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		SavedSearchExchange, // exchange
		msg.RoutingKey(),    // routing key
		false,               // mandatory
		false,               // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
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
