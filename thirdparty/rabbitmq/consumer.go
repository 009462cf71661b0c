package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	UserEventsExchange = "user_events_exchange"
	RoleChangedQueue   = "role_changed_queue"
	RoleChangedKey     = "user.role_changed"
)

// RoleChangedMessage is published by the user service whenever a role is
// granted or revoked.
type RoleChangedMessage struct {
	UserID uint64        `json:"user_id"`
	Role   constant.Role `json:"role"`
}

// Consumer drops cached roles by calling back into the API, which owns the
// cache connection.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	apiURL  string
	apiKey  string
	client  *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
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
		UserEventsExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	_, err = channel.QueueDeclare(
		RoleChangedQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	err = channel.QueueBind(
		RoleChangedQueue,
		RoleChangedKey,
		UserEventsExchange,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		apiURL:  apiURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		RoleChangedQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				if c.handle(ctx, msg.Body) {
					msg.Ack(false)
				} else {
					msg.Nack(false, true)
				}
			}
		}
	}()

	return nil
}

// handle reports whether the delivery is done with. Undecodable bodies are
// dropped; API failures are requeued.
func (c *Consumer) handle(ctx context.Context, body []byte) bool {
	var event RoleChangedMessage
	if err := json.Unmarshal(body, &event); err != nil || event.UserID == 0 {
		logger.Warn("[Consumer] drop undecodable role change", zap.ByteString("body", body))
		return true
	}

	if err := c.callInvalidateRoleAPI(ctx, event.UserID); err != nil {
		logger.Error("[Consumer] err callInvalidateRoleAPI", zap.Uint64("user_id", event.UserID), zap.String("error", err.Error()))
		return false
	}

	logger.Info("[Consumer] role cache invalidated", zap.Uint64("user_id", event.UserID), zap.String("role", string(event.Role)))
	return true
}

func (c *Consumer) callInvalidateRoleAPI(ctx context.Context, userID uint64) error {
	url := fmt.Sprintf("%s/internal/v1/users/%d/role-cache/invalidate", c.apiURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "role-change-consumer")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
