package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/ads-board/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// CleanupHandler deletes the images named by a message.
type CleanupHandler func(ctx context.Context, msg ImageCleanupMessage) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler CleanupHandler
}

func NewConsumer(host string, port int, user, password string, handler CleanupHandler) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		conn:    conn,
		channel: channel,
		handler: handler,
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		imageCleanupQueue,
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
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var cleanup ImageCleanupMessage
	if err := json.Unmarshal(msg.Body, &cleanup); err != nil {
		logger.Error("[ImageCleanup] failed to unmarshal message", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := c.handler(ctx, cleanup); err != nil {
		logger.Error("[ImageCleanup] handler failed", zap.String("reason", cleanup.Reason), zap.String("error", err.Error()))
		// Negative ack to requeue
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[ImageCleanup] images removed", zap.String("reason", cleanup.Reason), zap.Int("count", len(cleanup.Paths)))
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
