package rabbitmq

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rabbitmq/amqp091-go"
)

const (
	imageCleanupExchange   = "image_cleanup_exchange"
	imageCleanupQueue      = "image_cleanup_queue"
	imageCleanupRoutingKey = "image_cleanup"
)

// ImageCleanupMessage lists stored images that lost their owning row.
type ImageCleanupMessage struct {
	Directory string   `json:"directory"`
	Paths     []string `json:"paths"`
	Reason    string   `json:"reason"`
}

// ImagePublisher is what the application layer depends on.
type ImagePublisher interface {
	PublishImageCleanup(msg ImageCleanupMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	mu      sync.Mutex
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

// dial connects and declares the cleanup topology shared by publisher and consumer.
func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	err = channel.ExchangeDeclare(
		imageCleanupExchange, // name
		"direct",             // type
		true,                 // durable
		false,                // auto-delete
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	_, err = channel.QueueDeclare(
		imageCleanupQueue, // name
		true,              // durable
		false,             // auto-delete
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	err = channel.QueueBind(
		imageCleanupQueue,      // queue name
		imageCleanupRoutingKey, // routing key
		imageCleanupExchange,   // exchange
		false,                  // no-wait
		nil,                    // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	return conn, channel, nil
}

func (p *Publisher) PublishImageCleanup(msg ImageCleanupMessage) error {
	if len(msg.Paths) == 0 {
		return nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.Publish(
		imageCleanupExchange,   // exchange
		imageCleanupRoutingKey, // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
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
