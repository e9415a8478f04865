// Package amqp delivers order lifecycle events over RabbitMQ. A single
// durable topic exchange carries every notification; the routing key is the
// topic string built by the ports package.
package amqp

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// Exchange is the topic exchange all lifecycle events are published to.
const Exchange = "restaurant_events"

const connectRetries = 5

// Connection wraps a RabbitMQ connection and channel with reconnection
// support. It declares the event exchange on every successful connect, so a
// fresh broker needs no out-of-band setup.
type Connection struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	url     string
	logger  *slog.Logger
}

// NewConnection dials RabbitMQ and prepares the event exchange. Connection
// attempts back off linearly; the last error is returned when the broker
// stays unreachable.
func NewConnection(url string, logger *slog.Logger) (*Connection, error) {
	c := &Connection{
		url:    url,
		logger: logger,
	}

	if err := c.connect(); err != nil {
		return nil, fmt.Errorf("failed to establish initial connection: %w", err)
	}

	return c, nil
}

func (c *Connection) connect() error {
	var err error

	for i := 0; i < connectRetries; i++ {
		err = c.dial()
		if err == nil {
			return nil
		}

		if i < connectRetries-1 {
			waitTime := time.Duration(i+1) * 2 * time.Second
			c.logger.Warn("rabbitmq connection failed, retrying",
				"wait", waitTime,
				"error", err,
			)
			time.Sleep(waitTime)
		}
	}

	return fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", connectRetries, err)
}

func (c *Connection) dial() error {
	conn, err := amqp091.Dial(c.url)
	if err != nil {
		return err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}

	err = channel.ExchangeDeclare(
		Exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return fmt.Errorf("failed to declare %s exchange: %w", Exchange, err)
	}

	c.conn = conn
	c.channel = channel
	return nil
}

// Channel returns the current channel.
func (c *Connection) Channel() *amqp091.Channel {
	return c.channel
}

// IsClosed checks whether the underlying connection is gone.
func (c *Connection) IsClosed() bool {
	return c.conn == nil || c.conn.IsClosed()
}

// Reconnect tears down the current connection and dials again.
func (c *Connection) Reconnect() error {
	c.close()
	return c.connect()
}

// Close closes the channel and connection.
func (c *Connection) Close() error {
	return c.close()
}

func (c *Connection) close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
