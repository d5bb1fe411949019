package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeKind тип exchange для событий бронирований
const ExchangeKind = "topic"

var (
	// ErrClosed возвращается при публикации в закрытый publisher
	ErrClosed = errors.New("broker: publisher is closed")
	// ErrEncode возвращается, если payload не сериализуется в JSON
	ErrEncode = errors.New("broker: failed to encode payload")
)

// Publisher публикует JSON-сообщения в topic exchange RabbitMQ
// При обрыве соединения или закрытии канала переподключается на следующей публикации
type Publisher struct {
	url      string
	exchange string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	closed  bool
}

// NewPublisher подключается к RabbitMQ и объявляет exchange
func NewPublisher(url, exchange string) (*Publisher, error) {
	p := &Publisher{url: url, exchange: exchange}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(p.exchange, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	p.conn = conn
	p.channel = ch
	return nil
}

// stale сообщает, что соединение или канал нужно открыть заново
// Вызывается под p.mu.
func (p *Publisher) stale() bool {
	return p.conn == nil || p.conn.IsClosed() || p.channel == nil || p.channel.IsClosed()
}

// reconnect открывает новый канал на живом соединении, иначе переподключается целиком
// Вызывается под p.mu.
func (p *Publisher) reconnect() error {
	if p.conn != nil && !p.conn.IsClosed() {
		ch, err := p.conn.Channel()
		if err == nil {
			p.channel = ch
			return nil
		}
		p.conn.Close()
	}
	return p.connect()
}

// Publish сериализует payload в JSON и публикует с ключом routingKey
func (p *Publisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	if p.stale() {
		if err := p.reconnect(); err != nil {
			return err
		}
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopPublisher используется, когда брокер выключен в конфигурации
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
