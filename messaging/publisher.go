package messaging

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/streadway/amqp"

	"tourism-backend/metrics"
)

// Publisher emits domain events after a write commits. Publishing is best
// effort: a failure is logged and counted, never returned to the caller
// of the HTTP request.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any)
	Close() error
}

// NewEvent wraps a payload in the event envelope.
func NewEvent(eventType string, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, eventType string, payload any) {
	log.Ctx(ctx).Debug().Str("type", eventType).Msg("event not published: no broker configured")
}

func (NoopPublisher) Close() error { return nil }

// AMQPPublisher publishes JSON events to a topic exchange; the routing key
// is the event type.
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	mu       sync.Mutex
}

func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	log.Info().Str("exchange", exchange).Msg("messaging: connected to RabbitMQ")
	return &AMQPPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, eventType string, payload any) {
	event := NewEvent(eventType, payload)
	body, err := json.Marshal(event)
	if err != nil {
		p.fail(ctx, eventType, err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.Publish(
		p.exchange, // exchange
		eventType,  // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID,
			Timestamp:    event.OccurredAt,
			Type:         eventType,
			Body:         body,
		},
	)
	if err != nil {
		p.fail(ctx, eventType, err)
	}
}

func (p *AMQPPublisher) fail(ctx context.Context, eventType string, err error) {
	metrics.EventsPublishFailedTotal.WithLabelValues(eventType).Inc()
	log.Ctx(ctx).Warn().Err(err).Str("type", eventType).Msg("messaging: publish failed")
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
