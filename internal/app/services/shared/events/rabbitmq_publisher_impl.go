package events

import (
	"context"
	"login-service/internal/app/contracts"
	"login-service/internal/app/models"
	"login-service/internal/pkg/constvars"
	"login-service/internal/pkg/exceptions"
	"login-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channelPublisher is the part of *amqp091.Channel the publisher uses.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQPublisher struct {
	mu      sync.Mutex
	channel channelPublisher
	queue   string
	Log     *zap.Logger
}

// NewRabbitMQPublisher declares queue as durable and publishes login events
// to it through the default exchange.
func NewRabbitMQPublisher(conn *amqp091.Connection, queue string, logger *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return newRabbitMQPublisher(channel, queue, logger), nil
}

func newRabbitMQPublisher(channel channelPublisher, queue string, logger *zap.Logger) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		channel: channel,
		queue:   queue,
		Log:     logger,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *models.LoginEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         event.Type,
		MessageId:    utils.GetRequestID(ctx),
		Headers:      headers,
	}

	// amqp091 channels are not safe for concurrent publishing.
	p.mu.Lock()
	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, message)
	p.mu.Unlock()
	if err != nil {
		p.Log.Error("rabbitMQPublisher.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingQueueNameKey, p.queue),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
	}

	p.Log.Debug("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingQueueNameKey, p.queue),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
	)
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher is used when no login events queue is configured.
func NewNoopPublisher() contracts.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, *models.LoginEvent) error {
	return nil
}
