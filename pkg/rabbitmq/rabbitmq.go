package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/streadway/amqp"
	"go.uber.org/zap"

	"storeadmin/internal/models"
)

const activityQueue = "activity_queue"

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// Publisher forwards dashboard activity events to a RabbitMQ queue so
// other systems can consume the CRUD audit trail. It implements
// events.Sink; publish failures are logged, never surfaced to the action
// that produced the event.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	log     *zap.Logger
}

// NewPublisher connects to RabbitMQ and declares the activity queue.
func NewPublisher(cfg Config, log *zap.Logger) (*Publisher, error) {
	if log == nil {
		log = zap.NewNop()
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		activityQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", activityQueue, err)
	}

	log.Info("RabbitMQ activity publisher connected", zap.String("queue", activityQueue))

	return &Publisher{conn: conn, channel: ch, log: log}, nil
}

// Close closes the RabbitMQ channel and connection.
func (p *Publisher) Close() error {
	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors during RabbitMQ publisher close: %v", errs)
	}
	return nil
}

// Record publishes one activity event to the queue as JSON.
func (p *Publisher) Record(activity models.Activity) {
	body, err := json.Marshal(activity)
	if err != nil {
		p.log.Error("failed to marshal activity event", zap.Error(err))
		return
	}

	err = p.channel.Publish(
		"",            // exchange: default
		activityQueue, // routing key: the queue name
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		p.log.Error("failed to publish activity event", zap.Error(err))
		return
	}

	p.log.Debug("published activity event", zap.String("type", activity.Type))
}
