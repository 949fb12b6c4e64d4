package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"itinera/pkg/config"
	"itinera/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	NotificationQueueName  = "notification_queue"
	NotificationExchange   = "notifications"
	NotificationRoutingKey = "marketplace_event"
)

// Task types carried on the notification queue.
const (
	TaskItineraryApproved  = "itinerary_approved"
	TaskItineraryRevoked   = "itinerary_revoked"
	TaskItineraryPurchased = "itinerary_purchased"
	TaskNewReview          = "new_review"
	TaskCreatorVerified    = "creator_verified"
)

type Task struct {
	Type        string    `json:"type"`
	UserID      string    `json:"user_id"`
	ActorID     string    `json:"actor_id,omitempty"`
	ItineraryID string    `json:"itinerary_id,omitempty"`
	Title       string    `json:"title,omitempty"`
	Message     string    `json:"message,omitempty"`
	Amount      float64   `json:"amount,omitempty"`
	Rating      int       `json:"rating,omitempty"`
	Priority    int       `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
}

// Publisher is what producers depend on so they can run without a broker.
type Publisher interface {
	PublishNotificationTask(task Task) error
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(NotificationExchange, "direct", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		NotificationQueueName,
		true,
		false,
		false,
		false,
		amqp.Table{"x-max-priority": 10},
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := channel.QueueBind(NotificationQueueName, NotificationRoutingKey, NotificationExchange, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) PublishNotificationTask(task Task) error {
	body, err := EncodeTask(task)
	if err != nil {
		return err
	}

	err = c.channel.Publish(
		NotificationExchange,
		NotificationRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			Priority:     uint8(ClampPriority(task.Priority)),
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish %s task: %v", task.Type, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info("[RABBITMQ] Published %s task for user %s", task.Type, task.UserID)
	return nil
}

// ConsumeNotificationTasks acks handled tasks, drops undecodable ones and
// requeues tasks the handler failed on.
func (c *Client) ConsumeNotificationTasks(handler func(task Task) error) error {
	msgs, err := c.channel.Consume(NotificationQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from notification queue: %s", NotificationQueueName)

	go func() {
		for msg := range msgs {
			task, err := DecodeTask(msg.Body)
			if err != nil {
				c.logger.Error("[RABBITMQ] Failed to decode notification task: %v, body=%s", err, string(msg.Body))
				msg.Nack(false, false)
				continue
			}

			if err := handler(task); err != nil {
				c.logger.Error("[RABBITMQ] Handler failed for %s task: %v", task.Type, err)
				msg.Nack(false, true)
				continue
			}

			msg.Ack(false)
		}
	}()

	return nil
}

func (c *Client) GetQueueLength() (int, error) {
	queue, err := c.channel.QueueInspect(NotificationQueueName)
	if err != nil {
		return 0, err
	}
	return queue.Messages, nil
}

func ClampPriority(p int) int {
	if p < 0 {
		return 0
	}
	if p > 10 {
		return 10
	}
	return p
}

func EncodeTask(task Task) ([]byte, error) {
	if task.Type == "" {
		return nil, fmt.Errorf("task type is required")
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}
	task.Priority = ClampPriority(task.Priority)

	body, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task: %w", err)
	}
	return body, nil
}

func DecodeTask(body []byte) (Task, error) {
	var task Task
	if err := json.Unmarshal(body, &task); err != nil {
		return Task{}, err
	}
	if task.Type == "" {
		return Task{}, fmt.Errorf("task type missing")
	}
	return task, nil
}
