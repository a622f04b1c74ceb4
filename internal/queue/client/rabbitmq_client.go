package client

import (
	"context"
	"fmt"
	"strconv"

	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitMqClient struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
}

func NewRabbitMqClient(url, user, password, queueName string) (*RabbitMqClient, error) {
	amqpURI := fmt.Sprintf("amqp://%s:%s@%s", user, password, url)
	conn, err := amqp.Dial(amqpURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	return &RabbitMqClient{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
	}, nil
}

func (c *RabbitMqClient) SendMessage(ctx context.Context, messageBody string) error {
	return c.channel.PublishWithContext(
		ctx,
		"",          // default exchange
		c.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         []byte(messageBody),
			DeliveryMode: amqp.Persistent,
		},
	)
}

// ReceiveMessages returns a channel of queue messages. Messages are not
// auto-acked, the consumer must call DeleteMessage with the receipt after
// successful processing.
func (c *RabbitMqClient) ReceiveMessages() (<-chan QueueMessage, error) {
	deliveries, err := c.channel.Consume(
		c.queueName,
		"",    // consumer tag
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming from queue %s: %w", c.queueName, err)
	}

	messages := make(chan QueueMessage)
	go func() {
		defer close(messages)
		for delivery := range deliveries {
			messages <- QueueMessage{
				Body:    string(delivery.Body),
				Receipt: strconv.FormatUint(delivery.DeliveryTag, 10),
			}
		}
	}()
	return messages, nil
}

func (c *RabbitMqClient) DeleteMessage(receipt string) error {
	deliveryTag, err := strconv.ParseUint(receipt, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid message receipt %q: %w", receipt, err)
	}
	return c.channel.Ack(deliveryTag, false)
}

func (c *RabbitMqClient) Stop() error {
	if err := c.channel.Close(); err != nil {
		return err
	}
	return c.connection.Close()
}

func (c *RabbitMqClient) Ping() error {
	if c.connection.IsClosed() {
		return fmt.Errorf("rabbitmq connection for queue %s is closed", c.queueName)
	}
	return nil
}

func (c *RabbitMqClient) GetQueueName() string {
	return c.queueName
}
