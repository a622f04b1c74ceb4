package client

import "context"

type QueueMessage struct {
	Body    string
	Receipt string
}

// A common interface for queue clients regardless if it's a SQS, RabbitMQ, etc.
type QueueClient interface {
	SendMessage(ctx context.Context, messageBody string) error
	ReceiveMessages() (<-chan QueueMessage, error)
	DeleteMessage(receipt string) error
	Stop() error
	Ping() error
	GetQueueName() string
}

func NewQueueClient(url, user, password, queueName string) (QueueClient, error) {
	return NewRabbitMqClient(url, user, password, queueName)
}
