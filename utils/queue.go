package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const leadQueueName = "houselook.leads"

var (
	amqpConn    *amqp.Connection
	amqpChannel *amqp.Channel
)

// InitQueue connects to RabbitMQ and declares the lead-intake queue. The
// queue is optional infrastructure: with RABBITMQ_URL unset the publisher
// stays disabled and PublishLead becomes a no-op.
func InitQueue() error {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		log.Println("RABBITMQ_URL not set, lead queue disabled")
		return nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		leadQueueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to declare queue %s: %w", leadQueueName, err)
	}

	amqpConn = conn
	amqpChannel = ch
	log.Printf("Connected to RabbitMQ, publishing leads to %s", leadQueueName)
	return nil
}

// PublishLead hands a captured lead to the intake pipeline.
func PublishLead(ctx context.Context, lead interface{}) error {
	if amqpChannel == nil {
		return nil
	}

	body, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("failed to marshal lead: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return amqpChannel.PublishWithContext(ctx,
		"", // default exchange
		leadQueueName,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

func CloseQueue() {
	if amqpChannel != nil {
		amqpChannel.Close()
	}
	if amqpConn != nil {
		amqpConn.Close()
	}
}
