// Package queue_publisher provides functions to publish domain events
// to RabbitMQ. Errors are logged and returned so callers can ignore
// failures without interrupting the main request flow.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/ademirsantosjr/todo-minimal-api/internal/queue"
)

// PublishTodoCompleted publishes a TodoCompletedEvent to the
// todo.completed queue. Messages are marked persistent so they survive
// a broker restart. The function never panics; any error is logged and
// returned for the caller to ignore.
func PublishTodoCompleted(ctx context.Context, event q.TodoCompletedEvent) error {
	conn, err := amqp.Dial(q.BrokerURL())
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare so publisher and consumer can start in any order.
	if _, err := ch.QueueDeclare(q.QueueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", q.QueueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
