package services

import (
	"context"
	"fmt"

	"warung/internal/models"
	"warung/pkg/rabbitmq"
)

// OrderSubmitter hands a finished order to the external ordering backend and
// returns an opaque confirmation id. The core assumes nothing about
// idempotency; retrying a failed submission is the caller's decision.
type OrderSubmitter interface {
	Submit(ctx context.Context, order *models.OrderRequest) (string, error)
}

// AMQPOrderSubmitter publishes orders to the order-placed queue. The broker
// does not answer with a server-side id, so the order's own id doubles as
// the confirmation id.
type AMQPOrderSubmitter struct {
	client *rabbitmq.Client
}

// NewAMQPOrderSubmitter creates a new AMQPOrderSubmitter.
func NewAMQPOrderSubmitter(client *rabbitmq.Client) *AMQPOrderSubmitter {
	return &AMQPOrderSubmitter{
		client: client,
	}
}

// Submit publishes the order. The amqp library has no context support on
// publish, so the deadline is checked up front and the publish itself is
// treated as fast and non-cancellable.
func (s *AMQPOrderSubmitter) Submit(ctx context.Context, order *models.OrderRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.client.PublishOrderPlaced(order); err != nil {
		return "", fmt.Errorf("publish order %s: %w", order.OrderID, err)
	}
	return order.OrderID, nil
}
