package rabbitmq

import (
	"context"
	"fmt"
	"listings-service/internal/constants"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// jsonPublisher - часть rabbitmq_producer.Publisher, нужная адаптеру.
type jsonPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, payload interface{}, headers amqp.Table) error
}

// PropertyEventDTO - сообщение в listings_exchange.
type PropertyEventDTO struct {
	EventID    uuid.UUID    `json:"event_id"`
	EventType  string       `json:"event_type"`
	OccurredAt time.Time    `json:"occurred_at"`
	Property   *PropertyDTO `json:"property,omitempty"`
	IDs        []string     `json:"ids,omitempty"`
}

type PropertyDTO struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Price        float64   `json:"price"`
	Location     string    `json:"location"`
	PropertyType string    `json:"property_type"`
	Status       string    `json:"status"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PropertyEventsAdapter реализует port.PropertyEventsPort через RabbitMQ.
type PropertyEventsAdapter struct {
	producer jsonPublisher
	now      func() time.Time
}

var _ port.PropertyEventsPort = (*PropertyEventsAdapter)(nil)

func NewPropertyEventsAdapter(producer jsonPublisher) (*PropertyEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &PropertyEventsAdapter{producer: producer, now: time.Now}, nil
}

func (a *PropertyEventsAdapter) PropertyCreated(ctx context.Context, property domain.Property) error {
	return a.publish(ctx, constants.RoutingKeyPropertyCreated, PropertyEventDTO{Property: toPropertyDTO(property)})
}

func (a *PropertyEventsAdapter) PropertyUpdated(ctx context.Context, property domain.Property) error {
	return a.publish(ctx, constants.RoutingKeyPropertyUpdated, PropertyEventDTO{Property: toPropertyDTO(property)})
}

func (a *PropertyEventsAdapter) PropertiesDeleted(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return a.publish(ctx, constants.RoutingKeyPropertyDeleted, PropertyEventDTO{IDs: ids})
}

func (a *PropertyEventsAdapter) publish(ctx context.Context, routingKey string, event PropertyEventDTO) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "PropertyEventsAdapter",
		"routing_key": routingKey,
	})

	event.EventID = uuid.New()
	event.EventType = routingKey
	event.OccurredAt = a.now().UTC()

	headers := amqp.Table{}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.PublishJSON(publishCtx, routingKey, event, headers); err != nil {
		adapterLogger.Error("Failed to publish property event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish %s: %w", routingKey, err)
	}

	adapterLogger.Debug("Property event published", port.Fields{"event_id": event.EventID.String()})
	return nil
}

func toPropertyDTO(p domain.Property) *PropertyDTO {
	return &PropertyDTO{
		ID:           p.ID,
		Title:        p.Title,
		Price:        p.Price,
		Location:     p.Location,
		PropertyType: p.PropertyType,
		Status:       p.Status,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		UpdatedAt:    p.UpdatedAt,
	}
}
