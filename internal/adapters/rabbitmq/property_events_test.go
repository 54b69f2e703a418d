package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"listings-service/internal/constants"
	"listings-service/internal/contextkeys"
	"listings-service/internal/contracts"
	"listings-service/internal/core/domain"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishJSON(ctx context.Context, routingKey string, payload interface{}, headers amqp.Table) error {
	return m.Called(ctx, routingKey, payload, headers).Error(0)
}

func TestPropertyCreatedEvent(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("PublishJSON", mock.Anything, constants.RoutingKeyPropertyCreated,
		mock.MatchedBy(func(e PropertyEventDTO) bool {
			return e.EventType == constants.RoutingKeyPropertyCreated && e.Property != nil && e.Property.ID == "a1"
		}),
		amqp.Table{"x-trace-id": "trace-1"},
	).Return(nil).Once()

	adapter, err := NewPropertyEventsAdapter(publisher)
	require.NoError(t, err)

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-1")
	require.NoError(t, adapter.PropertyCreated(ctx, domain.Property{ID: "a1", Title: "Villa"}))
	publisher.AssertExpectations(t)
}

func TestPropertiesDeletedEvent(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("PublishJSON", mock.Anything, constants.RoutingKeyPropertyDeleted,
		mock.MatchedBy(func(e PropertyEventDTO) bool { return len(e.IDs) == 2 && e.Property == nil }),
		amqp.Table{},
	).Return(errors.New("channel closed")).Once()

	adapter, err := NewPropertyEventsAdapter(publisher)
	require.NoError(t, err)

	err = adapter.PropertiesDeleted(context.Background(), []string{"a1", "a2"})
	assert.ErrorContains(t, err, "channel closed")

	assert.NoError(t, adapter.PropertiesDeleted(context.Background(), nil))
	publisher.AssertNumberOfCalls(t, "PublishJSON", 1)
}

func TestNewPropertyEventsAdapterRequiresProducer(t *testing.T) {
	_, err := NewPropertyEventsAdapter(nil)
	assert.Error(t, err)
}

func TestLoggerBridgeFields(t *testing.T) {
	fields := toFields("exchange", "listings_exchange", 42, "ignored", "dangling")
	assert.Equal(t, "listings_exchange", fields["exchange"])
	assert.Len(t, fields, 1)
}

func TestPublishedEventsMatchSchema(t *testing.T) {
	var captured []PropertyEventDTO
	publisher := new(MockPublisher)
	publisher.On("PublishJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = append(captured, args.Get(2).(PropertyEventDTO))
		}).
		Return(nil)

	adapter, err := NewPropertyEventsAdapter(publisher)
	require.NoError(t, err)
	ctx := context.Background()

	property := domain.FallbackProperties()[0]
	require.NoError(t, adapter.PropertyCreated(ctx, property))
	require.NoError(t, adapter.PropertyUpdated(ctx, property))
	require.NoError(t, adapter.PropertiesDeleted(ctx, []string{"1", "2"}))

	require.Len(t, captured, 3)
	for _, event := range captured {
		body, err := json.Marshal(event)
		require.NoError(t, err)
		assert.NoError(t, contracts.Validate(contracts.PropertyEvent, body), string(body))
	}
}
