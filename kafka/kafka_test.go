package kafka

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilPublisherDropsEvents(t *testing.T) {
	var p *Publisher

	ctx := context.Background()
	assert.NoError(t, p.PublishPurchaseCreated(ctx, PurchaseCreatedEvent{PurchaseID: 1}))
	assert.NoError(t, p.PublishPurchaseAnnulled(ctx, PurchaseAnnulledEvent{PurchaseID: 1}))
	assert.NoError(t, p.PublishLowStock(ctx, LowStockEvent{ProductID: 1}))
	assert.NoError(t, p.Close())
}

func TestUnmarshalEvent(t *testing.T) {
	payload, err := json.Marshal(PurchaseCreatedEvent{
		EventType:  EventTypePurchaseCreated,
		PurchaseID: 42,
		Total:      45.50,
		LineCount:  2,
	})
	require.NoError(t, err)

	var event PurchaseCreatedEvent
	require.NoError(t, UnmarshalEvent(payload, &event))

	assert.Equal(t, EventTypePurchaseCreated, event.EventType)
	assert.Equal(t, uint(42), event.PurchaseID)
	assert.Equal(t, 2, event.LineCount)
}

func TestUnmarshalEvent_InvalidPayload(t *testing.T) {
	var event LowStockEvent
	assert.Error(t, UnmarshalEvent([]byte("{broken"), &event))
}
