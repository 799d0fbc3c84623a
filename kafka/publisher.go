package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/minimarket/admin-api/pkg/logger"
)

// Publisher wraps the Kafka producer. A nil *Publisher is valid and
// drops every event, so the server can run without brokers.
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishPurchaseCreated publishes a purchase created event
func (p *Publisher) PublishPurchaseCreated(ctx context.Context, event PurchaseCreatedEvent) error {
	if p == nil {
		return nil
	}

	event.EventType = EventTypePurchaseCreated
	key := fmt.Sprintf("purchase_%d", event.PurchaseID)

	return p.publish(ctx, TopicPurchases, key, event.EventType, &event.EventID, &event.Timestamp, &event,
		attribute.Int64("purchase.id", int64(event.PurchaseID)),
		attribute.Float64("purchase.total", event.Total),
		attribute.Int("purchase.lines", event.LineCount),
	)
}

// PublishPurchaseAnnulled publishes a purchase annulled event
func (p *Publisher) PublishPurchaseAnnulled(ctx context.Context, event PurchaseAnnulledEvent) error {
	if p == nil {
		return nil
	}

	event.EventType = EventTypePurchaseAnnulled
	key := fmt.Sprintf("purchase_%d", event.PurchaseID)

	return p.publish(ctx, TopicPurchases, key, event.EventType, &event.EventID, &event.Timestamp, &event,
		attribute.Int64("purchase.id", int64(event.PurchaseID)),
	)
}

// PublishLowStock publishes a low stock alert
func (p *Publisher) PublishLowStock(ctx context.Context, event LowStockEvent) error {
	if p == nil {
		return nil
	}

	event.EventType = EventTypeLowStock
	key := fmt.Sprintf("product_%d", event.ProductID)

	return p.publish(ctx, TopicInventory, key, event.EventType, &event.EventID, &event.Timestamp, &event,
		attribute.Int64("product.id", int64(event.ProductID)),
		attribute.Int("product.stock", event.Stock),
	)
}

func (p *Publisher) publish(ctx context.Context, topic, key, eventType string, eventID *string, timestamp *time.Time, payload interface{}, attrs ...attribute.KeyValue) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(append([]attribute.KeyValue{
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", eventType),
		}, attrs...)...),
	)
	defer span.End()

	if *eventID == "" {
		*eventID = fmt.Sprintf("evt_%d", time.Now().UnixNano())
	}
	*timestamp = time.Now()

	span.SetAttributes(attribute.String("event.id", *eventID))

	eventBytes, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(*eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(k),
			Value: []byte(v),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", topic).
			Str("event_type", eventType).
			Str("trace_id", span.SpanContext().TraceID().String()).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Logger.Info().
		Str("event_id", *eventID).
		Str("event_type", eventType).
		Str("topic", topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
