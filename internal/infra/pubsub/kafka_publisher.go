package pubsub

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"landshare/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// kafkaPublisher implements EventPublisher on a Kafka topic
type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on the comma separated brokers
func NewKafkaPublisher(brokers, topic string, logger *slog.Logger) service.EventPublisher {
	addrs := strings.Split(brokers, ",")
	for i := range addrs {
		addrs[i] = strings.TrimSpace(addrs[i])
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(addrs...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}

	logger.Info("Kafka publisher initialized",
		slog.String("brokers", brokers),
		slog.String("topic", topic),
	)

	return &kafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// PublishReferralRecorded writes the event keyed by referral ID
func (p *kafkaPublisher) PublishReferralRecorded(ctx context.Context, event *service.ReferralRecordedEvent) error {
	data, attributes, err := encodeReferralEvent(event)
	if err != nil {
		return err
	}

	headers := make([]kafka.Header, 0, len(attributes))
	for k, v := range attributes {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(event.ReferralID),
		Value:   data,
		Headers: headers,
		Time:    event.RecordedAt,
	}); err != nil {
		return errors.Wrap(err, "failed to write kafka message")
	}

	p.logger.Info("[Kafka] Event published successfully",
		slog.String("referral_id", event.ReferralID),
	)

	return nil
}

// Close flushes pending messages and closes the writer
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
