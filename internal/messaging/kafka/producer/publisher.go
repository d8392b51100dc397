package producer

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher writes domain events straight to a topic. The service owns no
// database, so there is no outbox stage and delivery is best-effort.
type Publisher struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

func NewPublisher(broker, topic string, logger ...*zap.Logger) *Publisher {
	l := zap.L().Named("kafka.producer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.producer")
	}
	return &Publisher{
		writer: &kafkago.Writer{
			Addr:     kafkago.TCP(broker),
			Topic:    topic,
			Balancer: &kafkago.LeastBytes{},
		},
		logger: l,
	}
}

func (p *Publisher) Publish(ctx context.Context, key, eventType string, payload []byte) error {
	msg := kafkago.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish event failed",
			zap.String("event_type", eventType),
			zap.String("key", key),
			zap.Error(err),
		)
		return err
	}

	p.logger.Info("event published",
		zap.String("event_type", eventType),
		zap.String("key", key),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
