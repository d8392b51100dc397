package approval

import (
	"context"
	"encoding/json"

	"leavebot/internal/events"
	"leavebot/internal/messaging/kafka/producer"
)

//go:generate mockgen -source=approval_events.go -destination=mock/event_publisher_mock.go -package=mock
type EventPublisher interface {
	PublishLeaveDecided(ctx context.Context, event events.LeaveDecidedEvent) error
}

type kafkaEventPublisher struct {
	producer *producer.Publisher
}

func NewKafkaEventPublisher(p *producer.Publisher) EventPublisher {
	return &kafkaEventPublisher{producer: p}
}

func (p *kafkaEventPublisher) PublishLeaveDecided(ctx context.Context, event events.LeaveDecidedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.producer.Publish(ctx, event.RequesterHandle, event.EventType, payload)
}

type noopEventPublisher struct{}

// NewNoopEventPublisher is used when no broker is configured.
func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishLeaveDecided(ctx context.Context, event events.LeaveDecidedEvent) error {
	return nil
}
