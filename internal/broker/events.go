package broker

import (
	"context"

	"order-datagen/internal/models"
)

// LandingPublisher announces datasets that reached the landing directory
type LandingPublisher interface {
	PublishDatasetLanded(ctx context.Context, event *models.DatasetLandedEvent) error
}

// EventPublisher handles publishing landing events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishDatasetLanded publishes DatasetLanded keyed by file name
func (ep *EventPublisher) PublishDatasetLanded(ctx context.Context, event *models.DatasetLandedEvent) error {
	return ep.producer.PublishEvent(ctx, event.FileName, event)
}
