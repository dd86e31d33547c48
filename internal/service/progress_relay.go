package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/mrsameer/rag-with-gemini/internal/pkg/logger"
	"github.com/mrsameer/rag-with-gemini/pkg/events"
	"github.com/mrsameer/rag-with-gemini/pkg/nats"
)

// ProgressDelivery pushes a decoded event to connected clients. The websocket
// hub implements it.
type ProgressDelivery interface {
	Broadcast(eventType string, payload map[string]interface{})
}

// IProgressRelay drains the in-process event bus and forwards each event to
// the delivery surface (and to NATS when configured).
type IProgressRelay interface {
	Run(ctx context.Context) error
}

type progressRelay struct {
	publisher IProgressPublisher
	delivery  ProgressDelivery
	mirror    *nats.Publisher // nil when NATS is not configured
	logger    logger.ILogger
}

func NewProgressRelay(
	publisher IProgressPublisher,
	delivery ProgressDelivery,
	mirror *nats.Publisher,
	sysLogger logger.ILogger,
) IProgressRelay {
	return &progressRelay{
		publisher: publisher,
		delivery:  delivery,
		mirror:    mirror,
		logger:    sysLogger,
	}
}

func (r *progressRelay) Run(ctx context.Context) error {
	messages, err := r.publisher.Subscribe()
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			r.processMessage(msg)
		}
	}()

	return nil
}

func (r *progressRelay) processMessage(msg *message.Message) {
	var envelope progressEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		r.logger.Warn("ProgressRelay", "Dropping malformed event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed payloads never become deliverable, do not retry
		return
	}

	r.delivery.Broadcast(envelope.Type, envelope.Payload)

	if r.mirror != nil {
		event := events.BaseEvent{
			Type:       envelope.Type,
			Data:       envelope.Payload,
			OccurredAt: envelope.OccurredAt,
		}
		if err := r.mirror.Publish(context.Background(), event); err != nil {
			r.logger.Warn("ProgressRelay", "NATS mirror publish failed", map[string]interface{}{
				"type":  envelope.Type,
				"error": err.Error(),
			})
		}
	}

	msg.Ack()
}
