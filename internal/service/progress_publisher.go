package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"github.com/mrsameer/rag-with-gemini/internal/pkg/logger"
	"github.com/mrsameer/rag-with-gemini/pkg/events"
)

// TopicIngestEvents is the in-process topic ingestion progress flows over.
const TopicIngestEvents = "ingest.events"

// IProgressPublisher fans ingestion lifecycle events out to whoever is
// listening. Publishing is best-effort: a progress event that cannot be
// delivered never fails the ingestion it describes.
type IProgressPublisher interface {
	Publish(event events.Event)
	Subscribe() (<-chan *message.Message, error)
	Close() error
}

// progressEnvelope is the wire form of one event on the bus.
type progressEnvelope struct {
	Type       string                 `json:"type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}

type progressPublisher struct {
	bus    *gochannel.GoChannel
	logger logger.ILogger
}

func NewProgressPublisher(sysLogger logger.ILogger) IProgressPublisher {
	bus := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, watermill.NopLogger{})
	return &progressPublisher{bus: bus, logger: sysLogger}
}

func (p *progressPublisher) Publish(event events.Event) {
	envelope := progressEnvelope{
		Type:       event.EventType(),
		Payload:    event.Payload(),
		OccurredAt: event.Timestamp(),
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		p.logger.Warn("ProgressPublisher", "Failed to encode event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(uuid.NewString(), body)
	if err := p.bus.Publish(TopicIngestEvents, msg); err != nil {
		p.logger.Warn("ProgressPublisher", "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}

func (p *progressPublisher) Subscribe() (<-chan *message.Message, error) {
	return p.bus.Subscribe(context.Background(), TopicIngestEvents)
}

func (p *progressPublisher) Close() error {
	return p.bus.Close()
}
