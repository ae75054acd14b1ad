package event

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"todolist/config"
	"todolist/infras/kafka"
	"todolist/infras/otel"
	"todolist/internal/domains/todo/model"
	"todolist/shared/constant"
	"todolist/shared/timezone"
)

const (
	TypeCreated = "todo.created"
	TypeUpdated = "todo.updated"
	TypeDeleted = "todo.deleted"
)

// Payload is the JSON value written for every todo change.
type Payload struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	OccurredAt string     `json:"occurred_at"`
	Todo       model.Todo `json:"todo"`
}

type Publisher interface {
	Publish(ctx context.Context, eventType string, todo model.Todo) error
}

type publisherImpl struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, model.Todo) error {
	return nil
}

// New returns a publisher that drops every event when client is nil.
func New(client kafka.Client, cfg *config.Config, otl otel.Otel) Publisher {
	if client == nil {
		return noopPublisher{}
	}

	return &publisherImpl{
		client: client,
		topic:  cfg.Event.Kafka.Topic,
		otel:   otl,
	}
}

func NewPayload(eventType string, todo model.Todo) Payload {
	return Payload{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: timezone.Timestamp(timezone.Now()),
		Todo:       todo,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, eventType string, todo model.Todo) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("event.type", eventType)

	message := kafka.Message{
		// keyed by id so every change to one todo lands on one partition
		Key:   strconv.FormatInt(todo.ID, 10),
		Value: NewPayload(eventType, todo),
	}

	if err = p.client.SendMessages(ctx, p.topic, message); err != nil {
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}

	return nil
}
