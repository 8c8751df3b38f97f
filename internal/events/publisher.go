// Package events publishes catalog change notifications to a Redis stream.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"

	"github.com/coachhub/catalog/internal/metrics"
	"github.com/coachhub/catalog/internal/model"
)

const (
	// StreamKey is the Redis stream for catalog change events.
	StreamKey = "stream:catalog_events"

	// MaxStreamLen is the approximate max length of the stream.
	MaxStreamLen = 10000

	// PublishTimeout is the max time to wait for Redis publish.
	PublishTimeout = 100 * time.Millisecond
)

// Action is what happened to a catalog entry.
type Action string

const (
	ActionCreated Action = "created"
	ActionDeleted Action = "deleted"
)

// Event describes one catalog mutation.
type Event struct {
	ID         string     `json:"id"`
	Kind       model.Kind `json:"kind"`
	Action     Action     `json:"action"`
	EntityID   string     `json:"entity_id"`
	Name       string     `json:"name,omitempty"`
	OccurredAt int64      `json:"t"` // Unix milliseconds
}

// NewEvent stamps an event with a sortable id and the current time.
func NewEvent(kind model.Kind, action Action, entityID, name string) Event {
	now := time.Now()
	return Event{
		ID:         ulid.Make().String(),
		Kind:       kind,
		Action:     action,
		EntityID:   entityID,
		Name:       name,
		OccurredAt: now.UnixMilli(),
	}
}

// Publisher appends catalog events to a Redis stream.
type Publisher struct {
	redis   *redis.Client
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewPublisher creates a new catalog event publisher.
func NewPublisher(client *redis.Client, logger *slog.Logger, recorder metrics.Recorder) *Publisher {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Publisher{
		redis:   client,
		logger:  logger.With("component", "events.publisher"),
		metrics: recorder,
	}
}

// Publish adds an event to the stream. Failures are logged and counted as
// dropped; the caller's request is never failed by a lost event.
func (p *Publisher) Publish(ctx context.Context, event Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PublishTimeout)
	defer cancel()

	if _, err := p.publish(ctx, event); err != nil {
		p.metrics.IncEventPublished("dropped")
		p.logger.Warn("catalog_event_dropped",
			"event_id", event.ID,
			"kind", event.Kind,
			"action", event.Action,
			"error", err,
		)
		return
	}

	p.metrics.IncEventPublished("success")
}

func (p *Publisher) publish(ctx context.Context, event Event) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("marshal event: %w", err)
	}

	id, err := p.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey,
		MaxLen: MaxStreamLen,
		Approx: true,
		ID:     "*",
		Values: map[string]interface{}{
			"payload": string(data),
		},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("xadd: %w", err)
	}

	return id, nil
}
