package pubsub

import (
	"context"
	"log/slog"

	"arcade/internal/domain/service"
)

// noopPublisher drops every event. It backs deployments without a pubsub section.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishChangeEvent(_ context.Context, event *service.ChangeEvent) error {
	p.logger.Debug("change event dropped, no publisher configured",
		slog.String("collection", event.Collection),
		slog.String("entity_id", event.EntityID),
		slog.String("action", string(event.Action)),
	)

	return nil
}

func (p *noopPublisher) Close() error { return nil }
