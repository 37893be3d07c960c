package messaging

import (
	"context"

	"github.com/Madhavladani/adeptjs64/domain/ports"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
)

// NoopPublisher ใช้แทนเมื่อไม่มี NATS, แค่ log event ทิ้งไว้
type NoopPublisher struct{}

var _ ports.CatalogEventPublisher = (*NoopPublisher)(nil)

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (n *NoopPublisher) PublishCatalogEvent(ctx context.Context, event *ports.CatalogEvent) error {
	logger.DebugContext(ctx, "Catalog event dropped (events disabled)",
		"entity", event.Entity,
		"type", event.Type,
		"id", event.ID,
	)
	return nil
}

func (n *NoopPublisher) IsConnected() bool {
	return false
}
