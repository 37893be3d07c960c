package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Madhavladani/adeptjs64/domain/ports"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
)

// CatalogPublisher ส่ง CatalogEvent เข้า JetStream
type CatalogPublisher struct {
	client *Client
}

var _ ports.CatalogEventPublisher = (*CatalogPublisher)(nil)

func NewCatalogPublisher(client *Client) *CatalogPublisher {
	return &CatalogPublisher{client: client}
}

func (p *CatalogPublisher) PublishCatalogEvent(ctx context.Context, event *ports.CatalogEvent) error {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog event: %w", err)
	}

	subject := p.client.Subject(event.Entity, string(event.Type))
	ack, err := p.client.JetStream().Publish(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	logger.DebugContext(ctx, "Catalog event published", "subject", subject, "seq", ack.Sequence)
	return nil
}

func (p *CatalogPublisher) IsConnected() bool {
	return p.client.IsConnected()
}
