package contracts

import (
	"context"
	"provider-leads-service/internal/app/models"
)

type EventPublisher interface {
	Publish(ctx context.Context, event *models.LeadEvent) error
}
