package events

import (
	"context"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type logPublisher struct {
	Log *zap.Logger
}

// NewLogPublisher records events in the application log only.
func NewLogPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &logPublisher{Log: logger}
}

func (p *logPublisher) Publish(ctx context.Context, event *models.LeadEvent) error {
	p.Log.Info("Lead event",
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.String(constvars.LoggingWorkspaceIDKey, event.WorkspaceID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.Any("attributes", event.Attributes),
	)
	return nil
}
