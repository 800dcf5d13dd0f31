package events

import (
	"context"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder builds lead events from the request context and publishes them.
// Publishing failures are logged and never returned to the caller.
type Recorder struct {
	Publisher contracts.EventPublisher
	Log       *zap.Logger
	Timeout   time.Duration
}

func NewRecorder(publisher contracts.EventPublisher, logger *zap.Logger) *Recorder {
	return &Recorder{
		Publisher: publisher,
		Log:       logger,
		Timeout:   5 * time.Second,
	}
}

func (r *Recorder) Record(ctx context.Context, eventType string, attributes map[string]interface{}) {
	if r == nil || r.Publisher == nil {
		return
	}

	event := &models.LeadEvent{
		ID:          uuid.NewString(),
		Type:        eventType,
		WorkspaceID: utils.GetWorkspaceID(ctx),
		RequestID:   utils.GetRequestID(ctx),
		OccurredAt:  time.Now().UTC(),
		Attributes:  attributes,
	}

	publishCtx, cancel := context.WithTimeout(utils.DetachContext(ctx), r.Timeout)
	defer cancel()

	err := r.Publisher.Publish(publishCtx, event)
	if err != nil {
		utils.LogError(r.Log, err)
		r.Log.Warn("Recorder.Record failed to publish lead event",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}
