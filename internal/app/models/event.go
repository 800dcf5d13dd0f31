package models

import "time"

// LeadEvent records a user action on leads for downstream consumers.
type LeadEvent struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	WorkspaceID string                 `json:"workspace_id"`
	RequestID   string                 `json:"request_id,omitempty"`
	OccurredAt  time.Time              `json:"occurred_at"`
	Attributes  map[string]interface{} `json:"attributes,omitempty"`
}
