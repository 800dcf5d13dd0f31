package contracts

import (
	"context"
	"provider-leads-service/internal/app/models"
)

type WorkspaceRepository interface {
	// Get returns nil without error when the workspace does not exist.
	Get(ctx context.Context, workspaceID string) (*models.Workspace, error)
	Save(ctx context.Context, workspace *models.Workspace) error
	Delete(ctx context.Context, workspaceID string) error
}

type WorkspaceService interface {
	Load(ctx context.Context, workspaceID string) (*models.Workspace, error)
	// Update runs fn on the workspace under its lock and persists the result,
	// including when fn returns an error.
	Update(ctx context.Context, workspaceID string, fn func(workspace *models.Workspace) error) (*models.Workspace, error)
	// Snapshot loads the workspace and drains its pending notifications.
	Snapshot(ctx context.Context, workspaceID string) (*models.Workspace, []models.Notification, error)
}
