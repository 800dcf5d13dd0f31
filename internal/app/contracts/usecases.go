package contracts

import (
	"context"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/dto/requests"
)

type ProviderUsecase interface {
	Search(ctx context.Context, workspaceID string, filter models.ProviderFilter) (*models.Workspace, error)
	GetDetail(ctx context.Context, workspaceID, npi string) (*models.Provider, error)
	FindEmail(ctx context.Context, workspaceID, npi string) (*models.EmailLookupResult, error)
	FindEmails(ctx context.Context, workspaceID string, npis []string) (*models.BulkEmailLookupSummary, error)
}

type SelectionUsecase interface {
	UpdateSelection(ctx context.Context, workspaceID string, request *requests.UpdateSelection) (*models.Workspace, error)
	ClearSelection(ctx context.Context, workspaceID string) (*models.Workspace, error)
}

type ListUsecase interface {
	LoadLists(ctx context.Context, workspaceID string) ([]models.List, error)
	ViewList(ctx context.Context, workspaceID, listID string) (*models.Workspace, error)
	CreateList(ctx context.Context, workspaceID, listName string) (*models.List, error)
	SaveSelectionToNewList(ctx context.Context, workspaceID, listName string, npis []string) (*models.ListSaveResult, error)
	SaveSelectionToExistingList(ctx context.Context, workspaceID, listID string, npis []string) (*models.ListSaveResult, error)
}

type ExportUsecase interface {
	ExportSelection(ctx context.Context, workspaceID string) (*models.CSVExport, error)
	ExportList(ctx context.Context, workspaceID, listID string) (*models.CSVExport, error)
	ArchiveSelection(ctx context.Context, workspaceID string) (*models.ExportArchive, error)
}
