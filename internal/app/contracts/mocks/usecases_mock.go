package mocks

import (
	"context"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/mock"
)

type MockProviderUsecase struct {
	mock.Mock
}

func (m *MockProviderUsecase) Search(ctx context.Context, workspaceID string, filter models.ProviderFilter) (*models.Workspace, error) {
	args := m.Called(ctx, workspaceID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workspace), args.Error(1)
}

func (m *MockProviderUsecase) GetDetail(ctx context.Context, workspaceID, npi string) (*models.Provider, error) {
	args := m.Called(ctx, workspaceID, npi)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Provider), args.Error(1)
}

func (m *MockProviderUsecase) FindEmail(ctx context.Context, workspaceID, npi string) (*models.EmailLookupResult, error) {
	args := m.Called(ctx, workspaceID, npi)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmailLookupResult), args.Error(1)
}

func (m *MockProviderUsecase) FindEmails(ctx context.Context, workspaceID string, npis []string) (*models.BulkEmailLookupSummary, error) {
	args := m.Called(ctx, workspaceID, npis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BulkEmailLookupSummary), args.Error(1)
}

type MockSelectionUsecase struct {
	mock.Mock
}

func (m *MockSelectionUsecase) UpdateSelection(ctx context.Context, workspaceID string, request *requests.UpdateSelection) (*models.Workspace, error) {
	args := m.Called(ctx, workspaceID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workspace), args.Error(1)
}

func (m *MockSelectionUsecase) ClearSelection(ctx context.Context, workspaceID string) (*models.Workspace, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workspace), args.Error(1)
}

type MockListUsecase struct {
	mock.Mock
}

func (m *MockListUsecase) LoadLists(ctx context.Context, workspaceID string) ([]models.List, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.List), args.Error(1)
}

func (m *MockListUsecase) ViewList(ctx context.Context, workspaceID, listID string) (*models.Workspace, error) {
	args := m.Called(ctx, workspaceID, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workspace), args.Error(1)
}

func (m *MockListUsecase) CreateList(ctx context.Context, workspaceID, listName string) (*models.List, error) {
	args := m.Called(ctx, workspaceID, listName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.List), args.Error(1)
}

func (m *MockListUsecase) SaveSelectionToNewList(ctx context.Context, workspaceID, listName string, npis []string) (*models.ListSaveResult, error) {
	args := m.Called(ctx, workspaceID, listName, npis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ListSaveResult), args.Error(1)
}

func (m *MockListUsecase) SaveSelectionToExistingList(ctx context.Context, workspaceID, listID string, npis []string) (*models.ListSaveResult, error) {
	args := m.Called(ctx, workspaceID, listID, npis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ListSaveResult), args.Error(1)
}

type MockExportUsecase struct {
	mock.Mock
}

func (m *MockExportUsecase) ExportSelection(ctx context.Context, workspaceID string) (*models.CSVExport, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CSVExport), args.Error(1)
}

func (m *MockExportUsecase) ExportList(ctx context.Context, workspaceID, listID string) (*models.CSVExport, error) {
	args := m.Called(ctx, workspaceID, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CSVExport), args.Error(1)
}

func (m *MockExportUsecase) ArchiveSelection(ctx context.Context, workspaceID string) (*models.ExportArchive, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExportArchive), args.Error(1)
}
