package mocks

import (
	"context"
	"provider-leads-service/internal/app/models"

	"github.com/stretchr/testify/mock"
)

type MockLeadsAPIClient struct {
	mock.Mock
}

func (m *MockLeadsAPIClient) SearchProviders(ctx context.Context, filter models.ProviderFilter) ([]models.Provider, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Provider), args.Error(1)
}

func (m *MockLeadsAPIClient) FetchLists(ctx context.Context) ([]models.List, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.List), args.Error(1)
}

func (m *MockLeadsAPIClient) CreateList(ctx context.Context, name string) (*models.List, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.List), args.Error(1)
}

func (m *MockLeadsAPIClient) AddProvidersToList(ctx context.Context, listID string, npis []string) (string, error) {
	args := m.Called(ctx, listID, npis)
	return args.String(0), args.Error(1)
}

func (m *MockLeadsAPIClient) GetListProviders(ctx context.Context, listID string) ([]models.Provider, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Provider), args.Error(1)
}

func (m *MockLeadsAPIClient) FindEmail(ctx context.Context, npi string, request models.EmailLookupRequest) (*models.EmailLookupResult, error) {
	args := m.Called(ctx, npi, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmailLookupResult), args.Error(1)
}
