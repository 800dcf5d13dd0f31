package contracts

import (
	"context"
	"provider-leads-service/internal/app/models"
)

// LeadsAPIClient talks to the remote providers service. Every method returns
// an exceptions.CustomError when the call fails or the service answers non-2xx.
type LeadsAPIClient interface {
	SearchProviders(ctx context.Context, filter models.ProviderFilter) ([]models.Provider, error)
	FetchLists(ctx context.Context) ([]models.List, error)
	CreateList(ctx context.Context, listName string) (*models.List, error)
	AddProvidersToList(ctx context.Context, listID string, providerNPIs []string) (string, error)
	GetListProviders(ctx context.Context, listID string) ([]models.Provider, error)
	FindEmail(ctx context.Context, npi string, request models.EmailLookupRequest) (*models.EmailLookupResult, error)
}
