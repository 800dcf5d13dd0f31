package leadsapi

import (
	"context"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/exceptions"
)

// CreateListWithProviders creates a list and attaches the providers to it.
// A nil result means nothing was created. When attaching fails the created
// list is still returned, together with an ErrListPartiallySaved error.
func CreateListWithProviders(ctx context.Context, client contracts.LeadsAPIClient, listName string, npis []string) (*models.ListSaveResult, error) {
	list, err := client.CreateList(ctx, listName)
	if err != nil {
		return nil, err
	}
	if list.Name == "" {
		list.Name = listName
	}

	result := &models.ListSaveResult{List: *list, Created: true}
	_, err = client.AddProvidersToList(ctx, list.ID, npis)
	if err != nil {
		return result, exceptions.ErrListPartiallySaved(err, list.ID, list.Name)
	}

	result.AddedCount = len(npis)
	result.List.ProviderCount = len(npis)
	return result, nil
}
