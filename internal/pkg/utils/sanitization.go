package utils

import (
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			sanitizedArray = append(sanitizedArray, trimmed)
		}
	}
	return sanitizedArray
}

func SanitizeProviderFilter(input *models.ProviderFilter) {
	input.TaxonomyDescription = strings.TrimSpace(input.TaxonomyDescription)
	input.State = strings.ToUpper(strings.TrimSpace(input.State))
	input.EnumerationType = strings.ToUpper(strings.TrimSpace(input.EnumerationType))
	input.AddressPurpose = strings.ToUpper(strings.TrimSpace(input.AddressPurpose))
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.OrganizationName = strings.TrimSpace(input.OrganizationName)
	input.City = strings.TrimSpace(input.City)
	input.PostalCode = strings.TrimSpace(input.PostalCode)
}

func SanitizeCreateListRequest(input *requests.CreateList) {
	input.ListName = strings.TrimSpace(input.ListName)
}

func SanitizeSaveSelectionRequest(input *requests.SaveSelection) {
	input.ListName = strings.TrimSpace(input.ListName)
	input.ListID = strings.TrimSpace(input.ListID)
	input.NPIs = cleanWhiteSpaceFromEachStringOfAnArray(input.NPIs)
}

func SanitizeAddProvidersToListRequest(input *requests.AddProvidersToList) {
	input.ProviderNPIs = cleanWhiteSpaceFromEachStringOfAnArray(input.ProviderNPIs)
}

func SanitizeUpdateSelectionRequest(input *requests.UpdateSelection) {
	input.Action = strings.ToLower(strings.TrimSpace(input.Action))
	input.NPI = strings.TrimSpace(input.NPI)
	input.Search = strings.TrimSpace(input.Search)
}

func SanitizeBulkFindEmailRequest(input *requests.BulkFindEmail) {
	input.NPIs = cleanWhiteSpaceFromEachStringOfAnArray(input.NPIs)
}
