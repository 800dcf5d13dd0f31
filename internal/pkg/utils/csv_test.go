package utils

import (
	"encoding/csv"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProvidersCSV(t *testing.T) {
	providers := []models.Provider{
		{
			NPI: "1234567890",
			Basic: models.ProviderBasic{
				NamePrefix: "Dr.",
				FirstName:  "Jane",
				LastName:   "Doe",
				Email:      "jane@example.com",
			},
			Taxonomies: []models.ProviderTaxonomy{{Desc: "Cardiology", Primary: true}},
			Addresses: []models.ProviderAddress{
				{AddressPurpose: "MAILING", Address1: "PO Box 1", City: "Albany"},
				{AddressPurpose: "LOCATION", Address1: "1 Main St", City: "New York", State: "NY", PostalCode: "10001", TelephoneNumber: "212-555-0100"},
			},
		},
		{
			NPI:   "2345678901",
			Basic: models.ProviderBasic{NamePrefix: "--", FirstName: "John", LastName: "Roe"},
			Addresses: []models.ProviderAddress{
				{AddressPurpose: "LOCATION", City: "Austin", State: "TX"},
			},
		},
		{
			NPI:   "3456789012",
			Basic: models.ProviderBasic{OrganizationName: "Acme Clinic"},
		},
	}

	export, err := BuildProvidersCSV("selected_providers.csv", providers)
	require.NoError(t, err)

	assert.Equal(t, 3, export.RowCount)
	assert.Equal(t, "selected_providers.csv", export.Filename)
	assert.True(t, strings.HasSuffix(string(export.Content), "\r\n"))

	records, err := csv.NewReader(strings.NewReader(string(export.Content))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, constvars.ExportCSVHeader, records[0])
	assert.Equal(t, []string{"1234567890", "Dr. Jane Doe", "Cardiology", "1 Main St, New York, NY, 10001", "jane@example.com", "212-555-0100"}, records[1])
	assert.Equal(t, []string{"2345678901", "John Roe", "N/A", "Austin, TX", "", ""}, records[2])
	assert.Equal(t, []string{"3456789012", "Acme Clinic", "N/A", "", "", ""}, records[3])
}

func TestBuildProvidersCSVEmpty(t *testing.T) {
	export, err := BuildProvidersCSV("list_providers.csv", nil)
	require.NoError(t, err)

	assert.Equal(t, 0, export.RowCount)
	assert.Equal(t, "NPI,Provider Name,Specialty,Address,Email,Phone\r\n", string(export.Content))
}
