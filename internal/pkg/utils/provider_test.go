package utils

import (
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestProvider() models.Provider {
	return models.Provider{
		NPI:             "1234567890",
		EnumerationType: "NPI-1",
		Basic: models.ProviderBasic{
			NamePrefix: "Dr.",
			FirstName:  "Jane",
			LastName:   "Doe",
		},
		Addresses: []models.ProviderAddress{
			{AddressPurpose: "MAILING", Address1: "PO Box 1", City: "Albany", State: "NY", PostalCode: "12201"},
			{AddressPurpose: "LOCATION", Address1: "1 Main St", City: "Buffalo", State: "NY", PostalCode: "14201", TelephoneNumber: "716-555-0100"},
		},
		Taxonomies: []models.ProviderTaxonomy{
			{Code: "207Q00000X", Desc: "Family Medicine", Primary: false},
			{Code: "207RC0000X", Desc: "Cardiovascular Disease", Primary: true},
		},
	}
}

func TestProviderName(t *testing.T) {
	t.Run("Prefix First And Last", func(t *testing.T) {
		provider := newTestProvider()
		assert.Equal(t, "Dr. Jane Doe", ProviderName(&provider))
	})

	t.Run("Dash Prefix Is Dropped", func(t *testing.T) {
		provider := newTestProvider()
		provider.Basic.NamePrefix = "--"
		assert.Equal(t, "Jane Doe", ProviderName(&provider))
	})

	t.Run("Missing Parts Leave No Extra Spaces", func(t *testing.T) {
		provider := newTestProvider()
		provider.Basic.NamePrefix = ""
		provider.Basic.FirstName = ""
		assert.Equal(t, "Doe", ProviderName(&provider))
	})

	t.Run("Organization Falls Back To Organization Name", func(t *testing.T) {
		provider := models.Provider{
			NPI:             "1999999999",
			EnumerationType: "NPI-2",
			Basic:           models.ProviderBasic{OrganizationName: "General Hospital"},
		}
		assert.Equal(t, "General Hospital", ProviderName(&provider))
	})
}

func TestProviderTypeLabel(t *testing.T) {
	assert.Equal(t, constvars.ProviderTypeIndividual, ProviderTypeLabel("NPI-1"))
	assert.Equal(t, constvars.ProviderTypeOrg, ProviderTypeLabel("NPI-2"))
	assert.Equal(t, constvars.ProviderTypeUnknown, ProviderTypeLabel(""))
}

func TestProviderCSVRecord(t *testing.T) {
	t.Run("Full Provider", func(t *testing.T) {
		provider := newTestProvider()
		provider.Basic.Email = "jane@example.com"

		record := ProviderCSVRecord(&provider)

		assert.Equal(t, []string{
			"1234567890",
			"Dr. Jane Doe",
			"Cardiovascular Disease",
			"1 Main St, Buffalo, NY, 14201",
			"jane@example.com",
			"716-555-0100",
		}, record)
	})

	t.Run("Missing Sub Fields", func(t *testing.T) {
		provider := models.Provider{NPI: "1111111111", Basic: models.ProviderBasic{FirstName: "Solo"}}

		record := ProviderCSVRecord(&provider)

		assert.Equal(t, []string{"1111111111", "Solo", "N/A", "", "", ""}, record)
	})

	t.Run("Address Without Dangling Separators", func(t *testing.T) {
		provider := models.Provider{
			NPI:       "2222222222",
			Addresses: []models.ProviderAddress{{AddressPurpose: "LOCATION", City: "Austin", PostalCode: "73301"}},
		}

		assert.Equal(t, "Austin, 73301", ProviderCSVAddress(&provider))
	})
}

func TestBuildProviderRow(t *testing.T) {
	provider := newTestProvider()
	workspace := models.NewWorkspace("ws")
	workspace.SetSelected("1234567890", true)

	row := BuildProviderRow(&provider, workspace)

	assert.Equal(t, "Dr. Jane Doe", row.Name)
	assert.Equal(t, constvars.ProviderTypeIndividual, row.ProviderType)
	assert.Equal(t, "Cardiovascular Disease", row.Specialty)
	assert.Equal(t, "1 Main St", row.AddressLine)
	assert.Equal(t, "Buffalo, NY, 14201", row.CityStateZip)
	assert.Equal(t, "716-555-0100", row.Phone)
	assert.True(t, row.Selected)
	assert.True(t, row.CanLookupEmail)

	empty := models.Provider{NPI: "3333333333"}
	emptyRow := BuildProviderRow(&empty, nil)
	assert.Equal(t, constvars.NotAvailable, emptyRow.Specialty)
	assert.Equal(t, constvars.NotAvailable, emptyRow.AddressLine)
	assert.Equal(t, constvars.NotAvailable, emptyRow.Phone)
	assert.False(t, emptyRow.CanLookupEmail)
}

func TestFilterProviders(t *testing.T) {
	providers := []models.Provider{newTestProvider(), {NPI: "5555555555", Basic: models.ProviderBasic{FirstName: "John", LastName: "Roe"}}}

	assert.Len(t, FilterProviders(providers, ""), 2)
	assert.Len(t, FilterProviders(providers, "buffalo"), 1)
	assert.Len(t, FilterProviders(providers, "5555"), 1)
	assert.Len(t, FilterProviders(providers, "nobody"), 0)
}
