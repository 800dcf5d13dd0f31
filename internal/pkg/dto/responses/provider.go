package responses

import "provider-leads-service/internal/app/models"

// ProviderRow is one line of the results table.
type ProviderRow struct {
	NPI            string `json:"npi"`
	Name           string `json:"name"`
	ProviderType   string `json:"provider_type"`
	Specialty      string `json:"specialty"`
	AddressLine    string `json:"address_line"`
	CityStateZip   string `json:"city_state_zip"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone"`
	Selected       bool   `json:"selected"`
	LookupInFlight bool   `json:"lookup_in_flight"`
	CanLookupEmail bool   `json:"can_lookup_email"`
}

type ProviderAddress struct {
	Purpose      string `json:"purpose"`
	Line1        string `json:"line_1"`
	Line2        string `json:"line_2,omitempty"`
	CityStateZip string `json:"city_state_zip"`
	Country      string `json:"country,omitempty"`
	Phone        string `json:"phone"`
	Fax          string `json:"fax"`
}

type ProviderDetail struct {
	NPI             string                      `json:"npi"`
	Name            string                      `json:"name"`
	ProviderType    string                      `json:"provider_type"`
	Credential      string                      `json:"credential"`
	Gender          string                      `json:"gender"`
	Status          string                      `json:"status"`
	SoleProprietor  string                      `json:"sole_proprietor"`
	CertDate        string                      `json:"certification_date"`
	EnumerationDate string                      `json:"enumeration_date"`
	LastUpdated     string                      `json:"last_updated"`
	Email           string                      `json:"email,omitempty"`
	Specialty       string                      `json:"specialty"`
	Location        *ProviderAddress            `json:"location,omitempty"`
	Mailing         *ProviderAddress            `json:"mailing,omitempty"`
	Taxonomies      []models.ProviderTaxonomy   `json:"taxonomies"`
	Identifiers     []models.ProviderIdentifier `json:"identifiers"`
	Endpoints       []models.ProviderEndpoint   `json:"endpoints"`
	OtherNames      []models.ProviderOtherName  `json:"other_names"`
	Raw             models.Provider             `json:"raw"`
}

type SearchProviders struct {
	Filter        models.ProviderFilter `json:"filter"`
	Badges        []models.FilterField  `json:"badges"`
	SelectedCount int                   `json:"selected_count"`
	Rows          []ProviderRow         `json:"rows"`
}

type Selection struct {
	NPIs  []string `json:"npis"`
	Count int      `json:"count"`
}
