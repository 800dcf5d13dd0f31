package utils

import (
	"fmt"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/dto/responses"
	"strings"
)

func joinNonEmpty(separator string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, separator)
}

func orNotAvailable(value string) string {
	if strings.TrimSpace(value) == "" {
		return constvars.NotAvailable
	}
	return value
}

// ProviderName joins prefix, first and last name with single spaces. A "--"
// prefix means none. Organizations without a personal name use the
// organization name.
func ProviderName(provider *models.Provider) string {
	prefix := provider.Basic.NamePrefix
	if strings.TrimSpace(prefix) == constvars.EmptyNamePrefix {
		prefix = ""
	}

	if provider.HasPersonalName() {
		return joinNonEmpty(" ", prefix, provider.Basic.FirstName, provider.Basic.LastName)
	}
	return strings.TrimSpace(provider.Basic.OrganizationName)
}

func ProviderTypeLabel(enumerationType string) string {
	switch enumerationType {
	case constvars.EnumerationTypeIndividual:
		return constvars.ProviderTypeIndividual
	case constvars.EnumerationTypeOrganization:
		return constvars.ProviderTypeOrg
	default:
		return constvars.ProviderTypeUnknown
	}
}

// ProviderSpecialty is the primary taxonomy description, or empty.
func ProviderSpecialty(provider *models.Provider) string {
	if taxonomy := provider.PrimaryTaxonomy(); taxonomy != nil {
		return taxonomy.Desc
	}
	return ""
}

func ProviderLocationPhone(provider *models.Provider) string {
	if address := provider.AddressByPurpose(constvars.AddressPurposeLocation); address != nil {
		return address.TelephoneNumber
	}
	return ""
}

// ProviderCSVAddress joins address_1, city, state and postal code of the
// LOCATION address with ", ", skipping empty parts.
func ProviderCSVAddress(provider *models.Provider) string {
	address := provider.AddressByPurpose(constvars.AddressPurposeLocation)
	if address == nil {
		return ""
	}
	return joinNonEmpty(", ", address.Address1, address.City, address.State, address.PostalCode)
}

// ProviderCSVRecord renders the columns of constvars.ExportCSVHeader.
func ProviderCSVRecord(provider *models.Provider) []string {
	return []string{
		provider.NPI.String(),
		ProviderName(provider),
		orNotAvailable(ProviderSpecialty(provider)),
		ProviderCSVAddress(provider),
		provider.Basic.Email,
		ProviderLocationPhone(provider),
	}
}

func BuildProviderRow(provider *models.Provider, workspace *models.Workspace) responses.ProviderRow {
	row := responses.ProviderRow{
		NPI:            provider.NPI.String(),
		Name:           orNotAvailable(ProviderName(provider)),
		ProviderType:   ProviderTypeLabel(provider.EnumerationType),
		Specialty:      orNotAvailable(ProviderSpecialty(provider)),
		AddressLine:    constvars.NotAvailable,
		Email:          provider.Basic.Email,
		Phone:          orNotAvailable(ProviderLocationPhone(provider)),
		CanLookupEmail: provider.CanLookupEmail(),
	}

	if address := provider.AddressByPurpose(constvars.AddressPurposeLocation); address != nil {
		row.AddressLine = orNotAvailable(address.Address1)
		row.CityStateZip = joinNonEmpty(", ", address.City, address.State, address.PostalCode)
	}

	if workspace != nil {
		row.Selected = workspace.IsSelected(row.NPI)
		row.LookupInFlight = workspace.IsEmailLookupInFlight(row.NPI)
	}
	return row
}

func BuildProviderRows(providers []models.Provider, workspace *models.Workspace) []responses.ProviderRow {
	rows := make([]responses.ProviderRow, len(providers))
	for i := range providers {
		rows[i] = BuildProviderRow(&providers[i], workspace)
	}
	return rows
}

func buildProviderAddress(address *models.ProviderAddress) *responses.ProviderAddress {
	if address == nil {
		return nil
	}
	cityStateZip := joinNonEmpty(" ", joinNonEmpty(", ", address.City, address.State), address.PostalCode)
	return &responses.ProviderAddress{
		Purpose:      address.AddressPurpose,
		Line1:        orNotAvailable(address.Address1),
		Line2:        address.Address2,
		CityStateZip: cityStateZip,
		Country:      address.CountryName,
		Phone:        orNotAvailable(address.TelephoneNumber),
		Fax:          orNotAvailable(address.FaxNumber),
	}
}

func BuildProviderDetail(provider *models.Provider) *responses.ProviderDetail {
	gender := provider.Basic.Sex
	if gender == "" {
		gender = provider.Basic.Gender
	}

	name := ProviderName(provider)
	if provider.Basic.Credential != "" && name != "" {
		name = fmt.Sprintf("%s, %s", name, provider.Basic.Credential)
	}

	return &responses.ProviderDetail{
		NPI:             provider.NPI.String(),
		Name:            orNotAvailable(name),
		ProviderType:    ProviderTypeLabel(provider.EnumerationType),
		Credential:      orNotAvailable(provider.Basic.Credential),
		Gender:          orNotAvailable(gender),
		Status:          orNotAvailable(provider.Basic.Status),
		SoleProprietor:  orNotAvailable(provider.Basic.SoleProprietor),
		CertDate:        orNotAvailable(provider.Basic.CertificationDate),
		EnumerationDate: orNotAvailable(provider.Basic.EnumerationDate),
		LastUpdated:     orNotAvailable(provider.Basic.LastUpdated),
		Email:           provider.Basic.Email,
		Specialty:       orNotAvailable(ProviderSpecialty(provider)),
		Location:        buildProviderAddress(provider.AddressByPurpose(constvars.AddressPurposeLocation)),
		Mailing:         buildProviderAddress(provider.AddressByPurpose(constvars.AddressPurposeMailing)),
		Taxonomies:      provider.Taxonomies,
		Identifiers:     provider.Identifiers,
		Endpoints:       provider.Endpoints,
		OtherNames:      provider.OtherNames,
		Raw:             *provider,
	}
}

// MatchProvider reports whether the free text search term appears in the
// provider's name, specialty, city or NPI.
func MatchProvider(provider *models.Provider, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}

	candidates := []string{
		provider.NPI.String(),
		ProviderName(provider),
		ProviderSpecialty(provider),
	}
	if address := provider.AddressByPurpose(constvars.AddressPurposeLocation); address != nil {
		candidates = append(candidates, address.City)
	}

	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate), term) {
			return true
		}
	}
	return false
}

func FilterProviders(providers []models.Provider, term string) []models.Provider {
	if strings.TrimSpace(term) == "" {
		return providers
	}
	filtered := make([]models.Provider, 0, len(providers))
	for i := range providers {
		if MatchProvider(&providers[i], term) {
			filtered = append(filtered, providers[i])
		}
	}
	return filtered
}
