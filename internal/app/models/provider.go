package models

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// NPI is the ten digit National Provider Identifier. The leads API returns it
// either as a string or as a bare number, so both are accepted when decoding.
type NPI string

func (n *NPI) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = NPI(strings.TrimSpace(s))
		return nil
	}

	var i int64
	if err := json.Unmarshal(data, &i); err != nil {
		return err
	}
	*n = NPI(strconv.FormatInt(i, 10))
	return nil
}

func (n NPI) String() string {
	return string(n)
}

// FlexInt decodes epoch timestamps sent either as "1234567890" or 1234567890.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var i int64
	if err := json.Unmarshal(data, &i); err == nil {
		*f = FlexInt(i)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*f = FlexInt(i)
	return nil
}

func (f FlexInt) Int64() int64 {
	return int64(f)
}

type Provider struct {
	NPI               NPI                  `json:"npi"`
	EnumerationType   string               `json:"enumeration_type"`
	Basic             ProviderBasic        `json:"basic"`
	Addresses         []ProviderAddress    `json:"addresses,omitempty"`
	PracticeLocations []ProviderAddress    `json:"practiceLocations,omitempty"`
	Taxonomies        []ProviderTaxonomy   `json:"taxonomies,omitempty"`
	Identifiers       []ProviderIdentifier `json:"identifiers,omitempty"`
	Endpoints         []ProviderEndpoint   `json:"endpoints,omitempty"`
	OtherNames        []ProviderOtherName  `json:"other_names,omitempty"`
	CreatedEpoch      FlexInt              `json:"created_epoch,omitempty"`
	LastUpdatedEpoch  FlexInt              `json:"last_updated_epoch,omitempty"`
}

type ProviderBasic struct {
	NamePrefix                        string `json:"name_prefix,omitempty"`
	FirstName                         string `json:"first_name,omitempty"`
	MiddleName                        string `json:"middle_name,omitempty"`
	LastName                          string `json:"last_name,omitempty"`
	NameSuffix                        string `json:"name_suffix,omitempty"`
	Credential                        string `json:"credential,omitempty"`
	Sex                               string `json:"sex,omitempty"`
	Gender                            string `json:"gender,omitempty"`
	SoleProprietor                    string `json:"sole_proprietor,omitempty"`
	Status                            string `json:"status,omitempty"`
	EnumerationDate                   string `json:"enumeration_date,omitempty"`
	LastUpdated                       string `json:"last_updated,omitempty"`
	CertificationDate                 string `json:"certification_date,omitempty"`
	OrganizationName                  string `json:"organization_name,omitempty"`
	OrganizationalSubpart             string `json:"organizational_subpart,omitempty"`
	AuthorizedOfficialFirstName       string `json:"authorized_official_first_name,omitempty"`
	AuthorizedOfficialLastName        string `json:"authorized_official_last_name,omitempty"`
	AuthorizedOfficialTelephoneNumber string `json:"authorized_official_telephone_number,omitempty"`
	AuthorizedOfficialTitleOrPosition string `json:"authorized_official_title_or_position,omitempty"`
	Email                             string `json:"email,omitempty"`
}

type ProviderAddress struct {
	AddressPurpose  string `json:"address_purpose,omitempty"`
	AddressType     string `json:"address_type,omitempty"`
	Address1        string `json:"address_1,omitempty"`
	Address2        string `json:"address_2,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	PostalCode      string `json:"postal_code,omitempty"`
	CountryCode     string `json:"country_code,omitempty"`
	CountryName     string `json:"country_name,omitempty"`
	TelephoneNumber string `json:"telephone_number,omitempty"`
	FaxNumber       string `json:"fax_number,omitempty"`
}

type ProviderTaxonomy struct {
	Code          string `json:"code,omitempty"`
	Desc          string `json:"desc,omitempty"`
	Primary       bool   `json:"primary"`
	State         string `json:"state,omitempty"`
	License       string `json:"license,omitempty"`
	TaxonomyGroup string `json:"taxonomy_group,omitempty"`
}

type ProviderIdentifier struct {
	Code       string `json:"code,omitempty"`
	Desc       string `json:"desc,omitempty"`
	Identifier string `json:"identifier,omitempty"`
	Issuer     string `json:"issuer,omitempty"`
	State      string `json:"state,omitempty"`
}

type ProviderEndpoint struct {
	EndpointType            string `json:"endpointType,omitempty"`
	EndpointTypeDescription string `json:"endpointTypeDescription,omitempty"`
	Endpoint                string `json:"endpoint,omitempty"`
	Affiliation             string `json:"affiliation,omitempty"`
	UseDescription          string `json:"useDescription,omitempty"`
	ContentTypeDescription  string `json:"contentTypeDescription,omitempty"`
	Address                 string `json:"address_1,omitempty"`
	City                    string `json:"city,omitempty"`
	State                   string `json:"state,omitempty"`
}

type ProviderOtherName struct {
	Type             string `json:"type,omitempty"`
	Code             string `json:"code,omitempty"`
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
}

// PrimaryTaxonomy returns the taxonomy flagged primary, or nil.
func (p *Provider) PrimaryTaxonomy() *ProviderTaxonomy {
	for i := range p.Taxonomies {
		if p.Taxonomies[i].Primary {
			return &p.Taxonomies[i]
		}
	}
	return nil
}

// AddressByPurpose returns the first address with the given purpose, or nil.
func (p *Provider) AddressByPurpose(purpose string) *ProviderAddress {
	for i := range p.Addresses {
		if strings.EqualFold(p.Addresses[i].AddressPurpose, purpose) {
			return &p.Addresses[i]
		}
	}
	return nil
}

func (p *Provider) HasPersonalName() bool {
	return strings.TrimSpace(p.Basic.FirstName) != "" || strings.TrimSpace(p.Basic.LastName) != ""
}

// CanLookupEmail reports whether the provider carries what the email finder needs.
func (p *Provider) CanLookupEmail() bool {
	return p.NPI != "" && strings.TrimSpace(p.Basic.FirstName) != "" && strings.TrimSpace(p.Basic.LastName) != ""
}
