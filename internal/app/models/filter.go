package models

// ProviderFilter holds the search criteria. Empty fields are never sent.
type ProviderFilter struct {
	TaxonomyDescription string `json:"taxonomy_description,omitempty" form:"taxonomy_description"`
	State               string `json:"state,omitempty" form:"state"`
	EnumerationType     string `json:"enumeration_type,omitempty" form:"enumeration_type"`
	AddressPurpose      string `json:"address_purpose,omitempty" form:"address_purpose"`
	FirstName           string `json:"first_name,omitempty" form:"first_name"`
	LastName            string `json:"last_name,omitempty" form:"last_name"`
	OrganizationName    string `json:"organization_name,omitempty" form:"organization_name"`
	City                string `json:"city,omitempty" form:"city"`
	PostalCode          string `json:"postal_code,omitempty" form:"postal_code"`
}

type FilterField struct {
	Key   string
	Label string
	Value string
}

// Fields lists every filter field in a stable order, empty ones included.
func (f ProviderFilter) Fields() []FilterField {
	return []FilterField{
		{Key: "taxonomy_description", Label: "Specialty", Value: f.TaxonomyDescription},
		{Key: "state", Label: "State", Value: f.State},
		{Key: "enumeration_type", Label: "Provider Type", Value: f.EnumerationType},
		{Key: "address_purpose", Label: "Address Type", Value: f.AddressPurpose},
		{Key: "first_name", Label: "First Name", Value: f.FirstName},
		{Key: "last_name", Label: "Last Name", Value: f.LastName},
		{Key: "organization_name", Label: "Organization", Value: f.OrganizationName},
		{Key: "city", Label: "City", Value: f.City},
		{Key: "postal_code", Label: "Postal Code", Value: f.PostalCode},
	}
}

func (f ProviderFilter) IsEmpty() bool {
	for _, field := range f.Fields() {
		if field.Value != "" {
			return false
		}
	}
	return true
}
