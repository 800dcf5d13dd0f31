package models

type EmailLookupRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	OrganizationName string `json:"organizationName"`
}

type EmailLookupResult struct {
	NPI     string `json:"npi"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
	Found   bool   `json:"found"`
}

type BulkEmailLookupSummary struct {
	Found    int                 `json:"found"`
	NotFound int                 `json:"not_found"`
	Failed   int                 `json:"failed"`
	Skipped  int                 `json:"skipped"`
	Results  []EmailLookupResult `json:"results"`
}
