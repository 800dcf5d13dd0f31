package models

// List is a named, remotely stored collection of provider NPIs.
type List struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ProviderCount int      `json:"provider_count"`
	ProviderNPIs  []string `json:"providers,omitempty"`
}

type ListSaveResult struct {
	List       List `json:"list"`
	Created    bool `json:"created"`
	AddedCount int  `json:"added_count"`
}
