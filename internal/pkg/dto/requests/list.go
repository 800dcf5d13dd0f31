package requests

type CreateList struct {
	ListName string `json:"listName" validate:"required,max=100"`
}

// SaveSelection saves providers to a new list when ListID is empty, otherwise
// to the existing list. NPIs defaults to the current selection.
type SaveSelection struct {
	ListName string   `json:"listName" validate:"max=100"`
	ListID   string   `json:"listId"`
	NPIs     []string `json:"providerNpis" validate:"omitempty,dive,npi"`
}

type AddProvidersToList struct {
	ProviderNPIs []string `json:"providerNpis" validate:"omitempty,dive,npi"`
}
