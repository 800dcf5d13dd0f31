package responses

import "provider-leads-service/internal/app/models"

type ListProviders struct {
	List          models.List   `json:"list"`
	SelectedCount int           `json:"selected_count"`
	Rows          []ProviderRow `json:"rows"`
}
