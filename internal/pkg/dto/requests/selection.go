package requests

type UpdateSelection struct {
	Action   string `json:"action" validate:"required,oneof=toggle select_all clear_all"`
	NPI      string `json:"npi" validate:"required_if=Action toggle"`
	Selected bool   `json:"selected"`
	// Page scopes select_all and clear_all to the rows shown on that page.
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Search   string `json:"q"`
}
