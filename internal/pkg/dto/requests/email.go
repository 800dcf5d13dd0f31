package requests

type BulkFindEmail struct {
	NPIs []string `json:"npis" validate:"omitempty,dive,npi"`
}
