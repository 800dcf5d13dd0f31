package constvars

const (
	URLParamNPI    = "npi"
	URLParamListID = "listID"
)

const (
	URLQueryPage     = "page"
	URLQueryPageSize = "page_size"
	URLQuerySearch   = "q"
)

const (
	FormFieldNPI      = "npi"
	FormFieldSelected = "selected"
	FormFieldAction   = "action"
	FormFieldListName = "list_name"
	FormFieldListID   = "list_id"
	FormFieldReturnTo = "return_to"
	FormFieldMode     = "mode"

	FormModeCreate = "create"
)

const (
	SelectionActionToggle    = "toggle"
	SelectionActionSelectAll = "select_all"
	SelectionActionClearAll  = "clear_all"
)

// Remote API paths relative to the configured base URL.
const (
	LeadsAPIPathProviders         = "/providers"
	LeadsAPIPathLists             = "/lists"
	LeadsAPIPathListProviders     = "/lists/%s/providers"
	LeadsAPIPathProviderFindEmail = "/providers/%s/find-email"
)
