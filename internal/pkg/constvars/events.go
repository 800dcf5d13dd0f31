package constvars

const (
	EventProvidersSearched  = "providers.searched"
	EventEmailFound         = "email.found"
	EventListCreated        = "list.created"
	EventListProvidersAdded = "list.providers_added"
	EventExportCreated      = "export.created"
)
