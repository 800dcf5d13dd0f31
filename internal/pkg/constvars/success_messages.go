package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	SearchProvidersSuccessMessage     = "providers fetched successfully"
	GetProviderSuccessMessage         = "provider fetched successfully"
	FindEmailSuccessMessageFormat     = "Email found for %s %s!"
	FindEmailNotFoundMessageFormat    = "Email not found for %s %s."
	FindEmailFailedMessageFormat      = "Failed to find email for %s %s. %s"
	BulkFindEmailSummaryFormat        = "Email search finished: %d found, %d not found, %d failed, %d skipped."
	SelectionUpdatedSuccessMessage    = "selection updated successfully"
	GetListsSuccessMessage            = "lists fetched successfully"
	GetListProvidersSuccessMessage    = "list providers fetched successfully"
	CreateListSuccessMessageFormat    = "List '%s' created!"
	SaveToNewListSuccessMessageFormat = "Providers saved to new list '%s'!"
	AddToListSuccessMessageFormat     = "Providers added to list '%s'!"
	AddToListFallbackListName         = "the list"
	ExportArchivedSuccessMessage      = "export archived successfully"
)

// Notification severities
const (
	SeveritySuccess = "success"
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)
