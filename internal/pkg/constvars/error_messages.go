package constvars

// Validation messages, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"oneof":    "must be one of: %s",
	"max":      "maximum at %s characters long",
	"min":      "must contain at least %s item(s)",
	"dive":     "is invalid",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
	"max":   true,
	"min":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientRemoteCallFailed              = "Failed to fetch data"
	ErrClientProviderNotFound              = "Provider data not found."
	ErrClientListNameRequired              = "Please enter a list name"
	ErrClientListRequired                  = "Please select a list"
	ErrClientNoProvidersSelected           = "Please select providers to save"
	ErrClientNothingToExport               = "No providers selected to export"
	ErrClientListEmpty                     = "This list is empty, nothing to export."
	ErrClientMissingEmailLookupInfo        = "Missing NPI, First Name, or Last Name for email search."
	ErrClientFailedToLoadLists             = "Failed to load lists."
	ErrClientFailedToLoadListProviders     = "Failed to load list providers"
	ErrClientFailedToFetchProviders        = "Failed to fetch providers. Please try again."
	ErrClientFailedToSaveToList            = "Failed to save providers to new list."
	ErrClientFailedToAddToList             = "Failed to add providers to existing list."
	ErrClientListCreatedButEmpty           = "List %q was created but the providers could not be added to it."
	ErrClientExportArchiveDisabled         = "export archiving is not enabled"
	ErrClientLookupAlreadyRunning          = "An email search for this provider is already running."
	ErrClientTooManyRequests               = "Too many requests, you are temporarily blocked."
	ErrClientInvalidWorkspaceID            = "invalid workspace id"
	ErrClientInvalidNPI                    = "NPI must be a 10 digit number"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotParseForm        = "cannot parse form"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevReadHTTPResponse       = "failed to read HTTP response body"
	ErrDevRemoteCallFailed       = "remote leads API %s %s responded with status %d"
	ErrDevDecodeRemoteResponse   = "failed to decode %s response from leads API"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevServerProcess          = "server failed to process request"
	ErrDevMissingRequestID       = "request id missing from context"
	ErrDevMissingWorkspaceID     = "workspace id missing from context"
	ErrDevInvalidWorkspaceID     = "workspace id %q is not a valid uuid"
	ErrDevInvalidNPI             = "npi %q is not a 10 digit number"
	ErrDevTooManyRequests        = "client %s exceeded the request limit"
	ErrDevPanicRecovered         = "panic recovered while serving request"
	ErrDevProviderNotInWorkspace = "provider %s is not present in workspace"
	ErrDevEmptySelection         = "selection is empty"
	ErrDevEmptyListName          = "list name is empty"
	ErrDevMissingListID          = "list id is empty"
	ErrDevListPartiallySaved     = "list %s created but adding providers failed"
	ErrDevWorkspaceLockTimeout   = "could not acquire workspace lock %s"
	ErrDevWorkspaceNotFound      = "workspace %s not found"
	ErrDevWriteCSV               = "failed to write CSV"
	ErrDevRenderTemplate         = "failed to render template %s"
	ErrDevLookupInFlight         = "email lookup for %s already in flight"

	// Redis
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisUnlock     = "failed to unlock redis key"

	// Minio
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object in bucket %s"

	// RabbitMQ
	ErrDevRabbitMQPublish = "failed to publish message to queue %s"
)
