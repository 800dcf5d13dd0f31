package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_WORKSPACE_ID_KEY         ContextKey = "workspace_id"
)

const (
	REQUEST_ID_PREFIX = "LEADS_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	WorkspaceStoreMemory = "memory"
	WorkspaceStoreRedis  = "redis"

	WorkspaceRedisKeyPrefix     = "leads:workspace:"
	WorkspaceLockRedisKeyPrefix = "leads:workspace-lock:"
)

// Values accepted by the provider registry for the enumerated filter fields.
const (
	EnumerationTypeIndividual   = "NPI-1"
	EnumerationTypeOrganization = "NPI-2"

	AddressPurposeLocation  = "LOCATION"
	AddressPurposeMailing   = "MAILING"
	AddressPurposePrimary   = "PRIMARY"
	AddressPurposeSecondary = "SECONDARY"
)

const (
	NotAvailable           = "N/A"
	EmptyNamePrefix        = "--"
	ProviderTypeIndividual = "Individual"
	ProviderTypeOrg        = "Organization"
	ProviderTypeUnknown    = "Unknown"
)

const (
	ExportSelectionFilename  = "selected_providers.csv"
	ExportListFilenameSuffix = "_providers.csv"
	ExportListFallbackName   = "list"
	ExportArchivePrefix      = "exports/"
)

var ExportCSVHeader = []string{"NPI", "Provider Name", "Specialty", "Address", "Email", "Phone"}

// Choices offered by the search form. Free text is still accepted for specialty and state.
var (
	FilterSpecialties    = []string{"Cardiology", "Internal Medicine", "Family Medicine", "Neurology", "Orthopedic Surgery"}
	FilterStates         = []string{"NY", "CA", "TX", "FL", "IL", "MA", "PA", "OH"}
	FilterProviderTypes  = []string{EnumerationTypeIndividual, EnumerationTypeOrganization}
	FilterAddressPurpose = []string{AddressPurposeLocation, AddressPurposeMailing, AddressPurposePrimary, AddressPurposeSecondary}
)
