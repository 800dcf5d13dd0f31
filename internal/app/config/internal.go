package config

type InternalConfig struct {
	App        App           `mapstructure:"app"`
	LeadsAPI   AppLeadsAPI   `mapstructure:"leads_api"`
	Workspace  AppWorkspace  `mapstructure:"workspace"`
	Enrichment AppEnrichment `mapstructure:"enrichment"`
	Export     AppExport     `mapstructure:"export"`
	Events     AppEvents     `mapstructure:"events"`
}

type App struct {
	Env                     string   `mapstructure:"env"`
	Port                    string   `mapstructure:"port"`
	Version                 string   `mapstructure:"version"`
	BaseUrl                 string   `mapstructure:"base_url"`
	Timezone                string   `mapstructure:"timezone"`
	EndpointPrefix          string   `mapstructure:"endpoint_prefix"`
	CorsAllowedOrigins      []string `mapstructure:"cors_allowed_origins"`
	MaxRequests             int      `mapstructure:"max_requests"`
	ShutdownTimeout         int      `mapstructure:"shutdown_timeout"`
	RequestTimeoutInSeconds int      `mapstructure:"request_timeout_in_seconds"`
	PageSize                int      `mapstructure:"page_size"`
	ListPageSize            int      `mapstructure:"list_page_size"`
}

type AppLeadsAPI struct {
	BaseUrl          string `mapstructure:"base_url"`
	TimeoutInSeconds int    `mapstructure:"timeout_in_seconds"`
}

type AppWorkspace struct {
	// Store selects the repository, "memory" or "redis".
	Store                string `mapstructure:"store"`
	TTLInHours           int    `mapstructure:"ttl_in_hours"`
	CookieName           string `mapstructure:"cookie_name"`
	CookieSecure         bool   `mapstructure:"cookie_secure"`
	LockTimeoutInSeconds int    `mapstructure:"lock_timeout_in_seconds"`
	LockExpiryInSeconds  int    `mapstructure:"lock_expiry_in_seconds"`
}

type AppEnrichment struct {
	Concurrency             int     `mapstructure:"concurrency"`
	RatePerSecond           float64 `mapstructure:"rate_per_second"`
	DefaultOrganizationName string  `mapstructure:"default_organization_name"`
	// Per client limit on the email lookup routes, which spend remote credits.
	LookupRequestsPerMinute  int `mapstructure:"lookup_requests_per_minute"`
	LookupBlockTimeInSeconds int `mapstructure:"lookup_block_time_in_seconds"`
}

type AppExport struct {
	ArchiveEnabled                bool   `mapstructure:"archive_enabled"`
	BucketName                    string `mapstructure:"bucket_name"`
	PreSignedUrlExpiryTimeInHours int    `mapstructure:"pre_signed_url_expiry_time_in_hours"`
}

type AppEvents struct {
	Enabled bool   `mapstructure:"enabled"`
	Queue   string `mapstructure:"queue"`
}
