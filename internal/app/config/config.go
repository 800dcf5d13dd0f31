package config

import (
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("APP_ENV", "development"),
			Port:                    utils.GetEnvString("APP_PORT", ":8080"),
			Version:                 utils.GetEnvString("APP_VERSION", "v1"),
			BaseUrl:                 utils.GetEnvString("APP_BASE_URL", "http://localhost:8080"),
			Timezone:                utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:          utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			CorsAllowedOrigins:      utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:             utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeout:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 15),
			PageSize:                utils.GetEnvInt("APP_PAGE_SIZE", 10),
			ListPageSize:            utils.GetEnvInt("APP_LIST_PAGE_SIZE", 15),
		},
		LeadsAPI: AppLeadsAPI{
			BaseUrl:          utils.GetEnvString("LEADS_API_BASE_URL", "https://providers-backend.onrender.com/api"),
			TimeoutInSeconds: utils.GetEnvInt("LEADS_API_TIMEOUT_IN_SECONDS", 30),
		},
		Workspace: AppWorkspace{
			Store:                utils.GetEnvString("WORKSPACE_STORE", constvars.WorkspaceStoreMemory),
			TTLInHours:           utils.GetEnvInt("WORKSPACE_TTL_IN_HOURS", 12),
			CookieName:           utils.GetEnvString("WORKSPACE_COOKIE_NAME", "leads_workspace"),
			CookieSecure:         utils.GetEnvBool("WORKSPACE_COOKIE_SECURE", false),
			LockTimeoutInSeconds: utils.GetEnvInt("WORKSPACE_LOCK_TIMEOUT_IN_SECONDS", 5),
			LockExpiryInSeconds:  utils.GetEnvInt("WORKSPACE_LOCK_EXPIRY_IN_SECONDS", 10),
		},
		Enrichment: AppEnrichment{
			Concurrency:              utils.GetEnvInt("ENRICHMENT_CONCURRENCY", 4),
			RatePerSecond:            utils.GetEnvFloat("ENRICHMENT_RATE_PER_SECOND", 2),
			DefaultOrganizationName:  utils.GetEnvString("ENRICHMENT_DEFAULT_ORGANIZATION", "medical"),
			LookupRequestsPerMinute:  utils.GetEnvInt("ENRICHMENT_LOOKUP_REQUESTS_PER_MINUTE", 30),
			LookupBlockTimeInSeconds: utils.GetEnvInt("ENRICHMENT_LOOKUP_BLOCK_TIME_IN_SECONDS", 60),
		},
		Export: AppExport{
			ArchiveEnabled:                utils.GetEnvBool("EXPORT_ARCHIVE_ENABLED", false),
			BucketName:                    utils.GetEnvString("MINIO_BUCKET_NAME", "lead-exports"),
			PreSignedUrlExpiryTimeInHours: utils.GetEnvInt("MINIO_PRE_SIGNED_URL_EXPIRY_TIME_IN_HOURS", 24),
		},
		Events: AppEvents{
			Enabled: utils.GetEnvBool("EVENTS_ENABLED", false),
			Queue:   utils.GetEnvString("RABBITMQ_EVENTS_QUEUE", "lead_events"),
		},
	}
}
