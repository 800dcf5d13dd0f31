package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingWorkspaceIDKey  = "workspace_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingOperationKey    = "operation"
	LoggingURLKey          = "url"
	LoggingNPIKey          = "npi"
	LoggingListIDKey       = "list_id"
	LoggingListNameKey     = "list_name"
	LoggingCountKey        = "count"
	LoggingFilterKey       = "filter"
	LoggingRedisKey        = "redis_key"
	LoggingLockValueKey    = "lock_value"
	LoggingBucketNameKey   = "bucket_name"
	LoggingObjectNameKey   = "object_name"
	LoggingEventTypeKey    = "event_type"
	LoggingQueueNameKey    = "queue_name"
	LoggingErrorCodeKey    = "error_code"
	LoggingErrorMessageKey = "error_message"
)
