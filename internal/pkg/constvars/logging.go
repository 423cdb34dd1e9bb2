package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingClientIDKey       = "client_id"
	LoggingDataKey           = "data"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingOperationKey      = "operation"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingRedisKey          = "redis_key"
	LoggingStorageKey        = "storage_key"
	LoggingFlowStateKey      = "flow_state"
	LoggingEmailDomainKey    = "email_domain"
	LoggingRedirectPathKey   = "redirect_path"
	LoggingQueueNameKey      = "queue_name"
	LoggingEventTypeKey      = "event_type"
	LoggingUpstreamURLKey    = "upstream_url"
	LoggingUpstreamStatusKey = "upstream_status"

	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)
