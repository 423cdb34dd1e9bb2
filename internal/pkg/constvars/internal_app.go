package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_CLIENT_ID_KEY            ContextKey = "client_id"
	CONTEXT_LANGUAGE_KEY             ContextKey = "language"
)

const (
	REQUEST_ID_PREFIX = "LOGIN_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	ClientStorageDriverRedis = "redis"
	ClientStorageDriverMongo = "mongo"
)
