package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientSubmissionInFlight            = "your previous request is still being processed"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotParseForm        = "cannot parse form body"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevCannotUnmarshalJSON    = "cannot unmarshal JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerProcess          = "server failed to process the request"
	ErrDevRenderPage             = "failed to render page"

	// Redis messages
	ErrDevRedisGetNoData  = "failed to get data from redis with key %s"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// Mongo messages
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"
	ErrDevDBFailedToUpsertDocument = "failed to upsert document into database"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"

	// Client session messages
	ErrDevClientSessionSign  = "failed to sign client session token"
	ErrDevClientSessionParse = "failed to parse client session token"

	// Token issuance messages
	ErrDevOTTUpstreamStatus = "one-time token upstream returned status %d"
	ErrDevOTTRateLimitWait  = "one-time token outbound limiter wait failed"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrLineLocationUnknown = "line location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
