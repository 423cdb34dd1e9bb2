package constvars

// Route paths served by the login service.
const (
	RouteLogin    = "/"
	RouteValidate = "/validate"
	RouteVerify   = "/verify"
	RouteHealth   = "/healthz"
)

// Client storage keys. StorageKeyUser holds the pending or full identity
// record of the browser client.
const (
	StorageKeyUser = "user"
)

const (
	ClientStorageRedisKeyFormat = "client_storage:%s:%s"
	SubmitLockKeyFormat         = "login:submit:%s"
	ClientStorageCollection     = "client_storage"
)

const (
	ClientSessionCookieName = "login_client"
	ClientSessionClaimKey   = "client_id"
	LanguageCookieName      = "login_lang"
	LanguageQueryParam      = "lang"
)

const (
	LoginEventOTTRequested     = "ott_requested"
	LoginEventOTTRequestFailed = "ott_request_failed"
)
