package constvars

const (
	MIMETextHTML            = "text/html"
	MIMETextPlain           = "text/plain"
	MIMEApplicationJSON     = "application/json"
	MIMEApplicationForm     = "application/x-www-form-urlencoded"
	MIMETextHTMLCharsetUTF8 = "text/html; charset=utf-8"

	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK                  = 200
	StatusFound               = 302
	StatusSeeOther            = 303
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusRequestTimeout      = 408
	StatusConflict            = 409
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAccept          = "Accept"
	HeaderAcceptLanguage  = "Accept-Language"
	HeaderAuthorization   = "Authorization"
	HeaderCacheControl    = "Cache-Control"
	HeaderContentLanguage = "Content-Language"
	HeaderContentType     = "Content-Type"
	HeaderLocation        = "Location"
	HeaderUserAgent       = "User-Agent"
	HeaderXRequestID      = "X-Request-ID"
	HeaderXCSRFToken      = "X-CSRF-Token"
	HeaderLink            = "Link"
)

const (
	FormFieldEmail = "email"
	FormFieldEvent = "event"
)

const (
	FieldEventChange = "change"
	FieldEventBlur   = "blur"
)
