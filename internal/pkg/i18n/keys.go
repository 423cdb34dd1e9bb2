package i18n

// Keys of the localized string table used by the login pages.
const (
	KeyTitle           = "TITLE"
	KeyLogin           = "LOGIN"
	KeyEmail           = "EMAIL"
	KeyEnterEmail      = "ENTER_EMAIL"
	KeyEmailError      = "EMAIL_ERROR"
	KeyRequired        = "REQUIRED"
	KeySubmit          = "SUBMIT"
	KeyUnknownError    = "UNKNOWN_ERROR"
	KeyEmailDisclaimer = "EMAIL_DISCLAIMER"
	KeyVerifyTitle     = "VERIFY_TITLE"
	KeyVerifySent      = "VERIFY_SENT"
	KeyErrorPage       = "ERROR_PAGE"
	KeyInFlight        = "SUBMISSION_IN_FLIGHT"
)

// AllKeys lists every key each catalog must define.
var AllKeys = []string{
	KeyTitle,
	KeyLogin,
	KeyEmail,
	KeyEnterEmail,
	KeyEmailError,
	KeyRequired,
	KeySubmit,
	KeyUnknownError,
	KeyEmailDisclaimer,
	KeyVerifyTitle,
	KeyVerifySent,
	KeyErrorPage,
	KeyInFlight,
}
