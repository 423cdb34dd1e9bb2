package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, KeyTitle, "Login")
	message.SetString(lang, KeyLogin, "Login")
	message.SetString(lang, KeyEmail, "Email Address")
	message.SetString(lang, KeyEnterEmail, "Enter email address")
	message.SetString(lang, KeyEmailError, "Enter a valid email address")
	message.SetString(lang, KeyRequired, "Required")
	message.SetString(lang, KeySubmit, "Submit")
	message.SetString(lang, KeyUnknownError, "Something went wrong, please try again.")
	message.SetString(lang, KeyEmailDisclaimer, "We'll never share your email with anyone else.")

	// Verify page
	message.SetString(lang, KeyVerifyTitle, "Verify Email")
	message.SetString(lang, KeyVerifySent, "A verification code has been sent to %s")

	message.SetString(lang, KeyErrorPage, "We could not process your request. Please try again later.")
	message.SetString(lang, KeyInFlight, "Your previous request is still being processed.")
}
