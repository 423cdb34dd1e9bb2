package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Indonesian

	message.SetString(lang, KeyTitle, "Masuk")
	message.SetString(lang, KeyLogin, "Masuk")
	message.SetString(lang, KeyEmail, "Alamat Email")
	message.SetString(lang, KeyEnterEmail, "Masukkan alamat email")
	message.SetString(lang, KeyEmailError, "Masukkan alamat email yang valid")
	message.SetString(lang, KeyRequired, "Wajib diisi")
	message.SetString(lang, KeySubmit, "Kirim")
	message.SetString(lang, KeyUnknownError, "Terjadi kesalahan, silakan coba lagi.")
	message.SetString(lang, KeyEmailDisclaimer, "Kami tidak akan membagikan email Anda kepada siapa pun.")

	// Verify page
	message.SetString(lang, KeyVerifyTitle, "Verifikasi Email")
	message.SetString(lang, KeyVerifySent, "Kode verifikasi telah dikirim ke %s")

	message.SetString(lang, KeyErrorPage, "Permintaan Anda tidak dapat diproses. Silakan coba lagi nanti.")
	message.SetString(lang, KeyInFlight, "Permintaan Anda sebelumnya masih diproses.")
}
