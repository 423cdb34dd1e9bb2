package pages

import (
	"login-service/internal/app/delivery/http/views/layout"
	"login-service/internal/pkg/i18n"

	"github.com/a-h/templ"
)

type VerifyPageParams struct {
	Lang     string
	Messages *i18n.Messages
	Email    string
}

func VerifyPage(params VerifyPageParams) templ.Component {
	messages := params.Messages
	return document(params.Lang, messages.Get(i18n.KeyVerifyTitle), card(
		raw(`<h1>`+templ.EscapeString(messages.Get(i18n.KeyVerifyTitle))+`</h1>`),
		layout.Row(
			layout.FreeFlowText(layout.Text(messages.Format(i18n.KeyVerifySent, params.Email))),
		),
		layout.Row(
			layout.Label("", layout.Text(messages.Get(i18n.KeyEmail))),
			layout.Value("", layout.Text(params.Email)),
		),
	))
}
