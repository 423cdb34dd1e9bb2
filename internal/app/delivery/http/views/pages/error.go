package pages

import (
	"login-service/internal/app/delivery/http/views/layout"
	"login-service/internal/pkg/i18n"

	"github.com/a-h/templ"
)

type ErrorPageParams struct {
	Lang     string
	Messages *i18n.Messages
}

func ErrorPage(params ErrorPageParams) templ.Component {
	messages := params.Messages
	return document(params.Lang, messages.Get(i18n.KeyTitle), card(
		layout.CenteredFlex(layout.FreeFlowText(layout.Text(messages.Get(i18n.KeyErrorPage)))),
	))
}
