package pages

import (
	"context"
	"io"
	"login-service/internal/app/delivery/http/views/layout"
	"login-service/internal/pkg/constvars"
	"login-service/internal/pkg/i18n"

	"github.com/a-h/templ"
)

type LoginPageParams struct {
	Lang     string
	Messages *i18n.Messages
	Email    string
	// Error is the field error to show. The caller leaves it empty for an
	// untouched field.
	Error   string
	Loading bool
	// Notice is shown above the form, e.g. while a previous submission is
	// still being processed.
	Notice string
}

// liveValidationScript posts every change and blur of the email field to the
// validate endpoint and shows the returned error. Changes after the first blur
// are sent as blur events so the field stays touched.
const liveValidationScript = `<script>(function(){` +
	`var f=document.getElementById("login-form");if(!f||!window.fetch)return;` +
	`var i=f.querySelector("input[name=email]"),m=document.getElementById("email-feedback");` +
	`function v(e){fetch("` + constvars.RouteValidate + `",{method:"POST",headers:{"Content-Type":"application/json"},credentials:"same-origin",` +
	`body:JSON.stringify({email:i.value,event:e})}).then(function(r){return r.json()}).then(function(b){` +
	`var d=b&&b.data||{};var err=d.touched?d.error||"":"";m.textContent=err;i.classList.toggle("invalid",!!err)}).catch(function(){})}` +
	`var t=false;i.addEventListener("input",function(){v(t?"blur":"change")});i.addEventListener("blur",function(){t=true;v("blur")});` +
	`f.addEventListener("submit",function(){f.querySelectorAll("input,button").forEach(function(x){x.readOnly=true});` +
	`f.querySelector("button").disabled=true})})();</script>`

func LoginPage(params LoginPageParams) templ.Component {
	messages := params.Messages
	return document(params.Lang, messages.Get(i18n.KeyTitle), card(
		raw(`<h1>`+templ.EscapeString(messages.Get(i18n.KeyLogin))+`</h1>`),
		notice(params.Notice),
		loginForm(params),
	))
}

func loginForm(params LoginPageParams) templ.Component {
	messages := params.Messages
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		disabled := ""
		if params.Loading {
			disabled = ` disabled`
		}
		inputClass := ""
		if params.Error != "" {
			inputClass = ` class="invalid"`
		}

		form := `<form id="login-form" method="post" action="` + constvars.RouteLogin + `" novalidate>` +
			`<label for="email">` + templ.EscapeString(messages.Get(i18n.KeyEmail)) + `</label>` +
			`<input id="email" type="email" name="` + constvars.FormFieldEmail + `"` + inputClass +
			` placeholder="` + templ.EscapeString(messages.Get(i18n.KeyEnterEmail)) + `"` +
			` value="` + templ.EscapeString(params.Email) + `"` + disabled + `>` +
			`<div id="email-feedback" class="feedback" role="alert">` + templ.EscapeString(params.Error) + `</div>`
		if _, err := io.WriteString(w, form); err != nil {
			return err
		}

		disclaimer := layout.DisclaimerContainer(layout.Text(messages.Get(i18n.KeyEmailDisclaimer)))
		if err := disclaimer.Render(ctx, w); err != nil {
			return err
		}

		button := `<button type="submit"` + disabled + `>` + templ.EscapeString(messages.Get(i18n.KeySubmit)) + `</button></form>` +
			liveValidationScript
		_, err := io.WriteString(w, button)
		return err
	})
}

func notice(text string) templ.Component {
	if text == "" {
		return templ.NopComponent
	}
	return layout.Row(layout.FreeFlowText(layout.Text(text)))
}
