package pages

import (
	"context"
	"strings"
	"testing"

	"login-service/internal/pkg/i18n"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func render(t *testing.T, component templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, component.Render(context.Background(), &b))
	return b.String()
}

func TestLoginPage(t *testing.T) {
	messages := i18n.NewMessages(language.English)

	t.Run("Empty Form", func(t *testing.T) {
		got := render(t, LoginPage(LoginPageParams{Lang: "en", Messages: messages}))

		assert.Contains(t, got, `<html lang="en">`)
		assert.Contains(t, got, messages.Get(i18n.KeyLogin))
		assert.Contains(t, got, `placeholder="`+messages.Get(i18n.KeyEnterEmail)+`"`)
		assert.Contains(t, got, messages.Get(i18n.KeySubmit))
		assert.Contains(t, got, "We&#39;ll never share your email with anyone else.")
		assert.NotContains(t, got, " disabled")
		assert.NotContains(t, got, `class="invalid"`)
	})

	t.Run("Field Error And Value", func(t *testing.T) {
		got := render(t, LoginPage(LoginPageParams{
			Lang:     "en",
			Messages: messages,
			Email:    `x"><script>`,
			Error:    messages.Get(i18n.KeyEmailError),
		}))

		assert.Contains(t, got, `class="invalid"`)
		assert.Contains(t, got, messages.Get(i18n.KeyEmailError))
		assert.NotContains(t, got, `x"><script>`)
	})

	t.Run("Loading Disables Input And Button", func(t *testing.T) {
		got := render(t, LoginPage(LoginPageParams{Lang: "en", Messages: messages, Email: "a@b.com", Loading: true}))

		assert.Equal(t, 2, strings.Count(got, " disabled>"))
	})

	t.Run("Notice", func(t *testing.T) {
		got := render(t, LoginPage(LoginPageParams{Lang: "en", Messages: messages, Notice: messages.Get(i18n.KeyInFlight)}))

		assert.Contains(t, got, "Your previous request is still being processed.")
	})

	t.Run("Indonesian", func(t *testing.T) {
		id := i18n.NewMessages(language.Indonesian)
		got := render(t, LoginPage(LoginPageParams{Lang: "id", Messages: id}))

		assert.Contains(t, got, `<html lang="id">`)
		assert.Contains(t, got, id.Get(i18n.KeySubmit))
	})
}

func TestVerifyPage(t *testing.T) {
	messages := i18n.NewMessages(language.English)

	got := render(t, VerifyPage(VerifyPageParams{Lang: "en", Messages: messages, Email: "a@b.com"}))

	assert.Contains(t, got, messages.Get(i18n.KeyVerifyTitle))
	assert.Contains(t, got, "A verification code has been sent to a@b.com")
	assert.Contains(t, got, "width: 70%;")
	assert.Contains(t, got, "margin-bottom: 16px;")
}

func TestErrorPage(t *testing.T) {
	messages := i18n.NewMessages(language.English)

	got := render(t, ErrorPage(ErrorPageParams{Lang: "en", Messages: messages}))

	assert.Contains(t, got, messages.Get(i18n.KeyErrorPage))
}
