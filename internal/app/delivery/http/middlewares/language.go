package middlewares

import (
	"login-service/internal/pkg/constvars"
	"login-service/internal/pkg/i18n"
	"net/http"
)

// Language resolves the display language of the request and stores its
// messages on the context.
func (m *Middlewares) Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag, persist := i18n.ResolveTag(r)
		if persist {
			i18n.SetLanguageCookie(w, tag)
		}
		w.Header().Set(constvars.HeaderContentLanguage, tag.String())

		ctx := i18n.WithMessages(r.Context(), i18n.NewMessages(tag))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
