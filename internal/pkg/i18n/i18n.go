package i18n

import (
	"context"
	"net/http"
	"strings"
	"time"

	"login-service/internal/pkg/constvars"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	supported = []language.Tag{language.English, language.Indonesian}
	matcher   = language.NewMatcher(supported)
)

// Supported returns the list of supported language tags. The first one is the
// default.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

func Default() language.Tag {
	return supported[0]
}

// Messages resolves string table keys for one language.
type Messages struct {
	tag     language.Tag
	printer *message.Printer
}

func NewMessages(tag language.Tag) *Messages {
	return &Messages{tag: tag, printer: message.NewPrinter(tag)}
}

func (m *Messages) Get(key string) string {
	return m.printer.Sprintf(key)
}

func (m *Messages) Format(key string, args ...interface{}) string {
	return m.printer.Sprintf(key, args...)
}

func (m *Messages) Tag() language.Tag {
	return m.tag
}

// ParseTag matches value against the supported languages.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, index, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return language.Und, false
	}
	return supported[index], true
}

// ResolveTag picks the language for r from the lang query parameter, then the
// language cookie, then Accept-Language. The bool reports whether the query
// parameter should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}

	if tag, ok := ParseTag(r.URL.Query().Get(constvars.LanguageQueryParam)); ok {
		return tag, true
	}

	if cookie, err := r.Cookie(constvars.LanguageCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get(constvars.HeaderAcceptLanguage)); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, index, confidence := matcher.Match(tags...)
			if confidence != language.No {
				return supported[index], false
			}
		}
	}

	return Default(), false
}

func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.LanguageCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

func WithMessages(ctx context.Context, messages *Messages) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_LANGUAGE_KEY, messages)
}

// FromContext returns the messages stored by WithMessages, or the default
// language when none are present.
func FromContext(ctx context.Context) *Messages {
	if messages, ok := ctx.Value(constvars.CONTEXT_LANGUAGE_KEY).(*Messages); ok && messages != nil {
		return messages
	}
	return NewMessages(Default())
}
