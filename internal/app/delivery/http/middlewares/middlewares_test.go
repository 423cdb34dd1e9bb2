package middlewares

import (
	"bytes"
	"io"
	"login-service/internal/app/config"
	"login-service/internal/pkg/constvars"
	"login-service/internal/pkg/i18n"
	"login-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const testSecret = "test-secret"

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{
			Timezone:                   "UTC",
			RequestBodyLimitInMegabyte: 1,
		},
		JWT: config.JWT{Secret: testSecret},
		Login: config.Login{
			ClientSessionExpiredInHours: 1,
			SecureCookie:                true,
		},
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("Generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("From Client", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-abc")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-abc", seen)
		assert.Equal(t, "client-abc", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestLogging(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.Logging(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestRequestLogger(t *testing.T) {
	m := newTestMiddlewares()
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	handler := m.RequestLogger(config.App{Timezone: "Nowhere/Invalid"}, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/validate", nil))

	out := buf.String()
	assert.Contains(t, out, "Invalid time zone")
	assert.Contains(t, out, "{POST} ==> {/validate}")
	assert.Contains(t, out, "{202}")
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares()

	t.Run("Recovers Panic", func(t *testing.T) {
		handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":false`)
	})

	t.Run("Passes Through", func(t *testing.T) {
		handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestClientSession(t *testing.T) {
	m := newTestMiddlewares()

	var seen string
	handler := m.ClientSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetClientID(r.Context())
	}))

	sessionCookie := func(rr *httptest.ResponseRecorder) *http.Cookie {
		for _, c := range rr.Result().Cookies() {
			if c.Name == constvars.ClientSessionCookieName {
				return c
			}
		}
		return nil
	}

	t.Run("Issues New Client", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		cookie := sessionCookie(rr)
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.NotEmpty(t, seen)

		parsed, err := utils.ParseClientSessionJWT(cookie.Value, testSecret)
		require.NoError(t, err)
		assert.Equal(t, seen, parsed)
	})

	t.Run("Keeps Valid Client", func(t *testing.T) {
		clientID := utils.GenerateClientID()
		token, err := utils.GenerateClientSessionJWT(clientID, testSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: constvars.ClientSessionCookieName, Value: token})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, clientID, seen)
		assert.Nil(t, sessionCookie(rr))
	})

	t.Run("Replaces Tampered Client", func(t *testing.T) {
		clientID := utils.GenerateClientID()
		token, err := utils.GenerateClientSessionJWT(clientID, "other-secret", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: constvars.ClientSessionCookieName, Value: token})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.NotEqual(t, clientID, seen)
		assert.NotNil(t, sessionCookie(rr))
	})
}

func TestLanguage(t *testing.T) {
	m := newTestMiddlewares()

	var seen language.Tag
	handler := m.Language(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = i18n.FromContext(r.Context()).Tag()
	}))

	t.Run("Query Persists Cookie", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/?lang=id", nil))

		assert.Equal(t, language.Indonesian, seen)
		assert.Equal(t, "id", rr.Header().Get(constvars.HeaderContentLanguage))
		assert.Contains(t, rr.Header().Get("Set-Cookie"), constvars.LanguageCookieName+"=id")
	})

	t.Run("Accept Language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAcceptLanguage, "id-ID,id;q=0.9")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, language.Indonesian, seen)
		assert.Empty(t, rr.Header().Get("Set-Cookie"))
	})

	t.Run("Default", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, language.English, seen)
	})
}

func TestBodyLimit(t *testing.T) {
	m := newTestMiddlewares()

	var readErr error
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	t.Run("Within Limit", func(t *testing.T) {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("email=a@b.com")))
		assert.NoError(t, readErr)
	})

	t.Run("Over Limit", func(t *testing.T) {
		body := strings.NewReader(strings.Repeat("a", (1<<20)+1))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", body))
		assert.Error(t, readErr)
	})
}
