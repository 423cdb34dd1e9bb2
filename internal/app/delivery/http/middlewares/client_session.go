package middlewares

import (
	"context"
	"login-service/internal/pkg/constvars"
	"login-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ClientSession makes sure every browser carries a signed client cookie and
// puts its client id on the request context. Missing, tampered and expired
// cookies are replaced with a new client.
func (m *Middlewares) ClientSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())
		secret := m.InternalConfig.JWT.Secret
		expiry := time.Duration(m.InternalConfig.Login.ClientSessionExpiredInHours) * time.Hour

		clientID := ""
		if cookie, err := r.Cookie(constvars.ClientSessionCookieName); err == nil {
			parsed, err := utils.ParseClientSessionJWT(cookie.Value, secret)
			if err != nil {
				m.Log.Info("Middlewares.ClientSession replacing invalid client cookie",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			} else {
				clientID = parsed
			}
		}

		if clientID == "" {
			clientID = utils.GenerateClientID()
			token, err := utils.GenerateClientSessionJWT(clientID, secret, expiry)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     constvars.ClientSessionCookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(expiry.Seconds()),
				HttpOnly: true,
				Secure:   m.InternalConfig.Login.SecureCookie,
				SameSite: http.SameSiteLaxMode,
			})
			m.Log.Debug("Middlewares.ClientSession issued new client",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingClientIDKey, clientID),
			)
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_CLIENT_ID_KEY, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
