package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/padhoai/backend/internal/auth"
	"go.uber.org/zap"
)

const (
	// DeviceCookieName is the cookie holding the device token
	DeviceCookieName = "device_token"
	// DeviceTokenHeader echoes the device token for clients that do not keep cookies
	DeviceTokenHeader = "X-Device-Token"
)

// DeviceMiddleware resolves the device a request comes from.
//
// The token is read from the Authorization header, then X-Device-Token, then the cookie.
// Requests without a valid token get a fresh device. The token is returned on every response.
func DeviceMiddleware(tokens *auth.DeviceTokens, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := deviceToken(r)

			var deviceID string
			if token != "" {
				id, err := tokens.Validate(token)
				if err != nil {
					logger.Debug("discarding device token", zap.String("request_id", GetRequestID(r.Context())), zap.Error(err))
				} else {
					deviceID = id
				}
			}

			if deviceID == "" {
				id, issued, err := tokens.Issue()
				if err != nil {
					logger.Error("failed to issue device token", zap.Error(err))
					writeJSONError(w, http.StatusInternalServerError, "internal server error")
					return
				}
				deviceID, token = id, issued
			}

			http.SetCookie(w, &http.Cookie{
				Name:     DeviceCookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(tokens.Expiry().Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(DeviceTokenHeader, token)

			next.ServeHTTP(w, r.WithContext(WithDeviceID(r.Context(), deviceID)))
		})
	}
}

// GetDeviceID retrieves the device ID from context
func GetDeviceID(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(deviceIDKey).(string)
	return deviceID, ok
}

// WithDeviceID returns a copy of ctx carrying deviceID
func WithDeviceID(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, deviceIDKey, deviceID)
}

func deviceToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	if token := r.Header.Get(DeviceTokenHeader); token != "" {
		return token
	}
	if cookie, err := r.Cookie(DeviceCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
