package middleware

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/ordena/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// DeviceIDKey is the context key for storing the authenticated device ID.
	DeviceIDKey contextKey = "device_id"
	// RequestIDKey is the context key for the per-request ID.
	RequestIDKey contextKey = "request_id"
)

// GetDeviceID extracts the device ID from the context.
// Returns empty string if not found.
func GetDeviceID(ctx context.Context) string {
	deviceID, _ := ctx.Value(DeviceIDKey).(string)
	return deviceID
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

// RequireAuth returns an interceptor that requires a valid device token
// in the Authorization header and adds the device ID to the context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			tokenString, ok := bearerToken(authHeader)
			if !ok {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			slog.Debug("Device authenticated", "device_id", claims.DeviceID, "procedure", req.Spec().Procedure)
			ctx = context.WithValue(ctx, DeviceIDKey, claims.DeviceID)
			return next(ctx, req)
		}
	}
}

// OptionalAuth validates a device token if present but lets anonymous requests through.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if tokenString, ok := bearerToken(req.Header().Get("Authorization")); ok {
				// Invalid tokens are ignored here.
				if claims, err := jwtManager.Validate(tokenString); err == nil {
					ctx = context.WithValue(ctx, DeviceIDKey, claims.DeviceID)
				}
			}
			return next(ctx, req)
		}
	}
}

// BearerToken returns a client interceptor that sends token on every request.
func BearerToken(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient && token != "" {
				req.Header().Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}
