package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	userNameKey contextKey = "user_name"
)

// JWTAuth rejects requests without a valid bearer token. The service never
// issues tokens; it only verifies what the identity provider signed.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := parseBearer(r, secret)
			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"success":false,"error":"authentication token required"}`))
				return
			}
			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), claims)))
		})
	}
}

// OptionalJWTAuth attaches the caller's identity when a valid token is
// present and passes the request through untouched otherwise. Review writes
// stay open to anonymous callers.
func OptionalJWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := parseBearer(r, secret); ok {
				r = r.WithContext(withIdentity(r.Context(), claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func parseBearer(r *http.Request, secret string) (jwt.MapClaims, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, false
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

func withIdentity(ctx context.Context, claims jwt.MapClaims) context.Context {
	if id, ok := claims["user_id"].(string); ok {
		ctx = context.WithValue(ctx, userIDKey, id)
	}
	if name, ok := claims["name"].(string); ok {
		ctx = context.WithValue(ctx, userNameKey, name)
	}
	return ctx
}

// GetUserID returns the authenticated caller's id, or "" for anonymous
// requests.
func GetUserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// GetUserName returns the authenticated caller's display name, or "".
func GetUserName(ctx context.Context) string {
	name, _ := ctx.Value(userNameKey).(string)
	return name
}
