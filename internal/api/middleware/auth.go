package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
)

const (
	// AdminTokenHeader заголовок с общим токеном администратора
	AdminTokenHeader = "X-Admin-Token"

	msgAdminOnly = "관리자 인증이 필요합니다"
)

type ctxKey int

const adminKey ctxKey = iota

// AdminAuth пропускает запрос только с корректным X-Admin-Token
func AdminAuth(token string) func(http.Handler) http.Handler {
	expected := []byte(token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(AdminTokenHeader))
			if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
				handlers.RespondUnauthorized(w, msgAdminOnly)
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsAdmin true, если запрос прошел AdminAuth
func IsAdmin(ctx context.Context) bool {
	v, ok := ctx.Value(adminKey).(bool)
	return ok && v
}
