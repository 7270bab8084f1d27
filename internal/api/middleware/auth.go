package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/MCB-BookingService/internal/api/handlers"
)

// Заголовок с админским токеном
const adminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "token de administrador inválido"

// AdminAuth проверяет админский токен на защищенных маршрутах
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
