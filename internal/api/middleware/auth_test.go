package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	handler := AdminAuth("secret-token")(next)

	testCases := []struct {
		name   string
		token  string
		status int
	}{
		{name: "valid token", token: "secret-token", status: http.StatusNoContent},
		{name: "wrong token", token: "otro-token", status: http.StatusUnauthorized},
		{name: "missing token", token: "", status: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
			if tc.token != "" {
				req.Header.Set("X-Admin-Token", tc.token)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
