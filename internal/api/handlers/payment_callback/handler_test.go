package payment_callback

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/MCB-BookingService/internal/service/reconciler"
)

type fakeReconciler struct {
	err    error
	params url.Values
}

func (f *fakeReconciler) HandleCallback(ctx context.Context, params url.Values) error {
	f.params = params
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func postCallback(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/callback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle_Acknowledged(t *testing.T) {
	svc := &fakeReconciler{}
	h := NewHandler(svc, nopLogger{})

	rec := postCallback(h, "order_id=ord-1&status=approved&s=abc")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.Equal(t, "ord-1", svc.params.Get("order_id"))
	assert.Equal(t, "approved", svc.params.Get("status"))
}

func TestHandler_Handle_InvalidSignature(t *testing.T) {
	svc := &fakeReconciler{err: reconciler.ErrUnauthorized}
	h := NewHandler(svc, nopLogger{})

	rec := postCallback(h, "order_id=ord-1&status=approved&s=mala-firma")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
