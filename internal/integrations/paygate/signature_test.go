package paygate

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(format string, args ...any)  {}
func (nopLogger) Warn(format string, args ...any)  {}
func (nopLogger) Error(format string, args ...any) {}

func signedParams(secret string) url.Values {
	params := url.Values{}
	params.Set("order_id", "ord-1")
	params.Set("status", "approved")
	params.Set("s", Sign(params, secret))
	return params
}

func TestSign_Deterministic(t *testing.T) {
	params := url.Values{}
	params.Set("b", "2")
	params.Set("a", "1")

	// Подпись не зависит от порядка добавления параметров
	other := url.Values{}
	other.Set("a", "1")
	other.Set("b", "2")

	assert.Equal(t, Sign(params, "secret"), Sign(other, "secret"))
}

func TestSign_ExcludesSignatureParam(t *testing.T) {
	params := url.Values{}
	params.Set("order_id", "ord-1")

	want := Sign(params, "secret")
	params.Set("s", "anything")

	assert.Equal(t, want, Sign(params, "secret"))
}

func TestClient_VerifySignature(t *testing.T) {
	c := NewClient("https://pay.example.com", "key", "secret", time.Second, nopLogger{})

	valid := signedParams("secret")
	assert.NoError(t, c.VerifySignature(valid))

	// Регистр hex-подписи не имеет значения
	upper := signedParams("secret")
	upper.Set("s", strings.ToUpper(upper.Get("s")))
	assert.NoError(t, c.VerifySignature(upper))

	tampered := signedParams("secret")
	tampered.Set("status", "rejected")
	assert.ErrorIs(t, c.VerifySignature(tampered), ErrInvalidSignature)

	wrongSecret := signedParams("otro-secreto")
	assert.ErrorIs(t, c.VerifySignature(wrongSecret), ErrInvalidSignature)

	missing := url.Values{}
	missing.Set("order_id", "ord-1")
	assert.ErrorIs(t, c.VerifySignature(missing), ErrInvalidSignature)
}
