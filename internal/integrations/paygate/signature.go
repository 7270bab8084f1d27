package paygate

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// signatureParam имя параметра с подписью в уведомлении шлюза
const signatureParam = "s"

// Sign вычисляет подпись набора параметров уведомления
// Параметры сортируются по имени, конкатенируются как k=v через "&"
// (сам параметр подписи исключается) и подписываются HMAC-SHA256
func Sign(params url.Values, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == signatureParam {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params.Get(k))
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strings.Join(pairs, "&")))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature проверяет подпись уведомления от шлюза
func (c *Client) VerifySignature(params url.Values) error {
	got := params.Get(signatureParam)
	if got == "" {
		return ErrInvalidSignature
	}

	want := Sign(params, c.secret)
	if !hmac.Equal([]byte(strings.ToLower(got)), []byte(want)) {
		return ErrInvalidSignature
	}

	return nil
}
