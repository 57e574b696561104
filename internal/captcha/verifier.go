// Package captcha wraps the third-party challenge verification endpoint.
// Transport failures never reach callers: any error is a reject.
package captcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gojobs/board/internal/logging"
)

// Verifier decides whether a client-supplied challenge token is valid.
type Verifier interface {
	Verify(ctx context.Context, token string) bool
}

// HTTPVerifier posts the shared secret and the client token, form-encoded,
// to a siteverify-style endpoint and reads the JSON `success` flag.
type HTTPVerifier struct {
	endpoint string
	secret   string
	client   *http.Client
	log      logging.Logger
}

func NewHTTPVerifier(endpoint, secret string, timeout time.Duration, log logging.Logger) *HTTPVerifier {
	return &HTTPVerifier{
		endpoint: endpoint,
		secret:   secret,
		client:   &http.Client{Timeout: timeout},
		log:      log.With("component", "captcha"),
	}
}

// Verify returns true only for a 200 response whose body decodes to
// {"success": true}. Timeouts, transport errors, other status codes and
// malformed bodies are all rejects.
func (v *HTTPVerifier) Verify(ctx context.Context, token string) bool {
	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		v.log.Warn(ctx, "building verification request failed", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		v.log.Warn(ctx, "verification request failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.Warn(ctx, "verification endpoint returned non-200", "status", resp.StatusCode)
		return false
	}

	var out struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		v.log.Warn(ctx, "decoding verification response failed", "error", err)
		return false
	}
	return out.Success
}
