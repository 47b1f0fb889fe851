package fetcher

import (
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// hfTransport injects a Bearer token into every request when a token is set.
type hfTransport struct {
	base  http.RoundTripper
	token string
}

func (t *hfTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+t.token)
	}
	return t.base.RoundTrip(req)
}

// NewHFClient creates an *http.Client configured for Hugging Face API calls.
// timeout is the per-request deadline (0 = no timeout).
// token is automatically injected as a Bearer token on every request when non-empty.
// Connection errors, 429 and 5xx responses are retried up to retries times;
// once retries are exhausted the last response is returned as-is so callers
// see the real status code.
func NewHFClient(timeout time.Duration, token string, retries int) *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = max(retries, 0)
	rc.RetryWaitMin = 250 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.ErrorHandler = keepLastResponse
	rc.Logger = nil
	if logger.Enabled() {
		rc.Logger = logger
	}

	rc.HTTPClient.Timeout = timeout
	token = strings.TrimSpace(token)
	if token != "" {
		rc.HTTPClient.Transport = &hfTransport{base: rc.HTTPClient.Transport, token: token}
	}
	return rc.StandardClient()
}

// keepLastResponse returns the final response instead of retryablehttp's
// "giving up" error, so a persistent 5xx still surfaces as an HFError.
func keepLastResponse(resp *http.Response, err error, _ int) (*http.Response, error) {
	if resp != nil {
		return resp, nil
	}
	return nil, err
}
